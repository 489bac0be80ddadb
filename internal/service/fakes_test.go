package service

import (
	"context"
	"fmt"
	"time"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repository"
)

// ---- in-memory repository fakes ----

type fakeUsers struct {
	byID   map[int]*models.User
	nextID int
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: map[int]*models.User{}, nextID: 1}
}

func (f *fakeUsers) Create(_ context.Context, email, hash, name, jobTitle, bio string) (*models.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			return nil, repository.ErrEmailTaken
		}
	}
	u := &models.User{
		ID:           f.nextID,
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		JobTitle:     jobTitle,
		Bio:          bio,
	}
	f.byID[u.ID] = u
	f.nextID++
	copied := *u
	return &copied, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id int) (*models.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUsers) UpdateProfile(_ context.Context, id int, upd repository.ProfileUpdate) (*models.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.JobTitle != nil {
		u.JobTitle = *upd.JobTitle
	}
	if upd.Bio != nil {
		u.Bio = *upd.Bio
	}
	if upd.ProfileImage != nil {
		u.ProfileImage = *upd.ProfileImage
	}
	copied := *u
	return &copied, nil
}

type fakeProjects struct {
	byID   map[int]models.Project
	nextID int
}

func newFakeProjects() *fakeProjects {
	return &fakeProjects{byID: map[int]models.Project{}, nextID: 1}
}

func (f *fakeProjects) ListByUser(_ context.Context, userID int) ([]models.Project, error) {
	out := make([]models.Project, 0)
	for id := 1; id < f.nextID; id++ {
		if p, ok := f.byID[id]; ok && p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProjects) Create(_ context.Context, p models.Project) (*models.Project, error) {
	p.ID = f.nextID
	f.byID[p.ID] = p
	f.nextID++
	return &p, nil
}

func (f *fakeProjects) Update(_ context.Context, projectID, userID int, upd repository.ProjectUpdate) (*models.Project, error) {
	p, ok := f.byID[projectID]
	if !ok || p.UserID != userID {
		return nil, repository.ErrNotFound
	}
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.DemoURL != nil {
		p.DemoURL = *upd.DemoURL
	}
	if upd.RepoURL != nil {
		p.RepoURL = *upd.RepoURL
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.Image != nil {
		p.Image = *upd.Image
	}
	f.byID[projectID] = p
	return &p, nil
}

func (f *fakeProjects) Delete(_ context.Context, projectID, userID int) error {
	p, ok := f.byID[projectID]
	if !ok || p.UserID != userID {
		return repository.ErrNotFound
	}
	delete(f.byID, projectID)
	return nil
}

type fakeResetTokens struct {
	users  *fakeUsers
	tokens map[string]models.PasswordReset
}

func newFakeResetTokens(users *fakeUsers) *fakeResetTokens {
	return &fakeResetTokens{users: users, tokens: map[string]models.PasswordReset{}}
}

func (f *fakeResetTokens) Create(_ context.Context, userID int, token string, expiresAt time.Time) error {
	f.tokens[token] = models.PasswordReset{
		ID:        len(f.tokens) + 1,
		UserID:    userID,
		Token:     token,
		ExpiresAt: expiresAt,
	}
	return nil
}

func (f *fakeResetTokens) GetByToken(_ context.Context, token string) (*models.PasswordReset, error) {
	p, ok := f.tokens[token]
	if !ok {
		return nil, nil
	}
	copied := p
	return &copied, nil
}

func (f *fakeResetTokens) ResetPassword(_ context.Context, userID int, newHash string) error {
	if u, ok := f.users.byID[userID]; ok {
		u.PasswordHash = newHash
	}
	for token, p := range f.tokens {
		if p.UserID == userID {
			delete(f.tokens, token)
		}
	}
	return nil
}

// ---- mailer fake ----

type sentMail struct {
	to      string
	subject string
	body    string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (f *fakeMailer) Send(to, subject, body string) error {
	if f.err != nil {
		return fmt.Errorf("fake mailer: %w", f.err)
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}
