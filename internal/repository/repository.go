package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"portfolio_backend/internal/models"
)

// Sentinel errors shared by all repositories.
var (
	// ErrEmailTaken maps the unique-violation on users.email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrNotFound covers both a missing row and an ownership mismatch;
	// callers must not be able to tell the two apart.
	ErrNotFound = errors.New("not found")
)

type Users interface {
	Create(ctx context.Context, email, passwordHash, name, jobTitle, bio string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	UpdateProfile(ctx context.Context, id int, upd ProfileUpdate) (*models.User, error)
}

type Projects interface {
	ListByUser(ctx context.Context, userID int) ([]models.Project, error)
	Create(ctx context.Context, p models.Project) (*models.Project, error)
	Update(ctx context.Context, projectID, userID int, upd ProjectUpdate) (*models.Project, error)
	Delete(ctx context.Context, projectID, userID int) error
}

type ResetTokens interface {
	Create(ctx context.Context, userID int, token string, expiresAt time.Time) error
	GetByToken(ctx context.Context, token string) (*models.PasswordReset, error)
	// ResetPassword rewrites the user's hash and deletes every outstanding
	// token for that user in a single transaction.
	ResetPassword(ctx context.Context, userID int, newHash string) error
}

// ProfileUpdate carries only the profile fields present in a request.
// A nil pointer means "leave unchanged".
type ProfileUpdate struct {
	Name         *string
	JobTitle     *string
	Bio          *string
	ProfileImage *string
}

// ProjectUpdate carries only the project fields present in a request.
type ProjectUpdate struct {
	Name        *string
	DemoURL     *string
	RepoURL     *string
	Description *string
	Image       *string
}

type Repository struct {
	Users       Users
	Projects    Projects
	ResetTokens ResetTokens
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:       NewUserRepository(db),
		Projects:    NewProjectRepository(db),
		ResetTokens: NewResetTokenRepository(db),
	}
}
