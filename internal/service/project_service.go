package service

import (
	"context"
	"errors"
	"strings"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repository"
)

// ErrProjectNotFound covers both a nonexistent project and one owned by a
// different user.
var ErrProjectNotFound = errors.New("project not found")

// ErrNameRequired rejects a missing or blank project name.
var ErrNameRequired = errors.New("project name is required")

// ProjectInput carries the fields of a new project.
type ProjectInput struct {
	Name        string
	DemoURL     string
	RepoURL     string
	Description string
	Image       string
}

type ProjectService struct {
	projects repository.Projects
	users    repository.Users
}

func NewProjectService(projects repository.Projects, users repository.Users) *ProjectService {
	return &ProjectService{projects: projects, users: users}
}

var _ Projects = (*ProjectService)(nil)

func (s *ProjectService) List(ctx context.Context, userID int) ([]models.Project, error) {
	return s.projects.ListByUser(ctx, userID)
}

// Create stores a new project. The name is required regardless of how the
// request was encoded.
func (s *ProjectService) Create(ctx context.Context, userID int, in ProjectInput) (*models.Project, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, ErrNameRequired
	}
	return s.projects.Create(ctx, models.Project{
		Name:        in.Name,
		DemoURL:     in.DemoURL,
		RepoURL:     in.RepoURL,
		Description: in.Description,
		Image:       in.Image,
		UserID:      userID,
	})
}

// Update applies the present fields to an owned project. The name may be
// omitted but not blanked.
func (s *ProjectService) Update(ctx context.Context, projectID, userID int, upd repository.ProjectUpdate) (*models.Project, error) {
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return nil, ErrNameRequired
	}
	p, err := s.projects.Update(ctx, projectID, userID, upd)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *ProjectService) Delete(ctx context.Context, projectID, userID int) error {
	err := s.projects.Delete(ctx, projectID, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrProjectNotFound
	}
	return err
}

// Portfolio returns the public view of a user and their projects. No
// ownership check: this backs the public endpoint.
func (s *ProjectService) Portfolio(ctx context.Context, userID int) (*models.Portfolio, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	projects, err := s.projects.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &models.Portfolio{User: u.Public(), Projects: projects}, nil
}
