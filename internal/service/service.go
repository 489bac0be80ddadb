package service

import (
	"context"

	"portfolio_backend/internal/config"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/mailer"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repository"
)

type Authorization interface {
	SignUp(ctx context.Context, email, password, name, jobTitle, bio string) (string, *models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	ParseToken(accessToken string) (int, error)
}

// Profile exposes the authenticated user's own record.
type Profile interface {
	Get(ctx context.Context, userID int) (*models.User, error)
	Update(ctx context.Context, userID int, upd repository.ProfileUpdate) (*models.User, error)
}

// Projects covers ownership-scoped CRUD plus the public portfolio read.
type Projects interface {
	List(ctx context.Context, userID int) ([]models.Project, error)
	Create(ctx context.Context, userID int, in ProjectInput) (*models.Project, error)
	Update(ctx context.Context, projectID, userID int, upd repository.ProjectUpdate) (*models.Project, error)
	Delete(ctx context.Context, projectID, userID int) error
	Portfolio(ctx context.Context, userID int) (*models.Portfolio, error)
}

// PasswordReset drives the issue/redeem token lifecycle.
type PasswordReset interface {
	Request(ctx context.Context, email string) error
	Redeem(ctx context.Context, token, newPassword string) error
}

// Contact relays a visitor's message to a portfolio owner's inbox.
type Contact interface {
	Relay(ctx context.Context, userID int, name, email, message string) error
}

type Service struct {
	Authorization
	Profile
	Projects
	PasswordReset
	Contact
}

// NewService wires the repository layer and side-effect collaborators into
// the concrete services.
func NewService(repos *repository.Repository, tokens *TokenManager, mail mailer.Mailer, cfg *config.Config, log *logger.Logger) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, tokens),
		Profile:       NewProfileService(repos.Users),
		Projects:      NewProjectService(repos.Projects, repos.Users),
		PasswordReset: NewResetService(repos.Users, repos.ResetTokens, mail, cfg.BaseURL, log),
		Contact:       NewContactService(repos.Users, mail),
	}
}
