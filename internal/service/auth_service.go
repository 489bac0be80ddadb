package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repository"
)

// Domain errors for auth flows.
var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password; callers must not be able to tell which.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService handles signup and login.
type AuthService struct {
	users  repository.Users
	tokens *TokenManager
}

func NewAuthService(users repository.Users, tokens *TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

var _ Authorization = (*AuthService)(nil)

// SignUp hashes the password, creates the user and issues a bearer token.
func (s *AuthService) SignUp(ctx context.Context, email, password, name, jobTitle, bio string) (string, *models.User, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return "", nil, fmt.Errorf("invalid password: %w", err)
	}

	u, err := s.users.Create(ctx, email, hash, name, jobTitle, bio)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

// Login validates credentials and issues a bearer token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if u == nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

// ParseToken decodes a bearer token into the acting user id.
func (s *AuthService) ParseToken(accessToken string) (int, error) {
	return s.tokens.Parse(accessToken)
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
