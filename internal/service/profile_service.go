package service

import (
	"context"
	"errors"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repository"
)

type ProfileService struct {
	users repository.Users
}

func NewProfileService(users repository.Users) *ProfileService {
	return &ProfileService{users: users}
}

var _ Profile = (*ProfileService)(nil)

func (s *ProfileService) Get(ctx context.Context, userID int) (*models.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// Update applies only the fields present in upd; an empty update returns
// the current record unchanged.
func (s *ProfileService) Update(ctx context.Context, userID int, upd repository.ProfileUpdate) (*models.User, error) {
	u, err := s.users.UpdateProfile(ctx, userID, upd)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
