package service

import (
	"context"
	"fmt"

	"bookreviews/internal/model"
	"bookreviews/internal/repository"
)

// UserService exposes the public user directory.
type UserService interface {
	ListUsers(ctx context.Context) ([]model.Profile, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) ListUsers(ctx context.Context) ([]model.Profile, error) {
	profiles, err := s.userRepo.ListProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return profiles, nil
}
