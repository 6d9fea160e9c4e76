package service

import (
	"context"
	"fmt"

	"github.com/martijn/bloglist/internal/core/domain"
	"github.com/martijn/bloglist/internal/core/repository"
)

const MinCredentialLength = 3

type UserService struct {
	userRepo    repository.UserRepository
	authService *AuthService
}

func NewUserService(userRepo repository.UserRepository, authService *AuthService) *UserService {
	return &UserService{
		userRepo:    userRepo,
		authService: authService,
	}
}

// Create registers a new user with a unique username and a bcrypt-hashed
// password.
func (s *UserService) Create(ctx context.Context, username, name, password string) (*domain.User, error) {
	if len(username) < MinCredentialLength {
		return nil, NewValidationError(fmt.Sprintf("username must be at least %d characters", MinCredentialLength))
	}
	if len(password) < MinCredentialLength {
		return nil, NewValidationError(fmt.Sprintf("password must be at least %d characters", MinCredentialLength))
	}

	if _, err := s.userRepo.FindByUsername(ctx, username); err == nil {
		return nil, NewValidationError(fmt.Sprintf("username already taken: %s", username))
	}

	passwordHash, err := s.authService.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := domain.NewUser(username, name, passwordHash)
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// List returns all users with their owned blog ids populated.
func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.List(ctx)
}
