package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/circleage/backend/internal/domain/entities"
	"github.com/circleage/backend/internal/domain/repositories"
	apperrors "github.com/circleage/backend/pkg/errors"
)

// UserService handles business logic for users
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Create registers a new user
func (s *UserService) Create(ctx context.Context, user *entities.User) error {
	if user.Name == "" {
		return apperrors.NewValidationError("name is required")
	}
	if !strings.Contains(user.Email, "@") {
		return apperrors.NewValidationError("a valid email is required")
	}

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	return s.repo.Create(ctx, user)
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, id string) (*entities.User, error) {
	return s.repo.GetByID(ctx, id)
}

// Update updates a user's profile
func (s *UserService) Update(ctx context.Context, user *entities.User) error {
	return s.repo.Update(ctx, user)
}

// Delete removes a user
func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
