package userRepo

import (
	"context"

	"doctorsportal/models"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetAll retrieves all users.
	GetAll(ctx context.Context) ([]models.User, error)
	// GetByEmail retrieves a user by email, or nil when none exists.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// UpsertByEmail sets the profile fields of the user with email, creating the user if needed.
	UpsertByEmail(ctx context.Context, email string, req models.UserUpsertRequest) (*models.UpsertResult, error)
	// SetRole changes the role of an existing user.
	SetRole(ctx context.Context, email string, role models.Role) (*models.UpsertResult, error)
}
