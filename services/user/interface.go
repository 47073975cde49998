package user

import (
	"context"
	"time"

	userRepo "doctorsportal/database/repository/user"
	"doctorsportal/models"
	"doctorsportal/utils"
)

type UserService interface {
	// Registration
	UpsertUser(ctx context.Context, email string, req models.UserUpsertRequest) (*AuthResponse, error)

	// Roles
	IsAdmin(ctx context.Context, email string) (bool, error)
	MakeAdmin(ctx context.Context, email string) (*models.UpsertResult, error)

	// Admin / Utility
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Tokens   *utils.TokenManager
	TokenTTL time.Duration
}

// AuthResponse is returned by PUT /user/:email.
type AuthResponse struct {
	Result *models.UpsertResult `json:"result"`
	Token  string               `json:"token"`
}
