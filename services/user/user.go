package user

import (
	"context"
	"fmt"
	"time"

	"doctorsportal/models"
)

const defaultTokenTTL = time.Hour

// UpsertUser records the user and issues an access token carrying the email.
func (s *DefaultUserService) UpsertUser(ctx context.Context, email string, req models.UserUpsertRequest) (*AuthResponse, error) {
	result, err := s.Repo.UpsertByEmail(ctx, email, req)
	if err != nil {
		return nil, err
	}

	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	token, err := s.Tokens.GenerateToken(email, ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &AuthResponse{Result: result, Token: token}, nil
}

// IsAdmin reports whether email belongs to an admin. Unknown users are not admins.
func (s *DefaultUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return u.IsAdmin(), nil
}

// MakeAdmin grants the admin role to an existing user.
func (s *DefaultUserService) MakeAdmin(ctx context.Context, email string) (*models.UpsertResult, error) {
	return s.Repo.SetRole(ctx, email, models.RoleAdmin)
}

func (s *DefaultUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultUserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.Repo.GetByEmail(ctx, email)
}
