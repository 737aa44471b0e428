package user

import (
	"context"

	userRepo "farmmarket/database/repository/user"
	"farmmarket/models"
)

// AuthResponse is returned on successful registration or login.
type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// UserService manages user accounts and authentication.
type UserService interface {
	// RegisterUser creates a new account and returns a signed session token.
	RegisterUser(ctx context.Context, reg models.UserRegistration) (*AuthResponse, error)
	// AuthenticateUser verifies credentials and returns a signed session token.
	AuthenticateUser(ctx context.Context, email, password string) (*AuthResponse, error)
	// GetUserByID retrieves a user by ID, or (nil, nil) if none exists.
	GetUserByID(id string) (*models.User, error)
	// ListUsers retrieves all users.
	ListUsers(ctx context.Context) ([]models.User, error)
}

// DefaultUserService is the production UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// NewUserService constructs a UserService backed by the given repository.
func NewUserService(repo userRepo.UserRepository) UserService {
	return &DefaultUserService{Repo: repo}
}
