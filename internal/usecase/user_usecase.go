// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"bazar/internal/domain/entity"
	"bazar/internal/domain/repository"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// LoginOutput returns the signed token after a successful login.
type LoginOutput struct {
	Token string
	User  *entity.User
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a new account; registering an email that already
	// exists fails with domainerrors.ErrUserAlreadyExists.
	Register(ctx context.Context, input *RegisterInput) error

	// Login verifies the credentials and issues a signed token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// ListUsers returns every registered user.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// PromoteToAdmin unconditionally upserts the user's role to "admin".
	PromoteToAdmin(ctx context.Context, userID string) (*repository.UpdateResult, error)

	// DeleteUser removes a user by id.
	DeleteUser(ctx context.Context, userID string) (*repository.DeleteResult, error)
}
