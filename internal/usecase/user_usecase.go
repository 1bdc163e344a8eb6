// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new account.
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates an account with role USER.
	Register(ctx context.Context, input RegisterUserInput) (*entity.User, error)

	// RegisterAdmin creates an account with role ADMIN.
	RegisterAdmin(ctx context.Context, input RegisterUserInput) (*entity.User, error)

	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// ResolveRequester loads the current role and premium flag of a token subject.
	ResolveRequester(ctx context.Context, userID uuid.UUID) (*entity.Requester, error)
}
