// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID returns domainerrors.ErrUserNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail returns domainerrors.ErrUserNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create returns domainerrors.ErrUserAlreadyExists on a duplicate email.
	Create(ctx context.Context, user *entity.User) error

	// SetPremium updates the premium flag of a user.
	SetPremium(ctx context.Context, id uuid.UUID, isPremium bool) error
}
