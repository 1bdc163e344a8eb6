package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// CategoryRepository defines persistence for categories.
type CategoryRepository interface {
	// List returns all categories ordered by name.
	List(ctx context.Context) ([]*entity.Category, error)

	// FindByID returns domainerrors.ErrCategoryNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindBySlug returns domainerrors.ErrCategoryNotFound when absent.
	FindBySlug(ctx context.Context, slug string) (*entity.Category, error)

	// Create returns domainerrors.ErrCategorySlugExists on a duplicate slug.
	Create(ctx context.Context, category *entity.Category) error

	// Update returns domainerrors.ErrCategorySlugExists on a duplicate slug
	// and domainerrors.ErrCategoryNotFound when absent.
	Update(ctx context.Context, category *entity.Category) error

	// Delete returns domainerrors.ErrCategoryNotFound when absent.
	Delete(ctx context.Context, id uuid.UUID) error
}
