package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// ShopListParams filters the shop listing.
type ShopListParams struct {
	Q      string
	Limit  int
	Offset int
}

// ShopRepository defines persistence for shops.
type ShopRepository interface {
	// Create returns domainerrors.ErrShopSlugExists on a duplicate slug.
	Create(ctx context.Context, shop *entity.Shop) error

	// FindByID returns domainerrors.ErrShopNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error)

	// FindBySlug returns domainerrors.ErrShopNotFound when absent.
	FindBySlug(ctx context.Context, slug string) (*entity.Shop, error)

	// List returns one page of shops matching q over name or description,
	// newest first, and the total number of matches.
	List(ctx context.Context, params ShopListParams) ([]*entity.Shop, int64, error)

	// ListByOwner returns the shops owned by a user, newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Shop, error)
}
