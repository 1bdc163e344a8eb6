package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateShopInput defines the data required to open a shop. An empty Slug is
// derived from Name.
type CreateShopInput struct {
	Name        string
	Slug        string
	Description *string
}

// ShopListInput filters and paginates the shop listing.
type ShopListInput struct {
	Q     string
	Page  int
	Limit int
}

// ShopListOutput is one page of shops.
type ShopListOutput struct {
	Meta  entity.PageMeta
	Items []*entity.Shop
}

// ShopUsecase defines the shop operations.
type ShopUsecase interface {
	// Create opens a shop owned by requester. ADMIN or VENDOR only.
	Create(ctx context.Context, requester *entity.Requester, input CreateShopInput) (*entity.Shop, error)

	List(ctx context.Context, input ShopListInput) (*ShopListOutput, error)

	GetByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error)

	// GetBySlug returns the shop with its approved posts, newest first.
	GetBySlug(ctx context.Context, slug string) (*entity.ShopWithPosts, error)

	MyShops(ctx context.Context, requester *entity.Requester) ([]*entity.Shop, error)
}
