package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/feed"
	"marketplace/internal/domain/moderation"
	"marketplace/internal/domain/query"

	"github.com/google/uuid"
)

// CreatePostInput defines the data required to submit a post.
type CreatePostInput struct {
	Title       string
	Description string
	Location    string
	ImageURL    string
	PriceMin    *int
	PriceMax    *int
	CategoryID  uuid.UUID
	ShopID      *uuid.UUID
}

// PostListOutput is one ranked page of visible posts.
type PostListOutput struct {
	Meta  entity.PageMeta
	Items []*feed.RankedPost
}

// PostUsecase defines the post visibility, ranking and moderation operations.
// A nil requester is an anonymous caller.
type PostUsecase interface {
	// Create submits a post in PENDING status.
	Create(ctx context.Context, requester *entity.Requester, input CreatePostInput) (*entity.Post, error)

	// GetByID returns a single post with its signals, or Forbidden when the
	// requester may not read it.
	GetByID(ctx context.Context, requester *entity.Requester, id uuid.UUID) (*feed.RankedPost, error)

	// List returns one filtered, ranked page of the posts visible to requester.
	List(ctx context.Context, requester *entity.Requester, params query.Params) (*PostListOutput, error)

	Approve(ctx context.Context, requester *entity.Requester, id uuid.UUID, opts moderation.ApproveOptions) (*entity.Post, error)

	Reject(ctx context.Context, requester *entity.Requester, id uuid.UUID, reason string) (*entity.Post, error)
}
