package repository

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/moderation"
	"marketplace/internal/domain/query"

	"github.com/google/uuid"
)

// PostRepository defines persistence for posts.
type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error

	// FindByID returns domainerrors.ErrPostNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error)

	// FindPage returns the posts of one page of plan in store order, and the
	// total number of posts matching plan.
	FindPage(ctx context.Context, plan *query.FilterPlan) ([]*entity.Post, int64, error)

	// ListApprovedByShop returns the approved posts of a shop, newest first.
	ListApprovedByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.Post, error)

	// AggregateSignals computes rating and vote aggregates for the given
	// posts with one grouped query per signal. Posts without interactions
	// are absent from the map.
	AggregateSignals(ctx context.Context, postIDs []uuid.UUID) (map[uuid.UUID]entity.PostSignals, error)

	// ApplyModeration writes decision in a single UPDATE and returns the
	// updated post. Returns domainerrors.ErrPostNotFound when absent.
	ApplyModeration(ctx context.Context, id uuid.UUID, decision moderation.Decision) (*entity.Post, error)
}
