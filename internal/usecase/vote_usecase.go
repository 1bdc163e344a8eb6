package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// VoteUsecase maintains the single (user, post) vote.
type VoteUsecase interface {
	Upvote(ctx context.Context, requester *entity.Requester, postID uuid.UUID) (*entity.Vote, error)

	Downvote(ctx context.Context, requester *entity.Requester, postID uuid.UUID) (*entity.Vote, error)

	// Unvote removes the vote if present. It succeeds when there is none.
	Unvote(ctx context.Context, requester *entity.Requester, postID uuid.UUID) error
}
