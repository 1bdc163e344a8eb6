package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// VoteRepository defines persistence for the (user, post) vote ledger.
type VoteRepository interface {
	// Upsert inserts the vote or overwrites the value of the existing one.
	Upsert(ctx context.Context, vote *entity.Vote) (*entity.Vote, error)

	// Delete removes the vote of userID on postID if any.
	Delete(ctx context.Context, userID, postID uuid.UUID) error
}
