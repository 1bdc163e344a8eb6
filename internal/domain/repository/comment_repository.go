package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// CommentRepository defines persistence for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error

	// ListByPost returns the comments of a post with their authors, newest first.
	ListByPost(ctx context.Context, postID uuid.UUID) ([]*entity.Comment, error)

	// Delete returns domainerrors.ErrNotFound when absent.
	Delete(ctx context.Context, postID, commentID uuid.UUID) error
}
