package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCommentInput defines the data required to comment on a post.
type CreateCommentInput struct {
	Content string
	Rating  int
}

// CommentUsecase defines the comment operations on a post.
type CommentUsecase interface {
	Create(ctx context.Context, requester *entity.Requester, postID uuid.UUID, input CreateCommentInput) (*entity.Comment, error)

	// List returns the comments of a post, newest first.
	List(ctx context.Context, postID uuid.UUID) ([]*entity.Comment, error)

	Delete(ctx context.Context, requester *entity.Requester, postID, commentID uuid.UUID) error
}
