package impl

import (
	"context"
	"log/slog"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// commentService implements the CommentUsecase interface.
type commentService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	logger      *slog.Logger
}

// CommentServiceParams holds dependencies for CommentService, injected by Fx.
type CommentServiceParams struct {
	fx.In

	PostRepo    repository.PostRepository
	CommentRepo repository.CommentRepository
	Logger      *slog.Logger
}

// NewCommentService is the constructor for commentService.
func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	return &commentService{
		postRepo:    params.PostRepo,
		commentRepo: params.CommentRepo,
		logger:      params.Logger,
	}
}

func (srv *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create adds a rated comment to an approved post.
func (srv *commentService) Create(ctx context.Context, requester *entity.Requester, postID uuid.UUID, input usecase.CreateCommentInput) (*entity.Comment, error) {
	ent, err := requireAuthenticated(requester)
	if err != nil {
		return nil, err
	}

	post, err := srv.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find post")
	}
	if !post.IsApproved() {
		return nil, domainerrors.ErrCommentNotAllowed
	}
	if !entity.ValidRating(input.Rating) {
		return nil, domainerrors.ErrInvalidRating
	}

	comment := &entity.Comment{
		PostID:  postID,
		UserID:  ent.UserID,
		Content: input.Content,
		Rating:  input.Rating,
	}
	if err := srv.commentRepo.Create(ctx, comment); err != nil {
		return nil, errors.Wrap(err, "failed to create comment")
	}

	srv.log(ctx).Debug("Comment created", slog.String("postID", postID.String()), slog.String("commentID", comment.ID.String()))

	return comment, nil
}

// List returns the comments of a post with their authors, newest first.
func (srv *commentService) List(ctx context.Context, postID uuid.UUID) ([]*entity.Comment, error) {
	comments, err := srv.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	return comments, nil
}

// Delete removes a comment. ADMIN only.
func (srv *commentService) Delete(ctx context.Context, requester *entity.Requester, postID, commentID uuid.UUID) error {
	ent, err := requireModerator(requester)
	if err != nil {
		return err
	}

	if err := srv.commentRepo.Delete(ctx, postID, commentID); err != nil {
		return errors.Wrap(err, "failed to delete comment")
	}

	srv.log(ctx).Info("Comment deleted", slog.String("commentID", commentID.String()), slog.String("actorID", ent.UserID.String()))

	return nil
}
