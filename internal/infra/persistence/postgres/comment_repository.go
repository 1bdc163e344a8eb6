package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// commentRepository implements the repository.CommentRepository interface.
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{
		db: db,
	}
}

// Create persists a new comment.
func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentM := &model.CommentModel{
		PostID:  comment.PostID,
		UserID:  comment.UserID,
		Content: comment.Content,
		Rating:  comment.Rating,
	}

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPostNotFound.WrapMessage("comment references a missing post")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidRating
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	comment.ID = commentM.ID
	comment.CreatedAt = commentM.CreatedAt

	return nil
}

// ListByPost returns the comments of a post with their authors, newest first.
func (repo *commentRepository) ListByPost(ctx context.Context, postID uuid.UUID) ([]*entity.Comment, error) {
	var commentMs []*model.CommentModel

	if err := repo.db.WithContext(ctx).
		Preload("User").
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Find(&commentMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list comments")
	}

	comments := make([]*entity.Comment, 0, len(commentMs))
	for _, m := range commentMs {
		comment := &entity.Comment{
			ID:        m.ID,
			PostID:    m.PostID,
			UserID:    m.UserID,
			Content:   m.Content,
			Rating:    m.Rating,
			CreatedAt: m.CreatedAt,
		}
		if m.User != nil {
			comment.Author = &entity.User{ID: m.User.ID, Name: m.User.Name}
		}
		comments = append(comments, comment)
	}

	return comments, nil
}

// Delete removes a comment of a post.
func (repo *commentRepository) Delete(ctx context.Context, postID, commentID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND post_id = ?", commentID, postID).
		Delete(&model.CommentModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete comment")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound.WrapMessage("comment not found")
	}

	return nil
}
