package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// voteRepository implements the repository.VoteRepository interface.
type voteRepository struct {
	db *gorm.DB
}

// NewVoteRepository is the constructor for voteRepository.
func NewVoteRepository(db *gorm.DB) repository.VoteRepository {
	return &voteRepository{
		db: db,
	}
}

// Upsert inserts the vote or, on a (user_id, post_id) conflict, overwrites its value.
func (repo *voteRepository) Upsert(ctx context.Context, vote *entity.Vote) (*entity.Vote, error) {
	voteM := &model.VoteModel{
		UserID: vote.UserID,
		PostID: vote.PostID,
		Value:  int(vote.Value),
	}

	if err := repo.db.WithContext(ctx).
		Clauses(voteConflictClause(), clause.Returning{}).
		Create(voteM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, domainerrors.ErrPostNotFound.WrapMessage("vote references a missing post")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert vote")
	}

	return &entity.Vote{
		ID:        voteM.ID,
		UserID:    voteM.UserID,
		PostID:    voteM.PostID,
		Value:     entity.VoteValue(voteM.Value),
		CreatedAt: voteM.CreatedAt,
		UpdatedAt: voteM.UpdatedAt,
	}, nil
}

func voteConflictClause() clause.OnConflict {
	return clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "post_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}
}

// Delete removes the vote if present. Deleting a missing vote is not an error.
func (repo *voteRepository) Delete(ctx context.Context, userID, postID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&model.VoteModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete vote")
	}

	return nil
}
