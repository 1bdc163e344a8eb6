package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// Upsert creates or replaces the single subscription row of a user.
func (repo *subscriptionRepository) Upsert(ctx context.Context, subscription *entity.Subscription) (*entity.Subscription, error) {
	subscriptionM := &model.SubscriptionModel{
		UserID:        subscription.UserID,
		Provider:      string(subscription.Provider),
		Status:        string(subscription.Status),
		TransactionID: subscription.TransactionID,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"provider", "status", "transaction_id", "updated_at"}),
		}, clause.Returning{}).
		Create(subscriptionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("subscription references a missing user")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert subscription")
	}

	return toSubscriptionDomain(subscriptionM), nil
}

// FindByUserID retrieves the subscription of a user.
func (repo *subscriptionRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Subscription, error) {
	var subscriptionM model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&subscriptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrSubscriptionNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find subscription")
	}

	return toSubscriptionDomain(&subscriptionM), nil
}

func toSubscriptionDomain(m *model.SubscriptionModel) *entity.Subscription {
	return &entity.Subscription{
		ID:            m.ID,
		UserID:        m.UserID,
		Provider:      entity.PaymentProvider(m.Provider),
		Status:        entity.SubscriptionStatus(m.Status),
		TransactionID: m.TransactionID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
