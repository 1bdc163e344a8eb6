package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// SubscriptionRepository defines persistence for premium subscriptions.
type SubscriptionRepository interface {
	// Upsert creates the user's subscription or replaces its provider,
	// status and transaction id.
	Upsert(ctx context.Context, subscription *entity.Subscription) (*entity.Subscription, error)

	// FindByUserID returns domainerrors.ErrSubscriptionNotFound when absent.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Subscription, error)
}
