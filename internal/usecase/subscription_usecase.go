package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
)

// SubscriptionUsecase defines the premium subscription operations.
type SubscriptionUsecase interface {
	// Checkout runs a checkout with provider. Only MOCK is implemented: it
	// records a SUCCEEDED subscription and grants premium in one transaction.
	Checkout(ctx context.Context, requester *entity.Requester, provider entity.PaymentProvider) (*entity.Subscription, error)

	// Status returns the premium flag and the subscription of requester.
	Status(ctx context.Context, requester *entity.Requester) (*entity.SubscriptionStatusView, error)
}
