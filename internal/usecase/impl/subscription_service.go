package impl

import (
	"context"
	"log/slog"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// subscriptionService implements the SubscriptionUsecase interface.
type subscriptionService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	subscriptionRepo repository.SubscriptionRepository
	logger           *slog.Logger
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	SubscriptionRepo repository.SubscriptionRepository
	Logger           *slog.Logger
}

// NewSubscriptionService creates a new subscription service instance
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		subscriptionRepo: params.SubscriptionRepo,
		logger:           params.Logger,
	}
}

func (srv *subscriptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout records a subscription and grants premium. Only the MOCK provider
// settles synchronously; the real gateways are not wired.
func (srv *subscriptionService) Checkout(ctx context.Context, requester *entity.Requester, provider entity.PaymentProvider) (*entity.Subscription, error) {
	ent, err := requireAuthenticated(requester)
	if err != nil {
		return nil, err
	}

	switch provider {
	case entity.ProviderMock:
	case entity.ProviderStripe, entity.ProviderSSLCommerz, entity.ProviderShurjoPay:
		return nil, domainerrors.ErrProviderNotImplemented.WrapMessage(string(provider) + " integration not implemented yet")
	default:
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown payment provider")
	}

	var subscription *entity.Subscription
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		saved, err := repoFactory.NewSubscriptionRepository().Upsert(ctx, &entity.Subscription{
			UserID:   ent.UserID,
			Provider: provider,
			Status:   entity.SubscriptionSucceeded,
		})
		if err != nil {
			return errors.Wrap(err, "failed to upsert subscription")
		}

		if err := repoFactory.NewUserRepository().SetPremium(ctx, ent.UserID, true); err != nil {
			return errors.Wrap(err, "failed to grant premium")
		}

		subscription = saved

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Checkout failed", slog.String("userID", ent.UserID.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute checkout transaction")
	}

	srv.log(ctx).Info("Checkout succeeded", slog.String("userID", ent.UserID.String()), slog.String("provider", string(provider)))

	return subscription, nil
}

// Status returns the premium flag and the subscription, if any.
func (srv *subscriptionService) Status(ctx context.Context, requester *entity.Requester) (*entity.SubscriptionStatusView, error) {
	ent, err := requireAuthenticated(requester)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, ent.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	subscription, err := srv.subscriptionRepo.FindByUserID(ctx, ent.UserID)
	if err != nil && !errors.Is(err, domainerrors.ErrSubscriptionNotFound) {
		return nil, errors.Wrap(err, "failed to find subscription")
	}

	return &entity.SubscriptionStatusView{
		IsPremium:    user.IsPremium,
		Subscription: subscription,
	}, nil
}
