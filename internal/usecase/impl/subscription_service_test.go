package impl

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockRepo "marketplace/internal/mocks/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type subscriptionServiceFixture struct {
	service          usecase.SubscriptionUsecase
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	subscriptionRepo *mockRepo.MockSubscriptionRepository
}

func createTestSubscriptionService(t *testing.T) subscriptionServiceFixture {
	t.Helper()

	fx := subscriptionServiceFixture{
		txManager:        mockRepo.NewMockTransactionManager(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		subscriptionRepo: mockRepo.NewMockSubscriptionRepository(t),
	}

	fx.service = NewSubscriptionService(SubscriptionServiceParams{
		TxManager:        fx.txManager,
		UserRepo:         fx.userRepo,
		SubscriptionRepo: fx.subscriptionRepo,
		Logger:           newDiscardLogger(),
	})

	return fx
}

func TestSubscriptionService_Checkout_Mock(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()
	requester := newRequester(entity.RoleUser, false)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		subscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
		userRepo := mockRepo.NewMockUserRepository(t)

		factory.EXPECT().NewSubscriptionRepository().Return(subscriptionRepo)
		factory.EXPECT().NewUserRepository().Return(userRepo)

		subscriptionRepo.EXPECT().
			Upsert(ctx, mock.MatchedBy(func(s *entity.Subscription) bool {
				return s.UserID == requester.ID && s.Provider == entity.ProviderMock && s.Status == entity.SubscriptionSucceeded
			})).
			RunAndReturn(func(ctx context.Context, s *entity.Subscription) (*entity.Subscription, error) {
				saved := *s
				saved.ID = uuid.New()

				return &saved, nil
			})
		userRepo.EXPECT().SetPremium(ctx, requester.ID, true).Return(nil)
	})

	subscription, err := fx.service.Checkout(ctx, requester, entity.ProviderMock)

	require.NoError(t, err)
	assert.Equal(t, entity.SubscriptionSucceeded, subscription.Status)
	assert.NotEqual(t, uuid.Nil, subscription.ID)
}

func TestSubscriptionService_Checkout_GatewayNotImplemented(t *testing.T) {
	for _, provider := range []entity.PaymentProvider{entity.ProviderStripe, entity.ProviderSSLCommerz, entity.ProviderShurjoPay} {
		t.Run(string(provider), func(t *testing.T) {
			fx := createTestSubscriptionService(t)

			_, err := fx.service.Checkout(context.Background(), newRequester(entity.RoleUser, false), provider)

			assert.ErrorIs(t, err, domainerrors.ErrProviderNotImplemented)
			assert.Equal(t, domainerrors.KindUnavailable, domainerrors.KindOf(err))
		})
	}
}

func TestSubscriptionService_Checkout_RollsBackOnPremiumFailure(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()
	requester := newRequester(entity.RoleUser, false)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		subscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
		userRepo := mockRepo.NewMockUserRepository(t)

		factory.EXPECT().NewSubscriptionRepository().Return(subscriptionRepo)
		factory.EXPECT().NewUserRepository().Return(userRepo)

		subscriptionRepo.EXPECT().Upsert(ctx, mock.Anything).Return(&entity.Subscription{ID: uuid.New()}, nil)
		userRepo.EXPECT().SetPremium(ctx, requester.ID, true).Return(domainerrors.ErrUserNotFound)
	})

	subscription, err := fx.service.Checkout(ctx, requester, entity.ProviderMock)

	require.Error(t, err)
	assert.Nil(t, subscription)
}

func TestSubscriptionService_Status(t *testing.T) {
	ctx := context.Background()
	requester := newRequester(entity.RoleUser, true)

	t.Run("without subscription", func(t *testing.T) {
		fx := createTestSubscriptionService(t)
		fx.userRepo.EXPECT().FindByID(ctx, requester.ID).Return(&entity.User{ID: requester.ID}, nil)
		fx.subscriptionRepo.EXPECT().FindByUserID(ctx, requester.ID).Return(nil, domainerrors.ErrSubscriptionNotFound)

		view, err := fx.service.Status(ctx, requester)

		require.NoError(t, err)
		assert.False(t, view.IsPremium)
		assert.Nil(t, view.Subscription)
	})

	t.Run("premium", func(t *testing.T) {
		fx := createTestSubscriptionService(t)
		sub := &entity.Subscription{ID: uuid.New(), UserID: requester.ID, Status: entity.SubscriptionSucceeded}
		fx.userRepo.EXPECT().FindByID(ctx, requester.ID).Return(&entity.User{ID: requester.ID, IsPremium: true}, nil)
		fx.subscriptionRepo.EXPECT().FindByUserID(ctx, requester.ID).Return(sub, nil)

		view, err := fx.service.Status(ctx, requester)

		require.NoError(t, err)
		assert.True(t, view.IsPremium)
		assert.Equal(t, sub, view.Subscription)
	})
}
