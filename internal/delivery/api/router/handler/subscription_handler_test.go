package handler

import (
	"net/http"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockUsecase "marketplace/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSubscriptionHandler(t *testing.T) (*SubscriptionHandler, *mockUsecase.MockSubscriptionUsecase) {
	subscriptionUC := mockUsecase.NewMockSubscriptionUsecase(t)

	return NewSubscriptionHandler(SubscriptionHandlerParams{
		SubscriptionUC: subscriptionUC,
		Logger:         newDiscardLogger(),
	}), subscriptionUC
}

func TestSubscriptionHandler_CheckoutDefaultsToMock(t *testing.T) {
	h, subscriptionUC := newSubscriptionHandler(t)
	requester := newRequester(entity.RoleUser)

	subscriptionUC.EXPECT().Checkout(mock.Anything, requester, entity.ProviderMock).Return(&entity.Subscription{
		ID:       uuid.New(),
		UserID:   requester.ID,
		Provider: entity.ProviderMock,
		Status:   entity.SubscriptionSucceeded,
	}, nil).Once()

	c, rec := newContext(newTestEcho(), requestSpec{
		method:    http.MethodPost,
		target:    "/api/v1/subscriptions/checkout",
		body:      `{}`,
		requester: requester,
	})

	require.NoError(t, h.Checkout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"status":"SUCCEEDED"`)
}

func TestSubscriptionHandler_CheckoutUnimplementedProvider(t *testing.T) {
	h, subscriptionUC := newSubscriptionHandler(t)
	requester := newRequester(entity.RoleUser)

	subscriptionUC.EXPECT().Checkout(mock.Anything, requester, entity.ProviderStripe).
		Return(nil, domainerrors.ErrProviderNotImplemented).Once()

	c, rec := newContext(newTestEcho(), requestSpec{
		method:    http.MethodPost,
		target:    "/api/v1/subscriptions/checkout",
		body:      `{"provider":"stripe"}`,
		requester: requester,
	})

	require.NoError(t, h.Checkout(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "PROVIDER_NOT_IMPLEMENTED", decodeEnvelope(t, rec).Error.Code)
}

func TestSubscriptionHandler_StatusWithoutSubscription(t *testing.T) {
	h, subscriptionUC := newSubscriptionHandler(t)
	requester := newRequester(entity.RoleUser)

	subscriptionUC.EXPECT().Status(mock.Anything, requester).
		Return(&entity.SubscriptionStatusView{IsPremium: false}, nil).Once()

	c, rec := newContext(newTestEcho(), requestSpec{
		method:    http.MethodGet,
		target:    "/api/v1/subscriptions/status",
		requester: requester,
	})

	require.NoError(t, h.Status(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"isPremium":false,"subscription":null}`, string(decodeEnvelope(t, rec).Data))
}
