package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler, injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	SubscriptionUC usecase.SubscriptionUsecase
	Logger         *slog.Logger
}

// SubscriptionHandler serves premium checkout and status.
type SubscriptionHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
	logger         *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler
func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUC: params.SubscriptionUC,
		logger:         params.Logger,
	}
}

// CheckoutRequest selects the payment provider. It defaults to MOCK.
type CheckoutRequest struct {
	Provider string `json:"provider"`
}

// Checkout runs a premium checkout
func (h *SubscriptionHandler) Checkout(c echo.Context) error {
	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}

	provider := entity.ProviderMock
	if p := strings.TrimSpace(req.Provider); p != "" {
		provider = entity.PaymentProvider(strings.ToUpper(p))
	}

	subscription, err := h.subscriptionUC.Checkout(c.Request().Context(), middleware.GetRequester(c), provider)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSubscriptionResponse(subscription))
}

// Status returns the premium flag and subscription of the requester
func (h *SubscriptionHandler) Status(c echo.Context) error {
	status, err := h.subscriptionUC.Status(c.Request().Context(), middleware.GetRequester(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &SubscriptionStatusResponse{
		IsPremium:    status.IsPremium,
		Subscription: toSubscriptionResponse(status.Subscription),
	})
}
