package handler

import (
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/response"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ShopHandlerParams holds dependencies for ShopHandler, injected by Fx.
type ShopHandlerParams struct {
	fx.In

	ShopUC usecase.ShopUsecase
	Logger *slog.Logger
}

// ShopHandler holds dependencies for shop handlers
type ShopHandler struct {
	shopUC usecase.ShopUsecase
	logger *slog.Logger
}

// NewShopHandler is the constructor for ShopHandler
func NewShopHandler(params ShopHandlerParams) *ShopHandler {
	return &ShopHandler{
		shopUC: params.ShopUC,
		logger: params.Logger,
	}
}

// CreateShopRequest represents the request body for opening a shop
type CreateShopRequest struct {
	Name        string  `json:"name" validate:"required,max=120"`
	Slug        string  `json:"slug" validate:"omitempty,max=120"`
	Description *string `json:"description"`
}

// Create opens a shop owned by the requester
func (h *ShopHandler) Create(c echo.Context) error {
	var req CreateShopRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shop input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	shop, err := h.shopUC.Create(c.Request().Context(), middleware.GetRequester(c), usecase.CreateShopInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toShopResponse(shop))
}

// List returns one page of shops matching the optional q filter
func (h *ShopHandler) List(c echo.Context) error {
	page, err := intQuery(c, "page")
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "page must be an integer")
	}
	limit, err := intQuery(c, "limit")
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "limit must be an integer")
	}

	output, err := h.shopUC.List(c.Request().Context(), usecase.ShopListInput{
		Q:     c.QueryParam("q"),
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithPage(c, toShopResponses(output.Items), output.Meta)
}

// MyShops returns the shops owned by the requester
func (h *ShopHandler) MyShops(c echo.Context) error {
	shops, err := h.shopUC.MyShops(c.Request().Context(), middleware.GetRequester(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toShopResponses(shops))
}

// GetBySlug returns a shop with its approved posts
func (h *ShopHandler) GetBySlug(c echo.Context) error {
	detail, err := h.shopUC.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &ShopDetailResponse{
		ShopResponse: *toShopResponse(detail.Shop),
		Posts:        toPostResponses(detail.Posts),
	})
}

// GetByID returns a single shop
func (h *ShopHandler) GetByID(c echo.Context) error {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid shop ID")
	}

	shop, err := h.shopUC.GetByID(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toShopResponse(shop))
}
