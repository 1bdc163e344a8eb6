package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/moderation"
	"marketplace/internal/domain/query"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PostHandlerParams holds dependencies for PostHandler, injected by Fx.
type PostHandlerParams struct {
	fx.In

	PostUC usecase.PostUsecase
	Logger *slog.Logger
}

// PostHandler serves the post feed and moderation endpoints.
type PostHandler struct {
	postUC usecase.PostUsecase
	logger *slog.Logger
}

// NewPostHandler is the constructor for PostHandler
func NewPostHandler(params PostHandlerParams) *PostHandler {
	return &PostHandler{
		postUC: params.PostUC,
		logger: params.Logger,
	}
}

// CreatePostRequest represents the request body for submitting a post
type CreatePostRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Location    string  `json:"location" validate:"required"`
	ImageURL    string  `json:"imageUrl" validate:"required,url"`
	CategoryID  string  `json:"categoryId" validate:"required,uuid"`
	ShopID      *string `json:"shopId" validate:"omitempty,uuid"`
	PriceMin    *int    `json:"priceMin" validate:"omitempty,min=0"`
	PriceMax    *int    `json:"priceMax" validate:"omitempty,min=0"`
}

// ApprovePostRequest optionally sets the premium flag while approving
type ApprovePostRequest struct {
	IsPremium *bool `json:"isPremium"`
}

// RejectPostRequest carries the mandatory reject reason
type RejectPostRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// Create submits a post for review
func (h *PostHandler) Create(c echo.Context) error {
	var req CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	input := usecase.CreatePostInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
		PriceMin:    req.PriceMin,
		PriceMax:    req.PriceMax,
		CategoryID:  uuid.MustParse(req.CategoryID),
	}
	if req.ShopID != nil {
		shopID := uuid.MustParse(*req.ShopID)
		input.ShopID = &shopID
	}

	post, err := h.postUC.Create(c.Request().Context(), middleware.GetRequester(c), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toPostResponse(post))
}

// List returns one filtered and ranked page of the posts visible to the requester
func (h *PostHandler) List(c echo.Context) error {
	params, err := parsePostQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", err.Error())
	}

	output, err := h.postUC.List(c.Request().Context(), middleware.GetRequester(c), params)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithPage(c, toRankedPostResponses(output.Items), output.Meta)
}

// GetByID returns a single post with its signals
func (h *PostHandler) GetByID(c echo.Context) error {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid post ID")
	}

	post, err := h.postUC.GetByID(c.Request().Context(), middleware.GetRequester(c), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toRankedPostResponse(post))
}

// Approve publishes a post
func (h *PostHandler) Approve(c echo.Context) error {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid post ID")
	}

	var req ApprovePostRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid approve input")
	}

	post, err := h.postUC.Approve(c.Request().Context(), middleware.GetRequester(c), id, moderation.ApproveOptions{
		IsPremium: req.IsPremium,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPostResponse(post))
}

// Reject rejects a post with a reason
func (h *PostHandler) Reject(c echo.Context) error {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid post ID")
	}

	var req RejectPostRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reject input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	post, err := h.postUC.Reject(c.Request().Context(), middleware.GetRequester(c), id, req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPostResponse(post))
}

func parsePostQuery(c echo.Context) (query.Params, error) {
	params := query.Params{
		Q:            c.QueryParam("q"),
		CategorySlug: strings.TrimSpace(c.QueryParam("categorySlug")),
		OnlyPremium:  c.QueryParam("onlyPremium") == "true",
		Status:       c.QueryParam("status"),
		SortBy:       c.QueryParam("sortBy"),
		Order:        c.QueryParam("order"),
	}

	if raw := strings.TrimSpace(c.QueryParam("categoryId")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return query.Params{}, errInvalidQueryParam("categoryId")
		}
		params.CategoryID = &id
	}

	var err error
	if params.MinPrice, err = optionalIntQuery(c, "minPrice"); err != nil {
		return query.Params{}, errInvalidQueryParam("minPrice")
	}
	if params.MaxPrice, err = optionalIntQuery(c, "maxPrice"); err != nil {
		return query.Params{}, errInvalidQueryParam("maxPrice")
	}
	if params.Page, err = intQuery(c, "page"); err != nil {
		return query.Params{}, errInvalidQueryParam("page")
	}
	if params.Limit, err = intQuery(c, "limit"); err != nil {
		return query.Params{}, errInvalidQueryParam("limit")
	}

	return params, nil
}
