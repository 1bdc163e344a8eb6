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

// CategoryHandlerParams holds dependencies for CategoryHandler, injected by Fx.
type CategoryHandlerParams struct {
	fx.In

	CategoryUC usecase.CategoryUsecase
	Logger     *slog.Logger
}

// CategoryHandler holds dependencies for category handlers
type CategoryHandler struct {
	categoryUC usecase.CategoryUsecase
	logger     *slog.Logger
}

// NewCategoryHandler is the constructor for CategoryHandler
func NewCategoryHandler(params CategoryHandlerParams) *CategoryHandler {
	return &CategoryHandler{
		categoryUC: params.CategoryUC,
		logger:     params.Logger,
	}
}

// CreateCategoryRequest represents the request body for creating a category.
// An empty slug is derived from the name.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required"`
	Slug string `json:"slug" validate:"omitempty,max=120"`
}

// UpdateCategoryRequest represents a partial category update
type UpdateCategoryRequest struct {
	Name string `json:"name" validate:"omitempty,max=120"`
	Slug string `json:"slug" validate:"omitempty,max=120"`
}

// List returns all categories ordered by name
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.categoryUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCategoryResponses(categories))
}

// Create handles category creation
func (h *CategoryHandler) Create(c echo.Context) error {
	var req CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	category, err := h.categoryUC.Create(c.Request().Context(), middleware.GetRequester(c), usecase.CategoryInput{
		Name: req.Name,
		Slug: req.Slug,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toCategoryResponse(category))
}

// Update handles partial category updates
func (h *CategoryHandler) Update(c echo.Context) error {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid category ID")
	}

	var req UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	category, err := h.categoryUC.Update(c.Request().Context(), middleware.GetRequester(c), id, usecase.CategoryInput{
		Name: req.Name,
		Slug: req.Slug,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCategoryResponse(category))
}

// Delete handles category deletion
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid category ID")
	}

	if err := h.categoryUC.Delete(c.Request().Context(), middleware.GetRequester(c), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil)
}
