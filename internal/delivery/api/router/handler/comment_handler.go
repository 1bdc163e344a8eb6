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

// CommentHandlerParams holds dependencies for CommentHandler, injected by Fx.
type CommentHandlerParams struct {
	fx.In

	CommentUC usecase.CommentUsecase
	Logger    *slog.Logger
}

// CommentHandler serves the comment endpoints nested under a post.
type CommentHandler struct {
	commentUC usecase.CommentUsecase
	logger    *slog.Logger
}

// NewCommentHandler is the constructor for CommentHandler
func NewCommentHandler(params CommentHandlerParams) *CommentHandler {
	return &CommentHandler{
		commentUC: params.CommentUC,
		logger:    params.Logger,
	}
}

// CreateCommentRequest represents the request body for commenting on a post
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
}

// Create adds a rated comment to an approved post
func (h *CommentHandler) Create(c echo.Context) error {
	postID, ok := parseUUIDParam(c, "postId")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid post ID")
	}

	var req CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	comment, err := h.commentUC.Create(c.Request().Context(), middleware.GetRequester(c), postID, usecase.CreateCommentInput{
		Content: req.Content,
		Rating:  req.Rating,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toCommentResponse(comment))
}

// List returns the comments of a post, newest first
func (h *CommentHandler) List(c echo.Context) error {
	postID, ok := parseUUIDParam(c, "postId")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid post ID")
	}

	comments, err := h.commentUC.List(c.Request().Context(), postID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCommentResponses(comments))
}

// Delete removes a comment
func (h *CommentHandler) Delete(c echo.Context) error {
	postID, ok := parseUUIDParam(c, "postId")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid post ID")
	}
	commentID, ok := parseUUIDParam(c, "commentId")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid comment ID")
	}

	if err := h.commentUC.Delete(c.Request().Context(), middleware.GetRequester(c), postID, commentID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil)
}
