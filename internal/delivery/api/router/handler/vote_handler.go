package handler

import (
	"context"
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// VoteHandlerParams holds dependencies for VoteHandler, injected by Fx.
type VoteHandlerParams struct {
	fx.In

	VoteUC usecase.VoteUsecase
	Logger *slog.Logger
}

// VoteHandler serves the vote endpoints nested under a post.
type VoteHandler struct {
	voteUC usecase.VoteUsecase
	logger *slog.Logger
}

// NewVoteHandler is the constructor for VoteHandler
func NewVoteHandler(params VoteHandlerParams) *VoteHandler {
	return &VoteHandler{
		voteUC: params.VoteUC,
		logger: params.Logger,
	}
}

type voteFunc func(ctx context.Context, requester *entity.Requester, postID uuid.UUID) (*entity.Vote, error)

// Upvote sets the requester's vote on the post to +1
func (h *VoteHandler) Upvote(c echo.Context) error {
	return h.cast(c, h.voteUC.Upvote)
}

// Downvote sets the requester's vote on the post to -1
func (h *VoteHandler) Downvote(c echo.Context) error {
	return h.cast(c, h.voteUC.Downvote)
}

// Unvote removes the requester's vote on the post
func (h *VoteHandler) Unvote(c echo.Context) error {
	postID, ok := parseUUIDParam(c, "postId")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid post ID")
	}

	if err := h.voteUC.Unvote(c.Request().Context(), middleware.GetRequester(c), postID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"success": true})
}

func (h *VoteHandler) cast(c echo.Context, vote voteFunc) error {
	postID, ok := parseUUIDParam(c, "postId")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid post ID")
	}

	v, err := vote(c.Request().Context(), middleware.GetRequester(c), postID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toVoteResponse(v))
}
