package handler

import (
	"net/http"
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockUsecase "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCommentHandler(t *testing.T) (*CommentHandler, *mockUsecase.MockCommentUsecase) {
	commentUC := mockUsecase.NewMockCommentUsecase(t)

	return NewCommentHandler(CommentHandlerParams{CommentUC: commentUC, Logger: newDiscardLogger()}), commentUC
}

func TestCommentHandler_CreateRejectsRatingOutOfRange(t *testing.T) {
	h, _ := newCommentHandler(t)
	postID := uuid.New()

	c, rec := newContext(newTestEcho(), requestSpec{
		method:    http.MethodPost,
		target:    "/api/v1/posts/" + postID.String() + "/comments",
		body:      `{"content":"great","rating":6}`,
		params:    map[string]string{"postId": postID.String()},
		requester: newRequester(entity.RoleUser),
	})

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeEnvelope(t, rec).Error.Code)
}

func TestCommentHandler_CreateOnPendingPost(t *testing.T) {
	h, commentUC := newCommentHandler(t)
	requester := newRequester(entity.RoleUser)
	postID := uuid.New()

	commentUC.EXPECT().Create(mock.Anything, requester, postID, usecase.CreateCommentInput{Content: "great", Rating: 5}).
		Return(nil, domainerrors.ErrCommentNotAllowed).Once()

	c, rec := newContext(newTestEcho(), requestSpec{
		method:    http.MethodPost,
		target:    "/api/v1/posts/" + postID.String() + "/comments",
		body:      `{"content":"great","rating":5}`,
		params:    map[string]string{"postId": postID.String()},
		requester: requester,
	})

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCommentHandler_ListIncludesAuthor(t *testing.T) {
	h, commentUC := newCommentHandler(t)
	postID := uuid.New()
	author := &entity.User{ID: uuid.New(), Name: "Rahim", Email: "rahim@example.com", PasswordHash: "secret-hash"}

	commentUC.EXPECT().List(mock.Anything, postID).Return([]*entity.Comment{{
		ID:        uuid.New(),
		PostID:    postID,
		UserID:    author.ID,
		Author:    author,
		Content:   "tasty",
		Rating:    4,
		CreatedAt: time.Now(),
	}}, nil).Once()

	c, rec := newContext(newTestEcho(), requestSpec{
		method: http.MethodGet,
		target: "/api/v1/posts/" + postID.String() + "/comments",
		params: map[string]string{"postId": postID.String()},
	})

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := string(decodeEnvelope(t, rec).Data)
	assert.Contains(t, body, `"name":"Rahim"`)
	assert.NotContains(t, body, "secret-hash")
	assert.NotContains(t, body, "rahim@example.com")
}

func TestCommentHandler_Delete(t *testing.T) {
	h, commentUC := newCommentHandler(t)
	admin := newRequester(entity.RoleAdmin)
	postID, commentID := uuid.New(), uuid.New()

	commentUC.EXPECT().Delete(mock.Anything, admin, postID, commentID).Return(nil).Once()

	c, rec := newContext(newTestEcho(), requestSpec{
		method:    http.MethodDelete,
		target:    "/api/v1/posts/" + postID.String() + "/comments/" + commentID.String(),
		params:    map[string]string{"postId": postID.String(), "commentId": commentID.String()},
		requester: admin,
	})

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
