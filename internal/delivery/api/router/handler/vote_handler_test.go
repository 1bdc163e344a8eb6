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

func newVoteHandler(t *testing.T) (*VoteHandler, *mockUsecase.MockVoteUsecase) {
	voteUC := mockUsecase.NewMockVoteUsecase(t)

	return NewVoteHandler(VoteHandlerParams{VoteUC: voteUC, Logger: newDiscardLogger()}), voteUC
}

func TestVoteHandler_UpvoteReturnsVote(t *testing.T) {
	h, voteUC := newVoteHandler(t)
	requester := newRequester(entity.RoleUser)
	postID := uuid.New()

	voteUC.EXPECT().Upvote(mock.Anything, requester, postID).Return(&entity.Vote{
		ID:     uuid.New(),
		UserID: requester.ID,
		PostID: postID,
		Value:  entity.VoteUp,
	}, nil).Once()

	c, rec := newContext(newTestEcho(), requestSpec{
		method:    http.MethodPost,
		target:    "/api/v1/posts/" + postID.String() + "/votes/upvote",
		params:    map[string]string{"postId": postID.String()},
		requester: requester,
	})

	require.NoError(t, h.Upvote(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"value":1`)
}

func TestVoteHandler_DownvoteOnPendingPostIsForbidden(t *testing.T) {
	h, voteUC := newVoteHandler(t)
	requester := newRequester(entity.RoleUser)
	postID := uuid.New()

	voteUC.EXPECT().Downvote(mock.Anything, requester, postID).Return(nil, domainerrors.ErrVotingNotAllowed).Once()

	c, rec := newContext(newTestEcho(), requestSpec{
		method:    http.MethodPost,
		target:    "/api/v1/posts/" + postID.String() + "/votes/downvote",
		params:    map[string]string{"postId": postID.String()},
		requester: requester,
	})

	require.NoError(t, h.Downvote(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "VOTING_NOT_ALLOWED", decodeEnvelope(t, rec).Error.Code)
}

func TestVoteHandler_UnvoteReportsSuccess(t *testing.T) {
	h, voteUC := newVoteHandler(t)
	requester := newRequester(entity.RoleUser)
	postID := uuid.New()

	voteUC.EXPECT().Unvote(mock.Anything, requester, postID).Return(nil).Once()

	c, rec := newContext(newTestEcho(), requestSpec{
		method:    http.MethodPost,
		target:    "/api/v1/posts/" + postID.String() + "/votes/unvote",
		params:    map[string]string{"postId": postID.String()},
		requester: requester,
	})

	require.NoError(t, h.Unvote(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, string(decodeEnvelope(t, rec).Data))
}

func TestVoteHandler_InvalidPostID(t *testing.T) {
	h, _ := newVoteHandler(t)

	c, rec := newContext(newTestEcho(), requestSpec{
		method:    http.MethodPost,
		target:    "/api/v1/posts/nope/votes/upvote",
		params:    map[string]string{"postId": "nope"},
		requester: newRequester(entity.RoleUser),
	})

	require.NoError(t, h.Upvote(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
