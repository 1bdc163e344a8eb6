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

type commentServiceFixture struct {
	service     usecase.CommentUsecase
	postRepo    *mockRepo.MockPostRepository
	commentRepo *mockRepo.MockCommentRepository
}

func createTestCommentService(t *testing.T) commentServiceFixture {
	t.Helper()

	fx := commentServiceFixture{
		postRepo:    mockRepo.NewMockPostRepository(t),
		commentRepo: mockRepo.NewMockCommentRepository(t),
	}

	fx.service = NewCommentService(CommentServiceParams{
		PostRepo:    fx.postRepo,
		CommentRepo: fx.commentRepo,
		Logger:      newDiscardLogger(),
	})

	return fx
}

func TestCommentService_Create_Success(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()
	requester := newRequester(entity.RoleUser, false)
	post := approvedPost(uuid.New())

	fx.postRepo.EXPECT().FindByID(ctx, post.ID).Return(post, nil)
	fx.commentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Comment")).
		Run(func(ctx context.Context, comment *entity.Comment) {
			comment.ID = uuid.New()
		}).
		Return(nil)

	comment, err := fx.service.Create(ctx, requester, post.ID, usecase.CreateCommentInput{Content: "great", Rating: 5})

	require.NoError(t, err)
	assert.Equal(t, requester.ID, comment.UserID)
	assert.Equal(t, post.ID, comment.PostID)
	assert.Equal(t, 5, comment.Rating)
}

func TestCommentService_Create_RatingOutOfRange(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()
	post := approvedPost(uuid.New())

	fx.postRepo.EXPECT().FindByID(ctx, post.ID).Return(post, nil)

	_, err := fx.service.Create(ctx, newRequester(entity.RoleUser, false), post.ID, usecase.CreateCommentInput{Content: "x", Rating: 6})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidRating)
	assert.Equal(t, domainerrors.KindInvalidArgument, domainerrors.KindOf(err))
}

func TestCommentService_Create_UnapprovedPost(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()
	post := approvedPost(uuid.New())
	post.Status = entity.PostStatusRejected

	fx.postRepo.EXPECT().FindByID(ctx, post.ID).Return(post, nil)

	_, err := fx.service.Create(ctx, newRequester(entity.RoleUser, false), post.ID, usecase.CreateCommentInput{Content: "x", Rating: 3})

	assert.ErrorIs(t, err, domainerrors.ErrCommentNotAllowed)
}

func TestCommentService_List(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()
	postID := uuid.New()
	comments := []*entity.Comment{{ID: uuid.New(), PostID: postID, Rating: 4}}

	fx.commentRepo.EXPECT().ListByPost(ctx, postID).Return(comments, nil)

	got, err := fx.service.List(ctx, postID)

	require.NoError(t, err)
	assert.Equal(t, comments, got)
}

func TestCommentService_Delete(t *testing.T) {
	ctx := context.Background()
	postID, commentID := uuid.New(), uuid.New()

	t.Run("admin", func(t *testing.T) {
		fx := createTestCommentService(t)
		fx.commentRepo.EXPECT().Delete(ctx, postID, commentID).Return(nil)

		require.NoError(t, fx.service.Delete(ctx, newRequester(entity.RoleAdmin, false), postID, commentID))
	})

	t.Run("non admin", func(t *testing.T) {
		fx := createTestCommentService(t)

		err := fx.service.Delete(ctx, newRequester(entity.RoleVendor, true), postID, commentID)

		assert.Equal(t, domainerrors.KindForbidden, domainerrors.KindOf(err))
	})
}
