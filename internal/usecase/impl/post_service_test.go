package impl

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/moderation"
	"marketplace/internal/domain/query"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type postServiceFixture struct {
	service      usecase.PostUsecase
	txManager    *mockRepo.MockTransactionManager
	postRepo     *mockRepo.MockPostRepository
	categoryRepo *mockRepo.MockCategoryRepository
	publisher    *mockSvc.MockEventPublisher
	metrics      *mockSvc.MockMetricsRecorder
}

func createTestPostService(t *testing.T) postServiceFixture {
	t.Helper()

	fx := postServiceFixture{
		txManager:    mockRepo.NewMockTransactionManager(t),
		postRepo:     mockRepo.NewMockPostRepository(t),
		categoryRepo: mockRepo.NewMockCategoryRepository(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
		metrics:      mockSvc.NewMockMetricsRecorder(t),
	}

	fx.service = NewPostService(PostServiceParams{
		TxManager:    fx.txManager,
		PostRepo:     fx.postRepo,
		CategoryRepo: fx.categoryRepo,
		Publisher:    fx.publisher,
		Metrics:      fx.metrics,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return fx
}

// expectTx runs the transaction callback against a fresh factory prepared by setup.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager, setup func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		})
}

func approvedPost(authorID uuid.UUID) *entity.Post {
	return &entity.Post{
		ID:       uuid.New(),
		AuthorID: authorID,
		Title:    "Iced latte",
		Status:   entity.PostStatusApproved,
	}
}

func TestPostService_Create_Success(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()
	requester := newRequester(entity.RoleVendor, false)
	shopID := uuid.New()
	categoryID := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		categoryRepo := mockRepo.NewMockCategoryRepository(t)
		shopRepo := mockRepo.NewMockShopRepository(t)
		postRepo := mockRepo.NewMockPostRepository(t)

		factory.EXPECT().NewCategoryRepository().Return(categoryRepo)
		factory.EXPECT().NewShopRepository().Return(shopRepo)
		factory.EXPECT().NewPostRepository().Return(postRepo)

		categoryRepo.EXPECT().FindByID(ctx, categoryID).Return(&entity.Category{ID: categoryID, Name: "Drinks", Slug: "drinks"}, nil)
		shopRepo.EXPECT().FindByID(ctx, shopID).Return(&entity.Shop{ID: shopID, OwnerID: requester.ID}, nil)
		postRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Post")).
			Run(func(ctx context.Context, post *entity.Post) {
				post.ID = uuid.New()
			}).
			Return(nil)
	})

	post, err := fx.service.Create(ctx, requester, usecase.CreatePostInput{
		Title:      "Iced latte",
		CategoryID: categoryID,
		ShopID:     &shopID,
		PriceMin:   intPtr(3),
		PriceMax:   intPtr(5),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PostStatusPending, post.Status)
	assert.Equal(t, requester.ID, post.AuthorID)
	assert.Equal(t, "drinks", post.Category.Slug)
	assert.NotEqual(t, uuid.Nil, post.ID)
}

func TestPostService_Create_ForeignShop(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()
	requester := newRequester(entity.RoleVendor, false)
	shopID := uuid.New()
	categoryID := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		categoryRepo := mockRepo.NewMockCategoryRepository(t)
		shopRepo := mockRepo.NewMockShopRepository(t)

		factory.EXPECT().NewCategoryRepository().Return(categoryRepo)
		factory.EXPECT().NewShopRepository().Return(shopRepo)

		categoryRepo.EXPECT().FindByID(ctx, categoryID).Return(&entity.Category{ID: categoryID}, nil)
		shopRepo.EXPECT().FindByID(ctx, shopID).Return(&entity.Shop{ID: shopID, OwnerID: uuid.New()}, nil)
	})

	post, err := fx.service.Create(ctx, requester, usecase.CreatePostInput{CategoryID: categoryID, ShopID: &shopID})

	require.Error(t, err)
	assert.Nil(t, post)
	assert.ErrorIs(t, err, domainerrors.ErrShopOwnership)
	assert.Equal(t, domainerrors.KindForbidden, domainerrors.KindOf(err))
}

func TestPostService_Create_MissingCategory(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()
	categoryID := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		categoryRepo := mockRepo.NewMockCategoryRepository(t)
		factory.EXPECT().NewCategoryRepository().Return(categoryRepo)
		categoryRepo.EXPECT().FindByID(ctx, categoryID).Return(nil, domainerrors.ErrCategoryNotFound)
	})

	_, err := fx.service.Create(ctx, newRequester(entity.RoleUser, false), usecase.CreatePostInput{CategoryID: categoryID})

	require.Error(t, err)
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
}

func TestPostService_Create_InvalidInput(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	_, err := fx.service.Create(ctx, nil, usecase.CreatePostInput{})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	_, err = fx.service.Create(ctx, newRequester(entity.RoleUser, false), usecase.CreatePostInput{
		PriceMin: intPtr(10),
		PriceMax: intPtr(5),
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPriceRange)
}

func TestPostService_GetByID(t *testing.T) {
	author := newRequester(entity.RoleUser, false)

	tests := []struct {
		name      string
		requester *entity.Requester
		post      func() *entity.Post
		wantErr   error
	}{
		{
			name:      "anonymous reads approved post",
			requester: nil,
			post:      func() *entity.Post { return approvedPost(author.ID) },
		},
		{
			name:      "premium post hidden from free user",
			requester: newRequester(entity.RoleUser, false),
			post: func() *entity.Post {
				p := approvedPost(author.ID)
				p.IsPremium = true

				return p
			},
			wantErr: domainerrors.ErrPremiumRequired,
		},
		{
			name:      "pending post hidden from stranger",
			requester: newRequester(entity.RoleUser, true),
			post: func() *entity.Post {
				p := approvedPost(author.ID)
				p.Status = entity.PostStatusPending

				return p
			},
			wantErr: domainerrors.ErrPostNotAvailable,
		},
		{
			name:      "author reads own pending post",
			requester: author,
			post: func() *entity.Post {
				p := approvedPost(author.ID)
				p.Status = entity.PostStatusPending

				return p
			},
		},
		{
			name:      "admin reads rejected premium post",
			requester: newRequester(entity.RoleAdmin, false),
			post: func() *entity.Post {
				p := approvedPost(author.ID)
				p.Status = entity.PostStatusRejected
				p.IsPremium = true

				return p
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPostService(t)
			ctx := context.Background()
			post := tt.post()

			fx.postRepo.EXPECT().FindByID(ctx, post.ID).Return(post, nil)
			if tt.wantErr == nil {
				fx.postRepo.EXPECT().
					AggregateSignals(ctx, []uuid.UUID{post.ID}).
					Return(map[uuid.UUID]entity.PostSignals{post.ID: {AvgRating: 4.5, Score: 2, CommentCount: 2, VoteCount: 2}}, nil)
			}

			got, err := fx.service.GetByID(ctx, tt.requester, post.ID)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, domainerrors.KindForbidden, domainerrors.KindOf(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, post.ID, got.ID)
			assert.InDelta(t, 4.5, got.AvgRating, 0.001)
			assert.Equal(t, 2, got.Score)
		})
	}
}

func TestPostService_GetByID_NotFound(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.postRepo.EXPECT().FindByID(ctx, id).Return(nil, domainerrors.ErrPostNotFound)

	_, err := fx.service.GetByID(ctx, nil, id)

	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
}

func TestPostService_List_RanksPopularWithinPage(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	a, b, c := approvedPost(uuid.New()), approvedPost(uuid.New()), approvedPost(uuid.New())

	fx.postRepo.EXPECT().
		FindPage(ctx, mock.MatchedBy(func(plan *query.FilterPlan) bool {
			return assert.ObjectsAreEqual([]query.Clause{
				query.StatusClause{Status: entity.PostStatusApproved},
				query.PremiumClause{IsPremium: false},
			}, plan.Clauses) && plan.Pagination == query.Pagination{Page: 1, Limit: 10, Offset: 0}
		})).
		Return([]*entity.Post{a, b, c}, int64(3), nil)
	fx.postRepo.EXPECT().
		AggregateSignals(ctx, []uuid.UUID{a.ID, b.ID, c.ID}).
		Return(map[uuid.UUID]entity.PostSignals{
			a.ID: {Score: -1, VoteCount: 1},
			b.ID: {Score: 3, VoteCount: 3},
		}, nil)

	out, err := fx.service.List(ctx, nil, query.Params{SortBy: "popular"})

	require.NoError(t, err)
	assert.Equal(t, entity.PageMeta{Page: 1, Limit: 10, Total: 3}, out.Meta)
	require.Len(t, out.Items, 3)
	assert.Equal(t, []uuid.UUID{b.ID, c.ID, a.ID}, []uuid.UUID{out.Items[0].ID, out.Items[1].ID, out.Items[2].ID})
	assert.Equal(t, []int{3, 0, -1}, []int{out.Items[0].Score, out.Items[1].Score, out.Items[2].Score})
}

func TestPostService_List_UnknownCategorySlugSkipsAggregation(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	fx.categoryRepo.EXPECT().FindBySlug(ctx, "nope").Return(nil, domainerrors.ErrCategoryNotFound)
	fx.postRepo.EXPECT().
		FindPage(ctx, mock.MatchedBy(func(plan *query.FilterPlan) bool { return plan.MatchesNothing() })).
		Return([]*entity.Post{}, int64(0), nil)

	out, err := fx.service.List(ctx, newRequester(entity.RoleAdmin, false), query.Params{CategorySlug: "nope"})

	require.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.Equal(t, int64(0), out.Meta.Total)
}

func TestPostService_List_InvalidQuery(t *testing.T) {
	fx := createTestPostService(t)

	_, err := fx.service.List(context.Background(), nil, query.Params{MinPrice: intPtr(20), MaxPrice: intPtr(10)})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidPriceRange)
	assert.Equal(t, domainerrors.KindInvalidArgument, domainerrors.KindOf(err))
}

func TestPostService_Approve_PublishesEvent(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()
	admin := newRequester(entity.RoleAdmin, false)
	id := uuid.New()

	updated := &entity.Post{ID: id, Status: entity.PostStatusApproved, IsPremium: true}
	fx.postRepo.EXPECT().
		ApplyModeration(ctx, id, moderation.Decision{Status: entity.PostStatusApproved, IsPremium: boolPtr(true)}).
		Return(updated, nil)
	fx.metrics.EXPECT().ModerationApplied("APPROVED").Return()
	fx.publisher.EXPECT().
		PublishModerationEvent(ctx, mock.MatchedBy(func(event *service.ModerationEvent) bool {
			return event.PostID == id.String() && event.Status == "APPROVED" && event.IsPremium && event.ActorID == admin.ID.String()
		})).
		Return(nil)

	post, err := fx.service.Approve(ctx, admin, id, moderation.ApproveOptions{IsPremium: boolPtr(true)})

	require.NoError(t, err)
	assert.Equal(t, updated, post)
}

func TestPostService_Reject_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()
	id := uuid.New()
	reason := "duplicate listing"

	updated := &entity.Post{ID: id, Status: entity.PostStatusRejected, RejectReason: &reason}
	fx.postRepo.EXPECT().ApplyModeration(ctx, id, mock.AnythingOfType("moderation.Decision")).Return(updated, nil)
	fx.metrics.EXPECT().ModerationApplied("REJECTED").Return()
	fx.publisher.EXPECT().PublishModerationEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	post, err := fx.service.Reject(ctx, newRequester(entity.RoleAdmin, false), id, reason)

	require.NoError(t, err)
	assert.Equal(t, entity.PostStatusRejected, post.Status)
}

func TestPostService_Moderation_Denied(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()
	id := uuid.New()

	_, err := fx.service.Approve(ctx, nil, id, moderation.ApproveOptions{})
	assert.Equal(t, domainerrors.KindUnauthorized, domainerrors.KindOf(err))

	_, err = fx.service.Approve(ctx, newRequester(entity.RoleVendor, true), id, moderation.ApproveOptions{})
	assert.Equal(t, domainerrors.KindForbidden, domainerrors.KindOf(err))

	_, err = fx.service.Reject(ctx, newRequester(entity.RoleAdmin, false), id, "   ")
	assert.ErrorIs(t, err, domainerrors.ErrRejectReasonRequired)
	assert.Equal(t, domainerrors.KindInvalidArgument, domainerrors.KindOf(err))
}

func TestPostService_Approve_NotFound(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.postRepo.EXPECT().ApplyModeration(ctx, id, mock.Anything).Return(nil, domainerrors.ErrPostNotFound)

	_, err := fx.service.Approve(ctx, newRequester(entity.RoleAdmin, false), id, moderation.ApproveOptions{})

	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
}
