package impl

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type shopServiceFixture struct {
	service  usecase.ShopUsecase
	shopRepo *mockRepo.MockShopRepository
	postRepo *mockRepo.MockPostRepository
}

func createTestShopService(t *testing.T) shopServiceFixture {
	t.Helper()

	fx := shopServiceFixture{
		shopRepo: mockRepo.NewMockShopRepository(t),
		postRepo: mockRepo.NewMockPostRepository(t),
	}

	fx.service = NewShopService(ShopServiceParams{
		ShopRepo: fx.shopRepo,
		PostRepo: fx.postRepo,
		Config:   newTestConfig(),
		Logger:   newDiscardLogger(),
	})

	return fx
}

func TestShopService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("vendor", func(t *testing.T) {
		fx := createTestShopService(t)
		vendor := newRequester(entity.RoleVendor, false)

		fx.shopRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(s *entity.Shop) bool {
				return s.Slug == "corner-cafe" && s.OwnerID == vendor.ID
			})).
			Return(nil)

		shop, err := fx.service.Create(ctx, vendor, usecase.CreateShopInput{Name: "Corner Café", Slug: "Corner Cafe"})

		require.NoError(t, err)
		assert.Equal(t, "corner-cafe", shop.Slug)
	})

	t.Run("plain user", func(t *testing.T) {
		fx := createTestShopService(t)

		_, err := fx.service.Create(ctx, newRequester(entity.RoleUser, true), usecase.CreateShopInput{Name: "Corner"})

		assert.Equal(t, domainerrors.KindForbidden, domainerrors.KindOf(err))
	})

	t.Run("duplicate slug", func(t *testing.T) {
		fx := createTestShopService(t)
		fx.shopRepo.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.ErrShopSlugExists)

		_, err := fx.service.Create(ctx, newRequester(entity.RoleAdmin, false), usecase.CreateShopInput{Name: "Corner"})

		assert.Equal(t, domainerrors.KindConflict, domainerrors.KindOf(err))
	})
}

func TestShopService_List_ClampsPage(t *testing.T) {
	tests := []struct {
		name   string
		input  usecase.ShopListInput
		params repository.ShopListParams
	}{
		{
			name:   "defaults",
			input:  usecase.ShopListInput{},
			params: repository.ShopListParams{Limit: 12, Offset: 0},
		},
		{
			name:   "limit above max",
			input:  usecase.ShopListInput{Q: "cafe", Page: 3, Limit: 500},
			params: repository.ShopListParams{Q: "cafe", Limit: 50, Offset: 100},
		},
		{
			name:   "negative limit",
			input:  usecase.ShopListInput{Page: -2, Limit: -1},
			params: repository.ShopListParams{Limit: 1, Offset: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestShopService(t)
			ctx := context.Background()

			fx.shopRepo.EXPECT().List(ctx, tt.params).Return([]*entity.Shop{}, int64(7), nil)

			out, err := fx.service.List(ctx, tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.params.Limit, out.Meta.Limit)
			assert.Equal(t, int64(7), out.Meta.Total)
		})
	}
}

func TestShopService_GetBySlug_WithApprovedPosts(t *testing.T) {
	fx := createTestShopService(t)
	ctx := context.Background()
	shop := &entity.Shop{ID: uuid.New(), Slug: "corner-cafe"}
	posts := []*entity.Post{approvedPost(uuid.New())}

	fx.shopRepo.EXPECT().FindBySlug(ctx, "corner-cafe").Return(shop, nil)
	fx.postRepo.EXPECT().ListApprovedByShop(ctx, shop.ID).Return(posts, nil)

	got, err := fx.service.GetBySlug(ctx, "corner-cafe")

	require.NoError(t, err)
	assert.Equal(t, shop, got.Shop)
	assert.Equal(t, posts, got.Posts)
}

func TestShopService_GetByID_NotFound(t *testing.T) {
	fx := createTestShopService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.shopRepo.EXPECT().FindByID(ctx, id).Return(nil, domainerrors.ErrShopNotFound)

	_, err := fx.service.GetByID(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)
}

func TestShopService_MyShops(t *testing.T) {
	fx := createTestShopService(t)
	ctx := context.Background()
	vendor := newRequester(entity.RoleVendor, false)
	shops := []*entity.Shop{{ID: uuid.New(), OwnerID: vendor.ID}}

	fx.shopRepo.EXPECT().ListByOwner(ctx, vendor.ID).Return(shops, nil)

	got, err := fx.service.MyShops(ctx, vendor)

	require.NoError(t, err)
	assert.Equal(t, shops, got)

	_, err = fx.service.MyShops(ctx, nil)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}
