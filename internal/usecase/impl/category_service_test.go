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

type categoryServiceFixture struct {
	service      usecase.CategoryUsecase
	categoryRepo *mockRepo.MockCategoryRepository
}

func createTestCategoryService(t *testing.T) categoryServiceFixture {
	t.Helper()

	fx := categoryServiceFixture{
		categoryRepo: mockRepo.NewMockCategoryRepository(t),
	}

	fx.service = NewCategoryService(CategoryServiceParams{
		CategoryRepo: fx.categoryRepo,
		Logger:       newDiscardLogger(),
	})

	return fx
}

func TestCategoryService_Create_DerivesSlug(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	fx.categoryRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(c *entity.Category) bool {
			return c.Name == "  Hot Drinks!! " && c.Slug == "hot-drinks"
		})).
		Return(nil)

	category, err := fx.service.Create(ctx, newRequester(entity.RoleAdmin, false), usecase.CategoryInput{Name: "  Hot Drinks!! "})

	require.NoError(t, err)
	assert.Equal(t, "hot-drinks", category.Slug)
}

func TestCategoryService_Create_DuplicateSlug(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	fx.categoryRepo.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.ErrCategorySlugExists)

	_, err := fx.service.Create(ctx, newRequester(entity.RoleAdmin, false), usecase.CategoryInput{Name: "Drinks", Slug: "DRINKS"})

	assert.Equal(t, domainerrors.KindConflict, domainerrors.KindOf(err))
}

func TestCategoryService_Create_RequiresAdmin(t *testing.T) {
	fx := createTestCategoryService(t)

	_, err := fx.service.Create(context.Background(), newRequester(entity.RoleVendor, false), usecase.CategoryInput{Name: "Drinks"})

	assert.Equal(t, domainerrors.KindForbidden, domainerrors.KindOf(err))
}

func TestCategoryService_Update_KeepsEmptyFields(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.categoryRepo.EXPECT().FindByID(ctx, id).Return(&entity.Category{ID: id, Name: "Drinks", Slug: "drinks"}, nil)
	fx.categoryRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(c *entity.Category) bool {
			return c.Name == "Drinks" && c.Slug == "cold-drinks"
		})).
		Return(nil)

	category, err := fx.service.Update(ctx, newRequester(entity.RoleAdmin, false), id, usecase.CategoryInput{Slug: "Cold Drinks"})

	require.NoError(t, err)
	assert.Equal(t, "cold-drinks", category.Slug)
}

func TestCategoryService_ListAndDelete(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	id := uuid.New()
	categories := []*entity.Category{{ID: id, Name: "Drinks", Slug: "drinks"}}

	fx.categoryRepo.EXPECT().List(ctx).Return(categories, nil)
	fx.categoryRepo.EXPECT().Delete(ctx, id).Return(nil)

	got, err := fx.service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, categories, got)

	require.NoError(t, fx.service.Delete(ctx, newRequester(entity.RoleAdmin, false), id))
}
