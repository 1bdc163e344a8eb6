package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockRepo "marketplace/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewCachedCategoryRepository_NilCacheReturnsNext(t *testing.T) {
	next := mockRepo.NewMockCategoryRepository(t)

	repo := NewCachedCategoryRepository(next, nil, newDiscardLogger())

	assert.Same(t, next, repo)
}

func TestCachedCategoryRepository_FindBySlugReadsThrough(t *testing.T) {
	cache, mr := setupTestCache(t)
	next := mockRepo.NewMockCategoryRepository(t)
	repo := NewCachedCategoryRepository(next, cache, newDiscardLogger())
	ctx := context.Background()

	category := &entity.Category{ID: uuid.New(), Name: "Drinks", Slug: "drinks"}
	next.EXPECT().FindBySlug(ctx, "drinks").Return(category, nil).Once()

	first, err := repo.FindBySlug(ctx, "drinks")
	require.NoError(t, err)
	assert.Equal(t, category.ID, first.ID)
	assert.True(t, mr.Exists(categorySlugKey("drinks")))

	second, err := repo.FindBySlug(ctx, "drinks")
	require.NoError(t, err)
	assert.Equal(t, category.ID, second.ID)
	assert.Equal(t, "Drinks", second.Name)
}

func TestCachedCategoryRepository_FindBySlugNotFoundIsNotCached(t *testing.T) {
	cache, mr := setupTestCache(t)
	next := mockRepo.NewMockCategoryRepository(t)
	repo := NewCachedCategoryRepository(next, cache, newDiscardLogger())
	ctx := context.Background()

	next.EXPECT().FindBySlug(ctx, "nope").Return(nil, domainerrors.ErrCategoryNotFound).Twice()

	for range 2 {
		_, err := repo.FindBySlug(ctx, "nope")
		assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
	}
	assert.False(t, mr.Exists(categorySlugKey("nope")))
}

func TestCachedCategoryRepository_FindBySlugFallsBackWhenRedisDown(t *testing.T) {
	cache, mr := setupTestCache(t)
	next := mockRepo.NewMockCategoryRepository(t)
	repo := NewCachedCategoryRepository(next, cache, newDiscardLogger())
	ctx := context.Background()

	mr.Close()

	category := &entity.Category{ID: uuid.New(), Name: "Food", Slug: "food"}
	next.EXPECT().FindBySlug(ctx, "food").Return(category, nil).Once()

	got, err := repo.FindBySlug(ctx, "food")
	require.NoError(t, err)
	assert.Same(t, category, got)
}

func TestCachedCategoryRepository_UpdateInvalidatesOldAndNewSlug(t *testing.T) {
	cache, mr := setupTestCache(t)
	next := mockRepo.NewMockCategoryRepository(t)
	repo := NewCachedCategoryRepository(next, cache, newDiscardLogger())
	ctx := context.Background()

	id := uuid.New()
	require.NoError(t, cache.Set(ctx, categorySlugKey("old-slug"), entity.Category{ID: id, Slug: "old-slug"}))
	require.NoError(t, cache.Set(ctx, categorySlugKey("new-slug"), entity.Category{ID: uuid.New(), Slug: "new-slug"}))

	updated := &entity.Category{ID: id, Name: "New", Slug: "new-slug"}
	next.EXPECT().FindByID(ctx, id).Return(&entity.Category{ID: id, Slug: "old-slug"}, nil).Once()
	next.EXPECT().Update(ctx, updated).Return(nil).Once()

	require.NoError(t, repo.Update(ctx, updated))
	assert.False(t, mr.Exists(categorySlugKey("old-slug")))
	assert.False(t, mr.Exists(categorySlugKey("new-slug")))
}

func TestCachedCategoryRepository_UpdateFailureKeepsCache(t *testing.T) {
	cache, mr := setupTestCache(t)
	next := mockRepo.NewMockCategoryRepository(t)
	repo := NewCachedCategoryRepository(next, cache, newDiscardLogger())
	ctx := context.Background()

	id := uuid.New()
	require.NoError(t, cache.Set(ctx, categorySlugKey("drinks"), entity.Category{ID: id, Slug: "drinks"}))

	updated := &entity.Category{ID: id, Slug: "drinks-2"}
	next.EXPECT().FindByID(ctx, id).Return(&entity.Category{ID: id, Slug: "drinks"}, nil).Once()
	next.EXPECT().Update(ctx, updated).Return(domainerrors.ErrCategorySlugExists).Once()

	err := repo.Update(ctx, updated)
	assert.ErrorIs(t, err, domainerrors.ErrCategorySlugExists)
	assert.True(t, mr.Exists(categorySlugKey("drinks")))
}

func TestCachedCategoryRepository_DeleteInvalidatesSlug(t *testing.T) {
	cache, mr := setupTestCache(t)
	next := mockRepo.NewMockCategoryRepository(t)
	repo := NewCachedCategoryRepository(next, cache, newDiscardLogger())
	ctx := context.Background()

	id := uuid.New()
	require.NoError(t, cache.Set(ctx, categorySlugKey("drinks"), entity.Category{ID: id, Slug: "drinks"}))

	next.EXPECT().FindByID(ctx, id).Return(&entity.Category{ID: id, Slug: "drinks"}, nil).Once()
	next.EXPECT().Delete(ctx, id).Return(nil).Once()

	require.NoError(t, repo.Delete(ctx, id))
	assert.False(t, mr.Exists(categorySlugKey("drinks")))
}
