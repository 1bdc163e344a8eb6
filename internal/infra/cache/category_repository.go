package cache

import (
	"context"
	"log/slog"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"

	"github.com/google/uuid"
)

const categorySlugKeyPrefix = "category:slug:"

func categorySlugKey(slug string) string {
	return categorySlugKeyPrefix + slug
}

// cachedCategoryRepository serves slug lookups from redis and invalidates
// on writes. Cache failures are logged and fall through to the store.
type cachedCategoryRepository struct {
	repository.CategoryRepository

	cache  *Cache
	logger *slog.Logger
}

// NewCachedCategoryRepository decorates next with the slug cache. A nil
// cache returns next unchanged.
func NewCachedCategoryRepository(next repository.CategoryRepository, cache *Cache, logger *slog.Logger) repository.CategoryRepository {
	if cache == nil {
		return next
	}

	return &cachedCategoryRepository{
		CategoryRepository: next,
		cache:              cache,
		logger:             logger,
	}
}

// FindBySlug reads through the cache.
func (r *cachedCategoryRepository) FindBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	key := categorySlugKey(slug)

	var cached entity.Category
	found, err := r.cache.Get(ctx, key, &cached)
	if err != nil {
		r.logger.WarnContext(ctx, "Category cache read failed", slog.String("key", key), slog.Any("error", err))
	}
	if found {
		return &cached, nil
	}

	category, err := r.CategoryRepository.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, key, category); err != nil {
		r.logger.WarnContext(ctx, "Category cache write failed", slog.String("key", key), slog.Any("error", err))
	}

	return category, nil
}

// Update writes through and drops both the old and the new slug.
func (r *cachedCategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	keys := []string{categorySlugKey(category.Slug)}
	if existing, err := r.CategoryRepository.FindByID(ctx, category.ID); err == nil {
		keys = append(keys, categorySlugKey(existing.Slug))
	}

	if err := r.CategoryRepository.Update(ctx, category); err != nil {
		return err
	}

	r.invalidate(ctx, keys...)

	return nil
}

// Delete removes the category and its cached slug.
func (r *cachedCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var keys []string
	if existing, err := r.CategoryRepository.FindByID(ctx, id); err == nil {
		keys = append(keys, categorySlugKey(existing.Slug))
	}

	if err := r.CategoryRepository.Delete(ctx, id); err != nil {
		return err
	}

	r.invalidate(ctx, keys...)

	return nil
}

func (r *cachedCategoryRepository) invalidate(ctx context.Context, keys ...string) {
	if err := r.cache.Invalidate(ctx, keys...); err != nil {
		r.logger.WarnContext(ctx, "Category cache invalidation failed", slog.Any("keys", keys), slog.Any("error", err))
	}
}
