package impl

import (
	"context"
	"log/slog"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for CategoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns all categories ordered by name.
func (srv *categoryService) List(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// Create adds a category. The slug is derived from the name unless given.
func (srv *categoryService) Create(ctx context.Context, requester *entity.Requester, input usecase.CategoryInput) (*entity.Category, error) {
	if _, err := requireModerator(requester); err != nil {
		return nil, err
	}

	source := input.Slug
	if source == "" {
		source = input.Name
	}
	slug := entity.Slugify(source)
	if slug == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("category slug is empty")
	}

	category := &entity.Category{Name: input.Name, Slug: slug}
	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	srv.log(ctx).Info("Category created", slog.String("categoryID", category.ID.String()), slog.String("slug", slug))

	return category, nil
}

// Update renames a category and/or changes its slug. Empty fields are kept.
func (srv *categoryService) Update(ctx context.Context, requester *entity.Requester, id uuid.UUID, input usecase.CategoryInput) (*entity.Category, error) {
	if _, err := requireModerator(requester); err != nil {
		return nil, err
	}

	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find category")
	}

	if input.Name != "" {
		category.Name = input.Name
	}
	if input.Slug != "" {
		slug := entity.Slugify(input.Slug)
		if slug == "" {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("category slug is empty")
		}
		category.Slug = slug
	}

	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to update category")
	}

	return category, nil
}

// Delete removes a category.
func (srv *categoryService) Delete(ctx context.Context, requester *entity.Requester, id uuid.UUID) error {
	if _, err := requireModerator(requester); err != nil {
		return err
	}

	if err := srv.categoryRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete category")
	}

	srv.log(ctx).Info("Category deleted", slog.String("categoryID", id.String()))

	return nil
}
