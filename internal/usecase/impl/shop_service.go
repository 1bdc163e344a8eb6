package impl

import (
	"context"
	"log/slog"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/policy"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultShopLimit = 12
	maxShopLimit     = 50
)

// shopService implements the ShopUsecase interface.
type shopService struct {
	shopRepo     repository.ShopRepository
	postRepo     repository.PostRepository
	defaultLimit int
	maxLimit     int
	logger       *slog.Logger
}

// ShopServiceParams holds dependencies for ShopService, injected by Fx.
type ShopServiceParams struct {
	fx.In

	ShopRepo repository.ShopRepository
	PostRepo repository.PostRepository
	Config   *config.Config
	Logger   *slog.Logger
}

// NewShopService is the constructor for shopService.
func NewShopService(params ShopServiceParams) usecase.ShopUsecase {
	srv := &shopService{
		shopRepo:     params.ShopRepo,
		postRepo:     params.PostRepo,
		defaultLimit: defaultShopLimit,
		maxLimit:     maxShopLimit,
		logger:       params.Logger,
	}

	if params.Config != nil && params.Config.Listing != nil {
		if params.Config.Listing.MaxLimit > 0 {
			srv.maxLimit = params.Config.Listing.MaxLimit
		}
		if limit := params.Config.Listing.DefaultShopLimit; limit > 0 && limit <= srv.maxLimit {
			srv.defaultLimit = limit
		}
	}

	return srv
}

func (srv *shopService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create opens a shop owned by the requester.
func (srv *shopService) Create(ctx context.Context, requester *entity.Requester, input usecase.CreateShopInput) (*entity.Shop, error) {
	ent, err := requireAuthenticated(requester)
	if err != nil {
		return nil, err
	}
	if !policy.CanCreateShop(ent) {
		return nil, domainerrors.ErrForbidden.WrapMessage("vendor or admin role required")
	}

	source := input.Slug
	if source == "" {
		source = input.Name
	}
	slug := entity.Slugify(source)
	if slug == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("shop slug is empty")
	}

	shop := &entity.Shop{
		Name:        input.Name,
		Slug:        slug,
		Description: input.Description,
		OwnerID:     ent.UserID,
	}
	if err := srv.shopRepo.Create(ctx, shop); err != nil {
		return nil, errors.Wrap(err, "failed to create shop")
	}

	srv.log(ctx).Info("Shop created", slog.String("shopID", shop.ID.String()), slog.String("ownerID", ent.UserID.String()))

	return shop, nil
}

// List returns one page of shops, newest first.
func (srv *shopService) List(ctx context.Context, input usecase.ShopListInput) (*usecase.ShopListOutput, error) {
	page := max(input.Page, 1)
	limit := input.Limit
	if limit == 0 {
		limit = srv.defaultLimit
	}
	limit = min(max(limit, 1), srv.maxLimit)

	shops, total, err := srv.shopRepo.List(ctx, repository.ShopListParams{
		Q:      input.Q,
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shops")
	}

	return &usecase.ShopListOutput{
		Meta:  entity.PageMeta{Page: page, Limit: limit, Total: total},
		Items: shops,
	}, nil
}

// GetByID returns a shop.
func (srv *shopService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	shop, err := srv.shopRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find shop")
	}

	return shop, nil
}

// GetBySlug returns a shop with its approved posts.
func (srv *shopService) GetBySlug(ctx context.Context, slug string) (*entity.ShopWithPosts, error) {
	shop, err := srv.shopRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find shop")
	}

	posts, err := srv.postRepo.ListApprovedByShop(ctx, shop.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shop posts")
	}

	return &entity.ShopWithPosts{Shop: shop, Posts: posts}, nil
}

// MyShops returns the shops owned by the requester.
func (srv *shopService) MyShops(ctx context.Context, requester *entity.Requester) ([]*entity.Shop, error) {
	ent, err := requireAuthenticated(requester)
	if err != nil {
		return nil, err
	}

	shops, err := srv.shopRepo.ListByOwner(ctx, ent.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list owner shops")
	}

	return shops, nil
}
