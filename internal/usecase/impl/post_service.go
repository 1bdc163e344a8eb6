// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/feed"
	"marketplace/internal/domain/moderation"
	"marketplace/internal/domain/policy"
	"marketplace/internal/domain/query"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// postService implements the PostUsecase interface.
type postService struct {
	txManager repository.TransactionManager
	postRepo  repository.PostRepository
	builder   *query.Builder
	publisher service.EventPublisher
	metrics   service.MetricsRecorder
	logger    *slog.Logger
}

// PostServiceParams holds dependencies for PostService, injected by Fx.
type PostServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	PostRepo     repository.PostRepository
	CategoryRepo repository.CategoryRepository
	Publisher    service.EventPublisher
	Metrics      service.MetricsRecorder
	Config       *config.Config
	Logger       *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	var defaultLimit, maxLimit int
	if params.Config != nil && params.Config.Listing != nil {
		defaultLimit = params.Config.Listing.DefaultPostLimit
		maxLimit = params.Config.Listing.MaxLimit
	}

	return &postService{
		txManager: params.TxManager,
		postRepo:  params.PostRepo,
		builder:   query.NewBuilder(params.CategoryRepo, defaultLimit, maxLimit),
		publisher: params.Publisher,
		metrics:   params.Metrics,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create checks the referenced category and shop and stores the post as PENDING.
func (srv *postService) Create(ctx context.Context, requester *entity.Requester, input usecase.CreatePostInput) (*entity.Post, error) {
	ent, err := requireAuthenticated(requester)
	if err != nil {
		return nil, err
	}

	if !entity.ValidPriceRange(input.PriceMin, input.PriceMax) {
		return nil, domainerrors.ErrInvalidPriceRange
	}

	post := &entity.Post{
		AuthorID:    ent.UserID,
		ShopID:      input.ShopID,
		CategoryID:  input.CategoryID,
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		ImageURL:    input.ImageURL,
		PriceMin:    input.PriceMin,
		PriceMax:    input.PriceMax,
		Status:      entity.PostStatusPending,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		category, err := repoFactory.NewCategoryRepository().FindByID(ctx, input.CategoryID)
		if err != nil {
			return errors.Wrap(err, "failed to find post category")
		}
		post.Category = category

		if input.ShopID != nil {
			shop, err := repoFactory.NewShopRepository().FindByID(ctx, *input.ShopID)
			if err != nil {
				return errors.Wrap(err, "failed to find post shop")
			}
			if !policy.CanAttachShop(ent, shop) {
				return domainerrors.ErrShopOwnership
			}
		}

		if err := repoFactory.NewPostRepository().Create(ctx, post); err != nil {
			return errors.Wrap(err, "failed to create post")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute post creation transaction")
	}

	srv.log(ctx).Info("Post submitted", slog.String("postID", post.ID.String()), slog.String("authorID", ent.UserID.String()))

	return post, nil
}

// GetByID returns a single post the requester is allowed to read, with its signals.
func (srv *postService) GetByID(ctx context.Context, requester *entity.Requester, id uuid.UUID) (*feed.RankedPost, error) {
	post, err := srv.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find post")
	}

	switch policy.ReadDenial(entity.NewEntitlement(requester), post) {
	case policy.DenialPremium:
		return nil, domainerrors.ErrPremiumRequired
	case policy.DenialNotApproved:
		return nil, domainerrors.ErrPostNotAvailable
	case policy.DenialNone:
	}

	signals, err := srv.postRepo.AggregateSignals(ctx, []uuid.UUID{post.ID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate post signals")
	}

	return feed.Enrich([]*entity.Post{post}, signals)[0], nil
}

// List builds the filter plan for the requester, fetches one page and ranks it.
func (srv *postService) List(ctx context.Context, requester *entity.Requester, params query.Params) (*usecase.PostListOutput, error) {
	plan, err := srv.builder.Build(ctx, entity.NewEntitlement(requester), params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build post filter")
	}

	posts, total, err := srv.postRepo.FindPage(ctx, plan)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch post page")
	}

	signals := map[uuid.UUID]entity.PostSignals{}
	if len(posts) > 0 {
		signals, err = srv.postRepo.AggregateSignals(ctx, feed.PostIDs(posts))
		if err != nil {
			return nil, errors.Wrap(err, "failed to aggregate post signals")
		}
	}

	return &usecase.PostListOutput{
		Meta: entity.PageMeta{
			Page:  plan.Pagination.Page,
			Limit: plan.Pagination.Limit,
			Total: total,
		},
		Items: feed.Rank(feed.Enrich(posts, signals), plan.SortBy, plan.Order),
	}, nil
}

// Approve publishes a post, optionally setting its premium flag.
func (srv *postService) Approve(ctx context.Context, requester *entity.Requester, id uuid.UUID, opts moderation.ApproveOptions) (*entity.Post, error) {
	ent, err := requireModerator(requester)
	if err != nil {
		return nil, err
	}

	return srv.applyDecision(ctx, ent, id, moderation.Approve(opts))
}

// Reject hides a post with a reason and drops its premium flag.
func (srv *postService) Reject(ctx context.Context, requester *entity.Requester, id uuid.UUID, reason string) (*entity.Post, error) {
	ent, err := requireModerator(requester)
	if err != nil {
		return nil, err
	}

	decision, err := moderation.Reject(reason)
	if err != nil {
		return nil, err
	}

	return srv.applyDecision(ctx, ent, id, decision)
}

func (srv *postService) applyDecision(ctx context.Context, ent entity.Entitlement, id uuid.UUID, decision moderation.Decision) (*entity.Post, error) {
	post, err := srv.postRepo.ApplyModeration(ctx, id, decision)
	if err != nil {
		return nil, errors.Wrap(err, "failed to apply moderation decision")
	}

	srv.metrics.ModerationApplied(string(post.Status))
	srv.log(ctx).Info("Post moderated",
		slog.String("postID", post.ID.String()),
		slog.String("status", string(post.Status)),
		slog.Bool("isPremium", post.IsPremium),
		slog.String("actorID", ent.UserID.String()),
	)

	event := &service.ModerationEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		PostID:       post.ID.String(),
		Status:       string(post.Status),
		IsPremium:    post.IsPremium,
		RejectReason: post.RejectReason,
		ActorID:      ent.UserID.String(),
		OccurredAt:   time.Now().UTC(),
	}
	if err := srv.publisher.PublishModerationEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish moderation event", slog.String("postID", post.ID.String()), slog.Any("error", err))
	}

	return post, nil
}
