package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/moderation"
	"marketplace/internal/domain/query"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// postRepository implements the repository.PostRepository interface.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{
		db: db,
	}
}

// Create persists a new post.
func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("post references a missing category, shop or author")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidPriceRange.WrapMessage("post violates a check constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create post")
	}

	post.ID = postM.ID
	post.CreatedAt = postM.CreatedAt
	post.UpdatedAt = postM.UpdatedAt

	return nil
}

// FindByID retrieves a post with its category.
func (repo *postRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	var postM model.PostModel

	if err := repo.db.WithContext(ctx).
		Preload("Category").
		Where("id = ?", id).
		First(&postM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrPostNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find post")
	}

	return toPostDomain(&postM), nil
}

// FindPage runs the filtered page fetch and the filtered count.
func (repo *postRepository) FindPage(ctx context.Context, plan *query.FilterPlan) ([]*entity.Post, int64, error) {
	if plan.MatchesNothing() {
		return []*entity.Post{}, 0, nil
	}

	base := applyFilterPlan(repo.db.WithContext(ctx).Model(&model.PostModel{}), plan)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count posts")
	}

	var postMs []*model.PostModel
	if err := base.Session(&gorm.Session{}).
		Preload("Category").
		Order(createdAtOrder(plan)).
		Limit(plan.Pagination.Limit).
		Offset(plan.Pagination.Offset).
		Find(&postMs).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list posts")
	}

	return toPostDomains(postMs), total, nil
}

// ListApprovedByShop returns the approved posts of a shop, newest first.
func (repo *postRepository) ListApprovedByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.Post, error) {
	var postMs []*model.PostModel

	if err := repo.db.WithContext(ctx).
		Preload("Category").
		Where("shop_id = ? AND status = ?", shopID, string(entity.PostStatusApproved)).
		Order("created_at DESC").
		Find(&postMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list shop posts")
	}

	return toPostDomains(postMs), nil
}

// AggregateSignals runs one grouped query over comments and one over votes.
func (repo *postRepository) AggregateSignals(ctx context.Context, postIDs []uuid.UUID) (map[uuid.UUID]entity.PostSignals, error) {
	signals := make(map[uuid.UUID]entity.PostSignals, len(postIDs))
	if len(postIDs) == 0 {
		return signals, nil
	}

	var ratings []model.PostSignalRow
	if err := repo.db.WithContext(ctx).
		Model(&model.CommentModel{}).
		Select("post_id, AVG(rating) AS avg, COUNT(*) AS count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&ratings).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to aggregate ratings")
	}

	var votes []model.PostSignalRow
	if err := repo.db.WithContext(ctx).
		Model(&model.VoteModel{}).
		Select("post_id, SUM(value) AS sum, COUNT(*) AS count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&votes).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to aggregate votes")
	}

	return mergeSignals(signals, ratings, votes), nil
}

func mergeSignals(signals map[uuid.UUID]entity.PostSignals, ratings, votes []model.PostSignalRow) map[uuid.UUID]entity.PostSignals {
	for _, r := range ratings {
		s := signals[r.PostID]
		s.AvgRating = r.Avg
		s.CommentCount = r.Count
		signals[r.PostID] = s
	}
	for _, v := range votes {
		s := signals[v.PostID]
		s.Score = v.Sum
		s.VoteCount = v.Count
		signals[v.PostID] = s
	}

	return signals
}

// ApplyModeration writes the decision in one UPDATE ... RETURNING statement.
func (repo *postRepository) ApplyModeration(ctx context.Context, id uuid.UUID, decision moderation.Decision) (*entity.Post, error) {
	var postM model.PostModel

	result := repo.db.WithContext(ctx).
		Model(&postM).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(moderationColumns(decision))
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to apply moderation")
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrPostNotFound
	}

	return toPostDomain(&postM), nil
}

func moderationColumns(decision moderation.Decision) map[string]any {
	columns := map[string]any{
		"status":        string(decision.Status),
		"reject_reason": decision.RejectReason,
	}
	if decision.IsPremium != nil {
		columns["is_premium"] = *decision.IsPremium
	}

	return columns
}

func toPostDomains(ms []*model.PostModel) []*entity.Post {
	posts := make([]*entity.Post, 0, len(ms))
	for _, m := range ms {
		posts = append(posts, toPostDomain(m))
	}

	return posts
}

func toPostDomain(m *model.PostModel) *entity.Post {
	post := &entity.Post{
		ID:           m.ID,
		AuthorID:     m.AuthorID,
		ShopID:       m.ShopID,
		CategoryID:   m.CategoryID,
		Title:        m.Title,
		Description:  m.Description,
		Location:     m.Location,
		ImageURL:     m.ImageURL,
		PriceMin:     m.PriceMin,
		PriceMax:     m.PriceMax,
		Status:       entity.PostStatus(m.Status),
		IsPremium:    m.IsPremium,
		RejectReason: m.RejectReason,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.Category != nil {
		post.Category = toCategoryDomain(m.Category)
	}

	return post
}

func fromPostDomain(p *entity.Post) *model.PostModel {
	return &model.PostModel{
		ID:           p.ID,
		AuthorID:     p.AuthorID,
		ShopID:       p.ShopID,
		CategoryID:   p.CategoryID,
		Title:        p.Title,
		Description:  p.Description,
		Location:     p.Location,
		ImageURL:     p.ImageURL,
		PriceMin:     p.PriceMin,
		PriceMax:     p.PriceMax,
		Status:       string(p.Status),
		IsPremium:    p.IsPremium,
		RejectReason: p.RejectReason,
	}
}
