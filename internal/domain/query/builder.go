package query

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/policy"
	"marketplace/internal/errors"

	"github.com/google/uuid"
)

const (
	DefaultLimit = 10
	MaxLimit     = 50
)

// Params are the raw listing parameters of a post query.
type Params struct {
	Q            string
	CategoryID   *uuid.UUID
	CategorySlug string
	MinPrice     *int
	MaxPrice     *int
	OnlyPremium  bool
	Status       string
	SortBy       string
	Order        string
	Page         int
	Limit        int
}

// CategoryResolver looks a category up by slug. Implementations return
// domainerrors.ErrCategoryNotFound when the slug is unknown.
type CategoryResolver interface {
	FindBySlug(ctx context.Context, slug string) (*entity.Category, error)
}

// Builder builds FilterPlans.
type Builder struct {
	categories   CategoryResolver
	defaultLimit int
	maxLimit     int
}

// NewBuilder creates a Builder. Non-positive limits fall back to the defaults.
func NewBuilder(categories CategoryResolver, defaultLimit, maxLimit int) *Builder {
	if maxLimit <= 0 {
		maxLimit = MaxLimit
	}
	if defaultLimit <= 0 || defaultLimit > maxLimit {
		defaultLimit = min(DefaultLimit, maxLimit)
	}

	return &Builder{
		categories:   categories,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// Build validates params and produces the plan for the requester.
func (b *Builder) Build(ctx context.Context, ent entity.Entitlement, params Params) (*FilterPlan, error) {
	sortBy, order, status, err := validate(params)
	if err != nil {
		return nil, err
	}

	plan := &FilterPlan{
		SortBy:     sortBy,
		Order:      order,
		Pagination: b.paginate(params.Page, params.Limit),
	}

	// status: moderators may pick any status or none, everyone else sees approved only
	switch {
	case !ent.CanModerate:
		plan.Clauses = append(plan.Clauses, StatusClause{Status: entity.PostStatusApproved})
	case status != "":
		plan.Clauses = append(plan.Clauses, StatusClause{Status: status})
	}

	switch {
	case !policy.CanReadPremium(ent):
		plan.Clauses = append(plan.Clauses, PremiumClause{IsPremium: false})
	case params.OnlyPremium:
		plan.Clauses = append(plan.Clauses, PremiumClause{IsPremium: true})
	}

	if params.Q != "" {
		plan.Clauses = append(plan.Clauses, TextClause{Needle: params.Q})
	}

	categoryClause, err := b.categoryClause(ctx, params)
	if err != nil {
		return nil, err
	}
	if categoryClause != nil {
		plan.Clauses = append(plan.Clauses, categoryClause)
	}

	if params.MinPrice != nil {
		plan.Clauses = append(plan.Clauses, PriceMinClause{Bound: *params.MinPrice})
	}
	if params.MaxPrice != nil {
		plan.Clauses = append(plan.Clauses, PriceMaxClause{Bound: *params.MaxPrice})
	}

	return plan, nil
}

func (b *Builder) categoryClause(ctx context.Context, params Params) (Clause, error) {
	if params.CategoryID != nil {
		return CategoryClause{CategoryID: *params.CategoryID}, nil
	}
	if params.CategorySlug == "" {
		return nil, nil
	}

	category, err := b.categories.FindBySlug(ctx, params.CategorySlug)
	if errors.Is(err, domainerrors.ErrCategoryNotFound) {
		return MatchNoneClause{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "resolve category slug")
	}

	return CategoryClause{CategoryID: category.ID}, nil
}

func (b *Builder) paginate(page, limit int) Pagination {
	if page < 1 {
		page = 1
	}
	if limit == 0 {
		limit = b.defaultLimit
	}
	limit = max(1, min(limit, b.maxLimit))

	return Pagination{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

func validate(params Params) (SortBy, Order, entity.PostStatus, error) {
	sortBy := SortNew
	if params.SortBy != "" {
		sortBy = SortBy(params.SortBy)
		if !sortBy.IsValid() {
			return "", "", "", domainerrors.ErrInvalidQuery.WrapMessage("unknown sortBy " + params.SortBy)
		}
	}

	order := Order(params.Order)
	if order != "" && !order.IsValid() {
		return "", "", "", domainerrors.ErrInvalidQuery.WrapMessage("unknown order " + params.Order)
	}

	status := entity.PostStatus(params.Status)
	if status != "" && !status.IsValid() {
		return "", "", "", domainerrors.ErrInvalidQuery.WrapMessage("unknown status " + params.Status)
	}

	if (params.MinPrice != nil && *params.MinPrice < 0) || (params.MaxPrice != nil && *params.MaxPrice < 0) {
		return "", "", "", domainerrors.ErrInvalidQuery.WrapMessage("price bounds must not be negative")
	}
	if params.MinPrice != nil && params.MaxPrice != nil && *params.MinPrice > *params.MaxPrice {
		return "", "", "", domainerrors.ErrInvalidPriceRange
	}

	return sortBy, order, status, nil
}
