// Package query turns listing parameters into a FilterPlan: a list of
// logical predicates that the store adapter interprets.
package query

import (
	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// SortBy selects the page-local ranking.
type SortBy string

const (
	SortNew     SortBy = "new"
	SortPopular SortBy = "popular"
	SortRating  SortBy = "rating"
	SortPrice   SortBy = "price"
)

// IsValid checks if the SortBy is a valid value.
func (s SortBy) IsValid() bool {
	switch s {
	case SortNew, SortPopular, SortRating, SortPrice:
		return true
	default:
		return false
	}
}

// Order is a sort direction. The zero value means "not specified".
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// IsValid checks if the Order is a valid value.
func (o Order) IsValid() bool {
	return o == OrderAsc || o == OrderDesc
}

// Clause is one conjunct of a FilterPlan.
type Clause interface {
	clause()
}

// StatusClause restricts posts to one moderation status.
type StatusClause struct {
	Status entity.PostStatus
}

// PremiumClause restricts posts by premium flag.
type PremiumClause struct {
	IsPremium bool
}

// TextClause is a case-insensitive substring match over title OR description.
type TextClause struct {
	Needle string
}

// CategoryClause restricts posts to one category.
type CategoryClause struct {
	CategoryID uuid.UUID
}

// MatchNoneClause matches no row.
type MatchNoneClause struct{}

// PriceMinClause keeps posts with priceMin >= Bound OR priceMax >= Bound.
type PriceMinClause struct {
	Bound int
}

// PriceMaxClause keeps posts with priceMin <= Bound OR priceMax <= Bound.
type PriceMaxClause struct {
	Bound int
}

func (StatusClause) clause()    {}
func (PremiumClause) clause()   {}
func (TextClause) clause()      {}
func (CategoryClause) clause()  {}
func (MatchNoneClause) clause() {}
func (PriceMinClause) clause()  {}
func (PriceMaxClause) clause()  {}

// Pagination is a resolved page window.
type Pagination struct {
	Page   int
	Limit  int
	Offset int
}

// FilterPlan is the full listing request: predicates AND-ed together,
// store order, page window and the page-local ranking to apply.
type FilterPlan struct {
	Clauses    []Clause
	SortBy     SortBy
	Order      Order
	Pagination Pagination
}

// CreatedAtOrder is the store ordering on createdAt: ascending only when
// asked for, newest first otherwise.
func (p *FilterPlan) CreatedAtOrder() Order {
	if p.Order == OrderAsc {
		return OrderAsc
	}

	return OrderDesc
}

// MatchesNothing reports whether the plan contains a MatchNoneClause.
func (p *FilterPlan) MatchesNothing() bool {
	for _, c := range p.Clauses {
		if _, ok := c.(MatchNoneClause); ok {
			return true
		}
	}

	return false
}
