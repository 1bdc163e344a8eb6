package entity

import (
	"time"

	"github.com/google/uuid"
)

// PostStatus is the moderation state of a post.
type PostStatus string

const (
	PostStatusPending  PostStatus = "PENDING"
	PostStatusApproved PostStatus = "APPROVED"
	PostStatusRejected PostStatus = "REJECTED"
)

// IsValid checks if the PostStatus is a valid value.
func (s PostStatus) IsValid() bool {
	switch s {
	case PostStatusPending, PostStatusApproved, PostStatusRejected:
		return true
	default:
		return false
	}
}

// Post is a listing submitted by a user.
type Post struct {
	ID           uuid.UUID
	AuthorID     uuid.UUID
	ShopID       *uuid.UUID
	CategoryID   uuid.UUID
	Category     *Category
	Title        string
	Description  string
	Location     string
	ImageURL     string
	PriceMin     *int
	PriceMax     *int
	Status       PostStatus
	IsPremium    bool
	RejectReason *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsApproved reports whether the post is publicly visible.
func (p *Post) IsApproved() bool {
	return p.Status == PostStatusApproved
}

// PriceKey is the value used to order posts by price: priceMin, then
// priceMax, then 0 when the post has no price.
func (p *Post) PriceKey() int {
	switch {
	case p.PriceMin != nil:
		return *p.PriceMin
	case p.PriceMax != nil:
		return *p.PriceMax
	default:
		return 0
	}
}

// ValidPriceRange checks the bounds of a price range. Both bounds are
// optional; when both are given min must not exceed max.
func ValidPriceRange(priceMin, priceMax *int) bool {
	if priceMin != nil && *priceMin < 0 {
		return false
	}
	if priceMax != nil && *priceMax < 0 {
		return false
	}
	if priceMin != nil && priceMax != nil && *priceMin > *priceMax {
		return false
	}

	return true
}

// PostSignals are the interaction aggregates of a single post.
type PostSignals struct {
	AvgRating    float64
	Score        int
	CommentCount int
	VoteCount    int
}

// PageMeta describes one page of a listing.
type PageMeta struct {
	Page  int
	Limit int
	Total int64
}
