package entity

import (
	"time"

	"github.com/google/uuid"
)

// Shop is a vendor storefront that posts can be attached to.
type Shop struct {
	ID          uuid.UUID
	Name        string
	Slug        string
	Description *string
	OwnerID     uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ShopWithPosts is a shop detail view with its approved posts.
type ShopWithPosts struct {
	Shop  *Shop
	Posts []*Post
}
