package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Comment is an immutable rated remark on a post.
type Comment struct {
	ID        uuid.UUID
	PostID    uuid.UUID
	UserID    uuid.UUID
	Author    *User
	Content   string
	Rating    int
	CreatedAt time.Time
}

// ValidRating reports whether rating is within [MinRating, MaxRating].
func ValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}
