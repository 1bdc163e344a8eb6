package entity

import (
	"time"

	"github.com/google/uuid"
)

// VoteValue is +1 for an upvote and -1 for a downvote.
type VoteValue int

const (
	VoteUp   VoteValue = 1
	VoteDown VoteValue = -1
)

// IsValid checks if the VoteValue is a valid value.
func (v VoteValue) IsValid() bool {
	return v == VoteUp || v == VoteDown
}

// Vote is the unique (user, post) vote. Absence means no vote.
type Vote struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	PostID    uuid.UUID
	Value     VoteValue
	CreatedAt time.Time
	UpdatedAt time.Time
}
