package model

import (
	"time"

	"github.com/google/uuid"
)

// VoteModel mirrors the 'votes' table. (user_id, post_id) is unique.
type VoteModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_votes_user_post"`
	PostID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_votes_user_post;index"`
	Value     int       `gorm:"type:smallint;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (VoteModel) TableName() string {
	return "votes"
}
