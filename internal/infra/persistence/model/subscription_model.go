package model

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionModel mirrors the 'subscriptions' table. One row per user.
type SubscriptionModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID        uuid.UUID `gorm:"type:uuid;unique;not null"`
	Provider      string    `gorm:"type:varchar(16);not null"`
	Status        string    `gorm:"type:varchar(16);not null;default:PENDING"`
	TransactionID *string   `gorm:"type:varchar(255)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
