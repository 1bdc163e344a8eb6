package model

import (
	"time"

	"github.com/google/uuid"
)

// ShopModel mirrors the 'shops' table.
type ShopModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(120);not null"`
	Slug        string    `gorm:"type:varchar(140);unique;not null"`
	Description *string   `gorm:"type:text"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShopModel) TableName() string {
	return "shops"
}
