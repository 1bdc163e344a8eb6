package model

import (
	"time"

	"github.com/google/uuid"
)

// PostModel mirrors the 'posts' table.
type PostModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	AuthorID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	ShopID       *uuid.UUID `gorm:"type:uuid;index"`
	CategoryID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title        string     `gorm:"type:varchar(200);not null"`
	Description  string     `gorm:"type:text;not null"`
	Location     string     `gorm:"type:varchar(200);not null"`
	ImageURL     string     `gorm:"column:image_url;type:text;not null"`
	PriceMin     *int
	PriceMax     *int
	Status       string  `gorm:"type:varchar(16);not null;default:PENDING;index"`
	IsPremium    bool    `gorm:"not null;default:false"`
	RejectReason *string `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}

// PostSignalRow is one row of a grouped signal aggregate.
type PostSignalRow struct {
	PostID uuid.UUID
	Avg    float64
	Sum    int
	Count  int
}
