package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups posts. Slug is unique.
type Category struct {
	ID        uuid.UUID
	Name      string
	Slug      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
