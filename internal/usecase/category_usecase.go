package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// CategoryInput defines a category. An empty Slug is derived from Name.
type CategoryInput struct {
	Name string
	Slug string
}

// CategoryUsecase defines category management. Writes are ADMIN only.
type CategoryUsecase interface {
	List(ctx context.Context) ([]*entity.Category, error)

	Create(ctx context.Context, requester *entity.Requester, input CategoryInput) (*entity.Category, error)

	Update(ctx context.Context, requester *entity.Requester, id uuid.UUID, input CategoryInput) (*entity.Category, error)

	Delete(ctx context.Context, requester *entity.Requester, id uuid.UUID) error
}
