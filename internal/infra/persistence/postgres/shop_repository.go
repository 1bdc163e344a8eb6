package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// shopRepository implements the repository.ShopRepository interface.
type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository is the constructor for shopRepository.
func NewShopRepository(db *gorm.DB) repository.ShopRepository {
	return &shopRepository{
		db: db,
	}
}

// Create persists a new shop.
func (repo *shopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	shopM := fromShopDomain(shop)

	if err := repo.db.WithContext(ctx).Create(shopM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrShopSlugExists.WrapMessage("duplicate shop slug")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid shop owner")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shop")
	}

	shop.ID = shopM.ID
	shop.CreatedAt = shopM.CreatedAt
	shop.UpdatedAt = shopM.UpdatedAt

	return nil
}

// FindByID retrieves a shop by its unique ID.
func (repo *shopRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindBySlug retrieves a shop by its slug.
func (repo *shopRepository) FindBySlug(ctx context.Context, slug string) (*entity.Shop, error) {
	return repo.findOne(ctx, "slug = ?", slug)
}

func (repo *shopRepository) findOne(ctx context.Context, cond string, arg any) (*entity.Shop, error) {
	var shopM model.ShopModel

	if err := repo.db.WithContext(ctx).Where(cond, arg).First(&shopM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrShopNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find shop")
	}

	return toShopDomain(&shopM), nil
}

// List returns one page of shops matching q over name or description,
// newest first, and the total number of matches.
func (repo *shopRepository) List(ctx context.Context, params repository.ShopListParams) ([]*entity.Shop, int64, error) {
	var (
		shopMs []*model.ShopModel
		total  int64
	)

	tx := repo.db.WithContext(ctx).Model(&model.ShopModel{})
	if params.Q != "" {
		like := "%" + escapeLike(params.Q) + "%"
		tx = tx.Where("name ILIKE ? OR description ILIKE ?", like, like)
	}

	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count shops")
	}

	if err := tx.Order("created_at DESC").
		Limit(params.Limit).
		Offset(params.Offset).
		Find(&shopMs).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list shops")
	}

	return toShopDomains(shopMs), total, nil
}

// ListByOwner returns the shops owned by a user, newest first.
func (repo *shopRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Shop, error) {
	var shopMs []*model.ShopModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&shopMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list owner shops")
	}

	return toShopDomains(shopMs), nil
}

func toShopDomains(ms []*model.ShopModel) []*entity.Shop {
	shops := make([]*entity.Shop, 0, len(ms))
	for _, m := range ms {
		shops = append(shops, toShopDomain(m))
	}

	return shops
}

func toShopDomain(m *model.ShopModel) *entity.Shop {
	return &entity.Shop{
		ID:          m.ID,
		Name:        m.Name,
		Slug:        m.Slug,
		Description: m.Description,
		OwnerID:     m.OwnerID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromShopDomain(s *entity.Shop) *model.ShopModel {
	return &model.ShopModel{
		ID:          s.ID,
		Name:        s.Name,
		Slug:        s.Slug,
		Description: s.Description,
		OwnerID:     s.OwnerID,
	}
}
