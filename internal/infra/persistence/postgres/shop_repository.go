package postgres

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// shopRepository implements the domain.ShopRepository interface.
type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository is the constructor for shopRepository.
func NewShopRepository(db *gorm.DB) repository.ShopRepository {
	return &shopRepository{db: db}
}

// CreateShop persists a new shop.
func (repo *shopRepository) CreateShop(ctx context.Context, shop *entity.Shop) error {
	shopM := fromShopDomain(shop)

	if err := repo.db.WithContext(ctx).Create(shopM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrShopOwnerConflict
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shop")
	}

	shop.ID = shopM.ID
	shop.CreatedAt = shopM.CreatedAt
	shop.UpdatedAt = shopM.UpdatedAt

	return nil
}

// FindShopByID retrieves a shop by its unique ID.
func (repo *shopRepository) FindShopByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindShopByOwner retrieves the shop owned by a seller.
func (repo *shopRepository) FindShopByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Shop, error) {
	return repo.findOne(ctx, "owner_id = ?", ownerID)
}

func (repo *shopRepository) findOne(ctx context.Context, query string, arg any) (*entity.Shop, error) {
	var shopM model.ShopModel
	if err := repo.db.WithContext(ctx).Where(query, arg).First(&shopM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop")
	}

	return toShopDomain(&shopM), nil
}

// SetShopBanned sets or clears the ban flag of a shop.
func (repo *shopRepository) SetShopBanned(ctx context.Context, id uuid.UUID, bannedAt *time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ShopModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_banned": bannedAt != nil,
			"banned_at": bannedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update shop ban flag")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShopNotFound
	}

	return nil
}

func toShopDomain(data *model.ShopModel) *entity.Shop {
	return &entity.Shop{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Description: data.Description,
		Address:     data.Address,
		Phone:       data.Phone,
		IsBanned:    data.IsBanned,
		BannedAt:    data.BannedAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromShopDomain(data *entity.Shop) *model.ShopModel {
	return &model.ShopModel{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Description: data.Description,
		Address:     data.Address,
		Phone:       data.Phone,
		IsBanned:    data.IsBanned,
		BannedAt:    data.BannedAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
