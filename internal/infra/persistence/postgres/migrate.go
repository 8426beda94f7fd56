package postgres

import (
	"marketplace/config"
	"marketplace/internal/domain/constants"
	"marketplace/internal/errors"
	"marketplace/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the marketplace tables and their unique
// indexes. Production schemas are managed by migrations outside the service.
func AutoMigrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "pg_uuidv7"`).Error; err != nil {
		return errors.Wrap(err, "failed to enable uuid v7 extension")
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.ShopModel{},
		&model.ProductModel{},
		&model.CartModel{},
		&model.CartItemModel{},
		&model.OrderModel{},
		&model.OrderItemModel{},
		&model.VoucherModel{},
		&model.UserVoucherModel{},
		&model.ComplaintModel{},
		&model.ComplaintResponseModel{},
		&model.ComplaintImageModel{},
		&model.RoleApplicationModel{},
		&model.ModerationActionModel{},
	); err != nil {
		return errors.Wrap(err, "failed to auto-migrate schema")
	}

	return nil
}

func shouldAutoMigrate(cfg *config.Config) bool {
	return cfg != nil && (cfg.Env.Env == constants.EnvDevelop || cfg.Env.Env == constants.EnvTest)
}
