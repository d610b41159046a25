package postgres

import (
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"gorm.io/gorm"
)

// stores hands out per-operation units bound to the shared GORM client.
type stores struct {
	db *gorm.DB
}

var _ repository.Stores = (*stores)(nil)

// NewStores is the constructor for the PostgreSQL-backed store factory.
// This function is used as an Fx provider.
func NewStores(db *gorm.DB) repository.Stores {
	return &stores{db: db}
}

// Categories returns a fresh unit over categories.
func (s *stores) Categories() repository.Store[entity.Category] {
	return newStore[entity.Category](s.db)
}

// ProductCategoryMappings returns a fresh unit over product-category mappings.
func (s *stores) ProductCategoryMappings() repository.Store[entity.ProductCategoryMapping] {
	return newStore[entity.ProductCategoryMapping](s.db)
}

// Reviews returns a fresh unit over reviews.
func (s *stores) Reviews() repository.Store[entity.Review] {
	return newStore[entity.Review](s.db)
}

// BillingAddresses returns a fresh unit over billing addresses.
func (s *stores) BillingAddresses() repository.Store[entity.BillingAddress] {
	return newStore[entity.BillingAddress](s.db)
}

// DailyCounts returns a fresh unit over the date-bucketed counters.
func (s *stores) DailyCounts() repository.DailyCountStore {
	return &dailyCountStore{store: newStore[entity.DailyCount](s.db)}
}

// Migrate creates or updates the schema for every storefront entity.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.Category{},
		&entity.ProductCategoryMapping{},
		&entity.Review{},
		&entity.BillingAddress{},
		&entity.DailyCount{},
	)
	if err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
