package repository

import "storefront/internal/domain/entity"

// Stores hands out fresh store units, one per logical operation.
// Implementations bind every unit to the same underlying storage engine.
type Stores interface {
	// Categories returns a unit over catalog categories.
	Categories() Store[entity.Category]

	// ProductCategoryMappings returns a unit over product-category associations.
	ProductCategoryMappings() Store[entity.ProductCategoryMapping]

	// Reviews returns a unit over product reviews.
	Reviews() Store[entity.Review]

	// BillingAddresses returns a unit over billing addresses.
	BillingAddresses() Store[entity.BillingAddress]

	// DailyCounts returns a unit over the date-bucketed counters.
	DailyCounts() DailyCountStore
}
