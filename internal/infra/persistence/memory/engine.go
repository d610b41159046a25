// Package memory implements the persistence contracts with in-process maps.
// It backs the service tests and any deployment that does not need durability.
package memory

import (
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
)

// table holds every row of one entity type, keyed by id.
type table[T any] struct {
	mu   sync.RWMutex
	rows map[uuid.UUID]*T
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[uuid.UUID]*T)}
}

// Engine is the in-memory storage engine. It satisfies repository.Stores and
// is safe for concurrent use; the store units it hands out are not.
type Engine struct {
	categories *table[entity.Category]
	mappings   *table[entity.ProductCategoryMapping]
	reviews    *table[entity.Review]
	addresses  *table[entity.BillingAddress]
	counts     *table[entity.DailyCount]
}

var _ repository.Stores = (*Engine)(nil)

// NewEngine creates an empty in-memory engine.
func NewEngine() *Engine {
	return &Engine{
		categories: newTable[entity.Category](),
		mappings:   newTable[entity.ProductCategoryMapping](),
		reviews:    newTable[entity.Review](),
		addresses:  newTable[entity.BillingAddress](),
		counts:     newTable[entity.DailyCount](),
	}
}

// Categories returns a fresh unit over categories.
func (e *Engine) Categories() repository.Store[entity.Category] {
	return newStore(e.categories)
}

// ProductCategoryMappings returns a fresh unit over product-category mappings.
func (e *Engine) ProductCategoryMappings() repository.Store[entity.ProductCategoryMapping] {
	return newStore(e.mappings)
}

// Reviews returns a fresh unit over reviews.
func (e *Engine) Reviews() repository.Store[entity.Review] {
	return newStore(e.reviews)
}

// BillingAddresses returns a fresh unit over billing addresses.
func (e *Engine) BillingAddresses() repository.Store[entity.BillingAddress] {
	return newStore(e.addresses)
}

// DailyCounts returns a fresh unit over the date-bucketed counters.
func (e *Engine) DailyCounts() repository.DailyCountStore {
	return &dailyCountStore{store: newStore(e.counts)}
}
