// Package entity contains the core business objects of the storefront.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category is a catalog entry. Categories form a forest: ParentCategoryID is
// uuid.Nil for a root category. Cycle-freedom is the caller's responsibility.
type Category struct {
	ID               uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`                     // The Global Unique Identifier (GUID) for the category.
	Name             string    `json:"name" gorm:"size:255;not null"`                      // Display name, also the default sort key for listings.
	SeoSlug          string    `json:"seo_slug" gorm:"size:255;uniqueIndex"`               // Human-readable URL key; empty means the category is not addressable by slug.
	ParentCategoryID uuid.UUID `json:"parent_category_id" gorm:"type:uuid;index"`          // Parent category, uuid.Nil for roots.
	Published        bool      `json:"published"`                                          // Visibility flag toggled from the admin area.
	CreatedAt        time.Time `json:"created_at"`                                         // Timestamp of when this category was created.
	UpdatedAt        time.Time `json:"updated_at"`                                         // Timestamp of the last modification.
}

// TableName sets the storage table for Category.
func (Category) TableName() string { return "categories" }

// ProductCategoryMapping is the many-to-many association between a product and
// a category. The mapping set of a product is replaced wholesale when its
// categories change: delete by product id, then insert the new set.
type ProductCategoryMapping struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ProductID  uuid.UUID `json:"product_id" gorm:"type:uuid;index;not null"`
	CategoryID uuid.UUID `json:"category_id" gorm:"type:uuid;index;not null"`
}

// TableName sets the storage table for ProductCategoryMapping.
func (ProductCategoryMapping) TableName() string { return "product_category_mappings" }

// Review is a customer review of a product. At most one review per
// (ProductID, UserID) pair is expected; the store does not enforce it, callers
// check with the composite lookup before inserting.
type Review struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;index;not null"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;index;not null"`
	Title     string    `json:"title" gorm:"size:255"`
	Comment   string    `json:"comment" gorm:"type:text"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the storage table for Review.
func (Review) TableName() string { return "reviews" }
