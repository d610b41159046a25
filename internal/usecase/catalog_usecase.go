// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CategoryInput defines the data required to create or update a category.
type CategoryInput struct {
	Name             string
	SeoSlug          string
	ParentCategoryID uuid.UUID
	Published        bool
}

// MappingInput defines a single product-to-category assignment.
type MappingInput struct {
	ProductID  uuid.UUID
	CategoryID uuid.UUID
}

// ReviewInput defines the data required to submit a product review.
type ReviewInput struct {
	ProductID uuid.UUID
	UserID    uuid.UUID
	Title     string
	Comment   string
	Rating    int
}

// CategoryUsecase defines the interface for category directory operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type CategoryUsecase interface {
	// GetAllCategories returns every category, published or not.
	GetAllCategories(ctx context.Context) ([]*entity.Category, error)
	// GetRootCategories returns categories without a parent.
	GetRootCategories(ctx context.Context) ([]*entity.Category, error)
	// GetCategoryByID returns the category with the given ID, or nil when absent.
	GetCategoryByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	// GetCategoryBySeo returns the category with the given SEO slug, or nil when absent.
	GetCategoryBySeo(ctx context.Context, seoSlug string) (*entity.Category, error)
	// InsertCategory persists a new category and returns it with its assigned ID.
	InsertCategory(ctx context.Context, input *CategoryInput) (*entity.Category, error)
	// UpdateCategory overwrites an existing category.
	UpdateCategory(ctx context.Context, category *entity.Category) error
	// DeleteCategories removes the categories with the given IDs. Deletion is
	// best-effort: IDs that no longer resolve are skipped, the rest are removed.
	DeleteCategories(ctx context.Context, ids []uuid.UUID) error
	// GetMappingsByProductID returns the category assignments of a product.
	GetMappingsByProductID(ctx context.Context, productID uuid.UUID) ([]*entity.ProductCategoryMapping, error)
	// InsertProductCategoryMappings persists a batch of assignments atomically.
	InsertProductCategoryMappings(ctx context.Context, inputs []*MappingInput) error
	// DeleteProductCategoryMappingsByProductID removes every assignment of a product.
	DeleteProductCategoryMappingsByProductID(ctx context.Context, productID uuid.UUID) error
}

// ReviewUsecase defines the interface for product review operations.
type ReviewUsecase interface {
	// GetReview returns the review a user left on a product, or nil when absent.
	GetReview(ctx context.Context, productID, userID uuid.UUID) (*entity.Review, error)
	// GetReviewsByProductID returns every review left on a product.
	GetReviewsByProductID(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error)
	// InsertReview persists a new review and returns it with its assigned ID.
	InsertReview(ctx context.Context, input *ReviewInput) (*entity.Review, error)
	// UpdateReview overwrites an existing review.
	UpdateReview(ctx context.Context, review *entity.Review) error
	// DeleteReview removes a review.
	DeleteReview(ctx context.Context, review *entity.Review) error
}
