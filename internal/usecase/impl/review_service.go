package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
)

type reviewService struct {
	stores repository.Stores
}

// NewReviewService creates a new review service instance
func NewReviewService(stores repository.Stores) usecase.ReviewUsecase {
	return &reviewService{stores: stores}
}

// GetReview retrieves the review a user left on a product, or nil when absent
func (s *reviewService) GetReview(ctx context.Context, productID, userID uuid.UUID) (*entity.Review, error) {
	if productID == uuid.Nil {
		return nil, domainerrors.ErrEmptyProductID
	}

	review, err := s.stores.Reviews().Find(ctx,
		repository.Eq("product_id", productID),
		repository.Eq("user_id", userID))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find review: %w", err)
	}

	return review, nil
}

// GetReviewsByProductID retrieves every review left on a product
func (s *reviewService) GetReviewsByProductID(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error) {
	if productID == uuid.Nil {
		return nil, domainerrors.ErrEmptyProductID
	}

	reviews, err := s.stores.Reviews().FindMany(ctx, repository.Eq("product_id", productID))
	if err != nil {
		return nil, fmt.Errorf("failed to find reviews by product id: %w", err)
	}

	return reviews, nil
}

// InsertReview persists a new review
func (s *reviewService) InsertReview(ctx context.Context, input *usecase.ReviewInput) (*entity.Review, error) {
	if input == nil {
		return nil, domainerrors.ErrNilEntity
	}
	if input.ProductID == uuid.Nil {
		return nil, domainerrors.ErrEmptyProductID
	}

	now := time.Now()
	review := &entity.Review{
		ID:        uuid.New(),
		ProductID: input.ProductID,
		UserID:    input.UserID,
		Title:     input.Title,
		Comment:   input.Comment,
		Rating:    input.Rating,
		CreatedAt: now,
		UpdatedAt: now,
	}

	store := s.stores.Reviews()
	if err := store.Insert(review); err != nil {
		return nil, fmt.Errorf("failed to stage review insert: %w", err)
	}
	if err := store.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to insert review: %w", err)
	}

	return review, nil
}

// UpdateReview overwrites an existing review
func (s *reviewService) UpdateReview(ctx context.Context, review *entity.Review) error {
	if review == nil {
		return domainerrors.ErrNilEntity
	}

	review.UpdatedAt = time.Now()

	store := s.stores.Reviews()
	if err := store.Update(review); err != nil {
		return fmt.Errorf("failed to stage review update: %w", err)
	}
	if err := store.Commit(ctx); err != nil {
		return fmt.Errorf("failed to update review: %w", err)
	}

	return nil
}

// DeleteReview removes a review
func (s *reviewService) DeleteReview(ctx context.Context, review *entity.Review) error {
	if review == nil {
		return domainerrors.ErrNilEntity
	}

	store := s.stores.Reviews()
	if err := store.Delete(review); err != nil {
		return fmt.Errorf("failed to stage review delete: %w", err)
	}
	if err := store.Commit(ctx); err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}

	return nil
}
