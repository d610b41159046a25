package impl

import (
	"context"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/infra/persistence/memory"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestReviewService(t *testing.T) usecase.ReviewUsecase {
	t.Helper()

	return NewReviewService(memory.NewEngine())
}

func TestReviewService_InsertAndGet(t *testing.T) {
	service := createTestReviewService(t)
	ctx := context.Background()

	productID := uuid.New()
	userID := uuid.New()

	created, err := service.InsertReview(ctx, &usecase.ReviewInput{
		ProductID: productID,
		UserID:    userID,
		Title:     "Solid",
		Comment:   "Does what it says.",
		Rating:    4,
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	found, err := service.GetReview(ctx, productID, userID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, 4, found.Rating)
}

func TestReviewService_GetReview_KeyedByProductAndUser(t *testing.T) {
	service := createTestReviewService(t)
	ctx := context.Background()

	productID := uuid.New()
	userID := uuid.New()

	_, err := service.InsertReview(ctx, &usecase.ReviewInput{
		ProductID: productID,
		UserID:    userID,
		Rating:    5,
	})
	require.NoError(t, err)

	// Same product, different user: no match.
	found, err := service.GetReview(ctx, productID, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, found)

	// Same user, different product: no match.
	found, err = service.GetReview(ctx, uuid.New(), userID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestReviewService_GetReviewsByProductID(t *testing.T) {
	service := createTestReviewService(t)
	ctx := context.Background()

	productID := uuid.New()
	for i := 0; i < 3; i++ {
		_, err := service.InsertReview(ctx, &usecase.ReviewInput{
			ProductID: productID,
			UserID:    uuid.New(),
			Rating:    i + 1,
		})
		require.NoError(t, err)
	}
	_, err := service.InsertReview(ctx, &usecase.ReviewInput{
		ProductID: uuid.New(),
		UserID:    uuid.New(),
		Rating:    1,
	})
	require.NoError(t, err)

	reviews, err := service.GetReviewsByProductID(ctx, productID)
	require.NoError(t, err)
	assert.Len(t, reviews, 3)
}

func TestReviewService_UpdateAndDelete(t *testing.T) {
	service := createTestReviewService(t)
	ctx := context.Background()

	productID := uuid.New()
	userID := uuid.New()

	created, err := service.InsertReview(ctx, &usecase.ReviewInput{
		ProductID: productID,
		UserID:    userID,
		Rating:    2,
	})
	require.NoError(t, err)

	created.Rating = 5
	created.Comment = "Grew on me."
	require.NoError(t, service.UpdateReview(ctx, created))

	found, err := service.GetReview(ctx, productID, userID)
	require.NoError(t, err)
	assert.Equal(t, 5, found.Rating)

	require.NoError(t, service.DeleteReview(ctx, found))

	found, err = service.GetReview(ctx, productID, userID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestReviewService_InvalidArguments(t *testing.T) {
	service := createTestReviewService(t)
	ctx := context.Background()

	_, err := service.InsertReview(ctx, nil)
	assert.ErrorIs(t, err, domainerrors.ErrNilEntity)

	_, err = service.InsertReview(ctx, &usecase.ReviewInput{UserID: uuid.New()})
	assert.ErrorIs(t, err, domainerrors.ErrEmptyProductID)

	_, err = service.GetReview(ctx, uuid.Nil, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrEmptyProductID)

	_, err = service.GetReviewsByProductID(ctx, uuid.Nil)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyProductID)
}
