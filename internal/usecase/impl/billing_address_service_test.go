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

func createTestBillingAddressService(t *testing.T) usecase.BillingAddressUsecase {
	t.Helper()

	return NewBillingAddressService(memory.NewEngine())
}

func TestBillingAddressService_InsertAndGetByEmail(t *testing.T) {
	service := createTestBillingAddressService(t)
	ctx := context.Background()

	created, err := service.Insert(ctx, &usecase.BillingAddressInput{
		Email:       "jamie@example.com",
		FirstName:   "Jamie",
		LastName:    "Lin",
		AddressLine: "100 Market St",
		City:        "Taipei",
		ZipCode:     "100",
		Phone:       "+886-2-1234-5678",
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	found, err := service.GetByEmail(ctx, "jamie@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Taipei", found.City)
}

func TestBillingAddressService_GetAllAndGetByID(t *testing.T) {
	service := createTestBillingAddressService(t)
	ctx := context.Background()

	first, err := service.Insert(ctx, &usecase.BillingAddressInput{Email: "a@example.com"})
	require.NoError(t, err)
	_, err = service.Insert(ctx, &usecase.BillingAddressInput{Email: "b@example.com"})
	require.NoError(t, err)

	all, err := service.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	found, err := service.GetByID(ctx, first.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "a@example.com", found.Email)

	found, err = service.GetByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestBillingAddressService_GetByEmail_MissingReturnsNil(t *testing.T) {
	service := createTestBillingAddressService(t)

	found, err := service.GetByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestBillingAddressService_Update(t *testing.T) {
	service := createTestBillingAddressService(t)
	ctx := context.Background()

	created, err := service.Insert(ctx, &usecase.BillingAddressInput{
		Email: "jamie@example.com",
		City:  "Taipei",
	})
	require.NoError(t, err)

	created.City = "Kaohsiung"
	require.NoError(t, service.Update(ctx, created))

	found, err := service.GetByEmail(ctx, "jamie@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Kaohsiung", found.City)
}

func TestBillingAddressService_InvalidArguments(t *testing.T) {
	service := createTestBillingAddressService(t)
	ctx := context.Background()

	_, err := service.GetByEmail(ctx, "")
	assert.ErrorIs(t, err, domainerrors.ErrEmptyEmail)

	_, err = service.Insert(ctx, nil)
	assert.ErrorIs(t, err, domainerrors.ErrNilEntity)

	_, err = service.Insert(ctx, &usecase.BillingAddressInput{})
	assert.ErrorIs(t, err, domainerrors.ErrEmptyEmail)

	assert.ErrorIs(t, service.Update(ctx, nil), domainerrors.ErrNilEntity)
}
