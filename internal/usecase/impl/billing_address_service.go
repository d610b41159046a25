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

type billingAddressService struct {
	stores repository.Stores
}

// NewBillingAddressService creates a new billing address service instance
func NewBillingAddressService(stores repository.Stores) usecase.BillingAddressUsecase {
	return &billingAddressService{stores: stores}
}

// GetAll retrieves every saved billing address
func (s *billingAddressService) GetAll(ctx context.Context) ([]*entity.BillingAddress, error) {
	addresses, err := s.stores.BillingAddresses().GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all billing addresses: %w", err)
	}

	return addresses, nil
}

// GetByID retrieves a billing address by its ID, or nil when absent
func (s *billingAddressService) GetByID(ctx context.Context, id uuid.UUID) (*entity.BillingAddress, error) {
	address, err := s.stores.BillingAddresses().Find(ctx, repository.Eq("id", id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find billing address by id: %w", err)
	}

	return address, nil
}

// GetByEmail retrieves the billing address saved under an email, or nil when absent
func (s *billingAddressService) GetByEmail(ctx context.Context, email string) (*entity.BillingAddress, error) {
	if email == "" {
		return nil, domainerrors.ErrEmptyEmail
	}

	address, err := s.stores.BillingAddresses().Find(ctx, repository.Eq("email", email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find billing address by email: %w", err)
	}

	return address, nil
}

// Insert persists a new billing address
func (s *billingAddressService) Insert(ctx context.Context, input *usecase.BillingAddressInput) (*entity.BillingAddress, error) {
	if input == nil {
		return nil, domainerrors.ErrNilEntity
	}
	if input.Email == "" {
		return nil, domainerrors.ErrEmptyEmail
	}

	now := time.Now()
	address := &entity.BillingAddress{
		ID:          uuid.New(),
		Email:       input.Email,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		AddressLine: input.AddressLine,
		City:        input.City,
		ZipCode:     input.ZipCode,
		Phone:       input.Phone,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	store := s.stores.BillingAddresses()
	if err := store.Insert(address); err != nil {
		return nil, fmt.Errorf("failed to stage billing address insert: %w", err)
	}
	if err := store.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to insert billing address: %w", err)
	}

	return address, nil
}

// Update overwrites an existing billing address
func (s *billingAddressService) Update(ctx context.Context, address *entity.BillingAddress) error {
	if address == nil {
		return domainerrors.ErrNilEntity
	}

	address.UpdatedAt = time.Now()

	store := s.stores.BillingAddresses()
	if err := store.Update(address); err != nil {
		return fmt.Errorf("failed to stage billing address update: %w", err)
	}
	if err := store.Commit(ctx); err != nil {
		return fmt.Errorf("failed to update billing address: %w", err)
	}

	return nil
}
