package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// BillingAddressInput defines the data required to save a billing address.
type BillingAddressInput struct {
	Email       string
	FirstName   string
	LastName    string
	AddressLine string
	City        string
	ZipCode     string
	Phone       string
}

// BillingAddressUsecase defines the interface for billing address operations.
type BillingAddressUsecase interface {
	// GetAll returns every saved billing address.
	GetAll(ctx context.Context) ([]*entity.BillingAddress, error)
	// GetByID returns the billing address with the given ID, or nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.BillingAddress, error)
	// GetByEmail returns the billing address saved under an email, or nil when
	// absent. Email is not unique at the store; duplicates yield an arbitrary match.
	GetByEmail(ctx context.Context, email string) (*entity.BillingAddress, error)
	// Insert persists a new billing address and returns it with its assigned ID.
	Insert(ctx context.Context, input *BillingAddressInput) (*entity.BillingAddress, error)
	// Update overwrites an existing billing address.
	Update(ctx context.Context, address *entity.BillingAddress) error
}
