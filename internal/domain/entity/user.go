package entity

import (
	"time"

	"github.com/google/uuid"
)

// BillingAddress is the address an order is billed to. Email is not unique at
// the storage level; a lookup by email returns an arbitrary match when
// duplicates exist.
type BillingAddress struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Email       string    `json:"email" gorm:"size:255;index"`
	FirstName   string    `json:"first_name" gorm:"size:255"`
	LastName    string    `json:"last_name" gorm:"size:255"`
	AddressLine string    `json:"address_line" gorm:"size:512"`
	City        string    `json:"city" gorm:"size:255"`
	ZipCode     string    `json:"zip_code" gorm:"size:32"`
	Phone       string    `json:"phone" gorm:"size:64"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName sets the storage table for BillingAddress.
func (BillingAddress) TableName() string { return "billing_addresses" }
