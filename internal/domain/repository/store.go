// Package repository defines the contracts for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Find when no record matches the conditions.
// Services translate it into a nil result; a miss is normal control flow, not a failure.
var ErrNotFound = errors.New("record not found")

// Condition is a single column comparison a store compiles against its engine.
// The relational engine renders it into a WHERE clause, the in-memory engine
// evaluates it against struct fields by column name.
type Condition struct {
	Column   string
	Operator string
	Value    any
}

// Eq builds an equality condition on a column.
func Eq(column string, value any) Condition {
	return Condition{Column: column, Operator: "=", Value: value}
}

// Store is one unit of work over a single entity type. Reads run immediately;
// Insert, Update and Delete only stage mutations, and Commit applies everything
// staged since the unit was created as one atomic batch. A failed commit leaves
// no staged mutation applied.
//
// A Store value is not safe for concurrent use. Obtain a fresh unit from a
// Stores factory per logical operation; the factory and the engines behind it
// are safe for concurrent use.
type Store[T any] interface {
	// GetAll returns every stored record, order unspecified.
	GetAll(ctx context.Context) ([]*T, error)

	// Find returns the first record matching all conditions, or ErrNotFound.
	// When several records match, which one is returned is unspecified.
	Find(ctx context.Context, conds ...Condition) (*T, error)

	// FindMany returns every record matching all conditions.
	FindMany(ctx context.Context, conds ...Condition) ([]*T, error)

	// Insert stages a new record. A nil record fails immediately and stages nothing.
	Insert(record *T) error

	// Update stages a modification to a record already known by identity.
	Update(record *T) error

	// Delete stages the removal of a record.
	Delete(record *T) error

	// Commit atomically applies all staged mutations.
	Commit(ctx context.Context) error
}
