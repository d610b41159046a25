package repository

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
)

// DailyCountStore adds the atomic day-bucket upsert to the generic contract.
type DailyCountStore interface {
	Store[entity.DailyCount]

	// Increment records one event for the given kind and day: it creates the
	// day's bucket with a count of 1 or increments the existing bucket, as a
	// single atomic engine operation. It applies immediately, outside the
	// staged unit, so concurrent callers can never lose an increment or
	// produce two buckets for the same day.
	Increment(ctx context.Context, kind entity.CounterKind, day time.Time) error
}
