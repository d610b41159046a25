package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
)

// DailyCountUsecase defines the interface for date-bucketed event counters.
// Each day holds at most one row per counter kind; recording an event bumps
// that day's count, creating the row on first use.
type DailyCountUsecase interface {
	// RecordEvent increments the counter bucket of the day containing t.
	RecordEvent(ctx context.Context, t time.Time) error
	// ListAll returns every bucket of this counter.
	ListAll(ctx context.Context) ([]*entity.DailyCount, error)
	// ListRecent returns the n most recent buckets, most recent first.
	ListRecent(ctx context.Context, n int) ([]*entity.DailyCount, error)
	// GetByDate returns the bucket of the day containing t, or nil when no
	// event has been recorded for that day.
	GetByDate(ctx context.Context, t time.Time) (*entity.DailyCount, error)
}

// VisitorCountUsecase tracks storefront visits.
type VisitorCountUsecase interface {
	DailyCountUsecase
}

// OrderCountUsecase tracks placed orders.
type OrderCountUsecase interface {
	DailyCountUsecase
}
