package impl

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"
)

type dailyCountService struct {
	stores repository.Stores
	kind   entity.CounterKind
}

// NewVisitorCountService creates a counter service tracking storefront visits
func NewVisitorCountService(stores repository.Stores) usecase.VisitorCountUsecase {
	return &dailyCountService{stores: stores, kind: entity.CounterKindVisitors}
}

// NewOrderCountService creates a counter service tracking placed orders
func NewOrderCountService(stores repository.Stores) usecase.OrderCountUsecase {
	return &dailyCountService{stores: stores, kind: entity.CounterKindOrders}
}

// RecordEvent increments the counter bucket of the day containing t.
// The increment is atomic at the storage engine, so concurrent recorders
// for the same day never lose updates and never create duplicate buckets.
func (s *dailyCountService) RecordEvent(ctx context.Context, t time.Time) error {
	if err := s.stores.DailyCounts().Increment(ctx, s.kind, t); err != nil {
		return fmt.Errorf("failed to record %s event: %w", s.kind, err)
	}

	return nil
}

// ListAll returns every bucket of this counter, most recent first
func (s *dailyCountService) ListAll(ctx context.Context) ([]*entity.DailyCount, error) {
	counts, err := s.stores.DailyCounts().FindMany(ctx, repository.Eq("kind", s.kind))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s counts: %w", s.kind, err)
	}

	sort.Slice(counts, func(i, j int) bool {
		return counts[i].Date.After(counts[j].Date)
	})

	return counts, nil
}

// ListRecent returns the n most recent buckets, most recent first. Days
// without recorded events have no bucket and are not filled in.
func (s *dailyCountService) ListRecent(ctx context.Context, n int) ([]*entity.DailyCount, error) {
	if n <= 0 {
		return nil, domainerrors.ErrInvalidTake
	}

	counts, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(counts) > n {
		counts = counts[:n]
	}

	return counts, nil
}

// GetByDate returns the bucket of the day containing t, or nil when no event
// has been recorded for that day
func (s *dailyCountService) GetByDate(ctx context.Context, t time.Time) (*entity.DailyCount, error) {
	count, err := s.stores.DailyCounts().Find(ctx,
		repository.Eq("kind", s.kind),
		repository.Eq("date", entity.DayOf(t)))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find %s count by date: %w", s.kind, err)
	}

	return count, nil
}
