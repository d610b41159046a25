package memory

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// dailyCountStore layers the atomic day-bucket upsert over the generic unit.
type dailyCountStore struct {
	*store[entity.DailyCount]
}

// Increment creates or bumps the day bucket under the table lock, so the
// lookup and the write are one critical section and concurrent callers can
// neither lose an increment nor create a second bucket for the same day.
func (s *dailyCountStore) Increment(_ context.Context, kind entity.CounterKind, day time.Time) error {
	day = entity.DayOf(day)

	s.table.mu.Lock()
	defer s.table.mu.Unlock()

	for _, row := range s.table.rows {
		if row.Kind == kind && row.Date.Equal(day) {
			row.Count++

			return nil
		}
	}

	row := &entity.DailyCount{ID: uuid.New(), Kind: kind, Date: day, Count: 1}
	s.table.rows[row.ID] = row

	return nil
}
