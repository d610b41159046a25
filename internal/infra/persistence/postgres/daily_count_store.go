package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// dailyCountStore layers the atomic day-bucket upsert over the generic unit.
type dailyCountStore struct {
	*store[entity.DailyCount]
}

// Increment is a single INSERT ... ON CONFLICT statement: the unique
// (kind, date) index arbitrates concurrent callers, and the conflict branch
// does the arithmetic in the engine, so no caller ever reads a count it then
// writes back.
func (s *dailyCountStore) Increment(ctx context.Context, kind entity.CounterKind, day time.Time) error {
	row := &entity.DailyCount{
		ID:    uuid.New(),
		Kind:  kind,
		Date:  entity.DayOf(day),
		Count: 1,
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "kind"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]any{
			"count": gorm.Expr("daily_counts.count + 1"),
		}),
	}).Create(row).Error
	if err != nil {
		return domainerrors.NewStorageExecuteError(err, "failed to increment daily count")
	}

	return nil
}
