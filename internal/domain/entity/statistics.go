package entity

import (
	"time"

	"github.com/google/uuid"
)

// CounterKind discriminates the date-bucketed counters sharing one table.
type CounterKind string

const (
	// CounterKindVisitors counts unique visitor sessions per calendar day.
	CounterKindVisitors CounterKind = "visitors"
	// CounterKindOrders counts placed orders per calendar day.
	CounterKindOrders CounterKind = "orders"
)

// DailyCount is one day bucket of a counter. The (Kind, Date) pair is unique:
// every qualifying event on a day lands in the same row.
type DailyCount struct {
	ID    uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey"`
	Kind  CounterKind `json:"kind" gorm:"size:32;not null;uniqueIndex:idx_daily_counts_kind_date"`
	Date  time.Time   `json:"date" gorm:"not null;uniqueIndex:idx_daily_counts_kind_date"` // Bucket key, always midnight UTC.
	Count int64       `json:"count" gorm:"not null"`
}

// TableName sets the storage table for DailyCount.
func (DailyCount) TableName() string { return "daily_counts" }

// DayOf truncates a point in time to its calendar day in UTC, the bucket key
// for DailyCount rows.
func DayOf(t time.Time) time.Time {
	t = t.UTC()

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
