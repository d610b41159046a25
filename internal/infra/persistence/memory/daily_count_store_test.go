package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyCountStore_Increment_CreatesBucketOnFirstUse(t *testing.T) {
	engine := NewEngine()
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

	require.NoError(t, engine.DailyCounts().Increment(ctx, entity.CounterKindVisitors, now))

	count, err := engine.DailyCounts().Find(ctx,
		repository.Eq("kind", entity.CounterKindVisitors),
		repository.Eq("date", entity.DayOf(now)))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count.Count)
	assert.True(t, count.Date.Equal(entity.DayOf(now)))
}

func TestDailyCountStore_Increment_SameDaySharesBucket(t *testing.T) {
	engine := NewEngine()
	ctx := context.Background()
	morning := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 3, 14, 22, 30, 0, 0, time.UTC)

	store := engine.DailyCounts()
	require.NoError(t, store.Increment(ctx, entity.CounterKindOrders, morning))
	require.NoError(t, store.Increment(ctx, entity.CounterKindOrders, evening))

	all, err := engine.DailyCounts().GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, int64(2), all[0].Count)
}

func TestDailyCountStore_Increment_KindsAreIndependent(t *testing.T) {
	engine := NewEngine()
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	store := engine.DailyCounts()
	require.NoError(t, store.Increment(ctx, entity.CounterKindVisitors, now))
	require.NoError(t, store.Increment(ctx, entity.CounterKindOrders, now))

	all, err := engine.DailyCounts().GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDailyCountStore_Increment_ConcurrentSameDay(t *testing.T) {
	engine := NewEngine()
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	const workers = 64

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			assert.NoError(t, engine.DailyCounts().Increment(ctx, entity.CounterKindVisitors, now))
		}()
	}
	wg.Wait()

	all, err := engine.DailyCounts().GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1, "concurrent increments must not create duplicate buckets")
	assert.Equal(t, int64(workers), all[0].Count)
}
