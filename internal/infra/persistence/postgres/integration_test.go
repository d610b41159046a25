//go:build integration
// +build integration

package postgres

import (
	"context"
	"sync"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupTestDB starts a throwaway PostgreSQL container and returns a migrated
// gorm handle.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:alpine",
		pgcontainer.WithDatabase("storefront_test"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	return db
}

func TestIntegration_Store_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	stores := NewStores(db)
	ctx := context.Background()

	category := &entity.Category{
		ID:        uuid.New(),
		Name:      "Books",
		SeoSlug:   "books",
		Published: true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	store := stores.Categories()
	require.NoError(t, store.Insert(category))
	require.NoError(t, store.Commit(ctx))

	found, err := stores.Categories().Find(ctx, repository.Eq("seo_slug", "books"))
	require.NoError(t, err)
	assert.Equal(t, category.ID, found.ID)

	_, err = stores.Categories().Find(ctx, repository.Eq("seo_slug", "missing"))
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestIntegration_Store_CommitRollsBackOnConstraintViolation(t *testing.T) {
	db := setupTestDB(t)
	stores := NewStores(db)
	ctx := context.Background()

	seed := &entity.Category{ID: uuid.New(), Name: "Books", SeoSlug: "books"}
	seedStore := stores.Categories()
	require.NoError(t, seedStore.Insert(seed))
	require.NoError(t, seedStore.Commit(ctx))

	// Second record reuses the slug; the first record in the batch is valid.
	store := stores.Categories()
	require.NoError(t, store.Insert(&entity.Category{ID: uuid.New(), Name: "Games", SeoSlug: "games"}))
	require.NoError(t, store.Insert(&entity.Category{ID: uuid.New(), Name: "Dupe", SeoSlug: "books"}))
	require.Error(t, store.Commit(ctx))

	all, err := stores.Categories().GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1, "failed commit must not apply any staged operation")
}

func TestIntegration_DailyCountStore_ConcurrentIncrement(t *testing.T) {
	db := setupTestDB(t)
	stores := NewStores(db)
	ctx := context.Background()
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	const workers = 32

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			assert.NoError(t, stores.DailyCounts().Increment(ctx, entity.CounterKindVisitors, now))
		}()
	}
	wg.Wait()

	counts, err := stores.DailyCounts().FindMany(ctx, repository.Eq("kind", entity.CounterKindVisitors))
	require.NoError(t, err)
	require.Len(t, counts, 1)
	assert.Equal(t, int64(workers), counts[0].Count)
}
