package memory

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCategory(name, slug string) *entity.Category {
	return &entity.Category{
		ID:      uuid.New(),
		Name:    name,
		SeoSlug: slug,
	}
}

func TestStore_InsertCommit_RoundTrip(t *testing.T) {
	engine := NewEngine()
	ctx := context.Background()

	store := engine.Categories()
	category := newCategory("Books", "books")
	require.NoError(t, store.Insert(category))
	require.NoError(t, store.Commit(ctx))

	found, err := engine.Categories().Find(ctx, repository.Eq("id", category.ID))
	require.NoError(t, err)
	assert.Equal(t, category.ID, found.ID)
	assert.Equal(t, "Books", found.Name)
	assert.Equal(t, "books", found.SeoSlug)
}

func TestStore_StagedChangesInvisibleUntilCommit(t *testing.T) {
	engine := NewEngine()
	ctx := context.Background()

	store := engine.Categories()
	require.NoError(t, store.Insert(newCategory("Books", "books")))

	// A fresh unit of work sees nothing until the first one commits.
	all, err := engine.Categories().GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	require.NoError(t, store.Commit(ctx))

	all, err = engine.Categories().GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestStore_Commit_AtomicOnFailure(t *testing.T) {
	engine := NewEngine()
	ctx := context.Background()

	seed := newCategory("Books", "books")
	seedStore := engine.Categories()
	require.NoError(t, seedStore.Insert(seed))
	require.NoError(t, seedStore.Commit(ctx))

	// One valid insert plus one update of a row that does not exist.
	store := engine.Categories()
	require.NoError(t, store.Insert(newCategory("Games", "games")))
	require.NoError(t, store.Update(newCategory("Ghost", "ghost")))

	err := store.Commit(ctx)
	require.Error(t, err)

	var appErr domainerrors.AppError
	assert.ErrorAs(t, err, &appErr)

	// Neither staged operation was applied.
	all, err := engine.Categories().GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, seed.ID, all[0].ID)
}

func TestStore_Find_NotFound(t *testing.T) {
	engine := NewEngine()

	_, err := engine.Categories().Find(context.Background(), repository.Eq("id", uuid.New()))
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStore_FindMany_FiltersByCondition(t *testing.T) {
	engine := NewEngine()
	ctx := context.Background()

	root := newCategory("Root", "root")
	child := newCategory("Child", "child")
	child.ParentCategoryID = root.ID

	store := engine.Categories()
	require.NoError(t, store.Insert(root))
	require.NoError(t, store.Insert(child))
	require.NoError(t, store.Commit(ctx))

	roots, err := engine.Categories().FindMany(ctx, repository.Eq("parent_category_id", uuid.Nil))
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Equal(t, root.ID, roots[0].ID)
}

func TestStore_Stage_NilEntity(t *testing.T) {
	engine := NewEngine()
	store := engine.Categories()

	assert.ErrorIs(t, store.Insert(nil), domainerrors.ErrNilEntity)
	assert.ErrorIs(t, store.Update(nil), domainerrors.ErrNilEntity)
	assert.ErrorIs(t, store.Delete(nil), domainerrors.ErrNilEntity)
}

func TestStore_Insert_DuplicateIDRejected(t *testing.T) {
	engine := NewEngine()
	ctx := context.Background()

	category := newCategory("Books", "books")
	first := engine.Categories()
	require.NoError(t, first.Insert(category))
	require.NoError(t, first.Commit(ctx))

	second := engine.Categories()
	require.NoError(t, second.Insert(category))
	assert.Error(t, second.Commit(ctx))
}

func TestStore_ReturnedRowsAreCopies(t *testing.T) {
	engine := NewEngine()
	ctx := context.Background()

	category := newCategory("Books", "books")
	store := engine.Categories()
	require.NoError(t, store.Insert(category))
	require.NoError(t, store.Commit(ctx))

	found, err := engine.Categories().Find(ctx, repository.Eq("id", category.ID))
	require.NoError(t, err)

	// Mutating the returned row must not leak into the table.
	found.Name = "Mutated"

	again, err := engine.Categories().Find(ctx, repository.Eq("id", category.ID))
	require.NoError(t, err)
	assert.Equal(t, "Books", again.Name)
}
