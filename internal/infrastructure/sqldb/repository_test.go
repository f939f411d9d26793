package sqldb

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/todolite/todolite/internal/domain"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	db := openTestDB(t, filepath.Join(t.TempDir(), "todos.db"))
	return NewRepository(db)
}

func openTestDB(t *testing.T, path string) *sql.DB {
	t.Helper()
	db, err := Open(path, PoolConfig{MaxOpenConns: 2, MaxIdleConns: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRepository_EmptyListsEmpty(t *testing.T) {
	repo := newTestRepository(t)

	todos, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, todos)
}

func TestRepository_AddToggleRemoveScenario(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	added, err := repo.Add(ctx, "buy milk")
	require.NoError(t, err)
	assert.Equal(t, int64(1), added.ID)

	todos, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, domain.Todo{ID: 1, Text: "buy milk", Completed: false}, todos[0])

	require.NoError(t, repo.Toggle(ctx, 1))
	todos, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Todo{ID: 1, Text: "buy milk", Completed: true}, todos[0])

	require.NoError(t, repo.Remove(ctx, 1))
	todos, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, todos)
}

func TestRepository_IDsAreMonotonicAndNeverReused(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	a, err := repo.Add(ctx, "first")
	require.NoError(t, err)
	b, err := repo.Add(ctx, "second")
	require.NoError(t, err)
	assert.Greater(t, b.ID, a.ID)

	// AUTOINCREMENT must not hand out b's id again after its removal.
	require.NoError(t, repo.Remove(ctx, b.ID))
	c, err := repo.Add(ctx, "third")
	require.NoError(t, err)
	assert.Greater(t, c.ID, b.ID)
}

func TestRepository_ToggleIsInvolution(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	added, err := repo.Add(ctx, "laundry")
	require.NoError(t, err)

	require.NoError(t, repo.Toggle(ctx, added.ID))
	require.NoError(t, repo.Toggle(ctx, added.ID))

	todos, err := repo.List(ctx)
	require.NoError(t, err)
	assert.False(t, todos[0].Completed)
}

func TestRepository_ToggleMissingID(t *testing.T) {
	repo := newTestRepository(t)

	err := repo.Toggle(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepository_RemoveMissingIDIsNoOp(t *testing.T) {
	repo := newTestRepository(t)

	require.NoError(t, repo.Remove(context.Background(), 42))
}

func TestRepository_InsertionOrderSurvivesRemoval(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	a, err := repo.Add(ctx, "A")
	require.NoError(t, err)
	b, err := repo.Add(ctx, "B")
	require.NoError(t, err)

	require.NoError(t, repo.Remove(ctx, a.ID))

	todos, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, b.ID, todos[0].ID)
}

func TestOpen_SchemaCreatedIfAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fresh.db")
	ctx := context.Background()

	// First open bootstraps the table; a second open must not disturb it.
	first := NewRepository(openTestDB(t, path))
	_, err := first.Add(ctx, "persists")
	require.NoError(t, err)

	second := NewRepository(openTestDB(t, path))
	todos, err := second.List(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, "persists", todos[0].Text)
}
