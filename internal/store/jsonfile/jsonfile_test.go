package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/todolite/todolite/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "todos.json"))
}

func TestStore_EmptyFileListsEmpty(t *testing.T) {
	s := newTestStore(t)

	todos, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, todos)
}

func TestStore_AddToggleRemoveScenario(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	added, err := s.Add(ctx, "buy milk")
	require.NoError(t, err)
	assert.Equal(t, int64(1), added.ID)

	todos, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, domain.Todo{ID: 1, Text: "buy milk", Completed: false}, todos[0])

	require.NoError(t, s.Toggle(ctx, 1))
	todos, err = s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Todo{ID: 1, Text: "buy milk", Completed: true}, todos[0])

	require.NoError(t, s.Remove(ctx, 1))
	todos, err = s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, todos)
}

func TestStore_ListIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Add(ctx, "one")
	require.NoError(t, err)
	_, err = s.Add(ctx, "two")
	require.NoError(t, err)

	first, err := s.List(ctx)
	require.NoError(t, err)
	second, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestStore_ToggleIsInvolution(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	added, err := s.Add(ctx, "laundry")
	require.NoError(t, err)

	require.NoError(t, s.Toggle(ctx, added.ID))
	require.NoError(t, s.Toggle(ctx, added.ID))

	todos, err := s.List(ctx)
	require.NoError(t, err)
	assert.False(t, todos[0].Completed)
}

func TestStore_ToggleMissingID(t *testing.T) {
	s := newTestStore(t)

	err := s.Toggle(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_RemoveIsPermanentAndIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	added, err := s.Add(ctx, "ephemeral")
	require.NoError(t, err)

	require.NoError(t, s.Remove(ctx, added.ID))
	// Second remove of the same id is a no-op, not an error.
	require.NoError(t, s.Remove(ctx, added.ID))

	todos, err := s.List(ctx)
	require.NoError(t, err)
	for _, todo := range todos {
		assert.NotEqual(t, added.ID, todo.ID)
	}
}

func TestStore_InsertionOrderSurvivesRemoval(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a, err := s.Add(ctx, "A")
	require.NoError(t, err)
	b, err := s.Add(ctx, "B")
	require.NoError(t, err)

	require.NoError(t, s.Remove(ctx, a.ID))

	todos, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, b.ID, todos[0].ID)
	assert.Equal(t, "B", todos[0].Text)
}

func TestStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.json")
	ctx := context.Background()

	first := New(path)
	added, err := first.Add(ctx, "durable")
	require.NoError(t, err)
	require.NoError(t, first.Toggle(ctx, added.ID))

	second := New(path)
	todos, err := second.List(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, "durable", todos[0].Text)
	assert.True(t, todos[0].Completed)
}

func TestStore_UnreadableBlobFailsList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := New(path).List(context.Background())
	assert.Error(t, err)
}
