package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/todolite/todolite/internal/domain"
)

type fakeStore struct {
	todos    []domain.Todo
	nextID   int64
	failWith error

	addCalls    int
	toggleCalls int
	removeCalls int
}

func (f *fakeStore) List(ctx context.Context) ([]domain.Todo, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := make([]domain.Todo, len(f.todos))
	copy(out, f.todos)
	return out, nil
}

func (f *fakeStore) Add(ctx context.Context, text string) (domain.Todo, error) {
	f.addCalls++
	if f.failWith != nil {
		return domain.Todo{}, f.failWith
	}
	f.nextID++
	todo := domain.Todo{ID: f.nextID, Text: text}
	f.todos = append(f.todos, todo)
	return todo, nil
}

func (f *fakeStore) Toggle(ctx context.Context, id int64) error {
	f.toggleCalls++
	if f.failWith != nil {
		return f.failWith
	}
	for i := range f.todos {
		if f.todos[i].ID == id {
			f.todos[i].Completed = !f.todos[i].Completed
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeStore) Remove(ctx context.Context, id int64) error {
	f.removeCalls++
	if f.failWith != nil {
		return f.failWith
	}
	for i := range f.todos {
		if f.todos[i].ID == id {
			f.todos = append(f.todos[:i], f.todos[i+1:]...)
			return nil
		}
	}
	return nil
}

// drive feeds a message to the model and, like the runtime, feeds store
// messages produced by the resulting command back in. Other commands
// (cursor blinks, quit) are not followed.
func drive(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	for cmd != nil {
		out := cmd()
		switch out.(type) {
		case itemsMsg, errMsg:
			next, cmd = model.Update(out)
			model, ok = next.(Model)
			require.True(t, ok)
		default:
			return model
		}
	}
	return model
}

func keyMsg(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestInitLoadsSnapshot(t *testing.T) {
	store := &fakeStore{todos: []domain.Todo{{ID: 1, Text: "buy milk"}}}
	m := NewModel(store)

	out := m.Init()()
	m = drive(t, m, out)

	assert.Equal(t, []domain.Todo{{ID: 1, Text: "buy milk"}}, m.todos)
	assert.Contains(t, m.View(), "buy milk")
}

func TestToggleGoesThroughStoreAndRefreshes(t *testing.T) {
	store := &fakeStore{todos: []domain.Todo{{ID: 1, Text: "buy milk"}}, nextID: 1}
	m := drive(t, NewModel(store), itemsMsg(store.todos))

	m = drive(t, m, keyMsg(" "))

	assert.Equal(t, 1, store.toggleCalls)
	assert.True(t, m.todos[0].Completed)
}

func TestRemoveGoesThroughStoreAndRefreshes(t *testing.T) {
	store := &fakeStore{todos: []domain.Todo{{ID: 1, Text: "a"}, {ID: 2, Text: "b"}}, nextID: 2}
	m := drive(t, NewModel(store), itemsMsg(store.todos))

	m = drive(t, m, keyMsg("d"))

	assert.Equal(t, 1, store.removeCalls)
	require.Len(t, m.todos, 1)
	assert.Equal(t, int64(2), m.todos[0].ID)
}

func TestAddSubmitsTrimmedText(t *testing.T) {
	store := &fakeStore{}
	m := drive(t, NewModel(store), itemsMsg(nil))

	m = drive(t, m, keyMsg("a"))
	m.input.SetValue("  buy milk  ")
	m = drive(t, m, keyMsg("enter"))

	assert.Equal(t, 1, store.addCalls)
	require.Len(t, m.todos, 1)
	assert.Equal(t, "buy milk", m.todos[0].Text)
}

func TestEmptySubmitNeverReachesStore(t *testing.T) {
	store := &fakeStore{}
	m := drive(t, NewModel(store), itemsMsg(nil))

	m = drive(t, m, keyMsg("a"))
	m.input.SetValue("   ")
	m = drive(t, m, keyMsg("enter"))

	assert.Zero(t, store.addCalls)
	assert.True(t, m.adding)
	assert.Contains(t, m.View(), "cannot be empty")
}

func TestStoreErrorKeepsPriorSnapshot(t *testing.T) {
	store := &fakeStore{todos: []domain.Todo{{ID: 1, Text: "buy milk"}}, nextID: 1}
	m := drive(t, NewModel(store), itemsMsg(store.todos))

	store.failWith = errors.New("disk full")
	m = drive(t, m, keyMsg(" "))

	assert.Equal(t, []domain.Todo{{ID: 1, Text: "buy milk"}}, m.todos)
	assert.Contains(t, m.View(), "disk full")
}

func TestCursorClampsAfterRemoval(t *testing.T) {
	store := &fakeStore{todos: []domain.Todo{{ID: 1, Text: "a"}, {ID: 2, Text: "b"}}, nextID: 2}
	m := drive(t, NewModel(store), itemsMsg(store.todos))

	m = drive(t, m, keyMsg("j"))
	m = drive(t, m, keyMsg("d"))

	assert.Equal(t, 0, m.cursor)
	require.Len(t, m.todos, 1)
}

func TestViewMarksCompletedItems(t *testing.T) {
	view := renderList([]domain.Todo{
		{ID: 1, Text: "pending item"},
		{ID: 2, Text: "done item", Completed: true},
	}, 0)

	require.Equal(t, 2, len(strings.Split(view, "\n")))
	assert.Contains(t, view, boxUnchecked)
	assert.Contains(t, view, boxChecked)
}
