package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	todov1 "github.com/todolite/todolite/api/proto/v1"
	"github.com/todolite/todolite/internal/domain"
)

// fakeStore is an in-memory domain.Store for exercising the service layer.
type fakeStore struct {
	todos    []domain.Todo
	nextID   int64
	failWith error
	addCalls int
}

func (f *fakeStore) List(ctx context.Context) ([]domain.Todo, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return append([]domain.Todo(nil), f.todos...), nil
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

func newTestService(store *fakeStore) *TodoServiceServer {
	return NewTodoServiceServer(store, zap.NewNop())
}

func TestListTodos_PreservesOrder(t *testing.T) {
	store := &fakeStore{todos: []domain.Todo{
		{ID: 1, Text: "first"},
		{ID: 2, Text: "second", Completed: true},
	}}
	svc := newTestService(store)

	resp, err := svc.ListTodos(context.Background(), &todov1.ListTodosRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Todos, 2)
	assert.Equal(t, int64(1), resp.Todos[0].Id)
	assert.Equal(t, "first", resp.Todos[0].Text)
	assert.Equal(t, int64(2), resp.Todos[1].Id)
	assert.True(t, resp.Todos[1].Completed)
}

func TestAddTodo_ReturnsAssignedID(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)

	resp, err := svc.AddTodo(context.Background(), &todov1.AddTodoRequest{Text: "buy milk"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Id)
}

func TestAddTodo_RejectsEmptyTextWithoutStoreCall(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)

	for _, text := range []string{"", "   ", "\t"} {
		_, err := svc.AddTodo(context.Background(), &todov1.AddTodoRequest{Text: text})
		require.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	}
	assert.Zero(t, store.addCalls)
}

func TestToggleTodo_MissingIDIsNotFound(t *testing.T) {
	svc := newTestService(&fakeStore{})

	_, err := svc.ToggleTodo(context.Background(), &todov1.ToggleTodoRequest{Id: 42})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestRemoveTodo_MissingIDIsNoOp(t *testing.T) {
	svc := newTestService(&fakeStore{})

	_, err := svc.RemoveTodo(context.Background(), &todov1.RemoveTodoRequest{Id: 42})
	require.NoError(t, err)
}

func TestStoreFailuresMapToInternal(t *testing.T) {
	store := &fakeStore{failWith: errors.New("disk on fire")}
	svc := newTestService(store)
	ctx := context.Background()

	_, err := svc.ListTodos(ctx, &todov1.ListTodosRequest{})
	assert.Equal(t, codes.Internal, status.Code(err))

	_, err = svc.AddTodo(ctx, &todov1.AddTodoRequest{Text: "x"})
	assert.Equal(t, codes.Internal, status.Code(err))

	_, err = svc.ToggleTodo(ctx, &todov1.ToggleTodoRequest{Id: 1})
	assert.Equal(t, codes.Internal, status.Code(err))

	_, err = svc.RemoveTodo(ctx, &todov1.RemoveTodoRequest{Id: 1})
	assert.Equal(t, codes.Internal, status.Code(err))
}
