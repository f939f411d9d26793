package grpcstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	todov1 "github.com/todolite/todolite/api/proto/v1"
	"github.com/todolite/todolite/internal/domain"
)

// fakeClient implements todov1.TodoServiceClient without a network.
type fakeClient struct {
	listResp *todov1.ListTodosResponse
	addResp  *todov1.AddTodoResponse
	err      error

	lastCtx context.Context
}

func (f *fakeClient) ListTodos(ctx context.Context, in *todov1.ListTodosRequest, opts ...grpc.CallOption) (*todov1.ListTodosResponse, error) {
	f.lastCtx = ctx
	return f.listResp, f.err
}

func (f *fakeClient) AddTodo(ctx context.Context, in *todov1.AddTodoRequest, opts ...grpc.CallOption) (*todov1.AddTodoResponse, error) {
	f.lastCtx = ctx
	return f.addResp, f.err
}

func (f *fakeClient) ToggleTodo(ctx context.Context, in *todov1.ToggleTodoRequest, opts ...grpc.CallOption) (*todov1.ToggleTodoResponse, error) {
	f.lastCtx = ctx
	if f.err != nil {
		return nil, f.err
	}
	return &todov1.ToggleTodoResponse{}, nil
}

func (f *fakeClient) RemoveTodo(ctx context.Context, in *todov1.RemoveTodoRequest, opts ...grpc.CallOption) (*todov1.RemoveTodoResponse, error) {
	f.lastCtx = ctx
	if f.err != nil {
		return nil, f.err
	}
	return &todov1.RemoveTodoResponse{}, nil
}

func TestList_MapsWireTypesInOrder(t *testing.T) {
	client := &fakeClient{listResp: &todov1.ListTodosResponse{Todos: []*todov1.Todo{
		{Id: 1, Text: "first"},
		{Id: 2, Text: "second", Completed: true},
	}}}
	store := New(client, "")

	todos, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Todo{
		{ID: 1, Text: "first"},
		{ID: 2, Text: "second", Completed: true},
	}, todos)
}

func TestAdd_MaterializesItemFromAssignedID(t *testing.T) {
	client := &fakeClient{addResp: &todov1.AddTodoResponse{Id: 7}}
	store := New(client, "")

	todo, err := store.Add(context.Background(), "buy milk")
	require.NoError(t, err)
	assert.Equal(t, domain.Todo{ID: 7, Text: "buy milk", Completed: false}, todo)
}

func TestToggle_NotFoundStatusMapsToDomainError(t *testing.T) {
	client := &fakeClient{err: status.Error(codes.NotFound, "todo not found")}
	store := New(client, "")

	err := store.Toggle(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBearerTokenAttachedWhenConfigured(t *testing.T) {
	client := &fakeClient{}
	store := New(client, "secret-token")

	_ = store.Remove(context.Background(), 1)

	md, ok := metadata.FromOutgoingContext(client.lastCtx)
	require.True(t, ok)
	assert.Equal(t, []string{"Bearer secret-token"}, md.Get("authorization"))
}

func TestNoMetadataWithoutToken(t *testing.T) {
	client := &fakeClient{}
	store := New(client, "")

	_ = store.Remove(context.Background(), 1)

	_, ok := metadata.FromOutgoingContext(client.lastCtx)
	assert.False(t, ok)
}
