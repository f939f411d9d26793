// Package grpcstore implements the remote persistence variant: a
// domain.Store whose four operations are single round trips to the host
// process's TodoService. No state is cached client-side; every read asks the
// host again.
package grpcstore

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	todov1 "github.com/todolite/todolite/api/proto/v1"
	"github.com/todolite/todolite/internal/domain"
)

// Store is a domain.Store backed by a TodoService client.
type Store struct {
	client todov1.TodoServiceClient
	token  string
}

var _ domain.Store = (*Store)(nil)

// New wraps an existing client. token, when non-empty, is sent as a bearer
// credential on every call.
func New(client todov1.TodoServiceClient, token string) *Store {
	return &Store{client: client, token: token}
}

// Dial connects to the host process and returns a Store over the connection.
// The connection is held for the process lifetime; the caller closes it.
func Dial(addr, token string) (*Store, *grpc.ClientConn, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	return New(todov1.NewTodoServiceClient(conn), token), conn, nil
}

func (s *Store) List(ctx context.Context) ([]domain.Todo, error) {
	resp, err := s.client.ListTodos(s.withAuth(ctx), &todov1.ListTodosRequest{})
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", mapStatusError(err))
	}

	todos := make([]domain.Todo, len(resp.Todos))
	for i, pb := range resp.Todos {
		todos[i] = domain.Todo{
			ID:        pb.Id,
			Text:      pb.Text,
			Completed: pb.Completed,
		}
	}
	return todos, nil
}

func (s *Store) Add(ctx context.Context, text string) (domain.Todo, error) {
	resp, err := s.client.AddTodo(s.withAuth(ctx), &todov1.AddTodoRequest{Text: text})
	if err != nil {
		return domain.Todo{}, fmt.Errorf("add todo: %w", mapStatusError(err))
	}
	// The wire response carries only the assigned id; the rest of the item
	// is known from our own input.
	return domain.Todo{ID: resp.Id, Text: text, Completed: false}, nil
}

func (s *Store) Toggle(ctx context.Context, id int64) error {
	_, err := s.client.ToggleTodo(s.withAuth(ctx), &todov1.ToggleTodoRequest{Id: id})
	if err != nil {
		return fmt.Errorf("toggle todo %d: %w", id, mapStatusError(err))
	}
	return nil
}

func (s *Store) Remove(ctx context.Context, id int64) error {
	_, err := s.client.RemoveTodo(s.withAuth(ctx), &todov1.RemoveTodoRequest{Id: id})
	if err != nil {
		return fmt.Errorf("remove todo %d: %w", id, mapStatusError(err))
	}
	return nil
}

func (s *Store) withAuth(ctx context.Context) context.Context {
	if s.token == "" {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+s.token)
}

// mapStatusError translates wire status codes back into domain errors so
// callers can errors.Is against the same sentinels as with local stores.
func mapStatusError(err error) error {
	if status.Code(err) == codes.NotFound {
		return domain.ErrNotFound
	}
	return err
}
