package app

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	todov1 "github.com/todolite/todolite/api/proto/v1"
	"github.com/todolite/todolite/internal/domain"
)

// TodoServiceServer exposes the store's four operations over gRPC. Each
// handler is a single store call: validate, mutate or read, map errors to
// status codes.
type TodoServiceServer struct {
	todov1.UnimplementedTodoServiceServer
	store  domain.Store
	logger *zap.Logger
	tracer trace.Tracer
}

func NewTodoServiceServer(store domain.Store, logger *zap.Logger) *TodoServiceServer {
	return &TodoServiceServer{
		store:  store,
		logger: logger,
		tracer: otel.Tracer("todo-service"),
	}
}

func (s *TodoServiceServer) ListTodos(ctx context.Context, req *todov1.ListTodosRequest) (*todov1.ListTodosResponse, error) {
	ctx, span := s.tracer.Start(ctx, "ListTodos")
	defer span.End()

	todos, err := s.store.List(ctx)
	if err != nil {
		s.logger.Error("failed to list todos", zap.Error(err))
		return nil, status.Error(codes.Internal, "failed to list todos")
	}

	span.SetAttributes(attribute.Int("todo.count", len(todos)))

	protoTodos := make([]*todov1.Todo, len(todos))
	for i, todo := range todos {
		protoTodos[i] = &todov1.Todo{
			Id:        todo.ID,
			Text:      todo.Text,
			Completed: todo.Completed,
		}
	}

	return &todov1.ListTodosResponse{Todos: protoTodos}, nil
}

func (s *TodoServiceServer) AddTodo(ctx context.Context, req *todov1.AddTodoRequest) (*todov1.AddTodoResponse, error) {
	ctx, span := s.tracer.Start(ctx, "AddTodo")
	defer span.End()

	// The UI rejects empty text before calling; this guards other callers.
	if err := domain.ValidateText(req.Text); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	todo, err := s.store.Add(ctx, req.Text)
	if err != nil {
		s.logger.Error("failed to create todo", zap.Error(err))
		return nil, status.Error(codes.Internal, "failed to create todo")
	}

	s.logger.Info("todo created", zap.Int64("todo_id", todo.ID))
	span.SetAttributes(attribute.Int64("todo.id", todo.ID))

	return &todov1.AddTodoResponse{Id: todo.ID}, nil
}

func (s *TodoServiceServer) ToggleTodo(ctx context.Context, req *todov1.ToggleTodoRequest) (*todov1.ToggleTodoResponse, error) {
	ctx, span := s.tracer.Start(ctx, "ToggleTodo")
	defer span.End()

	span.SetAttributes(attribute.Int64("todo.id", req.Id))

	if err := s.store.Toggle(ctx, req.Id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "todo not found")
		}
		s.logger.Error("failed to toggle todo",
			zap.Error(err),
			zap.Int64("todo_id", req.Id),
		)
		return nil, status.Error(codes.Internal, "failed to toggle todo")
	}

	return &todov1.ToggleTodoResponse{}, nil
}

func (s *TodoServiceServer) RemoveTodo(ctx context.Context, req *todov1.RemoveTodoRequest) (*todov1.RemoveTodoResponse, error) {
	ctx, span := s.tracer.Start(ctx, "RemoveTodo")
	defer span.End()

	span.SetAttributes(attribute.Int64("todo.id", req.Id))

	if err := s.store.Remove(ctx, req.Id); err != nil {
		s.logger.Error("failed to remove todo",
			zap.Error(err),
			zap.Int64("todo_id", req.Id),
		)
		return nil, status.Error(codes.Internal, "failed to remove todo")
	}

	s.logger.Info("todo removed", zap.Int64("todo_id", req.Id))
	return &todov1.RemoveTodoResponse{}, nil
}
