package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/todolite/todolite/internal/domain"
)

const queryTimeout = 5 * time.Second

// Repository implements domain.Store over a relational database. No state
// is cached in memory: every read re-queries, every mutation is a single
// statement, and consistency between concurrent writers is last-write-wins.
type Repository struct {
	db     *sql.DB
	tracer trace.Tracer
}

var _ domain.Store = (*Repository)(nil)

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		db:     db,
		tracer: otel.Tracer("sqldb-repository"),
	}
}

func (r *Repository) List(ctx context.Context) ([]domain.Todo, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	ctx, span := r.tracer.Start(ctx, "repository.List")
	defer span.End()

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, text, completed FROM todos ORDER BY id`)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	defer rows.Close()

	todos := make([]domain.Todo, 0)
	for rows.Next() {
		var todo domain.Todo
		if err := rows.Scan(&todo.ID, &todo.Text, &todo.Completed); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("failed to scan todo: %w", err)
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("error iterating todos: %w", err)
	}

	span.SetAttributes(attribute.Int("returned_count", len(todos)))
	return todos, nil
}

func (r *Repository) Add(ctx context.Context, text string) (domain.Todo, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	ctx, span := r.tracer.Start(ctx, "repository.Add")
	defer span.End()

	todo := domain.Todo{Text: text}
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO todos (text) VALUES ($1) RETURNING id`, text,
	).Scan(&todo.ID)
	if err != nil {
		span.RecordError(err)
		return domain.Todo{}, fmt.Errorf("failed to create todo: %w", err)
	}

	span.SetAttributes(attribute.Int64("todo.id", todo.ID))
	return todo, nil
}

func (r *Repository) Toggle(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	ctx, span := r.tracer.Start(ctx, "repository.Toggle")
	defer span.End()

	span.SetAttributes(attribute.Int64("todo.id", id))

	result, err := r.db.ExecContext(ctx,
		`UPDATE todos SET completed = NOT completed WHERE id = $1`, id)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to toggle todo: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		span.SetAttributes(attribute.Bool("not_found", true))
		return domain.ErrNotFound
	}

	return nil
}

func (r *Repository) Remove(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	ctx, span := r.tracer.Start(ctx, "repository.Remove")
	defer span.End()

	span.SetAttributes(attribute.Int64("todo.id", id))

	// Removing an absent id is a no-op, so rows affected is not checked.
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM todos WHERE id = $1`, id); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to remove todo: %w", err)
	}

	return nil
}
