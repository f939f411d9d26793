// Package jsonfile implements the local persistence variant: the whole
// collection is one JSON array in a single file, rewritten in full on every
// mutation. Not scalable, but acceptable at the scale of a personal list.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/todolite/todolite/internal/domain"
)

// Store is a domain.Store backed by a single JSON file.
type Store struct {
	path string
}

var _ domain.Store = (*Store)(nil)

// New creates a store over the given file path. The file is created lazily
// on the first mutation; a missing file reads as an empty list.
func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) List(ctx context.Context) ([]domain.Todo, error) {
	return s.load()
}

func (s *Store) Add(ctx context.Context, text string) (domain.Todo, error) {
	todos, err := s.load()
	if err != nil {
		return domain.Todo{}, err
	}

	// One greater than the current maximum, or 1 for an empty list.
	var maxID int64
	for _, t := range todos {
		if t.ID > maxID {
			maxID = t.ID
		}
	}

	todo := domain.Todo{ID: maxID + 1, Text: text}
	todos = append(todos, todo)
	if err := s.save(todos); err != nil {
		return domain.Todo{}, err
	}
	return todo, nil
}

func (s *Store) Toggle(ctx context.Context, id int64) error {
	todos, err := s.load()
	if err != nil {
		return err
	}

	for i := range todos {
		if todos[i].ID == id {
			todos[i].Completed = !todos[i].Completed
			return s.save(todos)
		}
	}
	return domain.ErrNotFound
}

func (s *Store) Remove(ctx context.Context, id int64) error {
	todos, err := s.load()
	if err != nil {
		return err
	}

	for i := range todos {
		if todos[i].ID == id {
			todos = append(todos[:i], todos[i+1:]...)
			return s.save(todos)
		}
	}
	// Removing an absent id is a no-op; nothing to rewrite.
	return nil
}

func (s *Store) load() ([]domain.Todo, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []domain.Todo{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var todos []domain.Todo
	if err := json.Unmarshal(b, &todos); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return todos, nil
}

func (s *Store) save(todos []domain.Todo) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}
	b, err := json.MarshalIndent(todos, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
