package domain

import "context"

// Store defines the contract for todo persistence. Two interchangeable
// backends implement it for the UI process (the local JSON file store and
// the remote gRPC store); the host process implements it over a relational
// database.
type Store interface {
	// List retrieves every todo in insertion order. An empty list is not
	// an error.
	List(ctx context.Context) ([]Todo, error)

	// Add persists a new todo and returns it with its assigned ID. Text
	// validation happens at the caller's boundary, not here.
	Add(ctx context.Context, text string) (Todo, error)

	// Toggle flips the completed flag of the todo with the given ID.
	// Returns ErrNotFound if no such todo exists.
	Toggle(ctx context.Context, id int64) error

	// Remove deletes the todo with the given ID. Removing an absent ID is
	// a no-op.
	Remove(ctx context.Context, id int64) error
}
