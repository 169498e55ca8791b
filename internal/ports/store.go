// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrNotFound, ErrValidation, etc.)
//   - Keep interfaces small and focused (Interface Segregation Principle)
package ports

import (
	"context"

	"github.com/riyasahamed27/book-quote-shorts/internal/domain"
)

// DefaultRandomLimit is the batch size used when a caller does not ask for
// a specific number of random quotes.
const DefaultRandomLimit = 10

// QuoteStore is the persistence boundary for quotes. Each operation is
// independent and stateless between calls.
type QuoteStore interface {
	// ListAll returns every quote ordered newest first.
	// Returns domain.ErrUnavailable if the store cannot be reached.
	ListAll(ctx context.Context) ([]domain.Quote, error)

	// ListRandom returns up to limit quotes sampled uniformly from the
	// whole table, in no particular order. A limit larger than the table
	// simply returns the whole table.
	ListRandom(ctx context.Context, limit int) ([]domain.Quote, error)

	// Insert persists a new quote and returns it with the store-assigned
	// id and created_at. Field validation happens above this port.
	Insert(ctx context.Context, text, author, bookTitle string) (*domain.Quote, error)

	// IncrementLike adds exactly one to the like counter of the matching
	// row and returns the post-increment value. A missing id is a silent
	// no-op: found is false, count is zero, and err is nil.
	IncrementLike(ctx context.Context, id int64) (count int64, found bool, err error)

	// Search returns quotes whose text, author, or book title contains
	// the query, case-insensitively, ordered newest first.
	Search(ctx context.Context, query string) ([]domain.Quote, error)
}
