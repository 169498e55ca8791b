// Package app contains application services that orchestrate use cases.
// It coordinates domain logic and infrastructure through ports and handles
// cross-cutting concerns such as logging. HTTP specifics belong to adapters,
// queries to the storage adapter.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/riyasahamed27/book-quote-shorts/internal/domain"
	"github.com/riyasahamed27/book-quote-shorts/internal/platform/logging"
	"github.com/riyasahamed27/book-quote-shorts/internal/ports"
)

// QuoteService orchestrates quote-related use cases.
// It depends on the QuoteStore port, not a concrete implementation.
type QuoteService struct {
	store  ports.QuoteStore
	logger *slog.Logger
}

// QuoteServiceConfig contains configuration for the quote service.
type QuoteServiceConfig struct {
	Store  ports.QuoteStore
	Logger *slog.Logger
}

// NewQuoteService creates a new quote service with the provided dependencies.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuoteService{
		store:  cfg.Store,
		logger: logger.With(slog.String("component", "app.QuoteService")),
	}
}

// ListAll returns every quote, newest first.
func (s *QuoteService) ListAll(ctx context.Context) ([]domain.Quote, error) {
	quotes, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing quotes: %w", err)
	}

	s.log(ctx).DebugContext(ctx, "listed quotes", slog.Int("count", len(quotes)))

	return quotes, nil
}

// ListRandom returns up to limit random quotes. Non-positive limits fall
// back to the default batch size.
func (s *QuoteService) ListRandom(ctx context.Context, limit int) ([]domain.Quote, error) {
	if limit <= 0 {
		limit = ports.DefaultRandomLimit
	}

	quotes, err := s.store.ListRandom(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing random quotes: %w", err)
	}

	s.log(ctx).DebugContext(ctx, "listed random quotes",
		slog.Int("limit", limit),
		slog.Int("count", len(quotes)),
	)

	return quotes, nil
}

// AddQuote validates and persists a new quote.
// All three fields must be non-empty after trimming.
func (s *QuoteService) AddQuote(ctx context.Context, text, author, bookTitle string) (*domain.Quote, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("validating input: %w", domain.NewValidationError("text", "cannot be empty"))
	}

	if strings.TrimSpace(author) == "" {
		return nil, fmt.Errorf("validating input: %w", domain.NewValidationError("author", "cannot be empty"))
	}

	if strings.TrimSpace(bookTitle) == "" {
		return nil, fmt.Errorf("validating input: %w", domain.NewValidationError("book_title", "cannot be empty"))
	}

	quote, err := s.store.Insert(ctx, text, author, bookTitle)
	if err != nil {
		return nil, fmt.Errorf("inserting quote: %w", err)
	}

	s.log(ctx).InfoContext(ctx, "added quote",
		slog.Int64("quote_id", quote.ID),
		slog.String("author", quote.Author),
	)

	return quote, nil
}

// LikeQuote increments the like counter of the matching quote and returns
// the post-increment value. A missing id is tolerated: the counter reported
// back is zero and no row is created.
func (s *QuoteService) LikeQuote(ctx context.Context, id int64) (int64, error) {
	count, found, err := s.store.IncrementLike(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("liking quote %d: %w", id, err)
	}

	if !found {
		s.log(ctx).WarnContext(ctx, "like for unknown quote ignored", slog.Int64("quote_id", id))
		return 0, nil
	}

	s.log(ctx).InfoContext(ctx, "liked quote",
		slog.Int64("quote_id", id),
		slog.Int64("likes_count", count),
	)

	return count, nil
}

// SearchQuotes returns quotes matching the query, newest first.
// An empty query is rejected.
func (s *QuoteService) SearchQuotes(ctx context.Context, query string) ([]domain.Quote, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("validating input: %w", domain.NewValidationError("q", "search query is required"))
	}

	quotes, err := s.store.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("searching quotes: %w", err)
	}

	s.log(ctx).DebugContext(ctx, "searched quotes",
		slog.String("query", query),
		slog.Int("count", len(quotes)),
	)

	return quotes, nil
}

// log prefers the request-scoped logger from context when present.
func (s *QuoteService) log(ctx context.Context) *slog.Logger {
	if logger := logging.FromContext(ctx); logger != nil {
		return logger
	}

	return s.logger
}
