package dto

import (
	"time"

	"github.com/riyasahamed27/book-quote-shorts/internal/domain"
)

// QuoteResponse is the HTTP representation of a quote.
type QuoteResponse struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	Author     string    `json:"author"`
	BookTitle  string    `json:"book_title"`
	LikesCount int64     `json:"likes_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// FromQuote converts a domain quote to its HTTP representation.
func FromQuote(q *domain.Quote) *QuoteResponse {
	return &QuoteResponse{
		ID:         q.ID,
		Text:       q.Text,
		Author:     q.Author,
		BookTitle:  q.BookTitle,
		LikesCount: q.LikesCount,
		CreatedAt:  q.CreatedAt,
	}
}

// FromQuotes converts a slice of domain quotes.
// Always returns a non-nil slice so empty results encode as [].
func FromQuotes(quotes []domain.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for i := range quotes {
		out = append(out, *FromQuote(&quotes[i]))
	}

	return out
}

// CreateQuoteRequest is the request body for creating a quote.
type CreateQuoteRequest struct {
	Text      string `json:"text" validate:"required,notblank"`
	Author    string `json:"author" validate:"required,notblank"`
	BookTitle string `json:"book_title" validate:"required,notblank"`
}

// LikeResponse is the response body for a like operation.
type LikeResponse struct {
	LikesCount int64 `json:"likes_count"`
}
