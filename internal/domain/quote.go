// Package domain contains core business entities and rules.
package domain

import (
	"fmt"
	"time"
)

// Quote represents a single quotation with author and book attribution.
// This is a domain entity - it has no knowledge of external systems.
type Quote struct {
	// ID is the store-assigned identifier, immutable after insert.
	ID int64

	// Text is the quotation body.
	Text string

	// Author is who said or wrote the quote.
	Author string

	// BookTitle is the book the quote was taken from.
	BookTitle string

	// LikesCount is a global like counter. It never goes below zero and
	// only moves through the store's increment operation.
	LikesCount int64

	// CreatedAt is assigned by the store at insert time.
	CreatedAt time.Time
}

// ShareText renders the canonical share string for a quote.
func (q *Quote) ShareText() string {
	return fmt.Sprintf("%q — %s, %s", q.Text, q.Author, q.BookTitle)
}
