package storage

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/riyasahamed27/book-quote-shorts/internal/domain"
	"github.com/riyasahamed27/book-quote-shorts/internal/ports"
)

// Repository implements ports.QuoteStore on top of a gorm sqlite handle.
type Repository struct {
	db *gorm.DB
}

var _ ports.QuoteStore = (*Repository)(nil)

// NewRepository creates a quote repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListAll returns every quote, newest first. Ties on created_at fall back
// to id so insertion order stays stable within one timestamp.
func (r *Repository) ListAll(ctx context.Context) ([]domain.Quote, error) {
	var records []quoteRecord

	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&records).Error
	if err != nil {
		return nil, storeErr("list", err)
	}

	return toDomainSlice(records), nil
}

// ListRandom returns up to limit quotes sampled uniformly over the table.
// The full-table ORDER BY RANDOM() is fine at this scale.
func (r *Repository) ListRandom(ctx context.Context, limit int) ([]domain.Quote, error) {
	var records []quoteRecord

	err := r.db.WithContext(ctx).
		Order("RANDOM()").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, storeErr("list random", err)
	}

	return toDomainSlice(records), nil
}

// Insert persists a new quote and returns it with the assigned id and
// created_at.
func (r *Repository) Insert(ctx context.Context, text, author, bookTitle string) (*domain.Quote, error) {
	record := quoteRecord{
		Text:      text,
		Author:    author,
		BookTitle: bookTitle,
	}

	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, storeErr("insert", err)
	}

	quote := record.toDomain()

	return &quote, nil
}

// IncrementLike adds one to the counter of the matching row. A missing id
// affects no rows and is reported as found=false with a zero count.
func (r *Repository) IncrementLike(ctx context.Context, id int64) (int64, bool, error) {
	res := r.db.WithContext(ctx).
		Model(&quoteRecord{}).
		Where("id = ?", id).
		UpdateColumn("likes_count", gorm.Expr("likes_count + ?", 1))
	if res.Error != nil {
		return 0, false, storeErr("increment like", res.Error)
	}

	if res.RowsAffected == 0 {
		return 0, false, nil
	}

	var record quoteRecord
	if err := r.db.WithContext(ctx).First(&record, id).Error; err != nil {
		return 0, false, storeErr("read like count", err)
	}

	return record.LikesCount, true, nil
}

// Search matches the query case-insensitively against text, author, and
// book title, newest first. sqlite's LIKE is already case-insensitive for
// ASCII; lowering both sides keeps the behavior explicit.
func (r *Repository) Search(ctx context.Context, query string) ([]domain.Quote, error) {
	pattern := "%" + query + "%"

	var records []quoteRecord

	err := r.db.WithContext(ctx).
		Where("LOWER(text) LIKE LOWER(?) OR LOWER(author) LIKE LOWER(?) OR LOWER(book_title) LIKE LOWER(?)",
			pattern, pattern, pattern).
		Order("created_at DESC, id DESC").
		Find(&records).Error
	if err != nil {
		return nil, storeErr("search", err)
	}

	return toDomainSlice(records), nil
}

func toDomainSlice(records []quoteRecord) []domain.Quote {
	quotes := make([]domain.Quote, 0, len(records))
	for i := range records {
		quotes = append(quotes, records[i].toDomain())
	}

	return quotes
}

// storeErr maps a gorm failure to the domain's unavailable taxonomy. The
// raw cause stays wrapped for logs but callers only branch on the sentinel.
func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrUnavailable, err)
}
