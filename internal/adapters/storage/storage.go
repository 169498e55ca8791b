// Package storage provides the sqlite persistence adapter for quotes,
// backed by gorm. It implements the ports.QuoteStore contract.
package storage

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/riyasahamed27/book-quote-shorts/internal/domain"
)

// quoteRecord is the gorm mapping for the quotes table.
type quoteRecord struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	Text       string    `gorm:"not null"`
	Author     string    `gorm:"not null"`
	BookTitle  string    `gorm:"not null"`
	LikesCount int64     `gorm:"not null;default:0"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index"`
}

// TableName keeps the table name identical to the public wire contract.
func (quoteRecord) TableName() string {
	return "quotes"
}

func (r *quoteRecord) toDomain() domain.Quote {
	return domain.Quote{
		ID:         r.ID,
		Text:       r.Text,
		Author:     r.Author,
		BookTitle:  r.BookTitle,
		LikesCount: r.LikesCount,
		CreatedAt:  r.CreatedAt,
	}
}

// Store owns the database handle. It is constructed once in main, passed
// to the repository, and closed at shutdown.
type Store struct {
	db *gorm.DB
}

// Open connects to the sqlite database at path and migrates the schema.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.AutoMigrate(&quoteRecord{}); err != nil {
		return nil, fmt.Errorf("migrating database: %w", err)
	}

	return &Store{db: db}, nil
}

// DB exposes the underlying gorm handle for repository construction.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Close releases the underlying sql connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// Name identifies the store in health check results.
func (s *Store) Name() string {
	return "sqlite"
}

// Check pings the database, reporting readiness.
func (s *Store) Check(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.PingContext(ctx)
}

// starterQuotes is inserted by SeedIfEmpty on a fresh database.
var starterQuotes = []quoteRecord{
	{Text: "The only way to do great work is to love what you do.", Author: "Steve Jobs", BookTitle: "Various Interviews"},
	{Text: "Innovation distinguishes between a leader and a follower.", Author: "Steve Jobs", BookTitle: "Keynote Speeches"},
	{Text: "Life is what happens to you while you're busy making other plans.", Author: "John Lennon", BookTitle: "Beautiful Boy Lyrics"},
	{Text: "The future belongs to those who believe in the beauty of their dreams.", Author: "Eleanor Roosevelt", BookTitle: "Various Speeches"},
	{Text: "It is during our darkest moments that we must focus to see the light.", Author: "Aristotle", BookTitle: "Philosophy Works"},
}

// SeedIfEmpty inserts the starter set when the table has no rows.
func (s *Store) SeedIfEmpty() error {
	var count int64
	if err := s.db.Model(&quoteRecord{}).Count(&count).Error; err != nil {
		return fmt.Errorf("counting quotes: %w", err)
	}

	if count > 0 {
		return nil
	}

	// Insert a copy so gorm's ID backfill never touches the package slice.
	seed := make([]quoteRecord, len(starterQuotes))
	copy(seed, starterQuotes)

	if err := s.db.Create(&seed).Error; err != nil {
		return fmt.Errorf("seeding quotes: %w", err)
	}

	return nil
}
