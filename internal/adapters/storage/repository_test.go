package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) (*Store, *Repository) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "quotes_test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		store.Close()
		os.Remove(dbPath)
	})

	return store, NewRepository(store.DB())
}

func TestRepository_InsertThenListAll(t *testing.T) {
	_, repo := setupTestStore(t)
	ctx := context.Background()

	created, err := repo.Insert(ctx, "Stay hungry, stay foolish.", "Steve Jobs", "Commencement Address")
	require.NoError(t, err)

	assert.Positive(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Zero(t, created.LikesCount)

	quotes, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, "Stay hungry, stay foolish.", quotes[0].Text)
	assert.Equal(t, "Steve Jobs", quotes[0].Author)
	assert.Equal(t, "Commencement Address", quotes[0].BookTitle)
	assert.Zero(t, quotes[0].LikesCount)
}

func TestRepository_ListAll_NewestFirst(t *testing.T) {
	_, repo := setupTestStore(t)
	ctx := context.Background()

	first, err := repo.Insert(ctx, "first", "a", "b")
	require.NoError(t, err)
	second, err := repo.Insert(ctx, "second", "a", "b")
	require.NoError(t, err)
	third, err := repo.Insert(ctx, "third", "a", "b")
	require.NoError(t, err)

	quotes, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, quotes, 3)

	// created_at resolution can collapse to the same instant; the id
	// tie-break keeps newest-first stable either way.
	assert.Equal(t, third.ID, quotes[0].ID)
	assert.Equal(t, second.ID, quotes[1].ID)
	assert.Equal(t, first.ID, quotes[2].ID)
}

func TestRepository_ListRandom(t *testing.T) {
	_, repo := setupTestStore(t)
	ctx := context.Background()

	for _, text := range []string{"one", "two", "three"} {
		_, err := repo.Insert(ctx, text, "author", "book")
		require.NoError(t, err)
	}

	t.Run("limit above table size returns whole table", func(t *testing.T) {
		quotes, err := repo.ListRandom(ctx, 10)
		require.NoError(t, err)
		assert.Len(t, quotes, 3)
	})

	t.Run("limit below table size returns limit rows", func(t *testing.T) {
		quotes, err := repo.ListRandom(ctx, 2)
		require.NoError(t, err)
		assert.Len(t, quotes, 2)
	})
}

func TestRepository_IncrementLike(t *testing.T) {
	_, repo := setupTestStore(t)
	ctx := context.Background()

	quote, err := repo.Insert(ctx, "text", "author", "book")
	require.NoError(t, err)

	count, found, err := repo.IncrementLike(ctx, quote.ID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(1), count)

	count, found, err = repo.IncrementLike(ctx, quote.ID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(2), count)
}

func TestRepository_IncrementLike_MissingID(t *testing.T) {
	_, repo := setupTestStore(t)
	ctx := context.Background()

	count, found, err := repo.IncrementLike(ctx, 9999)

	require.NoError(t, err)
	assert.False(t, found)
	assert.Zero(t, count)

	// The no-op must not create a row.
	quotes, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, quotes)
}

func TestRepository_Search(t *testing.T) {
	_, repo := setupTestStore(t)
	ctx := context.Background()

	_, err := repo.Insert(ctx, "The only way to do great work is to love what you do.", "Steve Jobs", "Various Interviews")
	require.NoError(t, err)
	_, err = repo.Insert(ctx, "Life is what happens to you.", "John Lennon", "Beautiful Boy Lyrics")
	require.NoError(t, err)

	t.Run("case-insensitive author match", func(t *testing.T) {
		quotes, err := repo.Search(ctx, "jobs")
		require.NoError(t, err)
		require.Len(t, quotes, 1)
		assert.Equal(t, "Steve Jobs", quotes[0].Author)
	})

	t.Run("book title match", func(t *testing.T) {
		quotes, err := repo.Search(ctx, "beautiful boy")
		require.NoError(t, err)
		require.Len(t, quotes, 1)
		assert.Equal(t, "John Lennon", quotes[0].Author)
	})

	t.Run("text match", func(t *testing.T) {
		quotes, err := repo.Search(ctx, "great work")
		require.NoError(t, err)
		require.Len(t, quotes, 1)
	})

	t.Run("no match returns empty slice", func(t *testing.T) {
		quotes, err := repo.Search(ctx, "zzz-no-match")
		require.NoError(t, err)
		assert.Empty(t, quotes)
	})
}

func TestStore_SeedIfEmpty(t *testing.T) {
	store, repo := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SeedIfEmpty())

	quotes, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, quotes, 5)

	// Seeding again must not duplicate rows.
	require.NoError(t, store.SeedIfEmpty())

	quotes, err = repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, quotes, 5)
}

func TestStore_HealthCheck(t *testing.T) {
	store, _ := setupTestStore(t)

	assert.Equal(t, "sqlite", store.Name())
	assert.NoError(t, store.Check(context.Background()))
}
