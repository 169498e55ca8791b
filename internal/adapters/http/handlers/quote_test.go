package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riyasahamed27/book-quote-shorts/internal/adapters/http/dto"
	"github.com/riyasahamed27/book-quote-shorts/internal/app"
	"github.com/riyasahamed27/book-quote-shorts/internal/domain"
)

// stubStore is a hand-rolled QuoteStore for handler tests.
type stubStore struct {
	quotes      []domain.Quote
	insertErr   error
	listErr     error
	likeCount   int64
	likeFound   bool
	likeErr     error
	lastLimit   int
	lastQuery   string
	likeCalled  bool
	lastLikedID int64
}

func (s *stubStore) ListAll(ctx context.Context) ([]domain.Quote, error) {
	return s.quotes, s.listErr
}

func (s *stubStore) ListRandom(ctx context.Context, limit int) ([]domain.Quote, error) {
	s.lastLimit = limit

	if limit < len(s.quotes) {
		return s.quotes[:limit], s.listErr
	}

	return s.quotes, s.listErr
}

func (s *stubStore) Insert(ctx context.Context, text, author, bookTitle string) (*domain.Quote, error) {
	if s.insertErr != nil {
		return nil, s.insertErr
	}

	return &domain.Quote{
		ID:        42,
		Text:      text,
		Author:    author,
		BookTitle: bookTitle,
		CreatedAt: time.Now(),
	}, nil
}

func (s *stubStore) IncrementLike(ctx context.Context, id int64) (int64, bool, error) {
	s.likeCalled = true
	s.lastLikedID = id

	return s.likeCount, s.likeFound, s.likeErr
}

func (s *stubStore) Search(ctx context.Context, query string) ([]domain.Quote, error) {
	s.lastQuery = query
	return s.quotes, s.listErr
}

func setupTestRouter(t *testing.T, store *stubStore) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	service := app.NewQuoteService(app.QuoteServiceConfig{Store: store})
	handler := NewQuoteHandler(service)

	engine := gin.New()
	handler.RegisterQuoteRoutes(engine.Group("/api"))

	return engine
}

func sampleQuotes() []domain.Quote {
	return []domain.Quote{
		{ID: 2, Text: "Second", Author: "B", BookTitle: "Book B", LikesCount: 3},
		{ID: 1, Text: "First", Author: "A", BookTitle: "Book A", LikesCount: 0},
	}
}

func TestListQuotes(t *testing.T) {
	engine := setupTestRouter(t, &stubStore{quotes: sampleQuotes()})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/quotes", nil)
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var quotes []dto.QuoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &quotes))
	require.Len(t, quotes, 2)
	assert.Equal(t, int64(2), quotes[0].ID)
	assert.Equal(t, "Second", quotes[0].Text)
	assert.Equal(t, int64(3), quotes[0].LikesCount)
}

func TestListQuotes_EmptyEncodesAsArray(t *testing.T) {
	engine := setupTestRouter(t, &stubStore{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/quotes", nil)
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestListQuotes_StoreDown(t *testing.T) {
	store := &stubStore{listErr: domain.NewUnavailableError("sqlite", "disk gone")}
	engine := setupTestRouter(t, store)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/quotes", nil)
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, dto.ErrorCodeInternal, errResp.Error.Code)

	// The driver cause stays in the logs, never in the response
	assert.Equal(t, "an internal error occurred", errResp.Error.Message)
	assert.NotContains(t, rec.Body.String(), "disk gone")
	assert.NotContains(t, rec.Body.String(), "sqlite")
}

func TestRandomQuotes(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantLimit int
	}{
		{"explicit limit", "/api/quotes/random?limit=1", 1},
		{"missing limit falls back to default", "/api/quotes/random", 10},
		{"unparseable limit falls back to default", "/api/quotes/random?limit=abc", 10},
		{"negative limit falls back to default", "/api/quotes/random?limit=-5", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &stubStore{quotes: sampleQuotes()}
			engine := setupTestRouter(t, store)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			engine.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantLimit, store.lastLimit)
		})
	}
}

func TestCreateQuote(t *testing.T) {
	engine := setupTestRouter(t, &stubStore{})

	body, err := json.Marshal(dto.CreateQuoteRequest{
		Text:      "To live is the rarest thing in the world.",
		Author:    "Oscar Wilde",
		BookTitle: "The Soul of Man Under Socialism",
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quotes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var quote dto.QuoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &quote))
	assert.Equal(t, int64(42), quote.ID)
	assert.Equal(t, "Oscar Wilde", quote.Author)
}

func TestCreateQuote_MissingFields(t *testing.T) {
	engine := setupTestRouter(t, &stubStore{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quotes",
		bytes.NewBufferString(`{"text":"something","author":"  "}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, dto.ErrorCodeValidation, errResp.Error.Code)
	assert.Contains(t, errResp.Error.Details, "author")
	assert.Contains(t, errResp.Error.Details, "book_title")
}

func TestCreateQuote_MalformedBody(t *testing.T) {
	engine := setupTestRouter(t, &stubStore{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quotes",
		bytes.NewBufferString(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, dto.ErrorCodeBadRequest, errResp.Error.Code)
}

func TestLikeQuote(t *testing.T) {
	store := &stubStore{likeCount: 7, likeFound: true}
	engine := setupTestRouter(t, store)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quotes/3/like", nil)
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"likes_count":7}`, rec.Body.String())
	assert.Equal(t, int64(3), store.lastLikedID)
}

func TestLikeQuote_UnknownIDIsAbsorbed(t *testing.T) {
	store := &stubStore{likeFound: false}
	engine := setupTestRouter(t, store)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quotes/999/like", nil)
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"likes_count":0}`, rec.Body.String())
}

func TestLikeQuote_NonNumericIDSkipsStore(t *testing.T) {
	store := &stubStore{}
	engine := setupTestRouter(t, store)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quotes/abc/like", nil)
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"likes_count":0}`, rec.Body.String())
	assert.False(t, store.likeCalled)
}

func TestSearchQuotes(t *testing.T) {
	store := &stubStore{quotes: sampleQuotes()}
	engine := setupTestRouter(t, store)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/quotes/search?q=book", nil)
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "book", store.lastQuery)
}

func TestSearchQuotes_EmptyQueryRejected(t *testing.T) {
	engine := setupTestRouter(t, &stubStore{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/quotes/search", nil)
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, dto.ErrorCodeValidation, errResp.Error.Code)
	assert.Contains(t, errResp.Error.Details, "q")
}
