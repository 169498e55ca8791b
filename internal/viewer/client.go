// Package viewer provides the terminal quote viewer built on Bubble Tea.
package viewer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/riyasahamed27/book-quote-shorts/internal/domain"
)

// QuoteFetcher is the API surface the viewer needs.
// Implemented by *Client and faked in tests.
type QuoteFetcher interface {
	FetchRandom(ctx context.Context, limit int) ([]domain.Quote, error)
	Like(ctx context.Context, id int64) (int64, error)
}

// Ensure Client implements QuoteFetcher at compile time.
var _ QuoteFetcher = (*Client)(nil)

// Client talks to the quote server HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultBaseURL   = "http://localhost:8080"
	defaultUserAgent = "book-quote-shorts-viewer/0.1"
	requestTimeout   = 5 * time.Second

	// fetchAttempts bounds read retries; likes are never retried since
	// a duplicate delivery would double-count.
	fetchAttempts = 3
	retryBackoff  = 200 * time.Millisecond
)

// NewClient builds a Client for the given base URL.
// A bare host:port is accepted and assumed to be http.
func NewClient(baseURL string) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// quotePayload is the wire shape of a quote as served by the API.
type quotePayload struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	Author     string    `json:"author"`
	BookTitle  string    `json:"book_title"`
	LikesCount int64     `json:"likes_count"`
	CreatedAt  time.Time `json:"created_at"`
}

func (p quotePayload) toDomain() domain.Quote {
	return domain.Quote{
		ID:         p.ID,
		Text:       p.Text,
		Author:     p.Author,
		BookTitle:  p.BookTitle,
		LikesCount: p.LikesCount,
		CreatedAt:  p.CreatedAt,
	}
}

// likePayload is the wire shape of a like response.
type likePayload struct {
	LikesCount int64 `json:"likes_count"`
}

// FetchRandom retrieves up to limit quotes in random order.
// The read is retried a couple of times since it races server startup.
func (c *Client) FetchRandom(ctx context.Context, limit int) ([]domain.Quote, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}

	values := url.Values{}
	if limit > 0 {
		values.Set("limit", strconv.Itoa(limit))
	}

	rel := &url.URL{Path: "/api/quotes/random", RawQuery: values.Encode()}

	var payload []quotePayload

	var err error
	for attempt := 0; attempt < fetchAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(retryBackoff * time.Duration(attempt)):
			}
		}

		if err = c.doURL(ctx, http.MethodGet, rel, &payload); err == nil {
			break
		}
	}

	if err != nil {
		return nil, err
	}

	quotes := make([]domain.Quote, 0, len(payload))
	for _, p := range payload {
		quotes = append(quotes, p.toDomain())
	}

	return quotes, nil
}

// Like registers a like for the quote and returns the server-side counter.
func (c *Client) Like(ctx context.Context, id int64) (int64, error) {
	if c == nil {
		return 0, fmt.Errorf("client is nil")
	}

	rel := &url.URL{Path: fmt.Sprintf("/api/quotes/%d/like", id)}

	var payload likePayload
	if err := c.doURL(ctx, http.MethodPost, rel, &payload); err != nil {
		return 0, err
	}

	return payload.LikesCount, nil
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("api %s returned status %d", rel.String(), resp.StatusCode)
	}

	if dest == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func parseBaseURL(baseURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}

	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", baseURL, err)
	}

	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""

	return u, nil
}
