package viewer

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/riyasahamed27/book-quote-shorts/internal/domain"
)

// phase is the viewer lifecycle state.
type phase int

const (
	phaseLoading phase = iota
	phaseReady
	phaseFailed
)

// DefaultAutoplayInterval is used when Options leaves the interval unset.
const DefaultAutoplayInterval = 4 * time.Second

// Options configures the viewer.
type Options struct {
	Context          context.Context
	Client           QuoteFetcher
	Logger           *slog.Logger
	BatchLimit       int
	AutoplayInterval time.Duration
}

// Model is the root viewer state for Bubble Tea.
type Model struct {
	ctx              context.Context
	client           QuoteFetcher
	logger           *slog.Logger
	keys             keyMap
	batchLimit       int
	autoplayInterval time.Duration

	phase    phase
	loadErr  error
	batch    []domain.Quote
	current  int
	liked    map[int64]bool
	autoplay bool

	// autoplayGen invalidates stale ticks: only a tick carrying the
	// current generation advances the deck, so at most one timer chain
	// is ever live no matter how often autoplay is toggled.
	autoplayGen int

	status string
	width  int
	height int
}

// New creates a new viewer model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	interval := opts.AutoplayInterval
	if interval <= 0 {
		interval = DefaultAutoplayInterval
	}

	limit := opts.BatchLimit
	if limit <= 0 {
		limit = 10
	}

	return Model{
		ctx:              ctx,
		client:           opts.Client,
		logger:           logger,
		keys:             DefaultKeyMap(),
		batchLimit:       limit,
		autoplayInterval: interval,
		phase:            phaseLoading,
		liked:            make(map[int64]bool),
	}
}

// Messages.
type (
	batchMsg    []domain.Quote
	batchErrMsg struct{ err error }

	tickMsg struct{ gen int }

	likeResultMsg struct {
		id    int64
		count int64
		err   error
	}

	statusMsg string
)

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		fetchBatchCmd(m.ctx, m.client, m.batchLimit),
	)
}

// fetchBatchCmd loads a fresh random batch from the server.
func fetchBatchCmd(ctx context.Context, client QuoteFetcher, limit int) tea.Cmd {
	return func() tea.Msg {
		quotes, err := client.FetchRandom(ctx, limit)
		if err != nil {
			return batchErrMsg{err: err}
		}

		return batchMsg(quotes)
	}
}

// likeCmd posts a like without blocking the UI.
func likeCmd(ctx context.Context, client QuoteFetcher, id int64) tea.Cmd {
	return func() tea.Msg {
		count, err := client.Like(ctx, id)
		return likeResultMsg{id: id, count: count, err: err}
	}
}

// tickCmd schedules the next autoplay advance for the given generation.
func tickCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		return m, nil

	case batchMsg:
		// Results from a fetch that was superseded are dropped
		if m.phase != phaseLoading {
			return m, nil
		}

		m.batch = msg
		m.current = 0
		m.phase = phaseReady
		m.loadErr = nil

		m.logger.Info("loaded quote batch", slog.Int("count", len(m.batch)))

		return m, nil

	case batchErrMsg:
		if m.phase != phaseLoading {
			return m, nil
		}

		m.phase = phaseFailed
		m.loadErr = msg.err
		m.autoplay = false

		m.logger.Error("loading quotes failed", slog.Any("error", msg.err))

		return m, nil

	case tickMsg:
		if !m.autoplay || msg.gen != m.autoplayGen || len(m.batch) == 0 {
			return m, nil
		}

		m.current = (m.current + 1) % len(m.batch)

		return m, tickCmd(m.autoplayInterval, m.autoplayGen)

	case likeResultMsg:
		if msg.err != nil {
			m.logger.Warn("like not delivered",
				slog.Int64("quote_id", msg.id),
				slog.Any("error", msg.err),
			)
		} else {
			m.logger.Info("like delivered",
				slog.Int64("quote_id", msg.id),
				slog.Int64("server_likes", msg.count),
			)
		}

		return m, nil

	case statusMsg:
		m.status = string(msg)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	switch m.phase {
	case phaseLoading:
		return m, nil

	case phaseFailed:
		if key.Matches(msg, m.keys.Retry) {
			m.phase = phaseLoading
			m.loadErr = nil

			return m, fetchBatchCmd(m.ctx, m.client, m.batchLimit)
		}

		return m, nil
	}

	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Next):
		m.advance(1)
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.advance(-1)
		return m, nil

	case key.Matches(msg, m.keys.Autoplay):
		return m.toggleAutoplay()

	case key.Matches(msg, m.keys.Like):
		return m.toggleLike()

	case key.Matches(msg, m.keys.Share):
		return m.share()
	}

	// Digits jump straight to that position in the deck
	if n := digitIndex(msg.String()); n >= 0 && n < len(m.batch) {
		m.current = n
	}

	return m, nil
}

// advance moves the cursor by delta, wrapping around both ends.
func (m *Model) advance(delta int) {
	if len(m.batch) == 0 {
		return
	}

	m.current = (m.current + delta + len(m.batch)) % len(m.batch)
}

// toggleAutoplay flips auto-play and bumps the tick generation so any
// in-flight tick from a previous run is ignored.
func (m Model) toggleAutoplay() (tea.Model, tea.Cmd) {
	if len(m.batch) == 0 {
		return m, nil
	}

	m.autoplay = !m.autoplay
	m.autoplayGen++

	if !m.autoplay {
		return m, nil
	}

	return m, tickCmd(m.autoplayInterval, m.autoplayGen)
}

// toggleLike toggles the local like state of the current quote and fires
// the increment to the server. The server call is best-effort: the local
// toggle stands even if delivery fails. Un-liking is local only — the
// server counter keeps the like, since there is no decrement operation
// and re-sending the POST would count the quote twice.
func (m Model) toggleLike() (tea.Model, tea.Cmd) {
	quote := m.currentQuote()
	if quote == nil {
		return m, nil
	}

	if m.liked[quote.ID] {
		delete(m.liked, quote.ID)
		return m, nil
	}

	m.liked[quote.ID] = true

	return m, likeCmd(m.ctx, m.client, quote.ID)
}

// share copies the current quote to the system clipboard.
func (m Model) share() (tea.Model, tea.Cmd) {
	quote := m.currentQuote()
	if quote == nil {
		return m, nil
	}

	err := copyToClipboard(quote.ShareText())
	if err != nil {
		m.logger.Warn("clipboard copy failed", slog.Any("error", err))
		m.status = "clipboard unavailable"

		return m, nil
	}

	m.status = "copied to clipboard"

	return m, nil
}

// currentQuote returns the quote under the cursor, or nil for an empty deck.
func (m *Model) currentQuote() *domain.Quote {
	if len(m.batch) == 0 || m.current < 0 || m.current >= len(m.batch) {
		return nil
	}

	return &m.batch[m.current]
}

// displayLikes is the like counter shown for a quote: the stored count
// plus one while locally liked.
func (m *Model) displayLikes(q *domain.Quote) int64 {
	count := q.LikesCount
	if m.liked[q.ID] {
		count++
	}

	return count
}

// digitIndex maps "1".."9" to deck positions 0..8 and "0" to position 9.
// Returns -1 for anything else.
func digitIndex(s string) int {
	if len(s) != 1 || s[0] < '0' || s[0] > '9' {
		return -1
	}

	if s[0] == '0' {
		return 9
	}

	return int(s[0] - '1')
}
