package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/riyasahamed27/book-quote-shorts/internal/adapters/http/handlers"
	"github.com/riyasahamed27/book-quote-shorts/internal/adapters/http/middleware"
	"github.com/riyasahamed27/book-quote-shorts/internal/platform/config"
	"github.com/riyasahamed27/book-quote-shorts/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default timeout for API requests.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// AppConfig contains application configuration.
	AppConfig *config.AppConfig

	// QuoteHandler handles quote API endpoints.
	QuoteHandler *handlers.QuoteHandler

	// HealthHandler handles health check endpoints.
	HealthHandler *handlers.HealthHandler

	// StaticDir is the directory holding the built web frontend.
	// Empty disables static serving.
	StaticDir string

	// Timeout is the default request timeout.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Request ID - generate/extract request ID
//  3. OpenTelemetry - tracing and metrics
//  4. Logging - request logging (skips health endpoints)
//  5. Timeout - request deadline on the API group
//
// Route groups:
//   - /-/ (internal): Health endpoints
//   - /api/ (public API): Quote endpoints
//   - everything else: static frontend with index.html fallback
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		telemetry.Middleware(cfg.AppConfig.Name),
		middleware.Logging(cfg.Logger),
	)

	// Health endpoints get no timeout so probes stay cheap
	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	api := engine.Group("/api")
	if cfg.Timeout > 0 {
		api.Use(middleware.SimpleTimeout(cfg.Timeout))
	}

	if cfg.QuoteHandler != nil {
		cfg.QuoteHandler.RegisterQuoteRoutes(api)
	}

	if cfg.StaticDir != "" {
		SetupSPA(engine, cfg.StaticDir)
	}
}

// NewDefaultRouterConfig creates a RouterConfig with sensible defaults.
func NewDefaultRouterConfig(
	logger *slog.Logger,
	appCfg *config.AppConfig,
	quoteHandler *handlers.QuoteHandler,
	healthHandler *handlers.HealthHandler,
	staticDir string,
) RouterConfig {
	return RouterConfig{
		Logger:        logger,
		AppConfig:     appCfg,
		QuoteHandler:  quoteHandler,
		HealthHandler: healthHandler,
		StaticDir:     staticDir,
		Timeout:       DefaultRequestTimeout,
	}
}
