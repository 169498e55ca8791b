package http

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/riyasahamed27/book-quote-shorts/internal/adapters/http/dto"
)

// SetupSPA serves the built web frontend from staticDir.
//
// Files that exist under staticDir are served directly. Any other path that
// is not an API or internal route falls back to index.html so client-side
// routing keeps working on deep links and refreshes. Unknown /api and /-
// paths still get a JSON 404 instead of HTML.
func SetupSPA(engine *gin.Engine, staticDir string) {
	engine.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path

		if strings.HasPrefix(path, "/api/") || strings.HasPrefix(path, "/-/") {
			dto.RespondWithErrorCode(c, dto.ErrorCodeNotFound, "route not found")
			return
		}

		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			dto.RespondWithErrorCode(c, dto.ErrorCodeNotFound, "route not found")
			return
		}

		// Serve the file if it exists, otherwise fall back to index.html
		candidate := filepath.Join(staticDir, filepath.Clean("/"+path))
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			c.File(candidate)
			return
		}

		c.File(filepath.Join(staticDir, "index.html"))
	})
}
