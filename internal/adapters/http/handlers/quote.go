package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/riyasahamed27/book-quote-shorts/internal/adapters/http/dto"
	"github.com/riyasahamed27/book-quote-shorts/internal/app"
)

// QuoteHandler handles quote-related HTTP endpoints.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		service: service,
	}
}

// ListQuotes handles GET /api/quotes.
// Returns every quote, newest first. An empty table yields [].
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromQuotes(quotes))
}

// RandomQuotes handles GET /api/quotes/random?limit=N.
// Returns up to N quotes in random order. A missing or unparseable limit
// falls back to the service default rather than failing the request.
func (h *QuoteHandler) RandomQuotes(c *gin.Context) {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		limit = 0
	}

	quotes, err := h.service.ListRandom(c.Request.Context(), limit)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromQuotes(quotes))
}

// CreateQuote handles POST /api/quotes.
// Returns 201 with the stored quote, including its assigned id and timestamp.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var req dto.CreateQuoteRequest

	err := dto.BindAndValidate(c, &req)
	if err != nil {
		if dto.IsValidationError(err) {
			dto.RespondWithValidationErrors(c, dto.ValidationErrors(err))
			return
		}

		dto.RespondWithErrorCode(c, dto.ErrorCodeBadRequest, "invalid request body")

		return
	}

	quote, err := h.service.AddQuote(c.Request.Context(), req.Text, req.Author, req.BookTitle)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromQuote(quote))
}

// LikeQuote handles POST /api/quotes/:id/like.
// Returns the post-increment like counter. Likes against ids that don't
// resolve to a row are absorbed: the response is 200 with likes_count 0.
func (h *QuoteHandler) LikeQuote(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusOK, dto.LikeResponse{LikesCount: 0})
		return
	}

	count, err := h.service.LikeQuote(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LikeResponse{LikesCount: count})
}

// SearchQuotes handles GET /api/quotes/search?q=term.
// Matches text, author, and book title case-insensitively.
func (h *QuoteHandler) SearchQuotes(c *gin.Context) {
	quotes, err := h.service.SearchQuotes(c.Request.Context(), c.Query("q"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromQuotes(quotes))
}

// RegisterQuoteRoutes registers quote routes on the given router group.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/quotes")
	quotes.GET("", h.ListQuotes)
	quotes.GET("/random", h.RandomQuotes)
	quotes.GET("/search", h.SearchQuotes)
	quotes.POST("", h.CreateQuote)
	quotes.POST("/:id/like", h.LikeQuote)
}
