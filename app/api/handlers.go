package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sportscroll/sportscroll/app/feed"
	"github.com/sportscroll/sportscroll/app/store"
)

func NewHandler(processor *feed.Processor, cardStore *store.Store,
	extractor *feed.ContentExtractor, catalog *feed.Catalog,
	sessions *feed.SessionRegistry) *Handler {
	return &Handler{
		processor: processor,
		store:     cardStore,
		extractor: extractor,
		catalog:   catalog,
		sessions:  sessions,
	}
}

// FetchFeed runs one ingestion pass and returns the admitted items
// and their cards. Partial source failures never fail the call; only
// a malformed request or a total fetch failure does.
func (h *Handler) FetchFeed(c *gin.Context) {
	var req FeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, FeedResponse{
			Success: false,
			Error:   "invalid request body: " + err.Error(),
		})
		return
	}

	result, err := h.processor.Run(c.Request.Context(), feed.Request{
		Categories: req.Categories,
		Limit:      req.Limit,
		Append:     req.Append,
		SessionID:  req.SessionID,
	})
	if errors.Is(err, feed.ErrFetchInProgress) {
		c.JSON(http.StatusTooManyRequests, FeedResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}
	if err != nil {
		slog.Error("Feed request failed", "categories", req.Categories, "error", err)
		c.JSON(http.StatusInternalServerError, FeedResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, FeedResponse{
		Success: true,
		Items:   result.Items,
		Cards:   result.Cards,
		Count:   len(result.Items),
	})
}

func (h *Handler) ListCards(c *gin.Context) {
	cards := h.store.GetAllCards()
	c.JSON(http.StatusOK, gin.H{
		"cards": cards,
		"total": len(cards),
	})
}

func (h *Handler) GetCard(c *gin.Context) {
	card, ok := h.store.GetCard(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
		return
	}
	c.JSON(http.StatusOK, card)
}

func (h *Handler) GetRelatedCards(c *gin.Context) {
	card, ok := h.store.GetCard(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
		return
	}

	minOverlap := 1.0
	if raw := c.Query("minOverlap"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid minOverlap parameter"})
			return
		}
		minOverlap = parsed
	}

	related := h.store.FindRelatedCards(card, minOverlap)
	c.JSON(http.StatusOK, gin.H{
		"cards": related,
		"total": len(related),
	})
}

// GetCardContent extracts the readable article body from the card's
// source page. The card itself is not modified.
func (h *Handler) GetCardContent(c *gin.Context) {
	card, ok := h.store.GetCard(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
		return
	}

	content, err := h.extractor.Run(c.Request.Context(), card.SourceURL)
	if err != nil {
		slog.Error("Content extraction failed", "card", card.ID, "url", card.SourceURL, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to extract article content"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cardId":  card.ID,
		"content": content,
	})
}

func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
		"cards":     h.store.Count(),
	})
}

func (h *Handler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"cards":      h.store.Count(),
		"categories": h.store.CountByCategory(),
		"sessions":   h.sessions.Count(),
		"sources":    len(h.catalog.Categories()),
	})
}
