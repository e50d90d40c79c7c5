package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sportscroll/sportscroll/app/cfg"
)

// NewServer creates the HTTP server with all routes configured.
func NewServer(handler *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
				param.ClientIP,
				param.TimeStamp.Format(time.RFC3339),
				param.Method,
				param.Path,
				param.Request.Proto,
				param.StatusCode,
				param.Latency,
				param.Request.UserAgent(),
				param.ErrorMessage,
			)
		},
	}))

	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	setupRoutes(r, handler)

	return r
}

func setupRoutes(r *gin.Engine, handler *Handler) {
	// Ingestion entrypoint
	r.POST("/api/feed", handler.FetchFeed)

	// Card store read surface
	r.GET("/api/cards", handler.ListCards)
	r.GET("/api/cards/:id", handler.GetCard)
	r.GET("/api/cards/:id/related", handler.GetRelatedCards)
	r.GET("/api/cards/:id/content", handler.GetCardContent)

	// Health and status endpoints
	r.GET("/health", handler.HealthCheck)
	r.GET("/stats", handler.GetStats)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service":     "SportScroll",
			"version":     cfg.GetVersion(),
			"description": "Sports news feed aggregator with entity enrichment and related-content discovery",
			"endpoints": map[string]string{
				"feed":    "/api/feed (POST)",
				"cards":   "/api/cards",
				"card":    "/api/cards/<id>",
				"related": "/api/cards/<id>/related",
				"content": "/api/cards/<id>/content",
				"health":  "/health",
				"stats":   "/stats",
			},
		})
	})

	// Favicon handler (return 204 to avoid 404s)
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
}
