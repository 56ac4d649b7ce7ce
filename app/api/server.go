package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// NewServer creates a new HTTP server with all routes configured
func NewServer(handler *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(requestID())

	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\" %v\n",
				param.ClientIP,
				param.TimeStamp.Format(time.RFC3339),
				param.Method,
				param.Path,
				param.Request.Proto,
				param.StatusCode,
				param.Latency,
				param.Request.UserAgent(),
				param.ErrorMessage,
				param.Keys["request_id"],
			)
		},
	}))

	r.Use(gin.Recovery())

	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, "+requestIDHeader)

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
	api := r.Group("/api")
	{
		api.GET("/news", handler.GetNews)
		api.POST("/search-news", handler.SearchNews)
		api.POST("/simplify-text", handler.SimplifyText)
		api.POST("/simplify-url", handler.SimplifyURL)
		api.GET("/trending-topics", handler.GetTrendingTopics)
		api.GET("/trending", handler.GetTrendingTopics)

		api.GET("/health", handler.GetHealth)
		api.GET("/sentiment-health", handler.GetSentimentHealth)
		api.GET("/news-health", handler.GetNewsHealth)
	}

	r.GET("/health", handler.GetLiveness)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service":     "News Pulse",
			"version":     handler.info.Version,
			"description": "Company news sentiment analysis and plain-language news simplification",
			"endpoints": map[string]string{
				"news":            "GET /api/news?company=<name>&date_range=<1d|3d|1w|1m>",
				"search_news":     "POST /api/search-news",
				"simplify_text":   "POST /api/simplify-text",
				"simplify_url":    "POST /api/simplify-url",
				"trending_topics": "GET /api/trending-topics",
				"health":          "GET /api/health",
			},
		})
	})

	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
}

// requestID propagates the caller's request ID or assigns a new one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		c.Set("request_id", id)
		c.Header(requestIDHeader, id)

		c.Next()
	}
}
