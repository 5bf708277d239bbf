package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// NewServer creates a new HTTP server with all routes configured
func NewServer(handler *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

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

	r.Use(gin.Recovery())

	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	setupRoutes(r, handler)

	return r
}

func setupRoutes(r *gin.Engine, handler *Handler) {
	r.GET("/posts", handler.GetPosts)
	r.GET("/posts.md", handler.GetDocument)

	r.GET("/health", handler.GetHealth)
	r.GET("/stats", handler.GetStats)

	if handler.runRepo != nil {
		r.GET("/runs/latest", handler.GetLatestRun)
	}

	r.GET("/", func(c *gin.Context) {
		endpoints := map[string]string{
			"posts":    "/posts?limit=<n>",
			"document": "/posts.md",
			"health":   "/health",
			"stats":    "/stats",
		}

		if handler.runRepo != nil {
			endpoints["latest_run"] = "/runs/latest?limit=<n>"
		}

		c.JSON(200, gin.H{
			"service":     "Post Comb",
			"version":     handler.version,
			"description": "Read-only preview of the selected posts",
			"endpoints":   endpoints,
		})
	})

	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(204)
	})
}
