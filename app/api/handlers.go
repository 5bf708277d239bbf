package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lysyi3m/post-comb/app/database"
	"github.com/lysyi3m/post-comb/app/tasks"
)

func NewHandler(selection *tasks.Selection, jsonWriter JSONWriterInterface,
	markdownWriter MarkdownWriterInterface, runRepo database.RunRepository, version string) *Handler {
	return &Handler{
		selection:      selection,
		jsonWriter:     jsonWriter,
		markdownWriter: markdownWriter,
		runRepo:        runRepo,
		version:        version,
	}
}

func (h *Handler) GetPosts(c *gin.Context) {
	posts := h.selection.Posts

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		if limit < len(posts) {
			posts = posts[:limit]
		}
	}

	data, err := h.jsonWriter.Run(posts)
	if err != nil {
		slog.Error("JSON rendering error", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Header("X-Total-Posts", strconv.Itoa(len(h.selection.Posts)))
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

func (h *Handler) GetDocument(c *gin.Context) {
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(h.markdownWriter.Run(h.selection.Posts)))
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
		"total":     h.selection.TotalPosts,
		"selected":  len(h.selection.Posts),
	}

	if h.runRepo != nil {
		if runCount, err := h.runRepo.GetRunCount(); err == nil {
			health["archived_runs"] = runCount
		}
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetStats(c *gin.Context) {
	rules := make(map[string]int, len(h.selection.Stats))
	for rule, count := range h.selection.Stats {
		rules[string(rule)] = count
	}

	categories := make(map[string]int)
	for _, p := range h.selection.Posts {
		for _, category := range p.Categories {
			categories[category]++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"input_file": h.selection.InputFile,
		"total":      h.selection.TotalPosts,
		"selected":   len(h.selection.Posts),
		"dropped":    h.selection.TotalPosts - len(h.selection.Posts),
		"rules":      rules,
		"categories": categories,
	})
}

func (h *Handler) GetLatestRun(c *gin.Context) {
	if h.runRepo == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Archive not configured"})
		return
	}

	run, err := h.runRepo.GetLatestRun()
	if err != nil {
		slog.Error("Database error", "operation", "get_latest_run", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if run == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No archived runs"})
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
	}

	posts, err := h.runRepo.GetRunPosts(run.ID, limit)
	if err != nil {
		slog.Error("Database error", "operation", "get_run_posts", "run_id", run.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	items := make([]gin.H, 0, len(posts))
	for _, p := range posts {
		items = append(items, gin.H{
			"rank":       p.Rank,
			"id":         p.PostID,
			"text":       p.Text,
			"created_at": p.CreatedAt,
			"likes":      p.Likes,
			"retweets":   p.Retweets,
			"views":      p.Views,
			"categories": p.Categories,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"run": gin.H{
			"id":         run.ID,
			"input_file": run.InputFile,
			"total":      run.TotalPosts,
			"selected":   run.SelectedPosts,
			"created_at": run.CreatedAt.Format(time.RFC3339),
		},
		"posts": items,
	})
}
