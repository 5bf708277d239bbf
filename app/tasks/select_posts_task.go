package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/lysyi3m/post-comb/app/post"
	"github.com/lysyi3m/post-comb/app/render"
)

// Selection is the outcome of a SelectPostsTask
type Selection struct {
	InputFile  string
	TotalPosts int
	Posts      []post.SelectedPost // sorted by likes, most liked first
	Stats      post.Stats
}

type SelectPostsTask struct {
	Task
	InputFile      string
	JSONOutput     string
	MarkdownOutput string
	loader         *post.Loader
	filterer       *post.Filterer
	jsonWriter     *render.JSONWriter
	markdownWriter *render.MarkdownWriter

	Result *Selection
}

func NewSelectPostsTask(inputFile, jsonOutput, markdownOutput string, loader *post.Loader, filterer *post.Filterer, jsonWriter *render.JSONWriter, markdownWriter *render.MarkdownWriter) *SelectPostsTask {
	return &SelectPostsTask{
		Task:           NewTask(TaskTypeSelectPosts),
		InputFile:      inputFile,
		JSONOutput:     jsonOutput,
		MarkdownOutput: markdownOutput,
		loader:         loader,
		filterer:       filterer,
		jsonWriter:     jsonWriter,
		markdownWriter: markdownWriter,
	}
}

func (t *SelectPostsTask) Execute(ctx context.Context) error {

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	posts, err := t.loader.Run(t.InputFile)
	if err != nil {
		return fmt.Errorf("failed to load posts: %w", err)
	}
	slog.Info("Loaded posts", "file", t.InputFile, "total", len(posts))

	selected, stats := t.filterer.Run(posts)
	post.SortByLikes(selected)
	slog.Info("Filtered meaningful posts", "selected", len(selected), "dropped", len(posts)-len(selected))

	data, err := t.jsonWriter.Run(selected)
	if err != nil {
		return fmt.Errorf("failed to render JSON: %w", err)
	}
	if err := os.WriteFile(t.JSONOutput, data, 0644); err != nil {
		return fmt.Errorf("failed to write JSON output: %w", err)
	}
	slog.Info("Saved selected posts", "file", t.JSONOutput, "posts", len(selected))

	document := t.markdownWriter.Run(selected)
	if err := os.WriteFile(t.MarkdownOutput, []byte(document), 0644); err != nil {
		return fmt.Errorf("failed to write Markdown output: %w", err)
	}
	slog.Info("Saved top posts document", "file", t.MarkdownOutput)

	t.Result = &Selection{
		InputFile:  t.InputFile,
		TotalPosts: len(posts),
		Posts:      selected,
		Stats:      stats,
	}

	slog.Info("Task completed",
		"type", "SelectPosts",
		"duration", t.GetDuration(),
		"total", len(posts),
		"selected", len(selected))

	return nil
}
