package tasks

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lysyi3m/post-comb/app/database"
)

type ArchivePostsTask struct {
	Task
	Selection *Selection
	runRepo   database.RunRepository

	RunID int64
}

func NewArchivePostsTask(selection *Selection, runRepo database.RunRepository) *ArchivePostsTask {
	return &ArchivePostsTask{
		Task:      NewTask(TaskTypeArchivePosts),
		Selection: selection,
		runRepo:   runRepo,
	}
}

func (t *ArchivePostsTask) Execute(ctx context.Context) error {

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if t.Selection == nil {
		return fmt.Errorf("no selection to archive")
	}

	runID, err := t.runRepo.SaveRun(t.Selection.InputFile, t.Selection.TotalPosts, t.Selection.Posts)
	if err != nil {
		return fmt.Errorf("failed to archive run: %w", err)
	}

	t.RunID = runID

	slog.Info("Task completed",
		"type", "ArchivePosts",
		"run_id", runID,
		"duration", t.GetDuration(),
		"posts", len(t.Selection.Posts))

	return nil
}
