package database

import "github.com/lysyi3m/post-comb/app/post"

type RunRepository interface {
	SaveRun(inputFile string, totalPosts int, posts []post.SelectedPost) (int64, error)

	GetLatestRun() (*Run, error)
	GetRunPosts(runID int64, limit int) ([]ArchivedPost, error)
	GetRunCount() (int, error)
}

var _ RunRepository = (*SelectionRepository)(nil)
