package database

import (
	"time"
)

// Run is one invocation of the selection pipeline
type Run struct {
	ID            int64
	InputFile     string
	TotalPosts    int
	SelectedPosts int
	CreatedAt     time.Time
}

// ArchivedPost is a selected post as stored for a run
type ArchivedPost struct {
	RunID      int64
	Rank       int
	PostID     string
	Text       string
	CreatedAt  string // as found in the input, not parsed
	Likes      int64
	Retweets   int64
	Views      int64
	Categories []string
}
