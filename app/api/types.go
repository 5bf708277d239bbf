package api

import (
	"github.com/lysyi3m/post-comb/app/database"
	"github.com/lysyi3m/post-comb/app/post"
	"github.com/lysyi3m/post-comb/app/render"
	"github.com/lysyi3m/post-comb/app/tasks"
)

type JSONWriterInterface interface {
	Run(posts []post.SelectedPost) ([]byte, error)
}

type MarkdownWriterInterface interface {
	Run(posts []post.SelectedPost) string
}

var _ JSONWriterInterface = (*render.JSONWriter)(nil)
var _ MarkdownWriterInterface = (*render.MarkdownWriter)(nil)

type Handler struct {
	selection      *tasks.Selection
	jsonWriter     JSONWriterInterface
	markdownWriter MarkdownWriterInterface
	runRepo        database.RunRepository // nil when no archive is configured
	version        string
}
