package render

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lysyi3m/post-comb/app/config"
	"github.com/lysyi3m/post-comb/app/post"
)

const unknownDate = "Unknown"

type MarkdownWriter struct {
	document config.Document
	printer  *message.Printer
}

func NewMarkdownWriter(document config.Document) *MarkdownWriter {
	return &MarkdownWriter{
		document: document,
		printer:  message.NewPrinter(language.English),
	}
}

// Run renders the first document.Limit posts in order as a ranked list
func (w *MarkdownWriter) Run(posts []post.SelectedPost) string {
	var buf strings.Builder

	buf.WriteString("# ")
	buf.WriteString(w.document.Title)
	buf.WriteString("\n\n")
	buf.WriteString(w.document.Subtitle)
	buf.WriteString("\n\n---\n\n")

	for i, p := range w.top(posts) {
		w.writeEntry(&buf, i+1, p)
	}

	return buf.String()
}

func (w *MarkdownWriter) top(posts []post.SelectedPost) []post.SelectedPost {
	if len(posts) > w.document.Limit {
		return posts[:w.document.Limit]
	}
	return posts
}

func (w *MarkdownWriter) writeEntry(buf *strings.Builder, rank int, p post.SelectedPost) {
	fmt.Fprintf(buf, "## %d. [%s] ❤️ %s\n\n", rank, formatDate(p.CreatedAt), w.formatCount(p.Likes))
	buf.WriteString(p.Text)
	buf.WriteString("\n\n---\n\n")
}

// formatCount groups thousands with commas, e.g. 1234567 as 1,234,567
func (w *MarkdownWriter) formatCount(n int64) string {
	return w.printer.Sprintf("%d", n)
}

// formatDate keeps the first 10 characters of the timestamp, i.e. the date of an ISO 8601 value
func formatDate(createdAt string) string {
	if createdAt == "" {
		return unknownDate
	}

	runes := []rune(createdAt)
	if len(runes) > 10 {
		runes = runes[:10]
	}
	return string(runes)
}
