package post

import (
	"bytes"
	"cmp"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

// Loader reads an archive of posts from a local file
type Loader struct {
	gofeedParser *gofeed.Parser
}

func NewLoader() *Loader {
	return &Loader{
		gofeedParser: gofeed.NewParser(),
	}
}

// Run loads all posts from path, preserving their order in the file.
// Files ending in .xml, .rss or .atom are parsed as feeds, anything else as a JSON array.
func (l *Loader) Run(path string) ([]Post, error) {
	if path == "" {
		return nil, fmt.Errorf("input file path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml", ".rss", ".atom":
		return l.ParseFeed(data)
	default:
		return l.ParseJSON(data)
	}
}

func (l *Loader) ParseJSON(data []byte) ([]Post, error) {
	var posts []Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, fmt.Errorf("failed to parse posts JSON: %w", err)
	}

	if posts == nil {
		posts = []Post{}
	}

	return posts, nil
}

func (l *Loader) ParseFeed(data []byte) ([]Post, error) {
	feed, err := l.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	posts := make([]Post, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		posts = append(posts, l.normalizeItem(item))
	}

	return posts, nil
}

func (l *Loader) normalizeItem(item *gofeed.Item) Post {
	p := Post{
		ID:   StringID(cmp.Or(item.GUID, item.Link)),
		Text: cmp.Or(item.Description, item.Content, item.Title),
	}

	if item.PublishedParsed != nil {
		p.CreatedAt = item.PublishedParsed.UTC().Format(time.RFC3339)
	}

	return p
}
