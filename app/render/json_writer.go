package render

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/lysyi3m/post-comb/app/post"
)

type JSONWriter struct{}

func NewJSONWriter() *JSONWriter {
	return &JSONWriter{}
}

// Run encodes the posts as a 2-space indented JSON array. Non-ASCII and HTML
// characters are written literally and there is no trailing newline.
func (w *JSONWriter) Run(posts []post.SelectedPost) ([]byte, error) {
	if posts == nil {
		posts = []post.SelectedPost{}
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(posts); err != nil {
		return nil, fmt.Errorf("failed to encode posts: %w", err)
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
