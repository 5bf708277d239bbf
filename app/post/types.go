package post

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Post is a single input record as found in the exported archive
type Post struct {
	ID        PostID  `json:"id"`
	Text      string  `json:"text"`
	CreatedAt string  `json:"created_at"`
	Metrics   Metrics `json:"metrics"`
}

// Metrics holds engagement counters. Absent counters stay zero; fractional
// values are rejected when the archive is parsed.
type Metrics struct {
	LikeCount    int64 `json:"like_count"`
	RetweetCount int64 `json:"retweet_count"`
	ViewCount    int64 `json:"view_count"`
}

// SelectedPost is the flattened projection of a kept Post.
// Field order is the order of keys in the JSON output.
type SelectedPost struct {
	ID        PostID `json:"id"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
	Likes     int64  `json:"likes"`
	Retweets  int64  `json:"retweets"`
	Views     int64  `json:"views"`

	Categories []string `json:"-"` // keyword categories found in the text
}

// PostID is a post id as found in the archive, either a JSON string or a
// JSON number. Numbers keep their literal text and are written back unquoted.
type PostID struct {
	value   string
	numeric bool
}

func StringID(s string) PostID {
	return PostID{value: s}
}

func NumberID(n string) PostID {
	return PostID{value: n, numeric: true}
}

func (id PostID) String() string {
	return id.value
}

func (id PostID) IsNumber() bool {
	return id.numeric
}

func (id PostID) MarshalJSON() ([]byte, error) {
	if id.numeric {
		return []byte(id.value), nil
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(id.value); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func (id *PostID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = PostID{}
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = StringID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("post id must be a string or number: %w", err)
	}
	*id = NumberID(n.String())
	return nil
}

// Select projects a post onto the output record
func Select(p Post) SelectedPost {
	return SelectedPost{
		ID:        p.ID,
		Text:      p.Text,
		CreatedAt: p.CreatedAt,
		Likes:     p.Metrics.LikeCount,
		Retweets:  p.Metrics.RetweetCount,
		Views:     p.Metrics.ViewCount,
	}
}
