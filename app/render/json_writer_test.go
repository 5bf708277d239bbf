package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lysyi3m/post-comb/app/post"
)

func TestJSONWriter_Run(t *testing.T) {
	writer := NewJSONWriter()

	posts := []post.SelectedPost{
		{ID: post.StringID("1"), Text: "财富 & <freedom>", CreatedAt: "2020-01-01T00:00:00.000Z", Likes: 1200, Retweets: 30, Views: 9000, Categories: []string{"wealth"}},
		{ID: post.StringID("2"), Text: "Second", Likes: 5},
	}

	data, err := writer.Run(posts)
	if err != nil {
		t.Fatal(err)
	}

	expected := `[
  {
    "id": "1",
    "text": "财富 & <freedom>",
    "created_at": "2020-01-01T00:00:00.000Z",
    "likes": 1200,
    "retweets": 30,
    "views": 9000
  },
  {
    "id": "2",
    "text": "Second",
    "created_at": "",
    "likes": 5,
    "retweets": 0,
    "views": 0
  }
]`

	if string(data) != expected {
		t.Errorf("Unexpected JSON output:\n%s", data)
	}

	if strings.Contains(string(data), "categories") {
		t.Error("Categories should not be serialized")
	}
}

func TestJSONWriter_RunEmpty(t *testing.T) {
	writer := NewJSONWriter()

	for _, posts := range [][]post.SelectedPost{nil, {}} {
		data, err := writer.Run(posts)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "[]" {
			t.Errorf("Expected '[]', got '%s'", data)
		}
	}
}

func TestJSONWriter_RoundTrip(t *testing.T) {
	writer := NewJSONWriter()

	posts := []post.SelectedPost{
		{ID: post.StringID("42"), Text: "Line one\nLine \"two\" — ünïcödé 🚀", CreatedAt: "2019-05-31T23:59:59.000Z", Likes: 77, Retweets: 7, Views: 700},
	}

	first, err := writer.Run(posts)
	if err != nil {
		t.Fatal(err)
	}

	var decoded []post.SelectedPost
	if err := json.Unmarshal(first, &decoded); err != nil {
		t.Fatal(err)
	}

	second, err := writer.Run(decoded)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(first, second) {
		t.Errorf("Round trip changed output:\n%s\n---\n%s", first, second)
	}
}

func TestJSONWriter_NumericIDStaysNumber(t *testing.T) {
	input := `[
  {"id": 1234567890123456789, "text": "Startup life is about compounding small wins daily into lasting wealth.", "metrics": {"like_count": 600}},
  {"id": "1234", "text": "Startup life is about compounding small wins daily into lasting wealth.", "metrics": {"like_count": 601}}
]`

	var posts []post.Post
	if err := json.Unmarshal([]byte(input), &posts); err != nil {
		t.Fatal(err)
	}

	selected := make([]post.SelectedPost, 0, len(posts))
	for _, p := range posts {
		selected = append(selected, post.Select(p))
	}

	data, err := NewJSONWriter().Run(selected)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(string(data), `"id": 1234567890123456789,`) {
		t.Errorf("Expected numeric id written unquoted:\n%s", data)
	}
	if !strings.Contains(string(data), `"id": "1234",`) {
		t.Errorf("Expected string id written quoted:\n%s", data)
	}

	var decoded []post.SelectedPost
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	again, err := NewJSONWriter().Run(decoded)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, again) {
		t.Errorf("Round trip changed output:\n%s\n---\n%s", data, again)
	}
}

func TestJSONWriter_MissingIDIsEmptyString(t *testing.T) {
	data, err := NewJSONWriter().Run([]post.SelectedPost{{Text: "no id"}})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"id": "",`) {
		t.Errorf("Expected empty string id:\n%s", data)
	}
}
