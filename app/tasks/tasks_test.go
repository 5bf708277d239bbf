package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lysyi3m/post-comb/app/config"
	"github.com/lysyi3m/post-comb/app/database"
	"github.com/lysyi3m/post-comb/app/post"
	"github.com/lysyi3m/post-comb/app/render"
)

// MockRunRepository implements a simple mock for testing
type MockRunRepository struct {
	runs  []database.Run
	posts map[int64][]post.SelectedPost
	err   error
}

var _ database.RunRepository = (*MockRunRepository)(nil)

func (m *MockRunRepository) SaveRun(inputFile string, totalPosts int, posts []post.SelectedPost) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	id := int64(len(m.runs) + 1)
	m.runs = append(m.runs, database.Run{ID: id, InputFile: inputFile, TotalPosts: totalPosts, SelectedPosts: len(posts)})
	if m.posts == nil {
		m.posts = make(map[int64][]post.SelectedPost)
	}
	m.posts[id] = posts
	return id, nil
}

func (m *MockRunRepository) GetLatestRun() (*database.Run, error) {
	if len(m.runs) == 0 {
		return nil, nil
	}
	return &m.runs[len(m.runs)-1], nil
}

func (m *MockRunRepository) GetRunPosts(runID int64, limit int) ([]database.ArchivedPost, error) {
	return nil, nil
}

func (m *MockRunRepository) GetRunCount() (int, error) {
	return len(m.runs), nil
}

func newSelectTask(t *testing.T, input string) *SelectPostsTask {
	t.Helper()

	dir := t.TempDir()
	inputFile := filepath.Join(dir, "posts.json")
	if err := os.WriteFile(inputFile, []byte(input), 0644); err != nil {
		t.Fatal(err)
	}

	rules := config.Default()
	return NewSelectPostsTask(inputFile,
		filepath.Join(dir, "selected.json"),
		filepath.Join(dir, "selected.md"),
		post.NewLoader(),
		post.NewFilterer(rules),
		render.NewJSONWriter(),
		render.NewMarkdownWriter(rules.Document))
}

func TestSelectPostsTask_Execute(t *testing.T) {
	long := strings.Repeat("b", 510)
	input := `[
  {"id": "1", "text": "@user thanks!", "metrics": {}},
  {"id": "2", "text": "Startup life is about compounding small wins daily into lasting wealth.", "created_at": "2019-02-03T00:00:00.000Z", "metrics": {"like_count": 600, "retweet_count": 10, "view_count": 1}},
  {"id": "3", "text": "RT @user: great thread on startups", "metrics": {"like_count": 10000}},
  {"id": "4", "text": "` + long + `", "metrics": {"like_count": 12000}},
  {"id": "5", "text": "` + long + `"}
]`

	task := newSelectTask(t, input)
	if err := Run(context.Background(), task); err != nil {
		t.Fatal(err)
	}

	if task.Result == nil {
		t.Fatal("Expected a result")
	}
	if task.Result.TotalPosts != 5 {
		t.Errorf("Expected 5 total posts, got %d", task.Result.TotalPosts)
	}

	var ids []string
	for _, p := range task.Result.Posts {
		ids = append(ids, p.ID.String())
	}
	if strings.Join(ids, ",") != "4,2,5" {
		t.Errorf("Expected posts ordered 4,2,5 by likes, got %v", ids)
	}

	data, err := os.ReadFile(task.JSONOutput)
	if err != nil {
		t.Fatal(err)
	}
	var written []post.SelectedPost
	if err := json.Unmarshal(data, &written); err != nil {
		t.Fatal(err)
	}
	if len(written) != 3 || written[0].Likes != 12000 || written[1].Retweets != 10 || written[1].Views != 1 {
		t.Errorf("Unexpected JSON output: %s", data)
	}

	document, err := os.ReadFile(task.MarkdownOutput)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(document), "## 1. [Unknown] ❤️ 12,000\n") {
		t.Errorf("Expected first entry heading in document:\n%s", document)
	}
	if !strings.Contains(string(document), "## 2. [2019-02-03] ❤️ 600\n") {
		t.Errorf("Expected second entry heading in document:\n%s", document)
	}
	if !strings.Contains(string(document), "## 3. [Unknown] ❤️ 0\n") {
		t.Errorf("Expected third entry heading in document:\n%s", document)
	}

	if task.Result.Stats[post.RuleReply] != 1 || task.Result.Stats[post.RuleRetweet] != 1 {
		t.Errorf("Unexpected stats: %v", task.Result.Stats)
	}
}

func TestSelectPostsTask_MalformedInput(t *testing.T) {
	task := newSelectTask(t, `[{"text": `)

	if err := Run(context.Background(), task); err == nil {
		t.Fatal("Expected error for malformed input")
	}

	if _, err := os.Stat(task.JSONOutput); !os.IsNotExist(err) {
		t.Error("No output should be written when the input cannot be parsed")
	}
	if _, err := os.Stat(task.MarkdownOutput); !os.IsNotExist(err) {
		t.Error("No document should be written when the input cannot be parsed")
	}
}

func TestSelectPostsTask_CancelledContext(t *testing.T) {
	task := newSelectTask(t, `[]`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := Run(ctx, task); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestArchivePostsTask_Execute(t *testing.T) {
	repo := &MockRunRepository{}
	selection := &Selection{
		InputFile:  "posts.json",
		TotalPosts: 10,
		Posts:      []post.SelectedPost{{ID: post.StringID("a"), Likes: 3}, {ID: post.StringID("b"), Likes: 1}},
	}

	task := NewArchivePostsTask(selection, repo)
	if err := Run(context.Background(), task); err != nil {
		t.Fatal(err)
	}

	if task.RunID != 1 {
		t.Errorf("Expected run id 1, got %d", task.RunID)
	}
	if len(repo.runs) != 1 || repo.runs[0].TotalPosts != 10 || repo.runs[0].SelectedPosts != 2 {
		t.Errorf("Unexpected runs: %+v", repo.runs)
	}
	if len(repo.posts[1]) != 2 {
		t.Errorf("Expected 2 archived posts, got %d", len(repo.posts[1]))
	}
}

func TestArchivePostsTask_Errors(t *testing.T) {
	if err := Run(context.Background(), NewArchivePostsTask(nil, &MockRunRepository{})); err == nil {
		t.Error("Expected error without a selection")
	}

	repo := &MockRunRepository{err: errors.New("disk full")}
	if err := Run(context.Background(), NewArchivePostsTask(&Selection{}, repo)); err == nil {
		t.Error("Expected repository error to propagate")
	}
}

func TestTask_Duration(t *testing.T) {
	task := NewTask(TaskTypeSelectPosts)
	if task.GetDuration() != 0 {
		t.Error("Duration should be zero before the task starts")
	}

	task.Start()
	if task.StartedAt == nil {
		t.Error("StartedAt should be set after Start")
	}
	if task.GetType() != TaskTypeSelectPosts || task.GetID() == "" {
		t.Errorf("Unexpected task identity: %+v", task)
	}
}
