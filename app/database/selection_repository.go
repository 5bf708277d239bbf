package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lysyi3m/post-comb/app/post"
)

// SelectionRepository handles database operations for selection runs and their posts
type SelectionRepository struct {
	db *DB
}

// NewSelectionRepository creates a new selection repository
func NewSelectionRepository(db *DB) *SelectionRepository {
	return &SelectionRepository{db: db}
}

// SaveRun records a run together with its posts, ranked 1..n in the given
// order, and returns the run id. Nothing is stored unless every row is.
func (r *SelectionRepository) SaveRun(inputFile string, totalPosts int, posts []post.SelectedPost) (int64, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(`
		INSERT INTO selection_runs (input_file, total_posts, selected_posts, created_at)
		VALUES (?, ?, ?, ?)
	`, inputFile, totalPosts, len(posts), time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return 0, fmt.Errorf("failed to create run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run id: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO selected_posts (
			run_id, rank, post_id, text, created_at,
			likes, retweets, views, categories
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range posts {
		categories, err := json.Marshal(nonNil(p.Categories))
		if err != nil {
			return 0, fmt.Errorf("failed to encode categories: %w", err)
		}

		_, err = stmt.Exec(runID, i+1, p.ID.String(), p.Text, p.CreatedAt,
			p.Likes, p.Retweets, p.Views, string(categories))
		if err != nil {
			return 0, fmt.Errorf("failed to store post %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit run: %w", err)
	}

	return runID, nil
}

// GetLatestRun returns the most recent run, or nil when none exists
func (r *SelectionRepository) GetLatestRun() (*Run, error) {
	var run Run
	var createdAt string

	err := r.db.QueryRow(`
		SELECT id, input_file, total_posts, selected_posts, created_at
		FROM selection_runs
		ORDER BY id DESC
		LIMIT 1
	`).Scan(&run.ID, &run.InputFile, &run.TotalPosts, &run.SelectedPosts, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest run: %w", err)
	}

	run.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse run timestamp: %w", err)
	}

	return &run, nil
}

// GetRunPosts returns the posts of a run by rank; limit <= 0 returns all of them
func (r *SelectionRepository) GetRunPosts(runID int64, limit int) ([]ArchivedPost, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := r.db.Query(`
		SELECT run_id, rank, post_id, text, created_at,
		       likes, retweets, views, categories
		FROM selected_posts
		WHERE run_id = ?
		ORDER BY rank
		LIMIT ?
	`, runID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get run posts: %w", err)
	}
	defer rows.Close()

	var posts []ArchivedPost
	for rows.Next() {
		var p ArchivedPost
		var categories string
		err := rows.Scan(
			&p.RunID, &p.Rank, &p.PostID, &p.Text, &p.CreatedAt,
			&p.Likes, &p.Retweets, &p.Views, &categories,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}

		if err := json.Unmarshal([]byte(categories), &p.Categories); err != nil {
			return nil, fmt.Errorf("failed to decode categories: %w", err)
		}

		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating post rows: %w", err)
	}

	return posts, nil
}

// GetRunCount returns the number of recorded runs
func (r *SelectionRepository) GetRunCount() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM selection_runs`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get run count: %w", err)
	}
	return count, nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
