package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/campuskit/feedback-server/internal/repository/models"
)

type FeedbackRepository struct {
	db *sql.DB
}

func NewFeedbackRepository(db *sql.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// EnsureSchema creates the feedback table if it does not exist yet.
func (r *FeedbackRepository) EnsureSchema(ctx context.Context) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS feedback (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		subject TEXT NOT NULL,
		respondent TEXT NOT NULL DEFAULT '',
		ratings TEXT NOT NULL,
		comment TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_feedback_subject ON feedback(subject);
	`

	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure feedback schema: %w", err)
	}
	return nil
}

// InsertSubmission appends one submission row. Rows are append-only: the
// core never mutates or deletes stored feedback.
func (r *FeedbackRepository) InsertSubmission(ctx context.Context, row models.FeedbackRow) error {
	const query = `
		INSERT INTO feedback (subject, respondent, ratings, comment, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	if _, err := r.db.ExecContext(ctx, query,
		row.Subject, row.Respondent, row.Ratings, row.Comment, row.CreatedAt); err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}
	return nil
}

// GetSubmissionsBySubject returns the full submission history for one
// subject in insertion order, which is what keeps summary comments in
// submission order.
func (r *FeedbackRepository) GetSubmissionsBySubject(ctx context.Context, subject string) ([]models.FeedbackRow, error) {
	const query = `
		SELECT id, subject, respondent, ratings, comment, created_at
		FROM feedback
		WHERE subject = ?
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, subject)
	if err != nil {
		return nil, fmt.Errorf("query submissions for %q: %w", subject, err)
	}
	defer rows.Close()

	var results []models.FeedbackRow
	for rows.Next() {
		var row models.FeedbackRow
		if err := rows.Scan(&row.ID, &row.Subject, &row.Respondent, &row.Ratings, &row.Comment, &row.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan submission row: %w", err)
		}
		results = append(results, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate submissions: %w", err)
	}
	return results, nil
}

// ListSubjects returns every subject with at least one submission, sorted.
func (r *FeedbackRepository) ListSubjects(ctx context.Context) ([]string, error) {
	const query = `SELECT DISTINCT subject FROM feedback ORDER BY subject`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query subjects: %w", err)
	}
	defer rows.Close()

	var subjects []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan subject: %w", err)
		}
		subjects = append(subjects, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subjects: %w", err)
	}
	return subjects, nil
}
