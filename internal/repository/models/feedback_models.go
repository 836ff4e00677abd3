package models

import "time"

// FeedbackRow is one persisted submission as stored in the feedback table.
// The Ratings column holds the JSON-encoded category→rating map.
type FeedbackRow struct {
	ID         int64
	Subject    string
	Respondent string
	Ratings    string
	Comment    string
	CreatedAt  time.Time
}
