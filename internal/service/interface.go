package service

import (
	"context"

	"github.com/campuskit/feedback-server/internal/repository/models"
)

// FeedbackRepository defines the storage operations the service depends on.
type FeedbackRepository interface {
	InsertSubmission(ctx context.Context, row models.FeedbackRow) error
	GetSubmissionsBySubject(ctx context.Context, subject string) ([]models.FeedbackRow, error)
	ListSubjects(ctx context.Context) ([]string, error)
}
