package httpapi

import (
	"context"
	"time"

	"github.com/campuskit/feedback-server/internal/feedback"
	"github.com/campuskit/feedback-server/internal/service"
)

// Cacher defines the interface for cache operations.
type Cacher interface {
	Close() error
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
}

// FeedbackService defines the service operations the handlers depend on.
type FeedbackService interface {
	SubmitFeedback(ctx context.Context, in service.SubmissionInput) error
	GetSummary(ctx context.Context, subject string) (*feedback.Summary, error)
	GetReport(ctx context.Context, subject string) (feedback.ReportData, error)
	ListSubjects(ctx context.Context) ([]string, error)
}
