package mocks

import (
	"context"
	"errors"

	"github.com/campuskit/feedback-server/internal/feedback"
	"github.com/campuskit/feedback-server/internal/service"
)

// MockFeedbackService is a mock implementation of the FeedbackService
// interface for testing the handler layer.
type MockFeedbackService struct {
	SubmitFeedbackFunc func(ctx context.Context, in service.SubmissionInput) error
	GetSummaryFunc     func(ctx context.Context, subject string) (*feedback.Summary, error)
	GetReportFunc      func(ctx context.Context, subject string) (feedback.ReportData, error)
	ListSubjectsFunc   func(ctx context.Context) ([]string, error)
}

// SubmitFeedback implements the FeedbackService interface
func (m *MockFeedbackService) SubmitFeedback(ctx context.Context, in service.SubmissionInput) error {
	if m.SubmitFeedbackFunc != nil {
		return m.SubmitFeedbackFunc(ctx, in)
	}
	return errors.New("SubmitFeedbackFunc not implemented")
}

// GetSummary implements the FeedbackService interface
func (m *MockFeedbackService) GetSummary(ctx context.Context, subject string) (*feedback.Summary, error) {
	if m.GetSummaryFunc != nil {
		return m.GetSummaryFunc(ctx, subject)
	}
	return nil, errors.New("GetSummaryFunc not implemented")
}

// GetReport implements the FeedbackService interface
func (m *MockFeedbackService) GetReport(ctx context.Context, subject string) (feedback.ReportData, error) {
	if m.GetReportFunc != nil {
		return m.GetReportFunc(ctx, subject)
	}
	return feedback.ReportData{}, errors.New("GetReportFunc not implemented")
}

// ListSubjects implements the FeedbackService interface
func (m *MockFeedbackService) ListSubjects(ctx context.Context) ([]string, error) {
	if m.ListSubjectsFunc != nil {
		return m.ListSubjectsFunc(ctx)
	}
	return nil, errors.New("ListSubjectsFunc not implemented")
}
