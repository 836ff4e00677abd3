package mocks

import (
	"context"
	"errors"

	"github.com/campuskit/feedback-server/internal/repository/models"
)

// MockFeedbackRepository is a mock implementation of the FeedbackRepository
// interface for testing the service layer.
type MockFeedbackRepository struct {
	InsertSubmissionFunc        func(ctx context.Context, row models.FeedbackRow) error
	GetSubmissionsBySubjectFunc func(ctx context.Context, subject string) ([]models.FeedbackRow, error)
	ListSubjectsFunc            func(ctx context.Context) ([]string, error)
}

// InsertSubmission implements the FeedbackRepository interface
func (m *MockFeedbackRepository) InsertSubmission(ctx context.Context, row models.FeedbackRow) error {
	if m.InsertSubmissionFunc != nil {
		return m.InsertSubmissionFunc(ctx, row)
	}
	return errors.New("InsertSubmissionFunc not implemented")
}

// GetSubmissionsBySubject implements the FeedbackRepository interface
func (m *MockFeedbackRepository) GetSubmissionsBySubject(ctx context.Context, subject string) ([]models.FeedbackRow, error) {
	if m.GetSubmissionsBySubjectFunc != nil {
		return m.GetSubmissionsBySubjectFunc(ctx, subject)
	}
	return nil, errors.New("GetSubmissionsBySubjectFunc not implemented")
}

// ListSubjects implements the FeedbackRepository interface
func (m *MockFeedbackRepository) ListSubjects(ctx context.Context) ([]string, error) {
	if m.ListSubjectsFunc != nil {
		return m.ListSubjectsFunc(ctx)
	}
	return nil, errors.New("ListSubjectsFunc not implemented")
}
