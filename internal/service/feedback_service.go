package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/campuskit/feedback-server/internal/feedback"
	"github.com/campuskit/feedback-server/internal/repository/models"
)

const (
	dbTimeout = 1 * time.Second
)

var (
	ErrNoFeedback     = errors.New("no feedback found")
	ErrStorageFailure = errors.New("storage failure")
)

// FeedbackService is the single orchestration point between storage and the
// aggregation engine. Every entry point goes through it, so there is exactly
// one implementation of the averaging rules in the whole system.
type FeedbackService struct {
	storage    FeedbackRepository
	categories feedback.CategorySet
	logger     *zap.Logger
}

// NewFeedbackService creates a new FeedbackService instance. The category
// set must be non-empty; summarizing over zero categories is undefined and
// refusing it here keeps that a startup failure instead of a request error.
func NewFeedbackService(storage FeedbackRepository, categories feedback.CategorySet, logger *zap.Logger) *FeedbackService {
	if storage == nil {
		panic("storage must not be nil")
	}
	if len(categories) == 0 {
		panic("category set must not be empty")
	}
	if logger == nil {
		l, _ := zap.NewProduction()
		logger = l
	}
	return &FeedbackService{
		storage:    storage,
		categories: categories,
		logger:     logger,
	}
}

// Categories returns the active category set.
func (s *FeedbackService) Categories() feedback.CategorySet {
	return s.categories
}

// SubmitFeedback validates and persists one submission. Validation is
// all-or-nothing: on any violation a *feedback.ValidationError is returned
// and nothing is written.
func (s *FeedbackService) SubmitFeedback(ctx context.Context, in SubmissionInput) error {
	subject := strings.TrimSpace(in.Subject)
	if subject == "" {
		return &feedback.ValidationError{Fields: map[string]string{"subject": "subject is required"}}
	}

	normalized, err := feedback.ValidateRatings(s.categories, in.Ratings)
	if err != nil {
		return fmt.Errorf("validate submission for %q: %w", subject, err)
	}

	blob, err := feedback.EncodeRatings(normalized)
	if err != nil {
		return fmt.Errorf("encode ratings for %q: %w", subject, err)
	}

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	row := models.FeedbackRow{
		Subject:    subject,
		Respondent: strings.TrimSpace(in.Respondent),
		Ratings:    blob,
		Comment:    strings.TrimSpace(in.Comment),
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.storage.InsertSubmission(dbCtx, row); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	s.logger.Info("feedback submitted",
		zap.String("subject", subject),
		zap.Bool("anonymous", row.Respondent == ""),
		zap.Bool("has_comment", row.Comment != ""))
	return nil
}

// GetSummary loads the full submission history for a subject and aggregates
// it. A stored row whose ratings blob no longer decodes is kept in the
// response count and keeps its comment, but contributes no ratings; the
// failure is logged per row and never aborts the rest of the aggregation.
func (s *FeedbackService) GetSummary(ctx context.Context, subject string) (*feedback.Summary, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	rows, err := s.storage.GetSubmissionsBySubject(dbCtx, subject)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	if len(rows) == 0 {
		return nil, ErrNoFeedback
	}

	submissions := make([]feedback.Submission, 0, len(rows))
	for _, row := range rows {
		ratings, err := feedback.DecodeRatings(row.Ratings)
		if err != nil {
			s.logger.Warn("skipping undecodable ratings blob",
				zap.Int64("row_id", row.ID),
				zap.String("subject", subject),
				zap.Error(err))
			ratings = nil
		}
		submissions = append(submissions, feedback.Submission{
			Subject:    row.Subject,
			Respondent: row.Respondent,
			Ratings:    ratings,
			Comment:    row.Comment,
		})
	}

	summary, err := feedback.Summarize(s.categories, submissions)
	if err != nil {
		if errors.Is(err, feedback.ErrNoSubmissions) {
			return nil, ErrNoFeedback
		}
		return nil, fmt.Errorf("summarize %q: %w", subject, err)
	}

	s.logger.Info("summary computed",
		zap.String("subject", subject),
		zap.Int("responses", summary.ResponseCount),
		zap.Float64("overall", summary.OverallAverage))
	return summary, nil
}

// GetReport produces the renderer-facing report structure. A subject with no
// feedback yields the placeholder report, not an error: the report always
// renders.
func (s *FeedbackService) GetReport(ctx context.Context, subject string) (feedback.ReportData, error) {
	summary, err := s.GetSummary(ctx, subject)
	if err != nil && !errors.Is(err, ErrNoFeedback) {
		return feedback.ReportData{}, err
	}
	return feedback.AssembleReport(subject, summary, s.categories), nil
}

// ListSubjects returns every subject with recorded feedback.
func (s *FeedbackService) ListSubjects(ctx context.Context) ([]string, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	subjects, err := s.storage.ListSubjects(dbCtx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	return subjects, nil
}
