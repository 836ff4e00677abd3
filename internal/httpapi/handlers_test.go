package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campuskit/feedback-server/internal/feedback"
	"github.com/campuskit/feedback-server/internal/httpapi/mocks"
	"github.com/campuskit/feedback-server/internal/service"
)

func newTestServer(t *testing.T, svc *mocks.MockFeedbackService, cache *mocks.MockCacher) *httptest.Server {
	t.Helper()

	handlers := NewHandlers(svc, cache, zap.NewNop(), time.Minute)
	mux := http.NewServeMux()
	handlers.Register(mux)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func sampleSummary() *feedback.Summary {
	return &feedback.Summary{
		Subject:          "Dr. Rao",
		ResponseCount:    2,
		CategoryAverages: map[string]float64{"Knowledge": 4.00, "Clarity": 3.00},
		OverallAverage:   3.50,
		Comments:         []string{"solid"},
	}
}

func TestNewHandlers(t *testing.T) {
	t.Run("nil service panics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewHandlers(nil, &mocks.MockCacher{}, zap.NewNop(), time.Minute)
		})
	})

	t.Run("non-positive TTL uses default", func(t *testing.T) {
		h := NewHandlers(&mocks.MockFeedbackService{}, &mocks.MockCacher{}, zap.NewNop(), 0)
		assert.Equal(t, defaultCacheDuration, h.cacheTTL)
	})
}

func TestSubmitFeedbackHandler(t *testing.T) {
	t.Run("valid submission accepted and cache invalidated", func(t *testing.T) {
		var got service.SubmissionInput
		svc := &mocks.MockFeedbackService{
			SubmitFeedbackFunc: func(ctx context.Context, in service.SubmissionInput) error {
				got = in
				return nil
			},
		}
		var deletedKey string
		cache := &mocks.MockCacher{
			DeleteFunc: func(ctx context.Context, key string) error {
				deletedKey = key
				return nil
			},
		}
		srv := newTestServer(t, svc, cache)

		body := `{"subject":"Dr. Rao","respondent":"s-101","ratings":{"Knowledge":5,"Clarity":3},"comment":"nice"}`
		resp, err := http.Post(srv.URL+"/api/v1/feedback", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "Dr. Rao", got.Subject)
		assert.Equal(t, map[string]int{"Knowledge": 5, "Clarity": 3}, got.Ratings)
		assert.Contains(t, deletedKey, "Dr. Rao")
	})

	t.Run("invalid JSON body", func(t *testing.T) {
		srv := newTestServer(t, &mocks.MockFeedbackService{}, &mocks.MockCacher{})

		resp, err := http.Post(srv.URL+"/api/v1/feedback", "application/json", strings.NewReader("{not json"))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("missing ratings rejected by struct validation", func(t *testing.T) {
		svc := &mocks.MockFeedbackService{
			SubmitFeedbackFunc: func(ctx context.Context, in service.SubmissionInput) error {
				t.Fatal("service must not be called for an invalid request")
				return nil
			},
		}
		srv := newTestServer(t, svc, &mocks.MockCacher{})

		resp, err := http.Post(srv.URL+"/api/v1/feedback", "application/json",
			strings.NewReader(`{"subject":"Dr. Rao"}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("category violations returned with field detail", func(t *testing.T) {
		svc := &mocks.MockFeedbackService{
			SubmitFeedbackFunc: func(ctx context.Context, in service.SubmissionInput) error {
				return &feedback.ValidationError{Fields: map[string]string{
					"Clarity": "rating is required",
				}}
			},
		}
		srv := newTestServer(t, svc, &mocks.MockCacher{})

		resp, err := http.Post(srv.URL+"/api/v1/feedback", "application/json",
			strings.NewReader(`{"subject":"Dr. Rao","ratings":{"Knowledge":5}}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body errorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "rating is required", body.Fields["Clarity"])
	})

	t.Run("storage failure maps to 500", func(t *testing.T) {
		svc := &mocks.MockFeedbackService{
			SubmitFeedbackFunc: func(ctx context.Context, in service.SubmissionInput) error {
				return service.ErrStorageFailure
			},
		}
		srv := newTestServer(t, svc, &mocks.MockCacher{})

		resp, err := http.Post(srv.URL+"/api/v1/feedback", "application/json",
			strings.NewReader(`{"subject":"Dr. Rao","ratings":{"Knowledge":5}}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}

func TestGetSubjectSummaryHandler(t *testing.T) {
	t.Run("cache miss fetches from service", func(t *testing.T) {
		svc := &mocks.MockFeedbackService{
			GetSummaryFunc: func(ctx context.Context, subject string) (*feedback.Summary, error) {
				assert.Equal(t, "Dr. Rao", subject)
				return sampleSummary(), nil
			},
		}
		srv := newTestServer(t, svc, &mocks.MockCacher{})

		resp, err := http.Get(srv.URL + "/api/v1/subjects/Dr.%20Rao/summary")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var summary feedback.Summary
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
		assert.Equal(t, 2, summary.ResponseCount)
		assert.Equal(t, 3.50, summary.OverallAverage)
	})

	t.Run("cache hit skips the service", func(t *testing.T) {
		cached, err := json.Marshal(sampleSummary())
		require.NoError(t, err)

		svc := &mocks.MockFeedbackService{
			GetSummaryFunc: func(ctx context.Context, subject string) (*feedback.Summary, error) {
				t.Fatal("service must not be called on a cache hit")
				return nil, nil
			},
		}
		cache := &mocks.MockCacher{
			GetFunc: func(ctx context.Context, key string, dest any) error {
				return json.Unmarshal(cached, dest)
			},
		}
		srv := newTestServer(t, svc, cache)

		resp, err := http.Get(srv.URL + "/api/v1/subjects/Dr.%20Rao/summary")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("no feedback maps to 404", func(t *testing.T) {
		svc := &mocks.MockFeedbackService{
			GetSummaryFunc: func(ctx context.Context, subject string) (*feedback.Summary, error) {
				return nil, service.ErrNoFeedback
			},
		}
		srv := newTestServer(t, svc, &mocks.MockCacher{})

		resp, err := http.Get(srv.URL + "/api/v1/subjects/Nobody/summary")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestGetSubjectReportHandler(t *testing.T) {
	svc := &mocks.MockFeedbackService{
		GetReportFunc: func(ctx context.Context, subject string) (feedback.ReportData, error) {
			summary := sampleSummary()
			return feedback.AssembleReport(subject, summary, feedback.CategorySet{"Knowledge", "Clarity"}), nil
		},
	}
	srv := newTestServer(t, svc, &mocks.MockCacher{})

	resp, err := http.Get(srv.URL + "/api/v1/subjects/Dr.%20Rao/report.pdf")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "Dr._Rao_feedback_report.pdf")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(body[:5]))
}

func TestListSubjectsHandler(t *testing.T) {
	t.Run("returns subjects", func(t *testing.T) {
		svc := &mocks.MockFeedbackService{
			ListSubjectsFunc: func(ctx context.Context) ([]string, error) {
				return []string{"Dr. Rao"}, nil
			},
		}
		srv := newTestServer(t, svc, &mocks.MockCacher{})

		resp, err := http.Get(srv.URL + "/api/v1/subjects")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string][]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, []string{"Dr. Rao"}, body["subjects"])
	})

	t.Run("empty storage returns empty list, not null", func(t *testing.T) {
		svc := &mocks.MockFeedbackService{
			ListSubjectsFunc: func(ctx context.Context) ([]string, error) {
				return nil, nil
			},
		}
		srv := newTestServer(t, svc, &mocks.MockCacher{})

		resp, err := http.Get(srv.URL + "/api/v1/subjects")
		require.NoError(t, err)
		defer resp.Body.Close()

		var body map[string][]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.NotNil(t, body["subjects"])
		assert.Empty(t, body["subjects"])
	})
}

func TestHealthHandler(t *testing.T) {
	srv := newTestServer(t, &mocks.MockFeedbackService{}, &mocks.MockCacher{})

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
