package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/campuskit/feedback-server/internal/feedback"
	"github.com/campuskit/feedback-server/internal/report"
	"github.com/campuskit/feedback-server/internal/service"
)

const (
	defaultCacheDuration  = 10 * time.Minute
	defaultRequestTimeout = 10 * time.Second
)

const summaryCachePrefix = "http:subject_summary"

type Handlers struct {
	feedback FeedbackService
	cache    Cacher
	validate *validator.Validate
	logger   *zap.Logger
	sfGroup  singleflight.Group
	cacheTTL time.Duration
}

// NewHandlers initializes the HTTP handlers.
func NewHandlers(svc FeedbackService, cache Cacher, logger *zap.Logger, ttl time.Duration) *Handlers {
	if svc == nil {
		panic("nil FeedbackService provided to NewHandlers")
	}
	if ttl <= 0 {
		ttl = defaultCacheDuration
	}
	return &Handlers{
		feedback: svc,
		cache:    cache,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger.Named("http-handler"),
		cacheTTL: ttl,
	}
}

// Register mounts every route on the mux.
func (h *Handlers) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/feedback", h.SubmitFeedback)
	mux.HandleFunc("GET /api/v1/subjects", h.ListSubjects)
	mux.HandleFunc("GET /api/v1/subjects/{subject}/summary", h.GetSubjectSummary)
	mux.HandleFunc("GET /api/v1/subjects/{subject}/report.pdf", h.GetSubjectReport)
	mux.HandleFunc("GET /healthz", h.Health)
	mux.Handle("GET /metrics", promhttp.Handler())
}

type submitRequest struct {
	Subject    string         `json:"subject" validate:"required,max=120"`
	Respondent string         `json:"respondent" validate:"max=120"`
	Ratings    map[string]int `json:"ratings" validate:"required"`
	Comment    string         `json:"comment" validate:"max=2000"`
}

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func summaryCacheKey(subject string) string {
	return fmt.Sprintf("%s:%s", summaryCachePrefix, subject)
}

func (h *Handlers) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		submissionsRejected.Inc()
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	err := h.feedback.SubmitFeedback(ctx, service.SubmissionInput{
		Subject:    req.Subject,
		Respondent: req.Respondent,
		Ratings:    req.Ratings,
		Comment:    req.Comment,
	})
	if err != nil {
		var verr *feedback.ValidationError
		if errors.As(err, &verr) {
			submissionsRejected.Inc()
			h.logger.Info("submission rejected",
				zap.String("subject", req.Subject),
				zap.Int("violations", len(verr.Fields)))
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid submission", Fields: verr.Fields})
			return
		}
		h.writeError(ctx, w, "SubmitFeedback", err)
		return
	}

	submissionsAccepted.Inc()
	h.invalidateSummary(req.Subject)
	writeJSON(w, http.StatusCreated, map[string]string{"status": "accepted"})
}

func (h *Handlers) GetSubjectSummary(w http.ResponseWriter, r *http.Request) {
	subject := r.PathValue("subject")

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	summary, err := FindAndCache(ctx, h.cache, &h.sfGroup, summaryCacheKey(subject), h.cacheTTL, h.logger,
		func(fetchCtx context.Context) (*feedback.Summary, error) {
			return h.feedback.GetSummary(fetchCtx, subject)
		})
	if err != nil {
		h.writeError(ctx, w, "GetSubjectSummary", err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

func (h *Handlers) GetSubjectReport(w http.ResponseWriter, r *http.Request) {
	subject := r.PathValue("subject")

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	data, err := h.feedback.GetReport(ctx, subject)
	if err != nil {
		h.writeError(ctx, w, "GetSubjectReport", err)
		return
	}

	pdf, err := report.Render(data)
	if err != nil {
		h.logger.Error("report render failed", zap.String("subject", subject), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "report generation failed"})
		return
	}

	reportsGenerated.Inc()
	filename := strings.ReplaceAll(subject, " ", "_") + "_feedback_report.pdf"
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

func (h *Handlers) ListSubjects(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	subjects, err := h.feedback.ListSubjects(ctx)
	if err != nil {
		h.writeError(ctx, w, "ListSubjects", err)
		return
	}
	if subjects == nil {
		subjects = []string{}
	}

	writeJSON(w, http.StatusOK, map[string][]string{"subjects": subjects})
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// invalidateSummary drops the cached summary for a subject after a new
// submission. Best effort: a failed delete only shortens nothing, the entry
// expires with its TTL.
func (h *Handlers) invalidateSummary(subject string) {
	if h.cache == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultSetTimeout)
	defer cancel()

	if err := h.cache.Delete(ctx, summaryCacheKey(subject)); err != nil {
		h.logger.Warn("summary cache invalidation failed",
			zap.String("subject", subject),
			zap.Error(err))
	}
}

func (h *Handlers) writeError(ctx context.Context, w http.ResponseWriter, op string, err error) {
	switch ctx.Err() {
	case context.Canceled:
		h.logger.Warn("request canceled", zap.String("op", op))
		writeJSON(w, statusClientClosedRequest, errorResponse{Error: "request canceled"})
		return
	case context.DeadlineExceeded:
		h.logger.Warn("request timeout", zap.String("op", op))
		writeJSON(w, http.StatusGatewayTimeout, errorResponse{Error: "request timed out"})
		return
	}

	switch {
	case errors.Is(err, service.ErrNoFeedback):
		h.logger.Info("no feedback found", zap.String("op", op))
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "no feedback found for the given subject"})
	case errors.Is(err, service.ErrStorageFailure):
		h.logger.Error("storage failure", zap.String("op", op), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "database error"})
	default:
		h.logger.Error("unexpected error", zap.String("op", op), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: op + " failed"})
	}
}

// statusClientClosedRequest is nginx's non-standard 499.
const statusClientClosedRequest = 499

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
