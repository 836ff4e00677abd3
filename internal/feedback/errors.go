package feedback

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNoSubmissions is returned by Summarize when there is nothing to
	// aggregate. Callers render an empty state instead of a zero score.
	ErrNoSubmissions = errors.New("no submissions")

	// ErrEmptyCategorySet indicates a deployment configuration bug: the
	// engine cannot average over zero categories.
	ErrEmptyCategorySet = errors.New("empty category set")

	// ErrMalformedRatings wraps decode failures of a stored ratings blob.
	ErrMalformedRatings = errors.New("malformed ratings")
)

// ValidationError reports every field of a rejected submission at once, so
// the submitter can fix the whole form in one pass. Acceptance is
// all-or-nothing: if any field is invalid, nothing is persisted.
type ValidationError struct {
	// Fields maps the offending field (usually a category name) to a
	// human-readable reason.
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, f := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e.Fields[f]))
	}
	return "invalid submission: " + strings.Join(parts, "; ")
}
