package feedback

import (
	"math"
	"strings"
)

// Summary holds the aggregated statistics for one subject. It is derived on
// demand from the full submission history and never persisted.
type Summary struct {
	Subject       string `json:"subject"`
	ResponseCount int    `json:"response_count"`

	// CategoryAverages holds the mean of all ratings given for each
	// category, over the submissions that actually rated it. A category
	// nobody rated averages 0.0.
	CategoryAverages map[string]float64 `json:"category_averages"`

	// OverallAverage is the mean of CategoryAverages over every category in
	// the active set. Categories with zero responses contribute 0.0, so a
	// sparse category dilutes the overall score.
	OverallAverage float64 `json:"overall_average"`

	// Comments preserves input submission order.
	Comments []string `json:"comments"`
}

// Summarize aggregates the submissions for a single subject against the
// active category set.
//
// Each category average is computed independently: submissions that omitted
// a category are excluded from its mean, not treated as zero, and unknown
// categories in a submission are ignored. All averages are rounded to two
// decimal places. The result is deterministic and independent of submission
// order, except for Comments which keep input order.
//
// An empty submissions collection yields ErrNoSubmissions so callers can
// render a "no feedback yet" state instead of a misleading zero score. An
// empty category set yields ErrEmptyCategorySet; that is a configuration
// bug, not a per-request condition.
func Summarize(categories CategorySet, submissions []Submission) (*Summary, error) {
	if len(categories) == 0 {
		return nil, ErrEmptyCategorySet
	}
	if len(submissions) == 0 {
		return nil, ErrNoSubmissions
	}

	totals := make(map[string]int, len(categories))
	counts := make(map[string]int, len(categories))
	var comments []string

	for _, sub := range submissions {
		for _, c := range categories {
			if v, ok := sub.Ratings[c]; ok {
				totals[c] += v
				counts[c]++
			}
		}
		if strings.TrimSpace(sub.Comment) != "" {
			comments = append(comments, sub.Comment)
		}
	}

	averages := make(map[string]float64, len(categories))
	var sum float64
	for _, c := range categories {
		var avg float64
		if counts[c] > 0 {
			avg = round2(float64(totals[c]) / float64(counts[c]))
		}
		averages[c] = avg
		sum += avg
	}

	return &Summary{
		Subject:          submissions[0].Subject,
		ResponseCount:    len(submissions),
		CategoryAverages: averages,
		OverallAverage:   round2(sum / float64(len(categories))),
		Comments:         comments,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
