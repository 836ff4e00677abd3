package feedback

import "fmt"

// CategoryAverage is one row of the report table, with the average already
// formatted to two decimals.
type CategoryAverage struct {
	Category string `json:"category"`
	Average  string `json:"average"`
}

// ReportData is the exact structure a report renderer consumes. It carries
// no storage or transport details: renderers lay it out, they never compute.
type ReportData struct {
	Subject string `json:"subject"`

	// Empty marks the "no submissions yet" state. When set, Placeholder is
	// the only content besides the subject; there is no table or star row.
	Empty       bool   `json:"empty"`
	Placeholder string `json:"placeholder,omitempty"`

	ResponseCount  int    `json:"response_count"`
	OverallAverage string `json:"overall_average"`
	Stars          string `json:"stars"`

	// Rows follow category set order.
	Rows     []CategoryAverage `json:"rows"`
	Comments []string          `json:"comments"`
}

// AssembleReport derives the renderer-facing structure from a summary. A nil
// summary is the no-data case and produces a placeholder-only report.
func AssembleReport(subject string, summary *Summary, categories CategorySet) ReportData {
	if summary == nil {
		return ReportData{
			Subject:     subject,
			Empty:       true,
			Placeholder: fmt.Sprintf("No feedback available for %s.", subject),
		}
	}

	rows := make([]CategoryAverage, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, CategoryAverage{
			Category: c,
			Average:  fmt.Sprintf("%.2f", summary.CategoryAverages[c]),
		})
	}

	return ReportData{
		Subject:        subject,
		ResponseCount:  summary.ResponseCount,
		OverallAverage: fmt.Sprintf("%.2f", summary.OverallAverage),
		Stars:          Stars(summary.OverallAverage),
		Rows:           rows,
		Comments:       summary.Comments,
	}
}
