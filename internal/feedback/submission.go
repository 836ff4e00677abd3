package feedback

import (
	"encoding/json"
	"fmt"
)

// Submission is one respondent's rating entry for one subject. Submissions
// are created at intake and never mutated afterwards; the engine only reads
// them.
type Submission struct {
	Subject    string
	Respondent string // may be empty: anonymous feedback is allowed
	Ratings    map[string]int
	Comment    string
}

// EncodeRatings serializes a rating map for storage as a JSON object of
// category name to integer.
func EncodeRatings(ratings map[string]int) (string, error) {
	data, err := json.Marshal(ratings)
	if err != nil {
		return "", fmt.Errorf("encode ratings: %w", err)
	}
	return string(data), nil
}

// DecodeRatings parses a stored ratings blob back into a rating map. Only a
// JSON object with integer values is accepted; anything else fails with
// ErrMalformedRatings rather than being interpreted loosely. A decode
// failure affects that one row only, never the aggregation of other rows.
func DecodeRatings(blob string) (map[string]int, error) {
	var ratings map[string]int
	if err := json.Unmarshal([]byte(blob), &ratings); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRatings, err)
	}
	if ratings == nil {
		return nil, fmt.Errorf("%w: ratings must be an object", ErrMalformedRatings)
	}
	return ratings, nil
}
