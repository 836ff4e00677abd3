package feedback

import (
	"strconv"
	"strings"
)

// ValidateRatings checks a submitted rating map against the active category
// set: every category must be present and every value in [1,5]. Categories
// outside the set are rejected at intake (stored history may contain them,
// new submissions may not). On any violation it returns a *ValidationError
// naming every offending field; the map is accepted whole or not at all.
func ValidateRatings(categories CategorySet, ratings map[string]int) (map[string]int, error) {
	fields := make(map[string]string)

	for _, c := range categories {
		v, ok := ratings[c]
		if !ok {
			fields[c] = "rating is required"
			continue
		}
		if v < 1 || v > 5 {
			fields[c] = "rating must be between 1 and 5"
		}
	}
	for name := range ratings {
		if !categories.Contains(name) {
			fields[name] = "unknown category"
		}
	}

	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	normalized := make(map[string]int, len(categories))
	for _, c := range categories {
		normalized[c] = ratings[c]
	}
	return normalized, nil
}

// ParseRatings is the form/console variant of ValidateRatings: it takes raw
// per-category string values, parses them as integers and applies the same
// presence and range rules.
func ParseRatings(categories CategorySet, raw map[string]string) (map[string]int, error) {
	fields := make(map[string]string)
	parsed := make(map[string]int, len(raw))

	for name, value := range raw {
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			fields[name] = "rating must be a whole number"
			continue
		}
		parsed[name] = n
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}
	return ValidateRatings(categories, parsed)
}
