package feedback

import (
	"math"
	"strings"
)

const (
	FilledStar = "★"
	EmptyStar  = "☆"

	// DefaultMaxStars matches the 1-5 rating scale.
	DefaultMaxStars = 5
)

// Stars renders an average as a five-star glyph string, e.g. "★★★★☆".
func Stars(average float64) string {
	return StarsN(average, DefaultMaxStars)
}

// StarsN renders an average on a scale of maxStars stars. The filled count
// is the average rounded to the nearest integer, ties away from zero
// (2.5 renders three filled stars), clamped to [0, maxStars]. Total over any
// finite average: out-of-range values are clamped, never rejected.
func StarsN(average float64, maxStars int) string {
	filled := int(math.Round(average))
	if filled < 0 {
		filled = 0
	}
	if filled > maxStars {
		filled = maxStars
	}
	return strings.Repeat(FilledStar, filled) + strings.Repeat(EmptyStar, maxStars-filled)
}
