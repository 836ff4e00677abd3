package feedback

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStars(t *testing.T) {
	tests := []struct {
		name    string
		average float64
		want    string
	}{
		{"full score", 5.0, "★★★★★"},
		{"zero", 0.0, "☆☆☆☆☆"},
		{"rounds down", 4.49, "★★★★☆"},
		{"half rounds up", 2.5, "★★★☆☆"},
		{"rounds up", 3.71, "★★★★☆"},
		{"negative clamps to zero", -1.2, "☆☆☆☆☆"},
		{"above scale clamps to max", 7.3, "★★★★★"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Stars(tt.average))
		})
	}
}

func TestStarsN(t *testing.T) {
	assert.Equal(t, "★★★★★★★★☆☆", StarsN(8.0, 10))
	assert.Equal(t, "★★★", StarsN(5.0, 3))
	assert.Equal(t, "", StarsN(4.0, 0))
}
