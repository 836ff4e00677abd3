package feedback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRatings(t *testing.T) {
	categories := CategorySet{"Knowledge", "Clarity"}

	t.Run("complete submission accepted", func(t *testing.T) {
		normalized, err := ValidateRatings(categories, map[string]int{"Knowledge": 5, "Clarity": 3})

		require.NoError(t, err)
		assert.Equal(t, map[string]int{"Knowledge": 5, "Clarity": 3}, normalized)
	})

	t.Run("missing category rejected", func(t *testing.T) {
		normalized, err := ValidateRatings(categories, map[string]int{"Knowledge": 5})

		assert.Nil(t, normalized)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "Clarity")
	})

	t.Run("out of range rejected", func(t *testing.T) {
		for _, bad := range []int{0, 6, -3} {
			_, err := ValidateRatings(categories, map[string]int{"Knowledge": bad, "Clarity": 3})

			var verr *ValidationError
			require.ErrorAs(t, err, &verr, "rating %d", bad)
			assert.Contains(t, verr.Fields, "Knowledge")
			assert.NotContains(t, verr.Fields, "Clarity")
		}
	})

	t.Run("unknown category rejected at intake", func(t *testing.T) {
		_, err := ValidateRatings(categories, map[string]int{"Knowledge": 4, "Clarity": 4, "Aura": 5})

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "unknown category", verr.Fields["Aura"])
	})

	t.Run("all violations reported together", func(t *testing.T) {
		_, err := ValidateRatings(categories, map[string]int{"Knowledge": 9})

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Len(t, verr.Fields, 2)
		assert.Contains(t, err.Error(), "Knowledge")
		assert.Contains(t, err.Error(), "Clarity")
	})
}

func TestParseRatings(t *testing.T) {
	categories := CategorySet{"Knowledge", "Clarity"}

	t.Run("parses and normalizes", func(t *testing.T) {
		ratings, err := ParseRatings(categories, map[string]string{"Knowledge": " 4", "Clarity": "5"})

		require.NoError(t, err)
		assert.Equal(t, map[string]int{"Knowledge": 4, "Clarity": 5}, ratings)
	})

	t.Run("non-numeric value rejected", func(t *testing.T) {
		_, err := ParseRatings(categories, map[string]string{"Knowledge": "great", "Clarity": "5"})

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "rating must be a whole number", verr.Fields["Knowledge"])
	})
}

func TestNewCategorySet(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		set, err := NewCategorySet([]string{"Knowledge", " Clarity "})

		require.NoError(t, err)
		assert.Equal(t, CategorySet{"Knowledge", "Clarity"}, set)
		assert.True(t, set.Contains("Clarity"))
		assert.False(t, set.Contains("Aura"))
	})

	t.Run("empty set", func(t *testing.T) {
		_, err := NewCategorySet(nil)
		assert.ErrorIs(t, err, ErrEmptyCategorySet)
	})

	t.Run("duplicate name", func(t *testing.T) {
		_, err := NewCategorySet([]string{"Knowledge", "Knowledge"})
		assert.Error(t, err)
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := NewCategorySet([]string{"Knowledge", "  "})
		assert.Error(t, err)
	})
}

func TestRatingsCodec(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		blob, err := EncodeRatings(map[string]int{"Knowledge": 5, "Clarity": 3})
		require.NoError(t, err)

		decoded, err := DecodeRatings(blob)
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"Knowledge": 5, "Clarity": 3}, decoded)
	})

	t.Run("rejects non-object blobs", func(t *testing.T) {
		for _, blob := range []string{
			"",
			"null",
			"[1,2,3]",
			`{"Knowledge": "five"}`,
			`{"Knowledge": 4.5}`,
			`{'Knowledge': 5}`, // python repr, the legacy storage format
		} {
			_, err := DecodeRatings(blob)
			assert.ErrorIs(t, err, ErrMalformedRatings, "blob %q", blob)
		}
	})
}
