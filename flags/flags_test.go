package flags

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagRegionalIndicator(t *testing.T) {
	cases := map[string]string{
		"US": "\U0001F1FA\U0001F1F8",
		"GB": "\U0001F1EC\U0001F1E7",
		"de": "\U0001F1E9\U0001F1EA", // lowercase codes are uppercased first
		"NO": "\U0001F1F3\U0001F1F4",
	}
	for code, want := range cases {
		got, err := Flag(code, nil)
		require.NoError(t, err, code)
		assert.Equal(t, want, got, code)
	}
}

func TestFlagTagSequence(t *testing.T) {
	// Subdivision codes become black flag + tag characters + cancel tag.
	got, err := Flag("GB-SCT", nil)
	require.NoError(t, err)
	assert.Equal(t, "\U0001F3F4", got[:len("\U0001F3F4")])
	assert.Equal(t, cancelTag, got[len(got)-len(cancelTag):])
}

func TestFlagOverrides(t *testing.T) {
	overrides := map[string]string{
		"_lichess": "♞",
		"US":       "🗽",
	}

	got, err := Flag("_lichess", overrides)
	require.NoError(t, err)
	assert.Equal(t, "♞", got)

	// Overrides win even for codes that would otherwise compute.
	got, err = Flag("US", overrides)
	require.NoError(t, err)
	assert.Equal(t, "🗽", got)
}

func TestFlagInvalidCode(t *testing.T) {
	_, err := Flag("", nil)
	assert.ErrorIs(t, err, ErrInvalidCode)

	_, err = Flag("x", nil)
	assert.ErrorIs(t, err, ErrInvalidCode)

	// A short code present in the override table is fine.
	got, err := Flag("x", map[string]string{"x": "🏳️"})
	require.NoError(t, err)
	assert.Equal(t, "🏳️", got)
}
