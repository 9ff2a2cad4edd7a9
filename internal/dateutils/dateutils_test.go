package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateAcceptsCommonLayouts(t *testing.T) {
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	for _, input := range []string{
		"2024-03-15",
		"15.03.2024",
		"15/03/2024",
		"2024/03/15",
		" 2024-03-15 ",
	} {
		got, err := ParseDate(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseDate("not a date")
	assert.Error(t, err)
}

func TestToISODate(t *testing.T) {
	d := time.Date(2024, 1, 5, 13, 45, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-05", ToISODate(d))
}

func TestComposeISODate(t *testing.T) {
	got, err := ComposeISODate(2024, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-05", got)

	// Leap day on a leap year.
	got, err = ComposeISODate(2024, 2, 29)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", got)

	// ... but not on a common year.
	_, err = ComposeISODate(2023, 2, 29)
	assert.Error(t, err)

	_, err = ComposeISODate(2023, 2, 30)
	assert.Error(t, err)

	_, err = ComposeISODate(2023, 13, 1)
	assert.Error(t, err)

	_, err = ComposeISODate(2023, 4, 31)
	assert.Error(t, err)
}

func TestDecompose(t *testing.T) {
	year, month, day, err := Decompose("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, 2024, year)
	assert.Equal(t, 2, month)
	assert.Equal(t, 29, day)

	_, _, _, err = Decompose("29.02.2024")
	assert.Error(t, err)
}
