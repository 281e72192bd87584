package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"canonical", "2024-03-15", time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)},
		{"rfc3339", "2024-03-15T10:30:00Z", time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)},
		{"no zone", "2024-03-15T10:30:00", time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)},
		{"day first", "15/03/2024", time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)},
		{"padded", "  2024-03-15  ", time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
		})
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "soon", "2024-13-45", "15-03-2024"} {
		_, err := Parse(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestParseLenient(t *testing.T) {
	assert.False(t, ParseLenient("2024-03-15").IsZero())
	assert.True(t, ParseLenient("").IsZero())
	assert.True(t, ParseLenient("   ").IsZero())
	assert.True(t, ParseLenient("not-a-date").IsZero())
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "2024-03-15", Format(time.Date(2024, time.March, 15, 23, 59, 0, 0, time.UTC)))
}

func TestMonthsBetween(t *testing.T) {
	jan := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	jun := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 5, MonthsBetween(jan, jun))
	assert.Equal(t, -5, MonthsBetween(jun, jan))
	assert.Equal(t, 12, MonthsBetween(jan, jan.AddDate(1, 0, 0)))
	assert.Equal(t, 0, MonthsBetween(jan, jan))
}
