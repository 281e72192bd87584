package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDateUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Date
	}{
		{"canonical", `"2024-03-15"`, NewDate(2024, time.March, 15)},
		{"rfc3339", `"2024-03-15T00:00:00Z"`, NewDate(2024, time.March, 15)},
		{"thai day first", `"15/03/2024"`, NewDate(2024, time.March, 15)},
		{"null", `null`, Date{}},
		{"empty string", `""`, Date{}},
		{"garbage", `"not-a-date"`, Date{}},
		{"wrong type", `42`, Date{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, json.Unmarshal([]byte(tt.input), &d), "date decoding never fails")
			assert.True(t, tt.want.Equal(d.Time), "want %v got %v", tt.want, d)
		})
	}
}

func TestDateMarshalJSON(t *testing.T) {
	out, err := json.Marshal(NewDate(2024, time.March, 15))
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-15"`, string(out))

	out, err = json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, `null`, string(out))
}

func TestDateYAMLRoundTrip(t *testing.T) {
	type doc struct {
		Earned Date `yaml:"earned"`
	}

	var d doc
	require.NoError(t, yaml.Unmarshal([]byte("earned: 2024-06-30\n"), &d))
	assert.True(t, NewDate(2024, time.June, 30).Equal(d.Earned.Time))

	out, err := yaml.Marshal(d)
	require.NoError(t, err)
	assert.Contains(t, string(out), "2024-06-30")
}
