package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{"zero", 0, "0.00 THB"},
		{"hundreds", 950, "950.00 THB"},
		{"thousands", 1234.5, "1,234.50 THB"},
		{"millions", 1234567.89, "1,234,567.89 THB"},
		{"negative", -8500, "-8,500.00 THB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.value).Format())
		})
	}
}

func TestFormatWhole(t *testing.T) {
	assert.Equal(t, "1,800,000 THB", New(1_800_000).FormatWhole())
	assert.Equal(t, "60,000 THB", FromDecimal(decimal.NewFromInt(60_000)).FormatWhole())
}

func TestFromString(t *testing.T) {
	b, err := FromString("21500.50")
	require.NoError(t, err)
	assert.Equal(t, "21500.50", b.String())

	_, err = FromString("twenty baht")
	assert.Error(t, err)
}

func TestRoundAndArithmetic(t *testing.T) {
	a := New(100.005).Round()
	assert.Equal(t, "100.01", a.String())

	sum := New(150).Add(New(50)).Sub(New(25))
	assert.Equal(t, "175.00", sum.String())
	assert.Equal(t, "0.00", Zero().String())
}
