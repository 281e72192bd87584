package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thaitax/pit-estimator/internal/domain"
)

func writeRules(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultRulesValidate(t *testing.T) {
	require.NoError(t, ValidateRules(domain.DefaultRules()))
}

// TestLoadRulesPartialOverride pins the overlay behavior: a document naming
// only some fields keeps the compiled-in defaults for everything else.
func TestLoadRulesPartialOverride(t *testing.T) {
	path := writeRules(t, `
tax_year: 2025
obligations:
  pnd94_threshold: 60000
  pnd94_threshold_married: 120000
  pnd94_due_month: 9
  pnd94_due_day: 30
  vat_threshold: 2000000
  vat_registration_days: 30
`)

	rules, err := LoadRules(path)
	require.NoError(t, err)

	assert.Equal(t, 2025, rules.TaxYear)
	assert.True(t, decimal.NewFromInt(2_000_000).Equal(rules.Obligations.VATThreshold))
	assert.True(t, decimal.NewFromInt(60_000).Equal(rules.Allowances.Personal), "untouched sections keep defaults")
	assert.Len(t, rules.Brackets, 8)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), rules.ForeignIncomeCutoff)
}

func TestLoadRulesMissingFile(t *testing.T) {
	_, err := LoadRules(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read rules file")
}

func TestLoadRulesBadYAML(t *testing.T) {
	path := writeRules(t, "brackets: [unclosed")
	_, err := LoadRules(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse rules YAML")
}

func TestValidateRules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.RuleSet)
		wantErr string
	}{
		{
			name:    "no brackets",
			mutate:  func(r *domain.RuleSet) { r.Brackets = nil },
			wantErr: "no tax brackets",
		},
		{
			name: "unbounded bracket not last",
			mutate: func(r *domain.RuleSet) {
				r.Brackets[2].UpperBound = decimal.Zero
			},
			wantErr: "only the last bracket may be unbounded",
		},
		{
			name: "non-increasing bounds",
			mutate: func(r *domain.RuleSet) {
				r.Brackets[1].UpperBound = decimal.NewFromInt(150_000)
			},
			wantErr: "upper bounds must strictly increase",
		},
		{
			name: "rate above one",
			mutate: func(r *domain.RuleSet) {
				r.Brackets[0].Rate = decimal.NewFromInt(2)
			},
			wantErr: "rate must be between 0 and 1",
		},
		{
			name: "negative allowance",
			mutate: func(r *domain.RuleSet) {
				r.Allowances.Spouse = decimal.NewFromInt(-1)
			},
			wantErr: "cannot be negative",
		},
		{
			name: "flat rate above one",
			mutate: func(r *domain.RuleSet) {
				r.Expenses.FlatRates[domain.IncomeRental] = decimal.NewFromFloat(1.5)
			},
			wantErr: "must be between 0 and 1",
		},
		{
			name: "donation cap rate negative",
			mutate: func(r *domain.RuleSet) {
				r.Allowances.DonationCapRate = decimal.NewFromFloat(-0.1)
			},
			wantErr: "donation cap rate",
		},
		{
			name: "missing foreign income cutoff",
			mutate: func(r *domain.RuleSet) {
				r.ForeignIncomeCutoff = time.Time{}
			},
			wantErr: "foreign income cutoff date is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := domain.DefaultRules()
			tt.mutate(&rules)
			err := ValidateRules(rules)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
