package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/thaitax/pit-estimator/internal/domain"
)

// LoadRules loads a rule-set document from a YAML file. Fields the document
// omits keep the compiled-in defaults, so a partial override (say, only the
// bracket table) is a valid document.
func LoadRules(filename string) (domain.RuleSet, error) {
	rules := domain.DefaultRules()

	data, err := os.ReadFile(filename)
	if err != nil {
		return rules, fmt.Errorf("failed to read rules file %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return rules, fmt.Errorf("failed to parse rules YAML: %w", err)
	}
	if err := ValidateRules(rules); err != nil {
		return rules, fmt.Errorf("rules validation failed: %w", err)
	}
	return rules, nil
}

// ValidateRules checks the structural invariants a rule set must hold before
// the engine may consume it.
func ValidateRules(rules domain.RuleSet) error {
	if len(rules.Brackets) == 0 {
		return fmt.Errorf("no tax brackets provided")
	}
	prev := decimal.Zero
	for i, b := range rules.Brackets {
		last := i == len(rules.Brackets)-1
		if b.Unbounded() && !last {
			return fmt.Errorf("bracket %d: only the last bracket may be unbounded", i)
		}
		if !b.Unbounded() && b.UpperBound.LessThanOrEqual(prev) {
			return fmt.Errorf("bracket %d: upper bounds must strictly increase", i)
		}
		if b.Rate.IsNegative() || b.Rate.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("bracket %d: rate must be between 0 and 1", i)
		}
		prev = b.UpperBound
	}

	caps := map[string]decimal.Decimal{
		"personal allowance":   rules.Allowances.Personal,
		"spouse allowance":     rules.Allowances.Spouse,
		"senior allowance":     rules.Allowances.Senior,
		"child allowance":      rules.Allowances.Child,
		"parent allowance":     rules.Allowances.Parent,
		"life insurance cap":   rules.Allowances.LifeInsuranceCap,
		"health insurance cap": rules.Allowances.HealthInsuranceCap,
		"pension fund cap":     rules.Allowances.PensionFundCap,
		"provident fund cap":   rules.Allowances.ProvidentFundCap,
		"rmf cap":              rules.Allowances.RMFCap,
		"ssf cap":              rules.Allowances.SSFCap,
		"salary deduction cap": rules.Expenses.SalaryDeductionCap,
		"pnd94 threshold":      rules.Obligations.PND94Threshold,
		"vat threshold":        rules.Obligations.VATThreshold,
	}
	for name, v := range caps {
		if v.IsNegative() {
			return fmt.Errorf("%s cannot be negative", name)
		}
	}

	for t, rate := range rules.Expenses.FlatRates {
		if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("flat rate for %s must be between 0 and 1", t)
		}
	}
	if rules.Allowances.DonationCapRate.IsNegative() || rules.Allowances.DonationCapRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("donation cap rate must be between 0 and 1")
	}
	if rules.ForeignIncomeCutoff.IsZero() {
		return fmt.Errorf("foreign income cutoff date is required")
	}
	return nil
}
