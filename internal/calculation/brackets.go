package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/thaitax/pit-estimator/internal/domain"
)

// BracketCalculator applies the progressive personal income tax schedule.
// Each slice of taxable income falling inside a bracket is taxed at that
// bracket's marginal rate; nothing is rounded mid-calculation.
type BracketCalculator struct {
	Brackets []domain.TaxBracket
}

// NewBracketCalculator creates a calculator from the rule set, falling back
// to the compiled-in schedule when none is configured.
func NewBracketCalculator(rules domain.RuleSet) *BracketCalculator {
	brackets := rules.Brackets
	if len(brackets) == 0 {
		brackets = domain.DefaultRules().Brackets
	}
	return &BracketCalculator{Brackets: brackets}
}

// Tax returns the tax owed on taxableIncome. Non-positive income owes zero.
func (bc *BracketCalculator) Tax(taxableIncome decimal.Decimal) decimal.Decimal {
	var total decimal.Decimal
	for _, line := range bc.Statement(taxableIncome) {
		total = total.Add(line.Tax)
	}
	return total
}

// Statement returns the per-bracket breakdown of the tax on taxableIncome.
// Brackets above the income are omitted.
func (bc *BracketCalculator) Statement(taxableIncome decimal.Decimal) []domain.BracketLine {
	if taxableIncome.LessThanOrEqual(decimal.Zero) {
		return nil
	}

	var lines []domain.BracketLine
	lower := decimal.Zero
	for _, b := range bc.Brackets {
		if taxableIncome.LessThanOrEqual(lower) {
			break
		}
		upper := b.UpperBound
		if b.Unbounded() {
			upper = taxableIncome
		}
		slice := decimal.Min(taxableIncome, upper).Sub(lower)
		if slice.GreaterThan(decimal.Zero) {
			lines = append(lines, domain.BracketLine{
				UpperBound: b.UpperBound,
				Rate:       b.Rate,
				Tax:        slice.Mul(b.Rate),
			})
		}
		if b.Unbounded() {
			break
		}
		lower = b.UpperBound
	}
	return lines
}

// MarginalRate returns the rate of the bracket the income tops out in, used
// for tax-savings estimates. Non-positive income sits in the zero bracket.
func (bc *BracketCalculator) MarginalRate(taxableIncome decimal.Decimal) decimal.Decimal {
	if taxableIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	for _, b := range bc.Brackets {
		if b.Unbounded() || taxableIncome.LessThanOrEqual(b.UpperBound) {
			return b.Rate
		}
	}
	return decimal.Zero
}
