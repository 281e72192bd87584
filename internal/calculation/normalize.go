package calculation

import "github.com/shopspring/decimal"

// The engine favors silent normalization over errors: malformed amounts are
// treated as zero and over-cap amounts are clamped, never rejected.

// nonNegative floors a monetary amount at zero.
func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return d
}

// clampTo clamps a non-negative amount to a category cap.
func clampTo(d, limit decimal.Decimal) decimal.Decimal {
	return decimal.Min(nonNegative(d), limit)
}
