package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/thaitax/pit-estimator/internal/domain"
)

// Classification reasons for non-taxable foreign income. Every negative
// verdict carries one; classification never fails.
const (
	ReasonNotResident   = "not resident"
	ReasonNoDateEarned  = "date earned not specified"
	ReasonBeforeCutoff  = "earned before cutoff"
	ReasonNotRemitted   = "not remitted"
	ReasonLTRVisaExempt = "exempt under LTR visa"
)

// ForeignIncomeClassifier decides per-entry taxability of foreign income
// under the remittance rules in force since 2024: a Thai tax resident owes
// tax on foreign income earned on or after the cutoff once it is remitted.
type ForeignIncomeClassifier struct {
	Cutoff time.Time
}

// NewForeignIncomeClassifier creates a classifier from the rule set, falling
// back to the compiled-in cutoff when none is configured.
func NewForeignIncomeClassifier(rules domain.RuleSet) *ForeignIncomeClassifier {
	cutoff := rules.ForeignIncomeCutoff
	if cutoff.IsZero() {
		cutoff = domain.DefaultRules().ForeignIncomeCutoff
	}
	return &ForeignIncomeClassifier{Cutoff: cutoff}
}

// Classify runs the four-step taxability test in order, short-circuiting at
// the first failing step. The steps are ordered so that residency trumps
// dates and dates trump remittance.
func (fc *ForeignIncomeClassifier) Classify(entry domain.ForeignIncomeEntry, resident bool) domain.ForeignIncomeAssessment {
	a := domain.ForeignIncomeAssessment{EntryID: entry.ID}

	if !resident {
		a.Reason = ReasonNotResident
		return a
	}
	if entry.DateEarned.IsZero() {
		a.Reason = ReasonNoDateEarned
		return a
	}
	if entry.DateEarned.Before(fc.Cutoff) {
		a.Reason = ReasonBeforeCutoff
		return a
	}
	if entry.DateRemitted.IsZero() {
		a.Reason = ReasonNotRemitted
		return a
	}

	a.Taxable = true
	a.TaxableAmount = nonNegative(entry.AmountTHB)
	a.ForeignTaxCredit = nonNegative(entry.ForeignTaxPaid)
	return a
}

// ClassifyAll classifies every entry. When exempt is set (an LTR visa
// category granting the foreign-income exemption) every entry is excluded
// from taxable totals regardless of the four-step test; the entries remain
// in the output for the taxpayer's records.
func (fc *ForeignIncomeClassifier) ClassifyAll(entries []domain.ForeignIncomeEntry, resident, exempt bool) []domain.ForeignIncomeAssessment {
	if len(entries) == 0 {
		return nil
	}
	assessments := make([]domain.ForeignIncomeAssessment, 0, len(entries))
	for _, entry := range entries {
		if exempt {
			assessments = append(assessments, domain.ForeignIncomeAssessment{
				EntryID: entry.ID,
				Reason:  ReasonLTRVisaExempt,
			})
			continue
		}
		assessments = append(assessments, fc.Classify(entry, resident))
	}
	return assessments
}

// NonTaxableTotal sums the converted amounts of entries that did not pass
// classification. Display only; it never enters a taxable figure.
func NonTaxableTotal(entries []domain.ForeignIncomeEntry, assessments []domain.ForeignIncomeAssessment) decimal.Decimal {
	byID := make(map[string]bool, len(assessments))
	for _, a := range assessments {
		byID[a.EntryID] = a.Taxable
	}
	total := decimal.Zero
	for _, e := range entries {
		if !byID[e.ID] {
			total = total.Add(nonNegative(e.AmountTHB))
		}
	}
	return total
}
