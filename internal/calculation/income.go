package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/thaitax/pit-estimator/internal/domain"
)

// IncomeAggregator merges Thai income entries, classified foreign income and
// the profile-specific sources into one gross assessable income figure with
// its withholding credits.
type IncomeAggregator struct {
	Foreign *ForeignIncomeClassifier
}

// NewIncomeAggregator creates an aggregator sharing the given classifier.
func NewIncomeAggregator(foreign *ForeignIncomeClassifier) *IncomeAggregator {
	return &IncomeAggregator{Foreign: foreign}
}

// GroupThai groups Thai entries by income type with per-group gross and
// withholding sums. Amounts are normalized: negatives floor at zero and
// withholding never exceeds the entry's gross.
func (ia *IncomeAggregator) GroupThai(entries []domain.ThaiIncomeEntry) map[domain.IncomeType]domain.IncomeGroup {
	grouped := make(map[domain.IncomeType]domain.IncomeGroup)
	for _, e := range entries {
		gross := nonNegative(e.GrossAmount)
		wht := clampTo(e.WithholdingAmount, gross)

		g := grouped[e.IncomeType]
		g.Gross = g.Gross.Add(gross)
		g.Withholding = g.Withholding.Add(wht)
		grouped[e.IncomeType] = g
	}
	return grouped
}

// Summarize builds the full income picture for a profile. Foreign entries
// are classified first; an LTR visa with the foreign-income exemption
// excludes them from every taxable total at this level.
func (ia *IncomeAggregator) Summarize(p domain.Profile) domain.IncomeSummary {
	core := p.Core()

	s := domain.IncomeSummary{ByType: ia.GroupThai(core.ThaiIncome)}
	for _, g := range s.ByType {
		s.ThaiGross = s.ThaiGross.Add(g.Gross)
		s.ThaiWithholding = s.ThaiWithholding.Add(g.Withholding)
	}

	resident := core.Personal.IsResident()
	exempt := core.Personal.LTRVisa.ExemptsForeignIncome()
	s.ForeignAssessments = ia.Foreign.ClassifyAll(core.ForeignIncome, resident, exempt)
	for _, a := range s.ForeignAssessments {
		if a.Taxable {
			s.TaxableForeign = s.TaxableForeign.Add(a.TaxableAmount)
			s.ForeignTaxCredits = s.ForeignTaxCredits.Add(a.ForeignTaxCredit)
		}
	}
	s.NonTaxableForeign = NonTaxableTotal(core.ForeignIncome, s.ForeignAssessments)

	switch v := p.(type) {
	case domain.SalariedProfile, domain.FreelancerProfile, domain.SoleProprietorProfile:
		// Thai entries and foreign income cover these profiles entirely.
	case domain.CompanyOwnerProfile:
		s.EmploymentIncome = nonNegative(v.Salary).
			Add(nonNegative(v.DirectorFees)).
			Add(nonNegative(v.OtherBenefits))
		for _, d := range v.Dividends {
			if !d.IncludeInPIT {
				// Withholding on excluded dividends is final tax,
				// settled outside this engine.
				continue
			}
			s.DividendIncome = s.DividendIncome.Add(nonNegative(d.Amount))
			s.DividendCredits = s.DividendCredits.Add(d.WithholdingTax())
		}
	}

	s.GrossIncome = s.ThaiGross.Add(s.TaxableForeign).Add(s.EmploymentIncome).Add(s.DividendIncome)
	s.WithholdingCredits = s.ThaiWithholding.Add(s.DividendCredits)
	return s
}

// GrossByType returns the summed gross for one income type, zero when the
// type has no entries.
func GrossByType(summary domain.IncomeSummary, t domain.IncomeType) decimal.Decimal {
	return summary.ByType[t].Gross
}
