package calculation

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/thaitax/pit-estimator/internal/domain"
)

// pnd94QualifyingTypes are the income types that count toward the mid-year
// filing threshold. Salary under 40(1) is statutorily excluded.
var pnd94QualifyingTypes = map[domain.IncomeType]bool{
	domain.IncomeRental:            true,
	domain.IncomeLiberalProfession: true,
	domain.IncomeContractor:        true,
	domain.IncomeBusinessSales:     true,
}

// ObligationChecker computes the PND94 mid-year filing trigger and the VAT
// registration trigger.
type ObligationChecker struct {
	Rules      domain.ObligationRules
	Allowances domain.AllowanceRules
	Expenses   domain.ExpenseRules
	TaxYear    int
	Brackets   *BracketCalculator
}

// NewObligationChecker creates a checker from the rule set, falling back to
// compiled-in defaults for any section left unconfigured.
func NewObligationChecker(rules domain.RuleSet, brackets *BracketCalculator) *ObligationChecker {
	defaults := domain.DefaultRules()
	if rules.Obligations.VATThreshold.IsZero() {
		rules.Obligations = defaults.Obligations
	}
	if rules.Allowances.Personal.IsZero() {
		rules.Allowances = defaults.Allowances
	}
	if len(rules.Expenses.FlatRates) == 0 {
		rules.Expenses = defaults.Expenses
	}
	if rules.TaxYear == 0 {
		rules.TaxYear = defaults.TaxYear
	}
	return &ObligationChecker{
		Rules:      rules.Obligations,
		Allowances: rules.Allowances,
		Expenses:   rules.Expenses,
		TaxYear:    rules.TaxYear,
		Brackets:   brackets,
	}
}

// CheckPND94 computes the mid-year filing check. Qualifying income is the
// gross of 40(5)-40(8) entries received January through June; the filing is
// required when it strictly exceeds the threshold. The provisional tax
// projects the half year to a full year, applies the standard expense
// deduction and the personal (and, when qualifying, spouse) allowance, and
// halves the bracket tax. The halving is the only rounding step.
func (oc *ObligationChecker) CheckPND94(entries []domain.ThaiIncomeEntry, profile domain.TaxProfile) domain.PND94Result {
	half := decimal.Zero
	for _, e := range entries {
		if !pnd94QualifyingTypes[e.IncomeType] {
			continue
		}
		if e.MonthReceived < 1 || e.MonthReceived > 6 {
			continue
		}
		half = half.Add(nonNegative(e.GrossAmount))
	}

	threshold := oc.Rules.PND94Threshold
	if profile.SpouseQualifies() {
		threshold = oc.Rules.PND94ThresholdMarried
	}

	r := domain.PND94Result{
		HalfYearIncome: half,
		Threshold:      threshold,
		Required:       half.GreaterThan(threshold),
		DueDate:        time.Date(oc.TaxYear, oc.Rules.PND94DueMonth, oc.Rules.PND94DueDay, 0, 0, 0, 0, time.UTC),
	}
	if !r.Required {
		return r
	}

	annual := half.Mul(decimal.NewFromInt(2))
	expense := decimal.Min(
		annual.Mul(oc.Expenses.FlatRates[domain.IncomeSalary]),
		oc.Expenses.SalaryDeductionCap,
	)
	allowances := oc.Allowances.Personal
	if profile.SpouseQualifies() {
		allowances = allowances.Add(oc.Allowances.Spouse)
	}
	taxable := nonNegative(annual.Sub(expense).Sub(allowances))
	fullYearTax := oc.Brackets.Tax(taxable)

	r.ProjectedAnnual = annual
	r.ProvisionalTax = fullYearTax.Div(decimal.NewFromInt(2)).Round(0)
	return r
}

// CheckVAT computes the VAT registration check over the annual turnover: the
// gross of every Thai entry regardless of type or month. Registration is
// required from the threshold up, inclusive.
func (oc *ObligationChecker) CheckVAT(entries []domain.ThaiIncomeEntry) domain.VATResult {
	turnover := decimal.Zero
	for _, e := range entries {
		turnover = turnover.Add(nonNegative(e.GrossAmount))
	}

	r := domain.VATResult{
		AnnualTurnover: turnover,
		Threshold:      oc.Rules.VATThreshold,
		Required:       turnover.GreaterThanOrEqual(oc.Rules.VATThreshold),
	}
	if r.Required {
		r.RegistrationWindowDays = oc.Rules.VATRegistrationDays
	}
	return r
}

// Report runs both checks and derives the combined urgent-action view.
func (oc *ObligationChecker) Report(entries []domain.ThaiIncomeEntry, profile domain.TaxProfile) domain.ObligationReport {
	report := domain.ObligationReport{
		PND94: oc.CheckPND94(entries, profile),
		VAT:   oc.CheckVAT(entries),
	}
	report.HasObligation = report.PND94.Required || report.VAT.Required

	if report.PND94.Required {
		report.UrgentActions = append(report.UrgentActions, fmt.Sprintf(
			"File PND94 by %s; provisional tax %s THB",
			report.PND94.DueDate.Format("2 January 2006"),
			report.PND94.ProvisionalTax.StringFixed(2),
		))
	}
	if report.VAT.Required {
		report.UrgentActions = append(report.UrgentActions, fmt.Sprintf(
			"Register for VAT within %d days; annual turnover %s THB meets the %s THB threshold",
			report.VAT.RegistrationWindowDays,
			report.VAT.AnnualTurnover.StringFixed(2),
			report.VAT.Threshold.StringFixed(0),
		))
	}
	return report
}
