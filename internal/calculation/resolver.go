package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/thaitax/pit-estimator/internal/domain"
)

// TaxResolver orchestrates the whole engine: income aggregation, expense
// deduction, allowances, bracket tax, credits and the compliance checks, per
// profile variant. Every method is a pure function of its inputs.
type TaxResolver struct {
	Rules       domain.RuleSet
	Brackets    *BracketCalculator
	Allowances  *AllowanceCalculator
	Expenses    *ExpenseResolver
	Foreign     *ForeignIncomeClassifier
	Income      *IncomeAggregator
	Obligations *ObligationChecker
	Logger      Logger
}

// NewTaxResolver wires the component calculators for one rule set.
func NewTaxResolver(rules domain.RuleSet) *TaxResolver {
	brackets := NewBracketCalculator(rules)
	foreign := NewForeignIncomeClassifier(rules)
	return &TaxResolver{
		Rules:       rules,
		Brackets:    brackets,
		Allowances:  NewAllowanceCalculator(rules),
		Expenses:    NewExpenseResolver(rules),
		Foreign:     foreign,
		Income:      NewIncomeAggregator(foreign),
		Obligations: NewObligationChecker(rules, brackets),
		Logger:      NopLogger{},
	}
}

// SetLogger sets the resolver's logger; nil installs the no-op logger.
func (tr *TaxResolver) SetLogger(l Logger) {
	if l == nil {
		tr.Logger = NopLogger{}
		return
	}
	tr.Logger = l
}

// Resolve computes the complete assessment for a taxpayer profile.
func (tr *TaxResolver) Resolve(p domain.Profile) domain.TaxAssessment {
	core := p.Core()
	summary := tr.Income.Summarize(p)

	a := domain.TaxAssessment{
		ProfileKind: p.Kind(),
		TaxYear:     tr.taxYear(),
		Income:      summary,
	}

	var comparison *domain.ExpenseComparison
	switch v := p.(type) {
	case domain.SalariedProfile:
		a.ExpenseDeduction = tr.Expenses.FlatTotal(core.ThaiIncome, domain.ProfessionGeneral)
	case domain.FreelancerProfile:
		cmp := tr.Expenses.Resolve(
			v.Method,
			tr.Expenses.FlatTotal(core.ThaiIncome, v.Profession),
			tr.Expenses.ActualTotal(v.Expenses),
		)
		comparison = &cmp
		a.ExpenseDeduction = cmp.Applied
	case domain.SoleProprietorProfile:
		cmp := tr.Expenses.Resolve(
			v.Method,
			tr.Expenses.FlatTotal(core.ThaiIncome, domain.ProfessionGeneral),
			tr.Expenses.ActualTotal(v.Expenses),
		)
		comparison = &cmp
		a.ExpenseDeduction = cmp.Applied
	case domain.CompanyOwnerProfile:
		a.ExpenseDeduction = tr.Expenses.FlatTotal(companyOwnerEntries(v), domain.ProfessionGeneral)
	}

	a.Allowances = tr.Allowances.Breakdown(core, summary.GrossIncome)
	a.TaxableIncome = nonNegative(summary.GrossIncome.Sub(a.ExpenseDeduction).Sub(a.Allowances.Total))
	a.GrossTax = tr.Brackets.Tax(a.TaxableIncome)
	a.BracketLines = tr.Brackets.Statement(a.TaxableIncome)

	marginal := tr.Brackets.MarginalRate(a.TaxableIncome)
	if comparison != nil {
		comparison.EstimatedSavings = comparison.FlatTotal.Sub(comparison.ActualTotal).Abs().Mul(marginal)
		a.Expenses = comparison
	}

	a.ForeignTaxCredit = tr.foreignTaxCredit(summary, marginal)

	net := a.GrossTax.Sub(summary.WithholdingCredits).Sub(a.ForeignTaxCredit)
	if net.IsNegative() {
		a.Refund = net.Neg()
	} else {
		a.NetPayable = net
	}

	if summary.GrossIncome.GreaterThan(decimal.Zero) {
		a.EffectiveRate = a.GrossTax.Div(summary.GrossIncome)
	}

	a.Obligations = tr.Obligations.Report(core.ThaiIncome, core.Personal)

	tr.Logger.Debugf("resolved %s profile: gross=%s taxable=%s tax=%s payable=%s refund=%s",
		a.ProfileKind, summary.GrossIncome, a.TaxableIncome, a.GrossTax, a.NetPayable, a.Refund)
	return a
}

// foreignTaxCredit caps the aggregate candidate credit at the Thai tax
// attributable to the taxable foreign income, approximated at the current
// marginal rate. The Revenue Department's exact allocation method across
// income sources is out of scope; this cap keeps the credit from exceeding
// the Thai tax the income generated.
func (tr *TaxResolver) foreignTaxCredit(summary domain.IncomeSummary, marginalRate decimal.Decimal) decimal.Decimal {
	if summary.ForeignTaxCredits.IsZero() {
		return decimal.Zero
	}
	attributable := summary.TaxableForeign.Mul(marginalRate)
	return decimal.Min(summary.ForeignTaxCredits, attributable)
}

// companyOwnerEntries shapes a company owner's employment income into the
// common entry form so the flat-rate resolver applies the 40(1) rate and the
// aggregate salary cap across company pay and any other salary entries.
// Dividend income carries a zero flat rate and needs no shaping.
func companyOwnerEntries(v domain.CompanyOwnerProfile) []domain.ThaiIncomeEntry {
	employment := nonNegative(v.Salary).
		Add(nonNegative(v.DirectorFees)).
		Add(nonNegative(v.OtherBenefits))

	entries := append([]domain.ThaiIncomeEntry(nil), v.ThaiIncome...)
	if employment.GreaterThan(decimal.Zero) {
		entries = append(entries, domain.ThaiIncomeEntry{
			GrossAmount: employment,
			IncomeType:  domain.IncomeSalary,
		})
	}
	return entries
}

func (tr *TaxResolver) taxYear() int {
	if tr.Rules.TaxYear != 0 {
		return tr.Rules.TaxYear
	}
	return domain.DefaultRules().TaxYear
}
