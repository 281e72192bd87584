package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/thaitax/pit-estimator/internal/domain"
)

// ExpenseResolver computes the statutory flat-rate expense deduction, the
// itemized actual-expense total, and resolves which method applies.
type ExpenseResolver struct {
	Rules domain.ExpenseRules
}

// NewExpenseResolver creates a resolver from the rule set, falling back to
// the compiled-in flat-rate table when none is configured.
func NewExpenseResolver(rules domain.RuleSet) *ExpenseResolver {
	r := rules.Expenses
	if len(r.FlatRates) == 0 {
		r = domain.DefaultRules().Expenses
	}
	return &ExpenseResolver{Rules: r}
}

// FlatTotal computes the flat-rate deduction over all Thai income entries.
// Entries are grouped by income type and the group rate applies to the
// summed gross, so the salary cap binds the aggregate rather than each
// entry. Unknown and zero-rate types contribute nothing.
func (er *ExpenseResolver) FlatTotal(entries []domain.ThaiIncomeEntry, profession domain.LiberalProfession) decimal.Decimal {
	grouped := make(map[domain.IncomeType]decimal.Decimal)
	for _, e := range entries {
		grouped[e.IncomeType] = grouped[e.IncomeType].Add(nonNegative(e.GrossAmount))
	}

	total := decimal.Zero
	for incomeType, gross := range grouped {
		total = total.Add(er.flatForGroup(incomeType, gross, profession))
	}
	return total
}

func (er *ExpenseResolver) flatForGroup(incomeType domain.IncomeType, gross decimal.Decimal, profession domain.LiberalProfession) decimal.Decimal {
	rate, ok := er.Rules.FlatRates[incomeType]
	if !ok {
		return decimal.Zero
	}
	if incomeType == domain.IncomeLiberalProfession && er.Rules.IsDesignated(profession) {
		rate = er.Rules.DesignatedLiberalRate
	}

	deduction := gross.Mul(rate)
	if incomeType == domain.IncomeSalary {
		deduction = decimal.Min(deduction, er.Rules.SalaryDeductionCap)
	}
	return deduction
}

// ActualTotal sums the itemized expense entries.
func (er *ExpenseResolver) ActualTotal(expenses []domain.ExpenseEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(nonNegative(e.Amount))
	}
	return total
}

// Resolve applies the method policy to a flat and an actual total. Under
// auto-compare the larger total wins, with the tie broken toward flat.
// EstimatedSavings is left zero; the final resolver fills it once the
// applicable marginal rate is known.
func (er *ExpenseResolver) Resolve(method domain.ExpenseMethod, flat, actual decimal.Decimal) domain.ExpenseComparison {
	cmp := domain.ExpenseComparison{
		FlatTotal:   flat,
		ActualTotal: actual,
		Method:      method,
	}

	switch method {
	case domain.MethodForceFlat:
		cmp.Recommended = domain.ChoiceFlat
	case domain.MethodForceActual:
		cmp.Recommended = domain.ChoiceActual
	case domain.MethodAutoCompare:
		fallthrough
	default:
		if actual.GreaterThan(flat) {
			cmp.Recommended = domain.ChoiceActual
		} else {
			cmp.Recommended = domain.ChoiceFlat
		}
	}

	if cmp.Recommended == domain.ChoiceActual {
		cmp.Applied = actual
	} else {
		cmp.Applied = flat
	}
	return cmp
}
