package output

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/thaitax/pit-estimator/internal/domain"
	"github.com/thaitax/pit-estimator/pkg/money"
)

// ConsoleFormatter renders a concise fixed-width summary of the assessment.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(a *domain.TaxAssessment) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "THAI PERSONAL INCOME TAX ESTIMATE %d (%s)\n", a.TaxYear, a.ProfileKind)
	fmt.Fprintln(&buf, "==================================================")

	fmt.Fprintf(&buf, "Gross assessable income   %s\n", thb(a.Income.GrossIncome))
	if a.Income.TaxableForeign.GreaterThan(decimal.Zero) {
		fmt.Fprintf(&buf, "  of which foreign        %s\n", thb(a.Income.TaxableForeign))
	}
	if a.Income.NonTaxableForeign.GreaterThan(decimal.Zero) {
		fmt.Fprintf(&buf, "  non-taxable foreign     %s (excluded)\n", thb(a.Income.NonTaxableForeign))
	}
	fmt.Fprintf(&buf, "Expense deduction         %s\n", thb(a.ExpenseDeduction))
	if a.Expenses != nil {
		fmt.Fprintf(&buf, "  method %s: flat %s vs actual %s -> %s (est. saving %s)\n",
			a.Expenses.Method, thb(a.Expenses.FlatTotal), thb(a.Expenses.ActualTotal),
			a.Expenses.Recommended, thb(a.Expenses.EstimatedSavings))
	}
	fmt.Fprintf(&buf, "Allowances & deductions   %s\n", thb(a.Allowances.Total))
	fmt.Fprintf(&buf, "Taxable income            %s\n", thb(a.TaxableIncome))
	fmt.Fprintf(&buf, "Gross tax                 %s\n", thb(a.GrossTax))
	for _, line := range a.BracketLines {
		if line.Tax.IsZero() {
			continue
		}
		bound := "above"
		if !line.UpperBound.LessThanOrEqual(decimal.Zero) {
			bound = "up to " + money.FromDecimal(line.UpperBound).FormatWhole()
		}
		fmt.Fprintf(&buf, "  %s at %s%%: %s\n", bound, line.Rate.Mul(decimal.NewFromInt(100)).String(), thb(line.Tax))
	}
	fmt.Fprintf(&buf, "Withholding credits       %s\n", thb(a.Income.WithholdingCredits))
	if a.ForeignTaxCredit.GreaterThan(decimal.Zero) {
		fmt.Fprintf(&buf, "Foreign tax credit        %s\n", thb(a.ForeignTaxCredit))
	}
	if a.Refund.GreaterThan(decimal.Zero) {
		fmt.Fprintf(&buf, "REFUND DUE                %s\n", thb(a.Refund))
	} else {
		fmt.Fprintf(&buf, "NET TAX PAYABLE           %s\n", thb(a.NetPayable))
	}
	fmt.Fprintf(&buf, "Effective rate            %s%%\n", a.EffectiveRate.Mul(decimal.NewFromInt(100)).StringFixed(2))

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "Obligations")
	fmt.Fprintf(&buf, "  PND94 mid-year filing   required=%v (half-year income %s, threshold %s)\n",
		a.Obligations.PND94.Required, thb(a.Obligations.PND94.HalfYearIncome), thb(a.Obligations.PND94.Threshold))
	if a.Obligations.PND94.Required {
		fmt.Fprintf(&buf, "    provisional tax %s due %s\n",
			thb(a.Obligations.PND94.ProvisionalTax), a.Obligations.PND94.DueDate.Format("2 Jan 2006"))
	}
	fmt.Fprintf(&buf, "  VAT registration        required=%v (turnover %s, threshold %s)\n",
		a.Obligations.VAT.Required, thb(a.Obligations.VAT.AnnualTurnover), thb(a.Obligations.VAT.Threshold))
	for _, action := range a.Obligations.UrgentActions {
		fmt.Fprintf(&buf, "  ! %s\n", action)
	}

	for _, fa := range a.Income.ForeignAssessments {
		if !fa.Taxable {
			fmt.Fprintf(&buf, "  foreign entry %s not taxable: %s\n", fa.EntryID, fa.Reason)
		}
	}
	return buf.Bytes(), nil
}

func thb(d decimal.Decimal) string {
	return money.FromDecimal(d).Format()
}
