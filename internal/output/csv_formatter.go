package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/thaitax/pit-estimator/internal/domain"
)

// CSVFormatter writes the assessment as a single summary row, suitable for
// collecting many what-if runs into one sheet.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(a *domain.TaxAssessment) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{
		"TaxYear", "ProfileKind", "GrossIncome", "ExpenseDeduction", "Allowances",
		"TaxableIncome", "GrossTax", "ForeignTaxCredit", "WithholdingCredits",
		"NetPayable", "Refund", "EffectiveRate", "PND94Required", "VATRequired",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	row := []string{
		strconv.Itoa(a.TaxYear),
		string(a.ProfileKind),
		a.Income.GrossIncome.StringFixed(2),
		a.ExpenseDeduction.StringFixed(2),
		a.Allowances.Total.StringFixed(2),
		a.TaxableIncome.StringFixed(2),
		a.GrossTax.StringFixed(2),
		a.ForeignTaxCredit.StringFixed(2),
		a.Income.WithholdingCredits.StringFixed(2),
		a.NetPayable.StringFixed(2),
		a.Refund.StringFixed(2),
		a.EffectiveRate.StringFixed(4),
		strconv.FormatBool(a.Obligations.PND94.Required),
		strconv.FormatBool(a.Obligations.VAT.Required),
	}
	if err := w.Write(row); err != nil {
		return nil, err
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
