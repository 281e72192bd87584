package domain

import (
	"github.com/shopspring/decimal"
)

// IncomeType classifies a Thai income entry by its Revenue Code section.
// The section determines the statutory flat-rate expense deduction.
type IncomeType string

const (
	IncomeSalary            IncomeType = "salary_40_1"
	IncomeRental            IncomeType = "rental_40_5"
	IncomeLiberalProfession IncomeType = "liberal_profession_40_6"
	IncomeContractor        IncomeType = "contractor_40_7"
	IncomeBusinessSales     IncomeType = "business_sales_40_8"
	IncomeDividend          IncomeType = "dividend"
	IncomeOther             IncomeType = "other"
)

// ThaiIncomeEntry is a single Thai-source income item as entered by the taxpayer.
// The ID is opaque list identity for the UI and never participates in calculations.
type ThaiIncomeEntry struct {
	ID                string          `yaml:"id" json:"id"`
	GrossAmount       decimal.Decimal `yaml:"gross_amount" json:"grossAmount"`
	IncomeType        IncomeType      `yaml:"income_type" json:"incomeType"`
	WithholdingAmount decimal.Decimal `yaml:"withholding_amount" json:"withholdingAmount"`
	MonthReceived     int             `yaml:"month_received" json:"monthReceived"` // 1-12, 0 = unset
	PayerName         string          `yaml:"payer_name,omitempty" json:"payerName,omitempty"`
	Description       string          `yaml:"description,omitempty" json:"description,omitempty"`
}

// ForeignIncomeEntry is income earned abroad. AmountTHB is the converted value
// and the source of truth for every tax figure; Amount/Currency are records only.
type ForeignIncomeEntry struct {
	ID             string          `yaml:"id" json:"id"`
	Amount         decimal.Decimal `yaml:"amount" json:"amount"`
	Currency       string          `yaml:"currency" json:"currency"`
	AmountTHB      decimal.Decimal `yaml:"amount_thb" json:"amountThb"`
	DateEarned     Date            `yaml:"date_earned,omitempty" json:"dateEarned,omitempty"`
	DateRemitted   Date            `yaml:"date_remitted,omitempty" json:"dateRemitted,omitempty"` // zero = not yet remitted
	ForeignTaxPaid decimal.Decimal `yaml:"foreign_tax_paid" json:"foreignTaxPaid"`
	Country        string          `yaml:"country,omitempty" json:"country,omitempty"`
	Description    string          `yaml:"description,omitempty" json:"description,omitempty"`
}

// ExpenseCategory is one of the fixed itemized-expense categories.
type ExpenseCategory string

const (
	ExpenseRent         ExpenseCategory = "rent"
	ExpenseUtilities    ExpenseCategory = "utilities"
	ExpenseSupplies     ExpenseCategory = "supplies"
	ExpenseEquipment    ExpenseCategory = "equipment"
	ExpenseTravel       ExpenseCategory = "travel"
	ExpenseMarketing    ExpenseCategory = "marketing"
	ExpenseProfessional ExpenseCategory = "professional_fees"
	ExpenseInventory    ExpenseCategory = "inventory"
	ExpenseWages        ExpenseCategory = "wages"
	ExpenseInsurance    ExpenseCategory = "insurance"
	ExpenseOtherCat     ExpenseCategory = "other"
)

// ExpenseEntry is a single actual (itemized) business expense.
type ExpenseEntry struct {
	ID          string          `yaml:"id" json:"id"`
	Category    ExpenseCategory `yaml:"category" json:"category"`
	Amount      decimal.Decimal `yaml:"amount" json:"amount"`
	HasReceipt  bool            `yaml:"has_receipt" json:"hasReceipt"`
	Description string          `yaml:"description,omitempty" json:"description,omitempty"`
}

// DividendType classifies a dividend for the company-owner profile.
type DividendType string

const (
	DividendThaiListed   DividendType = "thai_listed"
	DividendThaiUnlisted DividendType = "thai_unlisted"
	DividendForeign      DividendType = "foreign"
	DividendOtherType    DividendType = "other"
)

// DividendEntry is a dividend received by a company owner. Thai dividends carry
// a statutory 10% withholding; IncludeInPIT is the taxpayer's election to fold
// the dividend into personal income tax instead of treating the withholding as
// final tax.
type DividendEntry struct {
	ID           string          `yaml:"id" json:"id"`
	Amount       decimal.Decimal `yaml:"amount" json:"amount"`
	DividendType DividendType    `yaml:"dividend_type" json:"dividendType"`
	IncludeInPIT bool            `yaml:"include_in_pit" json:"includeInPIT"`
	Description  string          `yaml:"description,omitempty" json:"description,omitempty"`
}

// WithholdingTax returns the withholding deducted at source for this dividend:
// 10% for Thai dividend types, zero otherwise.
func (d DividendEntry) WithholdingTax() decimal.Decimal {
	switch d.DividendType {
	case DividendThaiListed, DividendThaiUnlisted:
		return d.Amount.Mul(decimal.NewFromFloat(0.10))
	default:
		return decimal.Zero
	}
}
