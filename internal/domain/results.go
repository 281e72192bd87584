package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BracketLine is the tax charged within one bracket, kept for display.
type BracketLine struct {
	UpperBound decimal.Decimal `json:"upperBound"`
	Rate       decimal.Decimal `json:"rate"`
	Tax        decimal.Decimal `json:"tax"`
}

// AllowanceBreakdown itemizes every allowance and capped deduction that was
// actually granted, post-clamping.
type AllowanceBreakdown struct {
	Personal        decimal.Decimal `json:"personal"`
	Spouse          decimal.Decimal `json:"spouse"`
	Senior          decimal.Decimal `json:"senior"`
	Children        decimal.Decimal `json:"children"`
	Parents         decimal.Decimal `json:"parents"`
	LifeInsurance   decimal.Decimal `json:"lifeInsurance"`
	HealthInsurance decimal.Decimal `json:"healthInsurance"`
	PensionFund     decimal.Decimal `json:"pensionFund"`
	ProvidentFund   decimal.Decimal `json:"providentFund"`
	RMF             decimal.Decimal `json:"rmf"`
	SSF             decimal.Decimal `json:"ssf"`
	Donation        decimal.Decimal `json:"donation"`
	Total           decimal.Decimal `json:"total"`
}

// ExpenseMethodChoice names the side the resolver settled on.
type ExpenseMethodChoice string

const (
	ChoiceFlat   ExpenseMethodChoice = "flat"
	ChoiceActual ExpenseMethodChoice = "actual"
)

// ExpenseComparison is the flat-vs-actual resolution result.
type ExpenseComparison struct {
	FlatTotal        decimal.Decimal     `json:"flatTotal"`
	ActualTotal      decimal.Decimal     `json:"actualTotal"`
	Method           ExpenseMethod       `json:"method"`
	Recommended      ExpenseMethodChoice `json:"recommended"`
	Applied          decimal.Decimal     `json:"applied"`
	EstimatedSavings decimal.Decimal     `json:"estimatedSavings"`
}

// ForeignIncomeAssessment is the per-entry taxability verdict. A negative
// verdict always carries a human-readable reason; it is never an error.
type ForeignIncomeAssessment struct {
	EntryID          string          `json:"entryId"`
	Taxable          bool            `json:"taxable"`
	Reason           string          `json:"reason,omitempty"`
	TaxableAmount    decimal.Decimal `json:"taxableAmount"`
	ForeignTaxCredit decimal.Decimal `json:"foreignTaxCredit"` // maximum potential credit, capped later
}

// IncomeGroup is the per-income-type gross and withholding sums.
type IncomeGroup struct {
	Gross       decimal.Decimal `json:"gross"`
	Withholding decimal.Decimal `json:"withholding"`
}

// IncomeSummary is the aggregated income picture a resolution starts from.
type IncomeSummary struct {
	ByType             map[IncomeType]IncomeGroup `json:"byType"`
	ThaiGross          decimal.Decimal            `json:"thaiGross"`
	ThaiWithholding    decimal.Decimal            `json:"thaiWithholding"`
	TaxableForeign     decimal.Decimal            `json:"taxableForeign"`
	NonTaxableForeign  decimal.Decimal            `json:"nonTaxableForeign"` // display only
	ForeignTaxCredits  decimal.Decimal            `json:"foreignTaxCredits"` // uncapped candidate total
	ForeignAssessments []ForeignIncomeAssessment  `json:"foreignAssessments,omitempty"`
	EmploymentIncome   decimal.Decimal            `json:"employmentIncome"`
	DividendIncome     decimal.Decimal            `json:"dividendIncome"`
	DividendCredits    decimal.Decimal            `json:"dividendCredits"`
	GrossIncome        decimal.Decimal            `json:"grossIncome"`
	WithholdingCredits decimal.Decimal            `json:"withholdingCredits"`
}

// PND94Result is the mid-year filing check.
type PND94Result struct {
	Required        bool            `json:"required"`
	HalfYearIncome  decimal.Decimal `json:"halfYearIncome"`
	Threshold       decimal.Decimal `json:"threshold"`
	ProjectedAnnual decimal.Decimal `json:"projectedAnnual"`
	ProvisionalTax  decimal.Decimal `json:"provisionalTax"`
	DueDate         time.Time       `json:"dueDate"`
}

// VATResult is the VAT registration check.
type VATResult struct {
	Required               bool            `json:"required"`
	AnnualTurnover         decimal.Decimal `json:"annualTurnover"`
	Threshold              decimal.Decimal `json:"threshold"`
	RegistrationWindowDays int             `json:"registrationWindowDays"`
}

// ObligationReport combines the statutory compliance checks.
type ObligationReport struct {
	PND94         PND94Result `json:"pnd94"`
	VAT           VATResult   `json:"vat"`
	UrgentActions []string    `json:"urgentActions,omitempty"`
	HasObligation bool        `json:"hasObligation"`
}

// TaxAssessment is the complete resolution for one taxpayer profile.
type TaxAssessment struct {
	ProfileKind      ProfileKind        `json:"profileKind"`
	TaxYear          int                `json:"taxYear"`
	Income           IncomeSummary      `json:"income"`
	ExpenseDeduction decimal.Decimal    `json:"expenseDeduction"`
	Expenses         *ExpenseComparison `json:"expenses,omitempty"` // nil for the standard salary deduction
	Allowances       AllowanceBreakdown `json:"allowances"`
	TaxableIncome    decimal.Decimal    `json:"taxableIncome"`
	GrossTax         decimal.Decimal    `json:"grossTax"`
	BracketLines     []BracketLine      `json:"bracketLines,omitempty"`
	EffectiveRate    decimal.Decimal    `json:"effectiveRate"`
	ForeignTaxCredit decimal.Decimal    `json:"foreignTaxCredit"` // post-cap
	NetPayable       decimal.Decimal    `json:"netPayable"`
	Refund           decimal.Decimal    `json:"refund"`
	Obligations      ObligationReport   `json:"obligations"`
}
