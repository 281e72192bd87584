package domain

import (
	"github.com/shopspring/decimal"
)

// MaritalStatus as declared by the taxpayer. An empty value is treated as single.
type MaritalStatus string

const (
	MaritalUnset   MaritalStatus = ""
	MaritalSingle  MaritalStatus = "single"
	MaritalMarried MaritalStatus = "married"
)

// LTRVisa is a Long-Term Resident visa category. Three categories exempt
// remitted foreign income from Thai tax.
type LTRVisa string

const (
	LTRNone             LTRVisa = ""
	LTRWealthyGlobal    LTRVisa = "wealthy_global"
	LTRWealthyPensioner LTRVisa = "wealthy_pensioner"
	LTRWorkFromThailand LTRVisa = "work_from_thailand"
	LTRHighlySkilled    LTRVisa = "highly_skilled"
)

// ExemptsForeignIncome reports whether this visa category grants the
// foreign-income exemption.
func (v LTRVisa) ExemptsForeignIncome() bool {
	switch v {
	case LTRWealthyGlobal, LTRWealthyPensioner, LTRWorkFromThailand:
		return true
	default:
		return false
	}
}

// TaxProfile carries the taxpayer's personal circumstances.
type TaxProfile struct {
	MaritalStatus     MaritalStatus `yaml:"marital_status" json:"maritalStatus"`
	SpouseHasNoIncome bool          `yaml:"spouse_has_no_income" json:"spouseHasNoIncome"`
	IsAge65OrOlder    bool          `yaml:"is_age_65_or_older" json:"isAge65OrOlder"`
	DaysInThailand    int           `yaml:"days_in_thailand" json:"daysInThailand"`
	LTRVisa           LTRVisa       `yaml:"ltr_visa,omitempty" json:"ltrVisa,omitempty"`
}

// IsResident reports Thai tax residency: 180 days or more in the tax year.
func (p TaxProfile) IsResident() bool {
	return p.DaysInThailand >= ResidencyDayThreshold
}

// SpouseQualifies reports whether the spouse allowance applies.
func (p TaxProfile) SpouseQualifies() bool {
	return p.MaritalStatus == MaritalMarried && p.SpouseHasNoIncome
}

// ResidencyDayThreshold is the statutory day count for Thai tax residency.
const ResidencyDayThreshold = 180

// Child is a dependent child. IsStudent is recorded for completeness; the
// allowance itself depends only on birth year and birth order.
type Child struct {
	BirthYear int  `yaml:"birth_year" json:"birthYear"`
	IsStudent bool `yaml:"is_student,omitempty" json:"isStudent,omitempty"`
}

// DeductionClaim is one toggleable deduction: the stored amount only counts
// when Claimed is set, and is clamped to the category cap when it is.
type DeductionClaim struct {
	Claimed bool            `yaml:"claimed" json:"claimed"`
	Amount  decimal.Decimal `yaml:"amount" json:"amount"`
}

// Deductions holds the seven independently toggled deduction claims.
type Deductions struct {
	LifeInsurance   DeductionClaim `yaml:"life_insurance" json:"lifeInsurance"`
	HealthInsurance DeductionClaim `yaml:"health_insurance" json:"healthInsurance"`
	PensionFund     DeductionClaim `yaml:"pension_fund" json:"pensionFund"`
	ProvidentFund   DeductionClaim `yaml:"provident_fund" json:"providentFund"`
	RMF             DeductionClaim `yaml:"rmf" json:"rmf"`
	SSF             DeductionClaim `yaml:"ssf" json:"ssf"`
	Donation        DeductionClaim `yaml:"donation" json:"donation"`
}

// ExpenseMethod selects how the expense deduction is resolved.
type ExpenseMethod string

const (
	MethodAutoCompare ExpenseMethod = "auto_compare"
	MethodForceFlat   ExpenseMethod = "force_flat"
	MethodForceActual ExpenseMethod = "force_actual"
)

// LiberalProfession is a 40(6) sub-profession. Designated sub-professions
// carry the elevated 60% flat rate instead of the default 30%.
type LiberalProfession string

const (
	ProfessionGeneral       LiberalProfession = "general"
	ProfessionMedical       LiberalProfession = "medical"
	ProfessionEntertainment LiberalProfession = "entertainment"
	ProfessionSports        LiberalProfession = "sports"
	ProfessionAuthor        LiberalProfession = "author"
)

// ProfileKind discriminates the four taxpayer profiles.
type ProfileKind string

const (
	KindSalaried       ProfileKind = "salaried"
	KindFreelancer     ProfileKind = "freelancer"
	KindSoleProprietor ProfileKind = "sole_proprietor"
	KindCompanyOwner   ProfileKind = "company_owner"
)

// TaxpayerCore holds the entry collections and personal data shared by every
// profile variant.
type TaxpayerCore struct {
	Personal        TaxProfile           `yaml:"personal" json:"personal"`
	ThaiIncome      []ThaiIncomeEntry    `yaml:"thai_income" json:"thaiIncome"`
	ForeignIncome   []ForeignIncomeEntry `yaml:"foreign_income" json:"foreignIncome"`
	Children        []Child              `yaml:"children" json:"children"`
	EligibleParents int                  `yaml:"eligible_parents" json:"eligibleParents"`
	Deductions      Deductions           `yaml:"deductions" json:"deductions"`
}

// Core returns the shared taxpayer data. Combined with the unexported marker
// this lets every variant satisfy Profile by embedding TaxpayerCore.
func (c TaxpayerCore) Core() TaxpayerCore { return c }

func (TaxpayerCore) sealed() {}

// Profile is the tagged union over the four taxpayer profiles. Consumers
// switch exhaustively on the concrete variant; there are no runtime
// type-guard helpers.
type Profile interface {
	Kind() ProfileKind
	Core() TaxpayerCore
	sealed()
}

// SalariedProfile is an employee whose income is salary under 40(1). The
// standard 50%/100,000 expense deduction applies; no itemized expenses.
type SalariedProfile struct {
	TaxpayerCore `yaml:",inline"`
}

func (SalariedProfile) Kind() ProfileKind { return KindSalaried }

// FreelancerProfile is a self-employed individual with 40(5)-40(8) income and
// optionally itemized expenses.
type FreelancerProfile struct {
	TaxpayerCore `yaml:",inline"`

	Expenses   []ExpenseEntry    `yaml:"expenses" json:"expenses"`
	Method     ExpenseMethod     `yaml:"expense_method" json:"expenseMethod"`
	Profession LiberalProfession `yaml:"profession,omitempty" json:"profession,omitempty"`
}

func (FreelancerProfile) Kind() ProfileKind { return KindFreelancer }

// SoleProprietorProfile is a registered sole proprietor. Income entries carry
// their business category as the income type; otherwise resolution follows
// the freelancer path.
type SoleProprietorProfile struct {
	TaxpayerCore `yaml:",inline"`

	Expenses []ExpenseEntry `yaml:"expenses" json:"expenses"`
	Method   ExpenseMethod  `yaml:"expense_method" json:"expenseMethod"`
}

func (SoleProprietorProfile) Kind() ProfileKind { return KindSoleProprietor }

// CompanyOwnerProfile is a company owner or director drawing employment
// income from the company plus elective dividends.
type CompanyOwnerProfile struct {
	TaxpayerCore `yaml:",inline"`

	Salary        decimal.Decimal `yaml:"salary" json:"salary"`
	DirectorFees  decimal.Decimal `yaml:"director_fees" json:"directorFees"`
	OtherBenefits decimal.Decimal `yaml:"other_benefits" json:"otherBenefits"`
	Dividends     []DividendEntry `yaml:"dividends" json:"dividends"`
}

func (CompanyOwnerProfile) Kind() ProfileKind { return KindCompanyOwner }
