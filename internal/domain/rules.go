package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaxBracket is one progressive bracket. UpperBound is the cumulative upper
// bound of taxable income covered by the bracket; a non-positive UpperBound
// marks the open-ended top bracket.
type TaxBracket struct {
	UpperBound decimal.Decimal `yaml:"upper_bound" json:"upperBound"`
	Rate       decimal.Decimal `yaml:"rate" json:"rate"`
}

// Unbounded reports whether this is the open-ended top bracket.
func (b TaxBracket) Unbounded() bool {
	return b.UpperBound.LessThanOrEqual(decimal.Zero)
}

// AllowanceRules are the fixed personal allowance constants.
type AllowanceRules struct {
	Personal           decimal.Decimal `yaml:"personal" json:"personal"`
	Spouse             decimal.Decimal `yaml:"spouse" json:"spouse"`
	Senior             decimal.Decimal `yaml:"senior" json:"senior"`
	Child              decimal.Decimal `yaml:"child" json:"child"`
	ChildBonus         decimal.Decimal `yaml:"child_bonus" json:"childBonus"`
	ChildBonusYear     int             `yaml:"child_bonus_year" json:"childBonusYear"`
	Parent             decimal.Decimal `yaml:"parent" json:"parent"`
	MaxParents         int             `yaml:"max_parents" json:"maxParents"`
	LifeInsuranceCap   decimal.Decimal `yaml:"life_insurance_cap" json:"lifeInsuranceCap"`
	HealthInsuranceCap decimal.Decimal `yaml:"health_insurance_cap" json:"healthInsuranceCap"`
	PensionFundCap     decimal.Decimal `yaml:"pension_fund_cap" json:"pensionFundCap"`
	ProvidentFundCap   decimal.Decimal `yaml:"provident_fund_cap" json:"providentFundCap"`
	RMFCap             decimal.Decimal `yaml:"rmf_cap" json:"rmfCap"`
	SSFCap             decimal.Decimal `yaml:"ssf_cap" json:"ssfCap"`
	DonationCapRate    decimal.Decimal `yaml:"donation_cap_rate" json:"donationCapRate"`
}

// ExpenseRules are the statutory flat-rate deduction parameters.
type ExpenseRules struct {
	FlatRates             map[IncomeType]decimal.Decimal `yaml:"flat_rates" json:"flatRates"`
	SalaryDeductionCap    decimal.Decimal                `yaml:"salary_deduction_cap" json:"salaryDeductionCap"`
	DesignatedLiberalRate decimal.Decimal                `yaml:"designated_liberal_rate" json:"designatedLiberalRate"`
	DesignatedProfessions []LiberalProfession            `yaml:"designated_professions" json:"designatedProfessions"`
}

// IsDesignated reports whether the sub-profession carries the elevated rate.
func (e ExpenseRules) IsDesignated(p LiberalProfession) bool {
	for _, d := range e.DesignatedProfessions {
		if d == p {
			return true
		}
	}
	return false
}

// ObligationRules hold the statutory filing and registration triggers.
type ObligationRules struct {
	PND94Threshold        decimal.Decimal `yaml:"pnd94_threshold" json:"pnd94Threshold"`
	PND94ThresholdMarried decimal.Decimal `yaml:"pnd94_threshold_married" json:"pnd94ThresholdMarried"`
	PND94DueMonth         time.Month      `yaml:"pnd94_due_month" json:"pnd94DueMonth"`
	PND94DueDay           int             `yaml:"pnd94_due_day" json:"pnd94DueDay"`
	VATThreshold          decimal.Decimal `yaml:"vat_threshold" json:"vatThreshold"`
	VATRegistrationDays   int             `yaml:"vat_registration_days" json:"vatRegistrationDays"`
}

// RuleSet is the full rule configuration for one tax year. DefaultRules
// supplies the compiled-in values; a YAML document may override them.
type RuleSet struct {
	TaxYear             int             `yaml:"tax_year" json:"taxYear"`
	Brackets            []TaxBracket    `yaml:"brackets" json:"brackets"`
	Allowances          AllowanceRules  `yaml:"allowances" json:"allowances"`
	Expenses            ExpenseRules    `yaml:"expenses" json:"expenses"`
	Obligations         ObligationRules `yaml:"obligations" json:"obligations"`
	ForeignIncomeCutoff time.Time       `yaml:"foreign_income_cutoff" json:"foreignIncomeCutoff"`
}

// DefaultRules returns the rule set for tax year 2024, the first year of the
// remittance-based foreign income regime.
func DefaultRules() RuleSet {
	return RuleSet{
		TaxYear: 2024,
		Brackets: []TaxBracket{
			{UpperBound: decimal.NewFromInt(150_000), Rate: decimal.Zero},
			{UpperBound: decimal.NewFromInt(300_000), Rate: decimal.NewFromFloat(0.05)},
			{UpperBound: decimal.NewFromInt(500_000), Rate: decimal.NewFromFloat(0.10)},
			{UpperBound: decimal.NewFromInt(750_000), Rate: decimal.NewFromFloat(0.15)},
			{UpperBound: decimal.NewFromInt(1_000_000), Rate: decimal.NewFromFloat(0.20)},
			{UpperBound: decimal.NewFromInt(2_000_000), Rate: decimal.NewFromFloat(0.25)},
			{UpperBound: decimal.NewFromInt(5_000_000), Rate: decimal.NewFromFloat(0.30)},
			{UpperBound: decimal.Zero, Rate: decimal.NewFromFloat(0.35)},
		},
		Allowances: AllowanceRules{
			Personal:           decimal.NewFromInt(60_000),
			Spouse:             decimal.NewFromInt(60_000),
			Senior:             decimal.NewFromInt(190_000),
			Child:              decimal.NewFromInt(30_000),
			ChildBonus:         decimal.NewFromInt(30_000),
			ChildBonusYear:     2018,
			Parent:             decimal.NewFromInt(30_000),
			MaxParents:         4,
			LifeInsuranceCap:   decimal.NewFromInt(100_000),
			HealthInsuranceCap: decimal.NewFromInt(25_000),
			PensionFundCap:     decimal.NewFromInt(500_000),
			ProvidentFundCap:   decimal.NewFromInt(500_000),
			RMFCap:             decimal.NewFromInt(500_000),
			SSFCap:             decimal.NewFromInt(200_000),
			DonationCapRate:    decimal.NewFromFloat(0.10),
		},
		Expenses: ExpenseRules{
			FlatRates: map[IncomeType]decimal.Decimal{
				IncomeSalary:            decimal.NewFromFloat(0.50),
				IncomeRental:            decimal.NewFromFloat(0.30),
				IncomeLiberalProfession: decimal.NewFromFloat(0.30),
				IncomeContractor:        decimal.NewFromFloat(0.40),
				IncomeBusinessSales:     decimal.NewFromFloat(0.60),
				IncomeDividend:          decimal.Zero,
				IncomeOther:             decimal.Zero,
			},
			SalaryDeductionCap:    decimal.NewFromInt(100_000),
			DesignatedLiberalRate: decimal.NewFromFloat(0.60),
			DesignatedProfessions: []LiberalProfession{
				ProfessionMedical,
				ProfessionEntertainment,
				ProfessionSports,
				ProfessionAuthor,
			},
		},
		Obligations: ObligationRules{
			PND94Threshold:        decimal.NewFromInt(60_000),
			PND94ThresholdMarried: decimal.NewFromInt(120_000),
			PND94DueMonth:         time.September,
			PND94DueDay:           30,
			VATThreshold:          decimal.NewFromInt(1_800_000),
			VATRegistrationDays:   30,
		},
		ForeignIncomeCutoff: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}
