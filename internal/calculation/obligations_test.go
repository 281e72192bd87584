package calculation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/thaitax/pit-estimator/internal/domain"
)

func newObligationChecker() *ObligationChecker {
	rules := domain.DefaultRules()
	return NewObligationChecker(rules, NewBracketCalculator(rules))
}

func halfYearEntries(incomeType domain.IncomeType, month int, amount int64) []domain.ThaiIncomeEntry {
	return []domain.ThaiIncomeEntry{{
		GrossAmount:   decimal.NewFromInt(amount),
		IncomeType:    incomeType,
		MonthReceived: month,
	}}
}

// TestPND94SingleFiler pins the worked half-year projection: 200,000 half
// year doubles to 400,000, minus the 100,000 standard deduction and the
// 60,000 personal allowance leaves 240,000 taxable, 4,500 full-year tax,
// 2,250 provisional.
func TestPND94SingleFiler(t *testing.T) {
	entries := halfYearEntries(domain.IncomeBusinessSales, 3, 200_000)

	r := newObligationChecker().CheckPND94(entries, domain.TaxProfile{MaritalStatus: domain.MaritalSingle})

	assert.True(t, r.Required)
	assert.True(t, decimal.NewFromInt(60_000).Equal(r.Threshold))
	assert.True(t, decimal.NewFromInt(200_000).Equal(r.HalfYearIncome))
	assert.True(t, decimal.NewFromInt(400_000).Equal(r.ProjectedAnnual))
	assert.True(t, decimal.NewFromInt(2_250).Equal(r.ProvisionalTax), "got %s", r.ProvisionalTax)
	assert.Equal(t, time.Date(2024, time.September, 30, 0, 0, 0, 0, time.UTC), r.DueDate)
}

// TestPND94WithSpouse applies the doubled threshold and the spouse
// allowance: taxable drops to 180,000, tax 1,500, provisional 750.
func TestPND94WithSpouse(t *testing.T) {
	entries := halfYearEntries(domain.IncomeBusinessSales, 3, 200_000)
	profile := domain.TaxProfile{MaritalStatus: domain.MaritalMarried, SpouseHasNoIncome: true}

	r := newObligationChecker().CheckPND94(entries, profile)

	assert.True(t, r.Required)
	assert.True(t, decimal.NewFromInt(120_000).Equal(r.Threshold))
	assert.True(t, decimal.NewFromInt(750).Equal(r.ProvisionalTax), "got %s", r.ProvisionalTax)
}

func TestPND94QualifyingIncome(t *testing.T) {
	tests := []struct {
		name     string
		entries  []domain.ThaiIncomeEntry
		required bool
	}{
		{"salary never qualifies", halfYearEntries(domain.IncomeSalary, 2, 500_000), false},
		{"dividend never qualifies", halfYearEntries(domain.IncomeDividend, 2, 500_000), false},
		{"second half of year excluded", halfYearEntries(domain.IncomeRental, 7, 500_000), false},
		{"unset month excluded", halfYearEntries(domain.IncomeRental, 0, 500_000), false},
		{"june included", halfYearEntries(domain.IncomeRental, 6, 500_000), true},
		{"exactly at threshold is not required", halfYearEntries(domain.IncomeContractor, 1, 60_000), false},
		{"one baht over threshold is required", halfYearEntries(domain.IncomeContractor, 1, 60_001), true},
		{"liberal profession qualifies", halfYearEntries(domain.IncomeLiberalProfession, 4, 100_000), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newObligationChecker().CheckPND94(tt.entries, domain.TaxProfile{})
			assert.Equal(t, tt.required, r.Required)
		})
	}
}

func TestPND94NotRequiredSkipsProjection(t *testing.T) {
	r := newObligationChecker().CheckPND94(halfYearEntries(domain.IncomeRental, 2, 50_000), domain.TaxProfile{})
	assert.False(t, r.Required)
	assert.True(t, r.ProjectedAnnual.IsZero())
	assert.True(t, r.ProvisionalTax.IsZero())
}

func TestVATRegistrationThreshold(t *testing.T) {
	tests := []struct {
		name       string
		turnover   int64
		required   bool
		windowDays int
	}{
		{"exactly at threshold", 1_800_000, true, 30},
		{"one baht under", 1_799_999, false, 0},
		{"well over", 5_000_000, true, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := []domain.ThaiIncomeEntry{{GrossAmount: decimal.NewFromInt(tt.turnover), IncomeType: domain.IncomeSalary}}
			r := newObligationChecker().CheckVAT(entries)
			assert.Equal(t, tt.required, r.Required)
			assert.Equal(t, tt.windowDays, r.RegistrationWindowDays)
			assert.True(t, decimal.NewFromInt(tt.turnover).Equal(r.AnnualTurnover))
		})
	}
}

// TestVATCountsAllTypesAndMonths pins that turnover ignores income type and
// month, unlike the PND94 qualifying sum.
func TestVATCountsAllTypesAndMonths(t *testing.T) {
	entries := []domain.ThaiIncomeEntry{
		{GrossAmount: decimal.NewFromInt(900_000), IncomeType: domain.IncomeSalary, MonthReceived: 11},
		{GrossAmount: decimal.NewFromInt(900_000), IncomeType: domain.IncomeDividend, MonthReceived: 0},
	}
	r := newObligationChecker().CheckVAT(entries)
	assert.True(t, r.Required)
}

func TestObligationReport(t *testing.T) {
	entries := []domain.ThaiIncomeEntry{
		{GrossAmount: decimal.NewFromInt(1_900_000), IncomeType: domain.IncomeBusinessSales, MonthReceived: 4},
	}
	report := newObligationChecker().Report(entries, domain.TaxProfile{})

	assert.True(t, report.HasObligation)
	assert.True(t, report.PND94.Required)
	assert.True(t, report.VAT.Required)
	assert.Len(t, report.UrgentActions, 2)

	report = newObligationChecker().Report(nil, domain.TaxProfile{})
	assert.False(t, report.HasObligation)
	assert.Empty(t, report.UrgentActions)
}
