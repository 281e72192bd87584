package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/thaitax/pit-estimator/internal/domain"
)

// AllowanceCalculator computes the personal allowances and the capped
// insurance, retirement and donation deductions.
type AllowanceCalculator struct {
	Rules domain.AllowanceRules
}

// NewAllowanceCalculator creates a calculator from the rule set, falling back
// to the compiled-in constants when none are configured.
func NewAllowanceCalculator(rules domain.RuleSet) *AllowanceCalculator {
	r := rules.Allowances
	if r.Personal.IsZero() {
		r = domain.DefaultRules().Allowances
	}
	return &AllowanceCalculator{Rules: r}
}

// Breakdown itemizes all granted allowances and deductions. assessableIncome
// is the gross figure the rest of the computation uses; the donation cap is
// evaluated against it, which is why it must be known before this call.
func (ac *AllowanceCalculator) Breakdown(core domain.TaxpayerCore, assessableIncome decimal.Decimal) domain.AllowanceBreakdown {
	r := ac.Rules
	b := domain.AllowanceBreakdown{Personal: r.Personal}

	if core.Personal.SpouseQualifies() {
		b.Spouse = r.Spouse
	}
	if core.Personal.IsAge65OrOlder {
		b.Senior = r.Senior
	}
	b.Children = ac.childAllowance(core.Children)

	parents := core.EligibleParents
	if parents < 0 {
		parents = 0
	}
	if parents > r.MaxParents {
		parents = r.MaxParents
	}
	b.Parents = r.Parent.Mul(decimal.NewFromInt(int64(parents)))

	d := core.Deductions
	b.LifeInsurance = claimed(d.LifeInsurance, r.LifeInsuranceCap)
	b.HealthInsurance = claimed(d.HealthInsurance, r.HealthInsuranceCap)
	b.PensionFund = claimed(d.PensionFund, r.PensionFundCap)
	b.ProvidentFund = claimed(d.ProvidentFund, r.ProvidentFundCap)
	b.RMF = claimed(d.RMF, r.RMFCap)
	b.SSF = claimed(d.SSF, r.SSFCap)

	donationCap := nonNegative(assessableIncome).Mul(r.DonationCapRate)
	b.Donation = claimed(d.Donation, donationCap)

	b.Total = b.Personal.Add(b.Spouse).Add(b.Senior).Add(b.Children).Add(b.Parents).
		Add(b.LifeInsurance).Add(b.HealthInsurance).Add(b.PensionFund).
		Add(b.ProvidentFund).Add(b.RMF).Add(b.SSF).Add(b.Donation)
	return b
}

// childAllowance grants the base amount per child plus the bonus for the
// second-and-later children born in or after the bonus-eligibility year.
// List order is birth order.
func (ac *AllowanceCalculator) childAllowance(children []domain.Child) decimal.Decimal {
	total := decimal.Zero
	for i, child := range children {
		total = total.Add(ac.Rules.Child)
		if i >= 1 && child.BirthYear >= ac.Rules.ChildBonusYear {
			total = total.Add(ac.Rules.ChildBonus)
		}
	}
	return total
}

// claimed returns the contribution of one deduction claim: zero when the
// claim flag is off, otherwise the stored amount clamped to the cap.
func claimed(c domain.DeductionClaim, limit decimal.Decimal) decimal.Decimal {
	if !c.Claimed {
		return decimal.Zero
	}
	return clampTo(c.Amount, limit)
}
