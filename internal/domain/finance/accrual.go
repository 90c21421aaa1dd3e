package finance

import (
	"github.com/shopspring/decimal"

	"github.com/bizsuite/backend/internal/domain/shared"
)

var hundred = decimal.NewFromInt(100)

// EarnedCompensation computes what a staff member earned for the period.
//
// Commission staff earn a percentage of the revenue attributed to them,
// rounded to two decimal places. Salaried staff accrue their full monthly
// amount for any month window; the single-day window reports zero because
// salary is not prorated per day.
func EarnedCompensation(member StaffMember, selector PeriodSelector, attributedRevenue decimal.Decimal) (decimal.Decimal, error) {
	switch member.PaymentType {
	case PaymentCommission:
		return attributedRevenue.Mul(member.PaymentAmount).Div(hundred).Round(2), nil
	case PaymentSalary:
		if selector == PeriodToday {
			return decimal.Zero, nil
		}
		return member.PaymentAmount, nil
	default:
		return decimal.Zero, shared.ErrUnsupportedPaymentModel
	}
}
