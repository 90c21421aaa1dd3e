package finance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizsuite/backend/internal/domain/shared"
)

func TestEarnedCompensation_Commission(t *testing.T) {
	tests := []struct {
		name       string
		percentage string
		revenue    string
		want       string
	}{
		{name: "whole percentage", percentage: "10", revenue: "2000", want: "200"},
		{name: "rounds to two places", percentage: "15", revenue: "99.99", want: "15"},
		{name: "fractional percentage", percentage: "12.5", revenue: "200", want: "25"},
		{name: "zero revenue", percentage: "20", revenue: "0", want: "0"},
		{name: "rounding half up", percentage: "10", revenue: "100.05", want: "10.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			member := StaffMember{
				Username:      "jdoe",
				PaymentType:   PaymentCommission,
				PaymentAmount: decimal.RequireFromString(tt.percentage),
			}

			earned, err := EarnedCompensation(member, PeriodThisMonth, decimal.RequireFromString(tt.revenue))
			require.NoError(t, err)

			assert.True(t, decimal.RequireFromString(tt.want).Equal(earned),
				"want %s, got %s", tt.want, earned)
		})
	}
}

func TestEarnedCompensation_Salary(t *testing.T) {
	member := StaffMember{
		Username:      "asmith",
		PaymentType:   PaymentSalary,
		PaymentAmount: decimal.NewFromInt(3000),
	}

	t.Run("full amount for month windows regardless of revenue", func(t *testing.T) {
		for _, selector := range []PeriodSelector{PeriodThisMonth, PeriodLastMonth} {
			earned, err := EarnedCompensation(member, selector, decimal.NewFromInt(999999))
			require.NoError(t, err)
			assert.True(t, decimal.NewFromInt(3000).Equal(earned))
		}
	})

	t.Run("zero for the single day window", func(t *testing.T) {
		earned, err := EarnedCompensation(member, PeriodToday, decimal.NewFromInt(5000))
		require.NoError(t, err)
		assert.True(t, earned.IsZero())
	})
}

func TestEarnedCompensation_UnknownModel(t *testing.T) {
	member := StaffMember{Username: "jdoe", PaymentType: PaymentType("HOURLY")}

	_, err := EarnedCompensation(member, PeriodThisMonth, decimal.Zero)

	assert.ErrorIs(t, err, shared.ErrUnsupportedPaymentModel)
}

func TestStaffMember_Validate(t *testing.T) {
	tests := []struct {
		name    string
		member  StaffMember
		wantErr bool
	}{
		{
			name:   "valid salary",
			member: StaffMember{Username: "a", PaymentType: PaymentSalary, PaymentAmount: decimal.NewFromInt(3000)},
		},
		{
			name:   "valid commission",
			member: StaffMember{Username: "a", PaymentType: PaymentCommission, PaymentAmount: decimal.NewFromInt(100)},
		},
		{
			name:    "commission above 100",
			member:  StaffMember{Username: "a", PaymentType: PaymentCommission, PaymentAmount: decimal.NewFromInt(101)},
			wantErr: true,
		},
		{
			name:    "zero salary",
			member:  StaffMember{Username: "a", PaymentType: PaymentSalary, PaymentAmount: decimal.Zero},
			wantErr: true,
		},
		{
			name:    "missing username",
			member:  StaffMember{PaymentType: PaymentSalary, PaymentAmount: decimal.NewFromInt(1)},
			wantErr: true,
		},
		{
			name:    "unknown payment model",
			member:  StaffMember{Username: "a", PaymentType: PaymentType("HOURLY")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.member.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
