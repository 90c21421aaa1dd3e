package finance

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizsuite/backend/internal/domain/shared"
)

func TestNewExpense(t *testing.T) {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		title    string
		amount   decimal.Decimal
		category ExpenseCategory
		date     time.Time
		wantCode string
	}{
		{
			name:     "valid bill",
			title:    "Electricity March",
			amount:   decimal.NewFromFloat(120.50),
			category: CategoryBill,
			date:     date,
		},
		{
			name:     "valid rent",
			title:    "Office rent",
			amount:   decimal.NewFromInt(2000),
			category: CategoryRent,
			date:     date,
		},
		{
			name:     "empty title",
			title:    "   ",
			amount:   decimal.NewFromInt(10),
			category: CategoryBill,
			date:     date,
			wantCode: "VALIDATION_ERROR",
		},
		{
			name:     "title too long",
			title:    strings.Repeat("x", 201),
			amount:   decimal.NewFromInt(10),
			category: CategoryBill,
			date:     date,
			wantCode: "VALIDATION_ERROR",
		},
		{
			name:     "zero amount",
			title:    "Paper",
			amount:   decimal.Zero,
			category: CategorySupplies,
			date:     date,
			wantCode: "VALIDATION_ERROR",
		},
		{
			name:     "negative amount",
			title:    "Paper",
			amount:   decimal.NewFromInt(-5),
			category: CategorySupplies,
			date:     date,
			wantCode: "VALIDATION_ERROR",
		},
		{
			name:     "three decimal places",
			title:    "Paper",
			amount:   decimal.RequireFromString("10.005"),
			category: CategorySupplies,
			date:     date,
			wantCode: "VALIDATION_ERROR",
		},
		{
			name:     "unknown category",
			title:    "Mystery",
			amount:   decimal.NewFromInt(10),
			category: ExpenseCategory("TRAVEL"),
			date:     date,
			wantCode: "INVALID_CATEGORY",
		},
		{
			name:     "staff payment category is reserved",
			title:    "Sneaky payout",
			amount:   decimal.NewFromInt(10),
			category: CategoryStaffPayment,
			date:     date,
			wantCode: "INVALID_CATEGORY",
		},
		{
			name:     "missing date",
			title:    "Paper",
			amount:   decimal.NewFromInt(10),
			category: CategorySupplies,
			wantCode: "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expense, err := NewExpense(tt.title, tt.amount, tt.category, tt.date)

			if tt.wantCode != "" {
				require.Error(t, err)
				var domainErr *shared.DomainError
				require.ErrorAs(t, err, &domainErr)
				assert.Equal(t, tt.wantCode, domainErr.Code)
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, "", expense.GetID().String())
			assert.Equal(t, strings.TrimSpace(tt.title), expense.Title)
			assert.True(t, tt.amount.Equal(expense.Amount))
			assert.Equal(t, tt.category, expense.Category)
			assert.Empty(t, expense.StaffUsername)
			assert.False(t, expense.IsStaffPayment())
		})
	}
}

func TestNewStaffPayment(t *testing.T) {
	date := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	t.Run("valid payment", func(t *testing.T) {
		payment, err := NewStaffPayment("jdoe", decimal.NewFromFloat(1500.25), date)
		require.NoError(t, err)

		assert.Equal(t, CategoryStaffPayment, payment.Category)
		assert.Equal(t, "jdoe", payment.StaffUsername)
		assert.Equal(t, "Staff payment to jdoe", payment.Title)
		assert.True(t, payment.IsStaffPayment())
	})

	t.Run("empty username", func(t *testing.T) {
		_, err := NewStaffPayment("", decimal.NewFromInt(100), date)
		assert.Error(t, err)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		_, err := NewStaffPayment("jdoe", decimal.Zero, date)
		assert.Error(t, err)
	})
}

func TestExpenseCategory(t *testing.T) {
	assert.True(t, CategoryBill.IsManual())
	assert.True(t, CategoryOther.IsManual())
	assert.False(t, CategoryStaffPayment.IsManual())
	assert.True(t, CategoryStaffPayment.IsValid())
	assert.False(t, ExpenseCategory("TRAVEL").IsValid())

	assert.Equal(t, "Staff Payment", CategoryStaffPayment.DisplayName())
	assert.Equal(t, "Supplies", CategorySupplies.DisplayName())
}
