package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseFilter narrows ledger queries. Nil fields are ignored. From is
// inclusive and To exclusive, matching the half-open period windows.
type ExpenseFilter struct {
	Category      *ExpenseCategory
	StaffUsername *string
	From          *time.Time
	To            *time.Time
}

// WindowFilter builds a filter covering the given period window.
func WindowFilter(window PeriodWindow) ExpenseFilter {
	from, to := window.Start, window.End
	return ExpenseFilter{From: &from, To: &to}
}

// WithCategory returns a copy of the filter restricted to one category.
func (f ExpenseFilter) WithCategory(category ExpenseCategory) ExpenseFilter {
	f.Category = &category
	return f
}

// ExpenseRepository is the persistence port for the expense ledger.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *Expense) error
	FindByID(ctx context.Context, id uuid.UUID) (*Expense, error)
	FindAll(ctx context.Context, filter ExpenseFilter) ([]Expense, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SumAmount(ctx context.Context, filter ExpenseFilter) (decimal.Decimal, error)
	SumStaffPaymentsByStaff(ctx context.Context, window PeriodWindow) (map[string]decimal.Decimal, error)
}
