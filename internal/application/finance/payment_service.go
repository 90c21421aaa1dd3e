package finance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bizsuite/backend/internal/domain/finance"
	"github.com/bizsuite/backend/internal/domain/shared"
)

// PaymentService records payroll disbursements as ledger entries.
type PaymentService struct {
	expenses finance.ExpenseRepository
	staff    finance.StaffDirectory
	location *time.Location
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(expenses finance.ExpenseRepository, staff finance.StaffDirectory, loc *time.Location) *PaymentService {
	return &PaymentService{
		expenses: expenses,
		staff:    staff,
		location: loc,
	}
}

// RecordPaymentRequest represents a request to record a staff payment
type RecordPaymentRequest struct {
	Username string          `json:"username" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Date     string          `json:"date" binding:"required"`
}

// RecordPayment verifies the staff member and writes exactly one
// STAFF_PAYMENT ledger entry. The write is a single insert; a failure
// leaves no partial state. Duplicate submissions each record a payment.
func (s *PaymentService) RecordPayment(ctx context.Context, req RecordPaymentRequest) (*ExpenseResponse, error) {
	member, err := s.staff.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if member.IsAdmin() {
		return nil, shared.NewDomainError("STAFF_NOT_PAYABLE", "Administrators are not part of payroll")
	}

	date, err := time.ParseInLocation(dateLayout, req.Date, s.location)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_DATE", "Date must be formatted as YYYY-MM-DD")
	}

	payment, err := finance.NewStaffPayment(member.Username, req.Amount, date)
	if err != nil {
		return nil, err
	}

	if err := s.expenses.Create(ctx, payment); err != nil {
		return nil, err
	}

	return toExpenseResponse(payment), nil
}
