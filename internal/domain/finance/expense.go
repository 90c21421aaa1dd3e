package finance

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bizsuite/backend/internal/domain/shared"
)

// ExpenseCategory classifies an expense entry.
type ExpenseCategory string

const (
	CategoryBill         ExpenseCategory = "BILL"
	CategoryRent         ExpenseCategory = "RENT"
	CategorySupplies     ExpenseCategory = "SUPPLIES"
	CategoryStaffPayment ExpenseCategory = "STAFF_PAYMENT"
	CategoryOther        ExpenseCategory = "OTHER"
)

func (c ExpenseCategory) IsValid() bool {
	switch c {
	case CategoryBill, CategoryRent, CategorySupplies, CategoryStaffPayment, CategoryOther:
		return true
	}
	return false
}

// IsManual reports whether the category may be chosen by an operator.
// STAFF_PAYMENT entries are produced only by the payment recorder.
func (c ExpenseCategory) IsManual() bool {
	return c.IsValid() && c != CategoryStaffPayment
}

func (c ExpenseCategory) String() string {
	return string(c)
}

func (c ExpenseCategory) DisplayName() string {
	switch c {
	case CategoryBill:
		return "Bill"
	case CategoryRent:
		return "Rent"
	case CategorySupplies:
		return "Supplies"
	case CategoryStaffPayment:
		return "Staff Payment"
	case CategoryOther:
		return "Other"
	default:
		return string(c)
	}
}

// Expense is a single spending entry in the ledger. Entries are immutable
// after creation; corrections are made by deleting and re-creating.
type Expense struct {
	shared.BaseEntity
	Title         string
	Amount        decimal.Decimal
	Category      ExpenseCategory
	Date          time.Time
	StaffUsername string
}

// NewExpense creates an operator-entered expense. The STAFF_PAYMENT
// category is reserved for payroll disbursements and is rejected here.
func NewExpense(title string, amount decimal.Decimal, category ExpenseCategory, date time.Time) (*Expense, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Expense title cannot be empty")
	}
	if len(title) > 200 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Expense title cannot exceed 200 characters")
	}
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	if !category.IsValid() {
		return nil, shared.NewDomainError("INVALID_CATEGORY", fmt.Sprintf("Unknown expense category: %s", category))
	}
	if !category.IsManual() {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "The STAFF_PAYMENT category is reserved for payroll disbursements")
	}
	if date.IsZero() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Expense date is required")
	}

	return &Expense{
		BaseEntity: shared.NewBaseEntity(),
		Title:      title,
		Amount:     amount,
		Category:   category,
		Date:       date,
	}, nil
}

// NewStaffPayment creates the ledger entry for a payroll disbursement to
// the named staff member. It is the only constructor allowed to produce
// STAFF_PAYMENT entries.
func NewStaffPayment(username string, amount decimal.Decimal, date time.Time) (*Expense, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Staff username cannot be empty")
	}
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	if date.IsZero() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Payment date is required")
	}

	return &Expense{
		BaseEntity:    shared.NewBaseEntity(),
		Title:         fmt.Sprintf("Staff payment to %s", username),
		Amount:        amount,
		Category:      CategoryStaffPayment,
		Date:          date,
		StaffUsername: username,
	}, nil
}

// IsStaffPayment reports whether the entry is a payroll disbursement.
func (e *Expense) IsStaffPayment() bool {
	return e.Category == CategoryStaffPayment
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return shared.NewDomainError("VALIDATION_ERROR", "Amount must be greater than zero")
	}
	if amount.Exponent() < -2 {
		return shared.NewDomainError("VALIDATION_ERROR", "Amount cannot have more than two decimal places")
	}
	return nil
}
