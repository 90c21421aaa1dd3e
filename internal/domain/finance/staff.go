package finance

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/bizsuite/backend/internal/domain/shared"
)

// StaffRole distinguishes payroll-eligible staff from administrators.
type StaffRole string

const (
	RoleAdmin StaffRole = "ADMIN"
	RoleStaff StaffRole = "STAFF"
)

func (r StaffRole) IsValid() bool {
	return r == RoleAdmin || r == RoleStaff
}

// PaymentType is the compensation model a staff member is paid under.
type PaymentType string

const (
	PaymentSalary     PaymentType = "SALARY"
	PaymentCommission PaymentType = "COMMISSION"
)

func (t PaymentType) IsValid() bool {
	return t == PaymentSalary || t == PaymentCommission
}

// StaffMember is the payroll view of a staff account as reported by the
// staff directory. PaymentAmount is a monthly salary for SALARY staff and
// a percentage (0-100] for COMMISSION staff.
type StaffMember struct {
	Username      string
	FullName      string
	Role          StaffRole
	PaymentType   PaymentType
	PaymentAmount decimal.Decimal
}

// IsAdmin reports whether the member is excluded from payroll.
func (m StaffMember) IsAdmin() bool {
	return m.Role == RoleAdmin
}

// Validate checks the payment configuration for consistency.
func (m StaffMember) Validate() error {
	if m.Username == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Staff username cannot be empty")
	}
	switch m.PaymentType {
	case PaymentSalary:
		if !m.PaymentAmount.IsPositive() {
			return shared.NewDomainError("VALIDATION_ERROR", "Salary amount must be greater than zero")
		}
	case PaymentCommission:
		if !m.PaymentAmount.IsPositive() || m.PaymentAmount.GreaterThan(decimal.NewFromInt(100)) {
			return shared.NewDomainError("VALIDATION_ERROR", "Commission percentage must be in (0, 100]")
		}
	default:
		return shared.ErrUnsupportedPaymentModel
	}
	return nil
}

// StaffDirectory supplies staff accounts from the identity collaborator.
type StaffDirectory interface {
	FindAll(ctx context.Context) ([]StaffMember, error)
	FindByUsername(ctx context.Context, username string) (*StaffMember, error)
}
