package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound                = NewDomainError("NOT_FOUND", "Resource not found")
	ErrStaffNotFound           = NewDomainError("STAFF_NOT_FOUND", "Staff member not found")
	ErrInvalidInput            = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrInvalidPeriod           = NewDomainError("INVALID_PERIOD", "Period selector is not recognized")
	ErrUnsupportedPaymentModel = NewDomainError("UNSUPPORTED_PAYMENT_MODEL", "Payment model is not supported")
	ErrUpstreamUnavailable     = NewDomainError("UPSTREAM_UNAVAILABLE", "Upstream collaborator is unavailable")
)
