package finance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// CompletedAppointment is the revenue-relevant view of a finished booking
// as reported by the scheduling collaborator. StaffUsername is empty when
// the appointment had no assigned staff member.
type CompletedAppointment struct {
	ServicePrice  decimal.Decimal
	StaffUsername string
	CompletedAt   time.Time
}

// AppointmentSource supplies completed appointments for a period window.
type AppointmentSource interface {
	FindCompleted(ctx context.Context, window PeriodWindow) ([]CompletedAppointment, error)
}
