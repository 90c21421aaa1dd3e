package finance

import (
	"context"

	"github.com/shopspring/decimal"
)

// RevenueAggregator computes revenue figures from completed appointments.
// Only appointments whose completion time falls inside the window count;
// the scheduled time plays no role.
type RevenueAggregator struct {
	source AppointmentSource
}

func NewRevenueAggregator(source AppointmentSource) *RevenueAggregator {
	return &RevenueAggregator{source: source}
}

// TotalRevenue sums the service prices of all completed appointments in
// the window, including ones without an assigned staff member.
func (a *RevenueAggregator) TotalRevenue(ctx context.Context, window PeriodWindow) (decimal.Decimal, error) {
	appointments, err := a.source.FindCompleted(ctx, window)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, appt := range appointments {
		if !window.Contains(appt.CompletedAt) {
			continue
		}
		total = total.Add(appt.ServicePrice)
	}
	return total, nil
}

// RevenuePerStaff sums completed-appointment revenue per assigned staff
// member. Unassigned appointments contribute to no one's figure.
func (a *RevenueAggregator) RevenuePerStaff(ctx context.Context, window PeriodWindow) (map[string]decimal.Decimal, error) {
	appointments, err := a.source.FindCompleted(ctx, window)
	if err != nil {
		return nil, err
	}

	perStaff := make(map[string]decimal.Decimal)
	for _, appt := range appointments {
		if appt.StaffUsername == "" || !window.Contains(appt.CompletedAt) {
			continue
		}
		perStaff[appt.StaffUsername] = perStaff[appt.StaffUsername].Add(appt.ServicePrice)
	}
	return perStaff, nil
}
