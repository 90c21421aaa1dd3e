package finance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAppointmentSource struct {
	appointments []CompletedAppointment
	err          error
}

func (s *stubAppointmentSource) FindCompleted(ctx context.Context, window PeriodWindow) ([]CompletedAppointment, error) {
	return s.appointments, s.err
}

func marchWindow() PeriodWindow {
	return PeriodWindow{
		Start: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestRevenueAggregator_TotalRevenue(t *testing.T) {
	window := marchWindow()
	inWindow := time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC)

	source := &stubAppointmentSource{appointments: []CompletedAppointment{
		{ServicePrice: decimal.NewFromInt(100), StaffUsername: "jdoe", CompletedAt: inWindow},
		{ServicePrice: decimal.NewFromFloat(49.99), StaffUsername: "", CompletedAt: inWindow},
		{ServicePrice: decimal.NewFromInt(500), StaffUsername: "jdoe", CompletedAt: window.End},
	}}

	total, err := NewRevenueAggregator(source).TotalRevenue(context.Background(), window)
	require.NoError(t, err)

	// Unassigned appointments count; the one completed at the end bound does not.
	assert.True(t, decimal.NewFromFloat(149.99).Equal(total), "got %s", total)
}

func TestRevenueAggregator_RevenuePerStaff(t *testing.T) {
	window := marchWindow()
	inWindow := time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC)

	source := &stubAppointmentSource{appointments: []CompletedAppointment{
		{ServicePrice: decimal.NewFromInt(100), StaffUsername: "jdoe", CompletedAt: inWindow},
		{ServicePrice: decimal.NewFromInt(60), StaffUsername: "jdoe", CompletedAt: inWindow},
		{ServicePrice: decimal.NewFromInt(80), StaffUsername: "asmith", CompletedAt: inWindow},
		{ServicePrice: decimal.NewFromInt(40), StaffUsername: "", CompletedAt: inWindow},
	}}

	perStaff, err := NewRevenueAggregator(source).RevenuePerStaff(context.Background(), window)
	require.NoError(t, err)

	require.Len(t, perStaff, 2)
	assert.True(t, decimal.NewFromInt(160).Equal(perStaff["jdoe"]))
	assert.True(t, decimal.NewFromInt(80).Equal(perStaff["asmith"]))
}

func TestRevenueAggregator_SourceError(t *testing.T) {
	source := &stubAppointmentSource{err: errors.New("scheduling unreachable")}
	aggregator := NewRevenueAggregator(source)

	_, err := aggregator.TotalRevenue(context.Background(), marchWindow())
	assert.Error(t, err)

	_, err = aggregator.RevenuePerStaff(context.Background(), marchWindow())
	assert.Error(t, err)
}
