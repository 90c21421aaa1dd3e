package finance

import (
	"context"
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/bizsuite/backend/internal/domain/finance"
)

// ReconciliationService computes the on-demand financial summary and the
// payroll statement. Every call recomputes from the current ledger and
// upstream state; nothing is cached or stored.
type ReconciliationService struct {
	expenses finance.ExpenseRepository
	revenue  *finance.RevenueAggregator
	staff    finance.StaffDirectory
	location *time.Location
	now      func() time.Time
	collator *collate.Collator
}

// NewReconciliationService creates a new ReconciliationService.
func NewReconciliationService(
	expenses finance.ExpenseRepository,
	revenue *finance.RevenueAggregator,
	staff finance.StaffDirectory,
	loc *time.Location,
) *ReconciliationService {
	return &ReconciliationService{
		expenses: expenses,
		revenue:  revenue,
		staff:    staff,
		location: loc,
		now:      time.Now,
		collator: collate.New(language.Und, collate.IgnoreCase),
	}
}

// FinanceSummaryResponse represents the period summary in API responses
type FinanceSummaryResponse struct {
	Period        string `json:"period"`
	PeriodStart   string `json:"period_start"`
	PeriodEnd     string `json:"period_end"`
	TotalRevenue  string `json:"total_revenue"`
	TotalExpenses string `json:"total_expenses"`
	NetProfit     string `json:"net_profit"`
}

// PayrollEntryResponse represents one staff member's payroll line
type PayrollEntryResponse struct {
	Username      string `json:"username"`
	FullName      string `json:"full_name"`
	PaymentType   string `json:"payment_type"`
	PaymentAmount string `json:"payment_amount"`
	Earned        string `json:"earned"`
	Paid          string `json:"paid"`
	Balance       string `json:"balance"`
}

// Summary returns revenue, expenses and net profit for the period.
// Net profit is simply revenue minus expenses and may be negative.
func (s *ReconciliationService) Summary(ctx context.Context, selector string) (*FinanceSummaryResponse, error) {
	window, err := finance.ResolvePeriod(finance.PeriodSelector(selector), s.now(), s.location)
	if err != nil {
		return nil, err
	}

	totalRevenue, err := s.revenue.TotalRevenue(ctx, window)
	if err != nil {
		return nil, err
	}

	totalExpenses, err := s.expenses.SumAmount(ctx, finance.WindowFilter(window))
	if err != nil {
		return nil, err
	}

	return &FinanceSummaryResponse{
		Period:        selector,
		PeriodStart:   window.Start.Format(dateLayout),
		PeriodEnd:     window.End.AddDate(0, 0, -1).Format(dateLayout),
		TotalRevenue:  totalRevenue.StringFixed(2),
		TotalExpenses: totalExpenses.StringFixed(2),
		NetProfit:     totalRevenue.Sub(totalExpenses).StringFixed(2),
	}, nil
}

// Payroll returns the per-staff earned/paid/balance statement for the
// period. Administrators are excluded. Entries are ordered by full name
// ignoring case, then by username for stable ties.
func (s *ReconciliationService) Payroll(ctx context.Context, selector string) ([]PayrollEntryResponse, error) {
	period := finance.PeriodSelector(selector)
	window, err := finance.ResolvePeriod(period, s.now(), s.location)
	if err != nil {
		return nil, err
	}

	members, err := s.staff.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	revenuePerStaff, err := s.revenue.RevenuePerStaff(ctx, window)
	if err != nil {
		return nil, err
	}

	paidPerStaff, err := s.expenses.SumStaffPaymentsByStaff(ctx, window)
	if err != nil {
		return nil, err
	}

	entries := make([]PayrollEntryResponse, 0, len(members))
	for _, member := range members {
		if member.IsAdmin() {
			continue
		}

		earned, err := finance.EarnedCompensation(member, period, revenuePerStaff[member.Username])
		if err != nil {
			return nil, err
		}
		paid := paidPerStaff[member.Username]

		entries = append(entries, PayrollEntryResponse{
			Username:      member.Username,
			FullName:      member.FullName,
			PaymentType:   string(member.PaymentType),
			PaymentAmount: member.PaymentAmount.String(),
			Earned:        earned.StringFixed(2),
			Paid:          paid.StringFixed(2),
			Balance:       earned.Sub(paid).StringFixed(2),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if cmp := s.collator.CompareString(entries[i].FullName, entries[j].FullName); cmp != 0 {
			return cmp < 0
		}
		return entries[i].Username < entries[j].Username
	})

	return entries, nil
}
