package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizsuite/backend/internal/domain/finance"
	"github.com/bizsuite/backend/internal/domain/shared"
)

const dateLayout = "2006-01-02"

// ExpenseService provides application-level expense ledger operations.
type ExpenseService struct {
	expenses finance.ExpenseRepository
	location *time.Location
	now      func() time.Time
}

// NewExpenseService creates a new ExpenseService. All period and date
// arithmetic happens in loc, the business timezone.
func NewExpenseService(expenses finance.ExpenseRepository, loc *time.Location) *ExpenseService {
	return &ExpenseService{
		expenses: expenses,
		location: loc,
		now:      time.Now,
	}
}

// ExpenseResponse represents an expense entry in API responses
type ExpenseResponse struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Amount        string    `json:"amount"`
	Category      string    `json:"category"`
	CategoryName  string    `json:"category_name"`
	Date          string    `json:"date"`
	StaffUsername string    `json:"staff_username,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateExpenseRequest represents a request to create an expense entry
type CreateExpenseRequest struct {
	Title    string          `json:"title" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Category string          `json:"category" binding:"required"`
	Date     string          `json:"date" binding:"required"`
}

// ExpenseListFilter defines filtering options for expense list queries
type ExpenseListFilter struct {
	Period   string `form:"period"`
	Category string `form:"category"`
	From     string `form:"from"`
	To       string `form:"to"`
}

// CreateExpense records a new operator-entered expense.
func (s *ExpenseService) CreateExpense(ctx context.Context, req CreateExpenseRequest) (*ExpenseResponse, error) {
	date, err := s.parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	expense, err := finance.NewExpense(req.Title, req.Amount, finance.ExpenseCategory(req.Category), date)
	if err != nil {
		return nil, err
	}

	if err := s.expenses.Create(ctx, expense); err != nil {
		return nil, err
	}

	return toExpenseResponse(expense), nil
}

// ListExpenses returns ledger entries matching the filter, newest first.
// A period selector and explicit from/to dates are mutually exclusive;
// the selector wins when both are present.
func (s *ExpenseService) ListExpenses(ctx context.Context, filter ExpenseListFilter) ([]ExpenseResponse, error) {
	repoFilter, err := s.buildFilter(filter)
	if err != nil {
		return nil, err
	}

	expenses, err := s.expenses.FindAll(ctx, repoFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		responses = append(responses, *toExpenseResponse(&expenses[i]))
	}
	return responses, nil
}

// DeleteExpense removes a ledger entry by id.
func (s *ExpenseService) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	if _, err := s.expenses.FindByID(ctx, id); err != nil {
		return err
	}
	return s.expenses.Delete(ctx, id)
}

func (s *ExpenseService) buildFilter(filter ExpenseListFilter) (finance.ExpenseFilter, error) {
	var repoFilter finance.ExpenseFilter

	if filter.Period != "" {
		window, err := finance.ResolvePeriod(finance.PeriodSelector(filter.Period), s.now(), s.location)
		if err != nil {
			return finance.ExpenseFilter{}, err
		}
		repoFilter = finance.WindowFilter(window)
	} else {
		if filter.From != "" {
			from, err := s.parseDate(filter.From)
			if err != nil {
				return finance.ExpenseFilter{}, err
			}
			repoFilter.From = &from
		}
		if filter.To != "" {
			to, err := s.parseDate(filter.To)
			if err != nil {
				return finance.ExpenseFilter{}, err
			}
			// To is an inclusive calendar date from the caller's point of
			// view; the repository bound is exclusive.
			end := to.AddDate(0, 0, 1)
			repoFilter.To = &end
		}
	}

	if filter.Category != "" {
		category := finance.ExpenseCategory(filter.Category)
		if !category.IsValid() {
			return finance.ExpenseFilter{}, shared.NewDomainError("INVALID_CATEGORY", "Unknown expense category: "+filter.Category)
		}
		repoFilter.Category = &category
	}

	return repoFilter, nil
}

func (s *ExpenseService) parseDate(value string) (time.Time, error) {
	date, err := time.ParseInLocation(dateLayout, value, s.location)
	if err != nil {
		return time.Time{}, shared.NewDomainError("INVALID_DATE", "Date must be formatted as YYYY-MM-DD")
	}
	return date, nil
}

func toExpenseResponse(expense *finance.Expense) *ExpenseResponse {
	return &ExpenseResponse{
		ID:            expense.GetID(),
		Title:         expense.Title,
		Amount:        expense.Amount.StringFixed(2),
		Category:      expense.Category.String(),
		CategoryName:  expense.Category.DisplayName(),
		Date:          expense.Date.Format(dateLayout),
		StaffUsername: expense.StaffUsername,
		CreatedAt:     expense.GetCreatedAt(),
	}
}
