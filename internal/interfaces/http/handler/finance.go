package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	appfinance "github.com/bizsuite/backend/internal/application/finance"
	"github.com/bizsuite/backend/internal/interfaces/http/dto"
	"github.com/bizsuite/backend/internal/interfaces/http/middleware"
)

// FinanceHandler handles the finance API endpoints
type FinanceHandler struct {
	BaseHandler
	expenses       *appfinance.ExpenseService
	reconciliation *appfinance.ReconciliationService
	payments       *appfinance.PaymentService
}

// NewFinanceHandler creates a new FinanceHandler
func NewFinanceHandler(
	expenses *appfinance.ExpenseService,
	reconciliation *appfinance.ReconciliationService,
	payments *appfinance.PaymentService,
) *FinanceHandler {
	return &FinanceHandler{
		expenses:       expenses,
		reconciliation: reconciliation,
		payments:       payments,
	}
}

// RegisterRoutes registers all finance routes
func (h *FinanceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	finance := rg.Group("/finance")
	{
		finance.GET("/summary", h.GetSummary)
		finance.GET("/payroll", h.GetPayroll)
		finance.POST("/payroll/payments", h.RecordPayment)
		finance.GET("/expenses", h.ListExpenses)
		finance.POST("/expenses", h.CreateExpense)
		finance.DELETE("/expenses/:id", h.DeleteExpense)
	}
}

// GetSummary returns revenue, expenses and net profit for a period
func (h *FinanceHandler) GetSummary(c *gin.Context) {
	period := c.DefaultQuery("period", "this_month")

	summary, err := h.reconciliation.Summary(c.Request.Context(), period)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, summary)
}

// GetPayroll returns the per-staff payroll statement for a period
func (h *FinanceHandler) GetPayroll(c *gin.Context) {
	period := c.DefaultQuery("period", "this_month")

	entries, err := h.reconciliation.Payroll(c.Request.Context(), period)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, entries, int64(len(entries)))
}

// RecordPayment records a staff payment as a ledger entry
func (h *FinanceHandler) RecordPayment(c *gin.Context) {
	var req appfinance.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	payment, err := h.payments.RecordPayment(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, payment)
}

// ListExpenses returns ledger entries matching the query filters
func (h *FinanceHandler) ListExpenses(c *gin.Context) {
	var filter appfinance.ExpenseListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.bindError(c, err)
		return
	}

	expenses, err := h.expenses.ListExpenses(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, expenses, int64(len(expenses)))
}

// CreateExpense records a new expense entry
func (h *FinanceHandler) CreateExpense(c *gin.Context) {
	var req appfinance.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	expense, err := h.expenses.CreateExpense(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, expense)
}

// DeleteExpense removes a ledger entry by id
func (h *FinanceHandler) DeleteExpense(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid expense ID")
		return
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		h.BadRequest(c, "Invalid expense ID")
		return
	}

	if err := h.expenses.DeleteExpense(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

func (h *FinanceHandler) bindError(c *gin.Context, err error) {
	if _, ok := err.(validator.ValidationErrors); ok {
		middleware.HandleValidationError(c, err)
		return
	}
	h.Error(c, 400, dto.ErrCodeInvalidJSON, "Malformed request body")
}
