package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/bizsuite/backend/internal/domain/finance"
	"github.com/bizsuite/backend/internal/domain/shared"
	"github.com/bizsuite/backend/internal/infrastructure/persistence/models"
)

// ExpenseRepositoryImpl implements finance.ExpenseRepository using GORM
type ExpenseRepositoryImpl struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new ExpenseRepository
func NewExpenseRepository(db *gorm.DB) finance.ExpenseRepository {
	return &ExpenseRepositoryImpl{db: db}
}

// Create persists a new expense entry as a single insert.
func (r *ExpenseRepositoryImpl) Create(ctx context.Context, expense *finance.Expense) error {
	var model models.ExpenseModel
	model.FromDomain(expense)

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return shared.NewDomainError("DATABASE_ERROR", "Failed to create expense: "+err.Error())
	}
	return nil
}

// FindByID retrieves an expense entry by its ID
func (r *ExpenseRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*finance.Expense, error) {
	var model models.ExpenseModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, shared.NewDomainError("DATABASE_ERROR", "Failed to find expense: "+err.Error())
	}
	return model.ToDomain(), nil
}

// FindAll retrieves expense entries matching the filter, newest first.
func (r *ExpenseRepositoryImpl) FindAll(ctx context.Context, filter finance.ExpenseFilter) ([]finance.Expense, error) {
	var rows []models.ExpenseModel
	err := r.applyFilter(r.db.WithContext(ctx), filter).
		Order("date DESC, created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, shared.NewDomainError("DATABASE_ERROR", "Failed to list expenses: "+err.Error())
	}

	expenses := make([]finance.Expense, 0, len(rows))
	for i := range rows {
		expenses = append(expenses, *rows[i].ToDomain())
	}
	return expenses, nil
}

// Delete removes an expense entry. Deleting an unknown id fails, so a
// second delete of the same entry reports NOT_FOUND.
func (r *ExpenseRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ExpenseModel{}, "id = ?", id)
	if result.Error != nil {
		return shared.NewDomainError("DATABASE_ERROR", "Failed to delete expense: "+result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// SumAmount totals the amounts of all entries matching the filter.
func (r *ExpenseRepositoryImpl) SumAmount(ctx context.Context, filter finance.ExpenseFilter) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.applyFilter(r.db.WithContext(ctx).Model(&models.ExpenseModel{}), filter).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, shared.NewDomainError("DATABASE_ERROR", "Failed to sum expenses: "+err.Error())
	}
	return total, nil
}

// SumStaffPaymentsByStaff totals STAFF_PAYMENT entries per staff member
// inside the window.
func (r *ExpenseRepositoryImpl) SumStaffPaymentsByStaff(ctx context.Context, window finance.PeriodWindow) (map[string]decimal.Decimal, error) {
	type row struct {
		StaffUsername string
		Total         decimal.Decimal
	}

	var rows []row
	err := r.db.WithContext(ctx).
		Model(&models.ExpenseModel{}).
		Select("staff_username, COALESCE(SUM(amount), 0) AS total").
		Where("category = ?", finance.CategoryStaffPayment.String()).
		Where("date >= ? AND date < ?", window.Start, window.End).
		Group("staff_username").
		Scan(&rows).Error
	if err != nil {
		return nil, shared.NewDomainError("DATABASE_ERROR", "Failed to sum staff payments: "+err.Error())
	}

	totals := make(map[string]decimal.Decimal, len(rows))
	for _, r := range rows {
		totals[r.StaffUsername] = r.Total
	}
	return totals, nil
}

func (r *ExpenseRepositoryImpl) applyFilter(db *gorm.DB, filter finance.ExpenseFilter) *gorm.DB {
	if filter.Category != nil {
		db = db.Where("category = ?", filter.Category.String())
	}
	if filter.StaffUsername != nil {
		db = db.Where("staff_username = ?", *filter.StaffUsername)
	}
	if filter.From != nil {
		db = db.Where("date >= ?", *filter.From)
	}
	if filter.To != nil {
		db = db.Where("date < ?", *filter.To)
	}
	return db
}
