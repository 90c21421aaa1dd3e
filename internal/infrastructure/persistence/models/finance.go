package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bizsuite/backend/internal/domain/finance"
)

// ExpenseModel is the persistence model for expense ledger entries
type ExpenseModel struct {
	BaseModel
	Title         string          `gorm:"type:varchar(200);not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Category      string          `gorm:"type:varchar(20);not null;index"`
	Date          time.Time       `gorm:"type:date;not null;index"`
	StaffUsername string          `gorm:"type:varchar(100);index"`
}

// TableName returns the table name for ExpenseModel
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToDomain converts ExpenseModel to a domain Expense
func (m *ExpenseModel) ToDomain() *finance.Expense {
	return &finance.Expense{
		BaseEntity:    m.BaseModel.ToDomain(),
		Title:         m.Title,
		Amount:        m.Amount,
		Category:      finance.ExpenseCategory(m.Category),
		Date:          m.Date,
		StaffUsername: m.StaffUsername,
	}
}

// FromDomain populates ExpenseModel from a domain Expense
func (m *ExpenseModel) FromDomain(e *finance.Expense) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.Title = e.Title
	m.Amount = e.Amount
	m.Category = e.Category.String()
	m.Date = e.Date
	m.StaffUsername = e.StaffUsername
}
