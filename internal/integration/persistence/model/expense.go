package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/luismonroy1971/actividad-sub000/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ActivityID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Concept    string          `gorm:"type:varchar(255);not null"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date       time.Time       `gorm:"type:date;not null;index"`
	Category   string          `gorm:"type:varchar(10);not null;index"`
	RecordedBy uuid.UUID       `gorm:"type:uuid;not null"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:         m.ID,
		ActivityID: m.ActivityID,
		Concept:    m.Concept,
		Amount:     m.Amount,
		Date:       m.Date,
		Category:   entity.ExpenseCategory(m.Category),
		RecordedBy: m.RecordedBy,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:         expense.ID,
		ActivityID: expense.ActivityID,
		Concept:    expense.Concept,
		Amount:     expense.Amount,
		Date:       expense.Date,
		Category:   string(expense.Category),
		RecordedBy: expense.RecordedBy,
		CreatedAt:  expense.CreatedAt,
		UpdatedAt:  expense.UpdatedAt,
	}
}
