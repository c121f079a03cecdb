package models

import (
	"fmt"
	"strings"

	"github.com/controle-financeiro/gastos/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Expense is a single recorded spending transaction.
type Expense struct {
	DefaultModel
	Description string          `gorm:"size:200;not null"`
	CategoryID  uint            `gorm:"not null;index"`
	Category    Category        `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Amount      decimal.Decimal `gorm:"type:DECIMAL(10,2);not null"`
	Recurrence  Recurrence      `gorm:"size:20;not null;default:none"`
	Date        types.Date      `gorm:"not null;index"` // The day the money was spent
}

// editableFields are overwritten on update. ID and CreatedAt never are.
// UpdatedAt is set to the current time by gorm.
var editableFields = []any{"Description", "CategoryID", "Amount", "Recurrence", "Date", "UpdatedAt"}

// BeforeSave
//   - trims whitespace from the description
//   - defaults the recurrence to none
//   - rejects non-positive amounts and unknown recurrences
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Description = strings.TrimSpace(e.Description)

	if e.Recurrence == "" {
		e.Recurrence = RecurrenceNone
	}

	if !e.Recurrence.Valid() {
		return ErrRecurrenceInvalid
	}

	if !e.Amount.IsPositive() {
		return ErrExpenseAmountNotPositive
	}

	return nil
}

// Create stores a new expense.
func (e *Expense) Create(db *gorm.DB) error {
	return db.Omit(clause.Associations).Create(e).Error
}

// Update overwrites all editable fields of the expense with the ones from update.
//
// If the expense has been deleted in the meantime, an error wrapping
// ErrResourceNotFound is returned.
func (e *Expense) Update(db *gorm.DB, update Expense) error {
	e.Description = update.Description
	e.CategoryID = update.CategoryID
	e.Category = update.Category
	e.Amount = update.Amount
	e.Recurrence = update.Recurrence
	e.Date = update.Date

	tx := db.Model(e).Omit(clause.Associations).Select(editableFields[0], editableFields[1:]...).Updates(e)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return fmt.Errorf("%w expense matching your query", ErrResourceNotFound)
	}

	return nil
}

// FindExpense returns the expense with the ID, including its category.
func FindExpense(db *gorm.DB, id uint) (Expense, error) {
	var expense Expense
	err := db.Preload("Category").First(&expense, id).Error
	return expense, err
}

// DeleteExpense deletes the expense with the ID.
//
// An error wrapping ErrResourceNotFound is returned when no expense has been deleted.
func DeleteExpense(db *gorm.DB, id uint) error {
	tx := db.Delete(&Expense{}, id)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return fmt.Errorf("%w expense matching your query", ErrResourceNotFound)
	}

	return nil
}
