// Package importer reads expenses from files written by the export and stores them.
package importer

import (
	"errors"
	"fmt"

	"github.com/controle-financeiro/gastos/internal/forms"
	"github.com/controle-financeiro/gastos/internal/models"
)

var (
	ErrInvalidHeader  = errors.New("the first row must be the header of an expense export")
	ErrInvalidExpense = errors.New("the expense is not valid")
)

// ExpensePreview is an expense read from a file, before it is stored.
type ExpensePreview struct {
	Line                int            // Line or row of the file the expense was read from
	Expense             models.Expense // The expense, without category ID
	Category            string         // Name of the category from the file
	DuplicateExpenseIDs []uint         // IDs of stored expenses that this expense duplicates
}

// IsDuplicate reports whether the expense is already stored.
func (p ExpensePreview) IsDuplicate() bool {
	return len(p.DuplicateExpenseIDs) > 0
}

// Validate checks the expense against the rules for submitted expenses.
func (p ExpensePreview) Validate() error {
	for _, msg := range []string{
		forms.DescriptionError(p.Expense.Description),
		forms.AmountError(p.Expense.Amount),
		forms.DateError(p.Expense.Date),
	} {
		if msg != "" {
			return fmt.Errorf("%w: %s", ErrInvalidExpense, msg)
		}
	}

	return nil
}
