package expenses

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/controle-financeiro/gastos/internal/models"
)

// Notification messages
const (
	msgAdded           = "Expense added successfully!"
	msgUpdated         = "Expense updated successfully!"
	msgDeleted         = "Expense deleted successfully!"
	msgAddFailed       = "Error adding expense. Check the data."
	msgEditFailed      = "Error editing expense. Check the data."
	msgNotFound        = "The expense does not exist anymore."
	msgExportCancelled = "Invalid filter. The export was cancelled."
)

var errExpenseNotFound = fmt.Errorf("%w expense matching your query", models.ErrResourceNotFound)

// findExpense returns the expense for a raw ID. IDs that are not
// positive integers never match an expense.
func findExpense(raw string) (models.Expense, error) {
	id, err := parseID(raw)
	if err != nil {
		return models.Expense{}, err
	}

	return models.FindExpense(models.DB, id)
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil || id == 0 {
		return 0, errExpenseNotFound
	}

	return uint(id), nil
}

func isNotFound(err error) bool {
	return errors.Is(err, models.ErrResourceNotFound)
}
