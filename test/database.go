package test

import (
	"path/filepath"
	"testing"

	"github.com/controle-financeiro/gastos/internal/models"
	"github.com/controle-financeiro/gastos/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// TmpFile returns the path to a unique database file to be used in tests
func TmpFile(t *testing.T) string {
	dir := t.TempDir()
	return filepath.Join(dir, uuid.New().String()+".db")
}

// CreateCategory stores a category directly in the database.
func CreateCategory(t *testing.T, name string) models.Category {
	category := models.Category{Name: name}
	require.Nil(t, models.DB.Create(&category).Error, "creating category %q", name)

	return category
}

// CreateExpense stores an expense directly in the database.
//
// A category is created if none is set, the amount defaults to 10
// and the date to today.
func CreateExpense(t *testing.T, expense models.Expense) models.Expense {
	if expense.CategoryID == 0 {
		expense.CategoryID = CreateCategory(t, "Test category").ID
	}

	if expense.Description == "" {
		expense.Description = "Test expense"
	}

	if expense.Amount.IsZero() {
		expense.Amount = decimal.NewFromInt(10)
	}

	if expense.Date.IsZero() {
		expense.Date = types.Today()
	}

	require.Nil(t, expense.Create(models.DB), "creating expense %q", expense.Description)

	return expense
}
