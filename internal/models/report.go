package models

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Scope narrows down a query on expenses.
type Scope = func(*gorm.DB) *gorm.DB

// MonthTotal is the sum of all expenses in a calendar month.
type MonthTotal struct {
	Month int             // 1 to 12
	Total decimal.Decimal // Sum of the amounts
}

// CategoryTotal is the sum of all expenses of a category.
type CategoryTotal struct {
	Category string          // Name of the category
	Total    decimal.Decimal // Sum of the amounts
}

type sumResult struct {
	Total decimal.NullDecimal
}

// ListExpenses returns the expenses matching the scopes, including their categories.
func ListExpenses(db *gorm.DB, scopes ...Scope) ([]Expense, error) {
	var expenses []Expense
	err := db.Scopes(scopes...).Preload("Category").Find(&expenses).Error
	if err != nil {
		return []Expense{}, err
	}

	return expenses, nil
}

// CountExpenses returns the number of expenses matching the scopes.
func CountExpenses(db *gorm.DB, scopes ...Scope) (int64, error) {
	var count int64
	err := db.Model(&Expense{}).Scopes(scopes...).Count(&count).Error
	return count, err
}

// SumExpenses returns the sum of the amounts of all expenses matching the scopes.
// The sum of no expenses is zero.
func SumExpenses(db *gorm.DB, scopes ...Scope) (decimal.Decimal, error) {
	var result sumResult
	err := db.Model(&Expense{}).Scopes(scopes...).Select("SUM(expenses.amount) AS total").Find(&result).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("summing expenses failed: %w", err)
	}

	return result.Total.Decimal.Round(2), nil
}

// MonthlyTotals returns the sum of the amounts per calendar month for all expenses
// matching the scopes. Only months with at least one expense are contained.
//
// The scopes should restrict the expenses to a single year, otherwise the same
// month of different years is summed up.
func MonthlyTotals(db *gorm.DB, scopes ...Scope) ([]MonthTotal, error) {
	var totals []MonthTotal

	err := db.Model(&Expense{}).
		Scopes(scopes...).
		Select("CAST(strftime('%m', expenses.date) AS INTEGER) AS month, SUM(expenses.amount) AS total").
		Group("month").
		Order("month ASC").
		Find(&totals).Error
	if err != nil {
		return []MonthTotal{}, fmt.Errorf("grouping expenses by month failed: %w", err)
	}

	for i := range totals {
		totals[i].Total = totals[i].Total.Round(2)
	}

	return totals, nil
}

// CategoryTotals returns the sum of the amounts per category name for all expenses
// matching the scopes. Categories with the same name are summed up together.
// Only categories with at least one expense are contained.
func CategoryTotals(db *gorm.DB, scopes ...Scope) ([]CategoryTotal, error) {
	var totals []CategoryTotal

	err := db.Model(&Expense{}).
		Scopes(scopes...).
		Joins("JOIN categories ON categories.id = expenses.category_id").
		Select("categories.name AS category, SUM(expenses.amount) AS total").
		Group("categories.name").
		Order("categories.name ASC").
		Find(&totals).Error
	if err != nil {
		return []CategoryTotal{}, fmt.Errorf("grouping expenses by category failed: %w", err)
	}

	for i := range totals {
		totals[i].Total = totals[i].Total.Round(2)
	}

	return totals, nil
}
