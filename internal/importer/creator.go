package importer

import (
	"fmt"

	"github.com/controle-financeiro/gastos/internal/models"
	"gorm.io/gorm"
)

// FindDuplicates sets the IDs of stored expenses with the same date, description,
// amount and category name for all previews.
func FindDuplicates(db *gorm.DB, previews []ExpensePreview) error {
	for i, p := range previews {
		var ids []uint
		err := db.Model(&models.Expense{}).
			Joins("JOIN categories ON categories.id = expenses.category_id").
			Where("expenses.date = ? AND expenses.description = ? AND expenses.amount = ? AND categories.name = ?",
				p.Expense.Date, p.Expense.Description, p.Expense.Amount, p.Category).
			Order("expenses.id ASC").
			Pluck("expenses.id", &ids).Error
		if err != nil {
			return err
		}

		previews[i].DuplicateExpenseIDs = ids
	}

	return nil
}

// Create stores the expenses of all previews. Categories are matched by name
// and created if they do not exist.
//
// If any expense is invalid or cannot be stored, nothing is stored.
func Create(db *gorm.DB, previews []ExpensePreview) ([]models.Expense, error) {
	// Start a transaction so we can roll back all created resources if an error occurs
	tx := db.Begin()
	if tx.Error != nil {
		return []models.Expense{}, tx.Error
	}

	categories := map[string]models.Category{}
	expenses := make([]models.Expense, 0, len(previews))

	for _, p := range previews {
		err := p.Validate()
		if err != nil {
			tx.Rollback()
			return []models.Expense{}, fmt.Errorf("error in line %d: %w", p.Line, err)
		}

		category, ok := categories[p.Category]
		if !ok {
			err := tx.Where(models.Category{Name: p.Category}).FirstOrCreate(&category).Error
			if err != nil {
				tx.Rollback()
				return []models.Expense{}, err
			}
			categories[p.Category] = category
		}

		expense := p.Expense
		expense.CategoryID = category.ID
		expense.Category = category

		err = expense.Create(tx)
		if err != nil {
			tx.Rollback()
			return []models.Expense{}, err
		}

		expenses = append(expenses, expense)
	}

	err := tx.Commit().Error
	if err != nil {
		return []models.Expense{}, err
	}

	return expenses, nil
}
