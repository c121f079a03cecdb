package models

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Category is a named grouping for expenses.
type Category struct {
	DefaultModel
	Name string `gorm:"size:100;not null"`
}

// BeforeSave trims whitespace from the name and rejects empty names.
func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return ErrCategoryNameEmpty
	}

	return nil
}

// Categories returns all categories ordered by name.
func Categories(db *gorm.DB) ([]Category, error) {
	var categories []Category
	err := db.Order("categories.name ASC, categories.id ASC").Find(&categories).Error
	if err != nil {
		return []Category{}, err
	}

	return categories, nil
}

// Expenses returns the number of expenses in the category.
func (c Category) Expenses(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&Expense{}).Where(&Expense{CategoryID: c.ID}).Count(&count).Error
	return count, err
}

// Create stores a new category.
func (c *Category) Create(db *gorm.DB) error {
	return db.Create(c).Error
}

// FindCategory returns the category with the ID.
func FindCategory(db *gorm.DB, id uint) (Category, error) {
	var category Category
	err := db.First(&category, id).Error
	return category, err
}

// DeleteCategory deletes the category with the ID together with all its expenses.
//
// An error wrapping ErrResourceNotFound is returned when no category has been deleted.
func DeleteCategory(db *gorm.DB, id uint) error {
	tx := db.Delete(&Category{}, id)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return fmt.Errorf("%w category matching your query", ErrResourceNotFound)
	}

	return nil
}
