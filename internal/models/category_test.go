package models_test

import (
	"github.com/controle-financeiro/gastos/internal/models"
	"github.com/controle-financeiro/gastos/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCategoryTrimWhitespace() {
	name := "\t Alimentação  "
	category := suite.createTestCategory(models.Category{Name: name})

	suite.Assert().Equal("Alimentação", category.Name)
}

func (suite *TestSuiteStandard) TestCategoryNameEmpty() {
	err := models.DB.Create(&models.Category{Name: "   "}).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryNameEmpty)
}

func (suite *TestSuiteStandard) TestCategoriesOrderedByName() {
	suite.createTestCategory(models.Category{Name: "Transporte"})
	suite.createTestCategory(models.Category{Name: "Lazer"})
	suite.createTestCategory(models.Category{Name: "Alimentação"})

	categories, err := models.Categories(models.DB)
	suite.Require().Nil(err)
	suite.Require().Len(categories, 3)

	suite.Assert().Equal("Alimentação", categories[0].Name)
	suite.Assert().Equal("Lazer", categories[1].Name)
	suite.Assert().Equal("Transporte", categories[2].Name)
}

func (suite *TestSuiteStandard) TestCategoryDeleteCascadesToExpenses() {
	category := suite.createTestCategory(models.Category{Name: "Lazer"})
	other := suite.createTestCategory(models.Category{Name: "Casa"})

	for i := 0; i < 3; i++ {
		suite.createTestExpense(models.Expense{
			Description: "Cinema",
			CategoryID:  category.ID,
			Amount:      decimal.NewFromInt(30),
			Date:        types.NewDate(2024, 3, 1),
		})
	}

	kept := suite.createTestExpense(models.Expense{
		Description: "Aluguel",
		CategoryID:  other.ID,
		Amount:      decimal.NewFromInt(1500),
		Date:        types.NewDate(2024, 3, 5),
	})

	count, err := category.Expenses(models.DB)
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(3), count)

	suite.Require().Nil(models.DeleteCategory(models.DB, category.ID))

	count, err = category.Expenses(models.DB)
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(0), count, "Expenses of a deleted category must be deleted, too")

	_, err = models.FindExpense(models.DB, kept.ID)
	suite.Assert().Nil(err, "Expenses of other categories must not be deleted")
}

func (suite *TestSuiteStandard) TestCategoriesDBClosed() {
	suite.CloseDB()

	_, err := models.Categories(models.DB)
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestCategoryCreateAndFind() {
	category := models.Category{Name: " Saúde "}
	suite.Require().Nil(category.Create(models.DB))
	suite.Assert().NotZero(category.ID)

	found, err := models.FindCategory(models.DB, category.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal("Saúde", found.Name)
}

func (suite *TestSuiteStandard) TestCategoryNotFound() {
	_, err := models.FindCategory(models.DB, 4711)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Equal("there is no category matching your query", err.Error())

	err = models.DeleteCategory(models.DB, 4711)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}
