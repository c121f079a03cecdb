package models_test

import (
	"github.com/controle-financeiro/gastos/internal/models"
	"github.com/controle-financeiro/gastos/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) createReportFixtures() (models.Category, models.Category) {
	food := suite.createTestCategory(models.Category{Name: "Alimentação"})
	transport := suite.createTestCategory(models.Category{Name: "Transporte"})

	fixtures := []models.Expense{
		{Description: "Mercado", CategoryID: food.ID, Amount: decimal.RequireFromString("100.10"), Date: types.NewDate(2024, 1, 5)},
		{Description: "Feira", CategoryID: food.ID, Amount: decimal.RequireFromString("50.20"), Date: types.NewDate(2024, 1, 20)},
		{Description: "Ônibus", CategoryID: transport.ID, Amount: decimal.RequireFromString("4.40"), Date: types.NewDate(2024, 3, 2)},
		{Description: "Táxi", CategoryID: transport.ID, Amount: decimal.RequireFromString("35"), Date: types.NewDate(2023, 3, 2)},
	}

	for _, e := range fixtures {
		suite.createTestExpense(e)
	}

	return food, transport
}

func year(y int) models.Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("expenses.date >= ? AND expenses.date <= ?", types.NewDate(y, 1, 1), types.NewDate(y, 12, 31))
	}
}

func (suite *TestSuiteStandard) TestSumExpenses() {
	suite.createReportFixtures()

	total, err := models.SumExpenses(models.DB)
	suite.Require().Nil(err)
	suite.Assert().True(decimal.RequireFromString("189.7").Equal(total), "Total is %s", total)

	total, err = models.SumExpenses(models.DB, year(2024))
	suite.Require().Nil(err)
	suite.Assert().True(decimal.RequireFromString("154.7").Equal(total), "Total is %s", total)
}

func (suite *TestSuiteStandard) TestSumExpensesEmpty() {
	total, err := models.SumExpenses(models.DB)
	suite.Require().Nil(err)
	suite.Assert().True(total.IsZero(), "Total is %s", total)
}

func (suite *TestSuiteStandard) TestMonthlyTotals() {
	suite.createReportFixtures()

	totals, err := models.MonthlyTotals(models.DB, year(2024))
	suite.Require().Nil(err)
	suite.Require().Len(totals, 2)

	suite.Assert().Equal(1, totals[0].Month)
	suite.Assert().True(decimal.RequireFromString("150.3").Equal(totals[0].Total), "Total is %s", totals[0].Total)
	suite.Assert().Equal(3, totals[1].Month)
	suite.Assert().True(decimal.RequireFromString("4.4").Equal(totals[1].Total), "Total is %s", totals[1].Total)

	totals, err = models.MonthlyTotals(models.DB, year(2022))
	suite.Require().Nil(err)
	suite.Assert().Len(totals, 0)
}

func (suite *TestSuiteStandard) TestCategoryTotals() {
	_, transport := suite.createReportFixtures()

	totals, err := models.CategoryTotals(models.DB)
	suite.Require().Nil(err)
	suite.Require().Len(totals, 2)

	suite.Assert().Equal("Alimentação", totals[0].Category)
	suite.Assert().True(decimal.RequireFromString("150.3").Equal(totals[0].Total), "Total is %s", totals[0].Total)
	suite.Assert().Equal("Transporte", totals[1].Category)
	suite.Assert().True(decimal.RequireFromString("39.4").Equal(totals[1].Total), "Total is %s", totals[1].Total)

	totals, err = models.CategoryTotals(models.DB, func(db *gorm.DB) *gorm.DB {
		return db.Where("expenses.category_id = ?", transport.ID)
	}, year(2023))
	suite.Require().Nil(err)
	suite.Require().Len(totals, 1)
	suite.Assert().True(decimal.NewFromInt(35).Equal(totals[0].Total), "Total is %s", totals[0].Total)
}

func (suite *TestSuiteStandard) TestCategoryTotalsSameName() {
	first := suite.createTestCategory(models.Category{Name: "Casa"})
	second := suite.createTestCategory(models.Category{Name: "Casa"})

	suite.createTestExpense(models.Expense{Description: "Aluguel", CategoryID: first.ID, Amount: decimal.RequireFromString("100.00"), Date: types.NewDate(2024, 2, 1)})
	suite.createTestExpense(models.Expense{Description: "Luz", CategoryID: second.ID, Amount: decimal.RequireFromString("50.00"), Date: types.NewDate(2024, 2, 10)})

	totals, err := models.CategoryTotals(models.DB, year(2024))
	suite.Require().Nil(err)
	suite.Require().Len(totals, 1, "Categories with the same name must be summed up together")
	suite.Assert().Equal("Casa", totals[0].Category)
	suite.Assert().True(decimal.NewFromInt(150).Equal(totals[0].Total), "Total is %s", totals[0].Total)
}

func (suite *TestSuiteStandard) TestListAndCountExpenses() {
	suite.createReportFixtures()

	expenses, err := models.ListExpenses(models.DB, year(2024), func(db *gorm.DB) *gorm.DB {
		return db.Order("expenses.date DESC")
	})
	suite.Require().Nil(err)
	suite.Require().Len(expenses, 3)
	suite.Assert().Equal("Ônibus", expenses[0].Description)
	suite.Assert().Equal("Transporte", expenses[0].Category.Name, "Category must be preloaded")

	count, err := models.CountExpenses(models.DB, year(2023))
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(1), count)
}

func (suite *TestSuiteStandard) TestReportsDBClosed() {
	suite.CloseDB()

	_, err := models.SumExpenses(models.DB)
	suite.Assert().ErrorIs(err, models.ErrGeneral)

	_, err = models.MonthlyTotals(models.DB)
	suite.Assert().ErrorIs(err, models.ErrGeneral)

	_, err = models.CategoryTotals(models.DB)
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
