package expenses_test

import (
	"net/http"
	"strconv"

	"github.com/controle-financeiro/gastos/internal/controllers/expenses"
	"github.com/controle-financeiro/gastos/internal/models"
	"github.com/controle-financeiro/gastos/internal/types"
	"github.com/controle-financeiro/gastos/test"
	"github.com/shopspring/decimal"
)

// createReportFixtures creates expenses in 2023 and 2024 and returns the categories.
func (suite *TestSuiteStandard) createReportFixtures() (food, home models.Category) {
	food = suite.createTestCategory("Alimentação")
	home = suite.createTestCategory("Casa")

	suite.createTestExpense(food.ID, "Mercado", "100.10", types.NewDate(2024, 1, 5), "")
	suite.createTestExpense(food.ID, "Padaria", "50.20", types.NewDate(2024, 1, 20), "")
	suite.createTestExpense(home.ID, "Luz", "180.00", types.NewDate(2024, 3, 10), models.RecurrenceMonthly)
	suite.createTestExpense(home.ID, "Aluguel", "1500", types.NewDate(2023, 12, 1), models.RecurrenceMonthly)

	return food, home
}

func (suite *TestSuiteStandard) TestDashboard() {
	suite.createReportFixtures()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/dashboard/?ano=2024", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response expenses.DashboardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal(2024, response.Year)
	suite.Assert().True(decimal.RequireFromString("330.3").Equal(response.Total), "Total is %s", response.Total)
	suite.Assert().Len(response.Messages, 0)
	suite.Assert().Len(response.CategoryOptions, 2)

	suite.Require().Len(response.Monthly, 2)
	suite.Assert().Equal(1, response.Monthly[0].Month)
	suite.Assert().Equal("Jan", response.Monthly[0].Name)
	suite.Assert().True(decimal.RequireFromString("150.3").Equal(response.Monthly[0].Total))
	suite.Assert().Equal("Mar", response.Monthly[1].Name)

	suite.Require().Len(response.Categories, 2)
	suite.Assert().Equal("Alimentação", response.Categories[0].Category)
	suite.Assert().True(decimal.RequireFromString("150.3").Equal(response.Categories[0].Total))
	suite.Assert().Equal("Casa", response.Categories[1].Category)
	suite.Assert().True(decimal.RequireFromString("180").Equal(response.Categories[1].Total))
}

func (suite *TestSuiteStandard) TestDashboardCategory() {
	_, home := suite.createReportFixtures()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/dashboard/?ano=2024&categoria="+strconv.Itoa(int(home.ID)), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response expenses.DashboardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().True(decimal.NewFromInt(180).Equal(response.Total))
	suite.Require().Len(response.Categories, 1)
	suite.Assert().Equal("Casa", response.Categories[0].Category)
	suite.Assert().Equal(strconv.Itoa(int(home.ID)), response.SelectedCategory)
}

func (suite *TestSuiteStandard) TestDashboardEmptyYear() {
	suite.createReportFixtures()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/dashboard/?ano=2022", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response expenses.DashboardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal(2022, response.Year)
	suite.Assert().True(response.Total.IsZero())
	suite.Assert().NotNil(response.Monthly)
	suite.Assert().Len(response.Monthly, 0)
	suite.Assert().NotNil(response.Categories)
	suite.Assert().Len(response.Categories, 0)
}

func (suite *TestSuiteStandard) TestDashboardInvalidFilters() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/dashboard/?ano=abc&categoria=xyz", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response expenses.DashboardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal(types.Today().Year(), response.Year, "Invalid years fall back to the current year")
	suite.Assert().Equal([]expenses.Notification{
		{Level: expenses.LevelWarning, Message: "Invalid year. Using the current year."},
		{Level: expenses.LevelWarning, Message: "Invalid category."},
	}, response.Messages)
}

func (suite *TestSuiteStandard) TestDashboardDBClosed() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/dashboard/", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestChartData() {
	suite.createReportFixtures()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/dados-graficos/?ano=2024", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response expenses.ChartDataResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal([]expenses.ChartMonth{
		{Month: "Jan", Total: 150.3},
		{Month: "Mar", Total: 180},
	}, response.Monthly)
	suite.Assert().Equal([]expenses.ChartCategory{
		{Category: "Alimentação", Total: 150.3},
		{Category: "Casa", Total: 180},
	}, response.Categories)
}

func (suite *TestSuiteStandard) TestChartDataSameCategoryName() {
	first := suite.createTestCategory("Casa")
	second := suite.createTestCategory("Casa")

	suite.createTestExpense(first.ID, "Aluguel", "100.00", types.NewDate(2024, 2, 1), "")
	suite.createTestExpense(second.ID, "Luz", "50.00", types.NewDate(2024, 2, 10), "")

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/dados-graficos/?ano=2024", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response expenses.ChartDataResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal([]expenses.ChartCategory{
		{Category: "Casa", Total: 150},
	}, response.Categories)
}

func (suite *TestSuiteStandard) TestChartDataInvalidFilters() {
	suite.createReportFixtures()

	// The year falls back to the current year, which has no expenses
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/dados-graficos/?ano=abc&categoria=xyz", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().JSONEq(`{"mensal": [], "categoria": []}`, recorder.Body.String())

	// Invalid categories are ignored
	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/dados-graficos/?ano=2023&categoria=xyz", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().JSONEq(`{"mensal": [{"mes": "Dez", "total": 1500}], "categoria": [{"categoria": "Casa", "total": 1500}]}`, recorder.Body.String())
}
