package expenses_test

import (
	"fmt"
	"net/http"

	"github.com/controle-financeiro/gastos/internal/controllers/expenses"
	"github.com/controle-financeiro/gastos/internal/models"
	"github.com/controle-financeiro/gastos/internal/query"
	"github.com/controle-financeiro/gastos/internal/types"
	"github.com/controle-financeiro/gastos/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestHistoryDateRange() {
	suite.createReportFixtures()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/historico/?data_inicio=2024-01-01&data_fim=2024-01-31", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response expenses.HistoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Expenses, 2)
	suite.Assert().Equal("Padaria", response.Expenses[0].Description)
	suite.Assert().Equal("Mercado", response.Expenses[1].Description)
	suite.Assert().True(decimal.RequireFromString("150.3").Equal(response.Total), "Total is %s", response.Total)
	suite.Assert().Equal(expenses.HistoryFilter{From: "2024-01-01", To: "2024-01-31"}, response.Filter)
	suite.Assert().Equal("http://example.com/exportar-gastos/?data_fim=2024-01-31&data_inicio=2024-01-01", response.Links.Export)
	suite.Assert().Len(response.Messages, 0)
	suite.Assert().Len(response.Recurrences, 4)
	suite.Assert().Len(response.Categories, 2)
}

func (suite *TestSuiteStandard) TestHistoryRecurrence() {
	suite.createReportFixtures()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/historico/?recorrencia=monthly", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response expenses.HistoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Expenses, 2)
	suite.Assert().Equal("Luz", response.Expenses[0].Description)
	suite.Assert().Equal("Aluguel", response.Expenses[1].Description)
	suite.Assert().True(decimal.NewFromInt(1680).Equal(response.Total))
}

func (suite *TestSuiteStandard) TestHistoryInvalidFilters() {
	suite.createReportFixtures()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/historico/?recorrencia=daily&data_inicio=2024-13-01&data_fim=2024-03-31", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response expenses.HistoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Len(response.Expenses, 4, "Invalid filters must be ignored, valid ones applied")
	suite.Assert().Equal([]expenses.Notification{
		{Level: expenses.LevelWarning, Message: "Invalid recurrence."},
		{Level: expenses.LevelWarning, Message: "Invalid start date."},
	}, response.Messages)
	suite.Assert().Equal("daily", response.Filter.Recurrence, "Submitted values must be returned")
}

func (suite *TestSuiteStandard) TestHistoryPagination() {
	category := suite.createTestCategory("Alimentação")

	// 30 expenses of 1.00 on 30 different days
	for day := 1; day <= 30; day++ {
		suite.createTestExpense(category.ID, fmt.Sprintf("Mercado %02d", day), "1", types.NewDate(2024, 4, day), "")
	}

	tests := []struct {
		page        string
		number      int
		first       string
		count       int
		hasPrevious bool
		hasNext     bool
	}{
		{"", 1, "Mercado 30", 12, false, true},
		{"1", 1, "Mercado 30", 12, false, true},
		{"2", 2, "Mercado 18", 12, true, true},
		{"3", 3, "Mercado 06", 6, true, false},
		{"0", 1, "Mercado 30", 12, false, true},
		{"-4", 1, "Mercado 30", 12, false, true},
		{"abc", 1, "Mercado 30", 12, false, true},
		{"99", 3, "Mercado 06", 6, true, false},
	}

	for _, tt := range tests {
		suite.Run(fmt.Sprintf("page=%s", tt.page), func() {
			recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/historico/?page="+tt.page, "")
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

			var response expenses.HistoryResponse
			test.DecodeResponse(suite.T(), &recorder, &response)

			suite.Assert().Equal(query.Page{
				Number:      tt.number,
				Pages:       3,
				Count:       30,
				HasPrevious: tt.hasPrevious,
				HasNext:     tt.hasNext,
			}, response.Pagination)

			suite.Require().Len(response.Expenses, tt.count)
			suite.Assert().Equal(tt.first, response.Expenses[0].Description)
			suite.Assert().True(decimal.NewFromInt(30).Equal(response.Total), "The total must include all pages")
		})
	}
}

func (suite *TestSuiteStandard) TestHistoryPaginationLinks() {
	category := suite.createTestCategory("Alimentação")
	for day := 1; day <= 13; day++ {
		suite.createTestExpense(category.ID, "Mercado", "1", types.NewDate(2024, 4, day), models.RecurrenceWeekly)
	}

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/historico/?recorrencia=weekly", "")
	var response expenses.HistoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal("", response.Links.Previous)
	suite.Assert().Equal("http://example.com/historico/?page=2&recorrencia=weekly", response.Links.Next)

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/historico/?recorrencia=weekly&page=2", "")
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal("http://example.com/historico/?page=1&recorrencia=weekly", response.Links.Previous)
	suite.Assert().Equal("", response.Links.Next)
	suite.Assert().Len(response.Expenses, 1)
}

func (suite *TestSuiteStandard) TestHistoryEmpty() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/historico/", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response expenses.HistoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Len(response.Expenses, 0)
	suite.Assert().True(response.Total.IsZero())
	suite.Assert().Equal(query.Page{Number: 1, Pages: 1}, response.Pagination)
}

func (suite *TestSuiteStandard) TestHistoryDBClosed() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/historico/", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}
