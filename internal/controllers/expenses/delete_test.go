package expenses_test

import (
	"fmt"
	"net/http"

	"github.com/controle-financeiro/gastos/internal/controllers/expenses"
	"github.com/controle-financeiro/gastos/internal/models"
	"github.com/controle-financeiro/gastos/internal/types"
	"github.com/controle-financeiro/gastos/test"
)

func (suite *TestSuiteStandard) TestGetDelete() {
	category := suite.createTestCategory("Casa")
	expense := suite.createTestExpense(category.ID, "Aluguel", "1500", types.NewDate(2024, 1, 5), models.RecurrenceMonthly)

	path := fmt.Sprintf("http://example.com/apagar/%d/", expense.ID)
	recorder := test.Request(suite.T(), http.MethodGet, path+"?origem=historico&data_inicio=2024-01-01", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response expenses.DeleteResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal(expense.ID, response.Data.ID)
	suite.Assert().Equal("Aluguel", response.Data.Description)
	suite.Assert().Equal(path+"?data_inicio=2024-01-01&origem=historico", response.Links.Confirm)
	suite.Assert().Equal("http://example.com/historico/?data_inicio=2024-01-01", response.Links.Cancel)
}

func (suite *TestSuiteStandard) TestGetDeleteNotFound() {
	for _, path := range []string{"/apagar/4711/", "/apagar/abc/", "/apagar/0/"} {
		recorder := test.Request(suite.T(), http.MethodGet, "http://example.com"+path, "")
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
	}
}

func (suite *TestSuiteStandard) TestPostDelete() {
	category := suite.createTestCategory("Casa")
	expense := suite.createTestExpense(category.ID, "Aluguel", "1500", types.NewDate(2024, 1, 5), models.RecurrenceMonthly)
	other := suite.createTestExpense(category.ID, "Luz", "180", types.NewDate(2024, 1, 10), models.RecurrenceMonthly)

	recorder := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/apagar/%d/", expense.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusSeeOther)
	suite.Assert().Equal("http://example.com/", recorder.Header().Get("Location"))

	var response expenses.MutationResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(expenses.Notification{Level: expenses.LevelSuccess, Message: "Expense deleted successfully!"}, response.Notification)
	suite.Assert().Nil(response.Data)

	_, err := models.FindExpense(models.DB, expense.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	_, err = models.FindExpense(models.DB, other.ID)
	suite.Assert().Nil(err, "Other expenses must not be deleted")

	// Deleting again tells the client that the expense is gone
	recorder = test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/apagar/%d/", expense.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(expenses.Notification{Level: expenses.LevelWarning, Message: "The expense does not exist anymore."}, response.Notification)
	suite.Assert().Equal("http://example.com/", response.Redirect)
}

func (suite *TestSuiteStandard) TestPostDeleteFromHistory() {
	expense := suite.createTestExpense(0, "Aluguel", "1500", types.NewDate(2024, 1, 5), models.RecurrenceMonthly)

	recorder := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/apagar/%d/?origem=historico&recorrencia=monthly", expense.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusSeeOther)
	suite.Assert().Equal("http://example.com/historico/?recorrencia=monthly", recorder.Header().Get("Location"))
}

func (suite *TestSuiteStandard) TestPostDeleteInvalidID() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/apagar/abc/", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestPostDeleteDBClosed() {
	expense := suite.createTestExpense(0, "Aluguel", "1500", types.NewDate(2024, 1, 5), "")
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/apagar/%d/", expense.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}
