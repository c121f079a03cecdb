package expenses_test

import (
	"bytes"
	"encoding/csv"
	"net/http"

	"github.com/controle-financeiro/gastos/internal/controllers/expenses"
	"github.com/controle-financeiro/gastos/internal/export"
	"github.com/controle-financeiro/gastos/test"
	"github.com/xuri/excelize/v2"
)

func (suite *TestSuiteStandard) TestExportCSV() {
	suite.createReportFixtures()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/exportar-gastos/?recorrencia=monthly", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().Equal("text/csv; charset=utf-8", recorder.Header().Get("Content-Type"))
	suite.Assert().Equal(`attachment; filename="gastos.csv"`, recorder.Header().Get("Content-Disposition"))

	rows, err := csv.NewReader(recorder.Body).ReadAll()
	suite.Require().Nil(err)

	suite.Require().Len(rows, 4, "Header, two expenses and the total")
	suite.Assert().Equal(export.Header, rows[0])
	suite.Assert().Equal([]string{"10/03/2024", "Luz", "Casa", "R$ 180,00", "monthly"}, rows[1])
	suite.Assert().Equal([]string{"01/12/2023", "Aluguel", "Casa", "R$ 1.500,00", "monthly"}, rows[2])
	suite.Assert().Equal([]string{"", "Total", "", "R$ 1.680,00", ""}, rows[3])
}

func (suite *TestSuiteStandard) TestExportAll() {
	suite.createReportFixtures()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/exportar-gastos/", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	rows, err := csv.NewReader(recorder.Body).ReadAll()
	suite.Require().Nil(err)
	suite.Require().Len(rows, 6)
	suite.Assert().Equal("R$ 1.830,30", rows[5][3])
}

func (suite *TestSuiteStandard) TestExportXLSX() {
	suite.createReportFixtures()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/exportar-gastos/?data_inicio=2024-01-01&formato=xlsx", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().Equal(`attachment; filename="gastos.xlsx"`, recorder.Header().Get("Content-Disposition"))

	f, err := excelize.OpenReader(bytes.NewReader(recorder.Body.Bytes()))
	suite.Require().Nil(err)
	defer f.Close()

	rows, err := f.GetRows("Gastos")
	suite.Require().Nil(err)
	suite.Require().Len(rows, 5)
	suite.Assert().Equal("Luz", rows[1][1])
	suite.Assert().Equal("R$ 330,30", rows[4][3])
}

func (suite *TestSuiteStandard) TestExportInvalidFilter() {
	suite.createReportFixtures()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/exportar-gastos/?recorrencia=monthly&data_fim=31/01/2024", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusSeeOther)

	location := "http://example.com/historico/?recorrencia=monthly&data_fim=31/01/2024"
	suite.Assert().Equal(location, recorder.Header().Get("Location"))

	var response expenses.MutationResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(expenses.Notification{Level: expenses.LevelWarning, Message: "Invalid filter. The export was cancelled."}, response.Notification)
	suite.Assert().Equal(location, response.Redirect)
}

func (suite *TestSuiteStandard) TestExportDBClosed() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/exportar-gastos/", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}
