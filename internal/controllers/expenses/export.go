package expenses

import (
	"bytes"
	"net/http"

	"github.com/controle-financeiro/gastos/internal/export"
	"github.com/controle-financeiro/gastos/internal/httputil"
	"github.com/controle-financeiro/gastos/internal/models"
	"github.com/controle-financeiro/gastos/internal/query"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	mimeCSV  = "text/csv; charset=utf-8"
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// GetExport exports all expenses matching the filter
//
//	@Summary		Export
//	@Description	Returns all expenses matching the filter as CSV file, or as Excel workbook
//	@Description	if "formato" is "xlsx". The last row contains the total.
//	@Description	If any filter is invalid, nothing is exported and the response redirects
//	@Description	to the history with the same filters.
//	@Tags			Expenses
//	@Produce		text/csv
//	@Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Success		200			{file}		file
//	@Failure		303			{object}	MutationResponse
//	@Failure		500			{object}	httputil.HTTPError
//	@Param			categoria	query		string	false	"Filter by category ID"
//	@Param			recorrencia	query		string	false	"Filter by recurrence"	Enums(none, weekly, monthly, yearly)
//	@Param			data_inicio	query		string	false	"Only expenses on or after this date (YYYY-MM-DD)"
//	@Param			data_fim	query		string	false	"Only expenses on or before this date (YYYY-MM-DD)"
//	@Param			formato		query		string	false	"File format"	Enums(csv, xlsx)
//	@Router			/exportar-gastos/ [get]
func GetExport(c *gin.Context) {
	filter, _, err := query.ParseExpenseFilter(c.Request.URL.Query(), query.PolicyAbort)
	if err != nil {
		log.Debug().Err(err).Msg("Export cancelled")

		location := httputil.BaseURL(c) + "/historico/"
		if c.Request.URL.RawQuery != "" {
			location += "?" + c.Request.URL.RawQuery
		}

		c.Header("Location", location)
		c.JSON(http.StatusSeeOther, MutationResponse{
			Notification: Notification{Level: LevelWarning, Message: msgExportCancelled},
			Redirect:     location,
		})
		return
	}

	expenses, err := models.ListExpenses(models.DB, filter.Apply, query.Newest)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	write, filename, contentType := export.WriteCSV, "gastos.csv", mimeCSV
	if c.Query("formato") == "xlsx" {
		write, filename, contentType = export.WriteXLSX, "gastos.xlsx", mimeXLSX
	}

	var buf bytes.Buffer
	err = write(&buf, expenses)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
