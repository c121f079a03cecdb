package expenses

import (
	"net/http"
	"strconv"

	"github.com/controle-financeiro/gastos/internal/httputil"
	"github.com/controle-financeiro/gastos/internal/models"
	"github.com/controle-financeiro/gastos/internal/query"
	"github.com/gin-gonic/gin"
)

// GetHistory returns one page of all expenses matching the filter
//
//	@Summary		History
//	@Description	Returns the expenses matching the filter, newest first, in pages of 12.
//	@Description	The total is the sum of all matching expenses on all pages.
//	@Description	Invalid filters are ignored and reported as messages.
//	@Tags			Expenses
//	@Produce		json
//	@Success		200			{object}	HistoryResponse
//	@Failure		500			{object}	httputil.HTTPError
//	@Param			categoria	query		string	false	"Filter by category ID"
//	@Param			recorrencia	query		string	false	"Filter by recurrence"	Enums(none, weekly, monthly, yearly)
//	@Param			data_inicio	query		string	false	"Only expenses on or after this date (YYYY-MM-DD)"
//	@Param			data_fim	query		string	false	"Only expenses on or before this date (YYYY-MM-DD)"
//	@Param			page		query		string	false	"Page number, starting at 1"
//	@Router			/historico/ [get]
func GetHistory(c *gin.Context) {
	filter, warns, _ := query.ParseExpenseFilter(c.Request.URL.Query(), query.PolicyWarn)

	count, err := models.CountExpenses(models.DB, filter.Apply)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	total, err := models.SumExpenses(models.DB, filter.Apply)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	page := query.Paginate(c.Query(query.ParamPage), count)

	expenses, err := models.ListExpenses(models.DB, filter.Apply, query.Newest, page.Scope)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	categories, err := models.Categories(models.DB)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, HistoryResponse{
		Expenses:   newExpenses(c, expenses),
		Total:      total,
		Pagination: page,
		Filter: HistoryFilter{
			Category:   c.Query(query.ParamCategory),
			Recurrence: c.Query(query.ParamRecurrence),
			From:       c.Query(query.ParamFrom),
			To:         c.Query(query.ParamTo),
		},
		Recurrences: recurrenceOptions(),
		Categories:  newCategories(categories),
		Messages:    warnings(warns),
		Links:       historyLinks(c, filter, page),
	})
}

func historyLinks(c *gin.Context, filter query.ExpenseFilter, page query.Page) HistoryLinks {
	url := httputil.BaseURL(c)

	links := HistoryLinks{
		Export: httputil.WithQuery(url+"/exportar-gastos/", filter.Values()),
	}

	pageURL := func(number int) string {
		values := filter.Values()
		values.Set(query.ParamPage, strconv.Itoa(number))
		return httputil.WithQuery(url+"/historico/", values)
	}

	if page.HasPrevious {
		links.Previous = pageURL(page.Number - 1)
	}

	if page.HasNext {
		links.Next = pageURL(page.Number + 1)
	}

	return links
}
