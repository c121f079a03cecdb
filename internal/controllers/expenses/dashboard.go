package expenses

import (
	"net/http"

	"github.com/controle-financeiro/gastos/internal/httputil"
	"github.com/controle-financeiro/gastos/internal/models"
	"github.com/controle-financeiro/gastos/internal/query"
	"github.com/controle-financeiro/gastos/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

var monthNames = [12]string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

// today returns the current date, used as default year.
var today = types.Today

type aggregation struct {
	year     int
	total    decimal.Decimal
	monthly  []models.MonthTotal
	category []models.CategoryTotal
}

// aggregate sums up all expenses of the year matching the filter.
func aggregate(year int, filter query.ExpenseFilter) (aggregation, error) {
	scope := filter.InYear(year).Apply

	total, err := models.SumExpenses(models.DB, scope)
	if err != nil {
		return aggregation{}, err
	}

	monthly, err := models.MonthlyTotals(models.DB, scope)
	if err != nil {
		return aggregation{}, err
	}

	category, err := models.CategoryTotals(models.DB, scope)
	if err != nil {
		return aggregation{}, err
	}

	return aggregation{
		year:     year,
		total:    total,
		monthly:  monthly,
		category: category,
	}, nil
}

// GetDashboard returns the yearly summary
//
//	@Summary		Dashboard
//	@Description	Returns the total of the year and the totals per month and per category.
//	@Description	Invalid years fall back to the current year, invalid categories are ignored.
//	@Description	Both are reported as messages.
//	@Tags			Reports
//	@Produce		json
//	@Success		200			{object}	DashboardResponse
//	@Failure		500			{object}	httputil.HTTPError
//	@Param			ano			query		string	false	"Year, defaults to the current year"
//	@Param			categoria	query		string	false	"Filter by category ID"
//	@Router			/dashboard/ [get]
func GetDashboard(c *gin.Context) {
	values := c.Request.URL.Query()

	var warns []string
	year, ok := query.ParseYear(values, today())
	if !ok {
		warns = append(warns, query.WarnYear)
	}

	filter, categoryWarns, _ := query.ParseCategoryFilter(values, query.PolicyWarn)
	warns = append(warns, categoryWarns...)

	result, err := aggregate(year, filter)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	categories, err := models.Categories(models.DB)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	monthly := make([]MonthTotal, 0, len(result.monthly))
	for _, m := range result.monthly {
		monthly = append(monthly, MonthTotal{Month: m.Month, Name: monthNames[m.Month-1], Total: m.Total})
	}

	categoryTotals := make([]CategoryTotal, 0, len(result.category))
	for _, t := range result.category {
		categoryTotals = append(categoryTotals, CategoryTotal{Category: t.Category, Total: t.Total})
	}

	c.JSON(http.StatusOK, DashboardResponse{
		Year:             result.year,
		Total:            result.total,
		Monthly:          monthly,
		Categories:       categoryTotals,
		CategoryOptions:  newCategories(categories),
		SelectedCategory: c.Query(query.ParamCategory),
		Messages:         warnings(warns),
	})
}

// GetChartData returns the yearly summary for charts
//
//	@Summary		Chart data
//	@Description	Returns the totals per month and per category of a year.
//	@Description	Invalid years fall back to the current year, invalid categories are ignored silently.
//	@Tags			Reports
//	@Produce		json
//	@Success		200			{object}	ChartDataResponse
//	@Failure		500			{object}	httputil.HTTPError
//	@Param			ano			query		string	false	"Year, defaults to the current year"
//	@Param			categoria	query		string	false	"Filter by category ID"
//	@Router			/dados-graficos/ [get]
func GetChartData(c *gin.Context) {
	values := c.Request.URL.Query()

	year, _ := query.ParseYear(values, today())
	filter, _, _ := query.ParseCategoryFilter(values, query.PolicyIgnore)

	result, err := aggregate(year, filter)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	response := ChartDataResponse{
		Monthly:    make([]ChartMonth, 0, len(result.monthly)),
		Categories: make([]ChartCategory, 0, len(result.category)),
	}

	for _, m := range result.monthly {
		response.Monthly = append(response.Monthly, ChartMonth{Month: monthNames[m.Month-1], Total: m.Total.InexactFloat64()})
	}

	for _, t := range result.category {
		response.Categories = append(response.Categories, ChartCategory{Category: t.Category, Total: t.Total.InexactFloat64()})
	}

	c.JSON(http.StatusOK, response)
}
