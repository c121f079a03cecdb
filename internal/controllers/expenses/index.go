package expenses

import (
	"errors"
	"net/http"

	"github.com/controle-financeiro/gastos/internal/forms"
	"github.com/controle-financeiro/gastos/internal/httputil"
	"github.com/controle-financeiro/gastos/internal/models"
	"github.com/controle-financeiro/gastos/internal/query"
	"github.com/gin-gonic/gin"
)

// RecentCount is the number of expenses on the index view.
const RecentCount = 5

// newIndexResponse builds the index view. edit is the expense loaded for
// editing and may be nil.
func newIndexResponse(c *gin.Context, form forms.ExpenseForm, edit *models.Expense) (IndexResponse, error) {
	filter, warns, _ := query.ParseCategoryFilter(c.Request.URL.Query(), query.PolicyWarn)

	recent, err := models.ListExpenses(models.DB, filter.Apply, query.Newest, query.Limit(RecentCount))
	if err != nil {
		return IndexResponse{}, err
	}

	categories, err := models.Categories(models.DB)
	if err != nil {
		return IndexResponse{}, err
	}

	response := IndexResponse{
		Expenses:         newExpenses(c, recent),
		Categories:       newCategories(categories),
		SelectedCategory: c.Query(query.ParamCategory),
		Recurrences:      recurrenceOptions(),
		Form:             form,
		Messages:         warnings(warns),
	}

	if edit != nil {
		e := newExpense(c, *edit)
		response.Edit = &e
	}

	return response, nil
}

// GetIndex returns the most recent expenses
//
//	@Summary		Recent expenses
//	@Description	Returns the most recent expenses and everything needed to add a new one.
//	@Description	If "editar" is set, the form is pre-filled with that expense.
//	@Tags			Expenses
//	@Produce		json
//	@Success		200			{object}	IndexResponse
//	@Failure		404			{object}	httputil.HTTPError
//	@Failure		500			{object}	httputil.HTTPError
//	@Param			categoria	query		string	false	"Filter by category ID"
//	@Param			editar		query		string	false	"ID of the expense to edit"
//	@Router			/ [get]
func GetIndex(c *gin.Context) {
	var edit *models.Expense

	form := forms.ExpenseForm{}
	if id := c.Query("editar"); id != "" {
		expense, err := findExpense(id)
		if err != nil {
			httputil.ErrorHandler(c, err)
			return
		}

		edit = &expense
		form = forms.FromExpense(expense)
		form.EditID = &id
	}

	response, err := newIndexResponse(c, form, edit)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// CreateOrUpdateExpense creates an expense or, if "edit_gasto_id" is submitted, updates one
//
//	@Summary		Create or update expense
//	@Description	Validates the submitted expense and stores it. On success, responds with
//	@Description	303 See Other to the view the request came from. If the data is invalid,
//	@Description	the index view is returned with the errors for each field.
//	@Tags			Expenses
//	@Accept			x-www-form-urlencoded
//	@Accept			json
//	@Produce		json
//	@Success		303			{object}	MutationResponse
//	@Failure		400			{object}	IndexResponse
//	@Failure		404			{object}	MutationResponse
//	@Failure		500			{object}	httputil.HTTPError
//	@Param			expense		body		forms.ExpenseForm	true	"Expense"
//	@Param			origem		query		string				false	"View to return to, 'historico' for the history"
//	@Param			recorrencia	query		string				false	"Recurrence filter of the history to return to"
//	@Param			data_inicio	query		string				false	"Start date filter of the history to return to"
//	@Param			data_fim	query		string				false	"End date filter of the history to return to"
//	@Router			/ [post]
func CreateOrUpdateExpense(c *gin.Context) {
	form, err := forms.Bind(c)

	var errs forms.Errors
	if err != nil && !errors.As(err, &errs) {
		httputil.ErrorHandler(c, err)
		return
	}

	var existing *models.Expense
	if form.IsEdit() {
		expense, err := findExpense(*form.EditID)
		if isNotFound(err) {
			notFound(c)
			return
		} else if err != nil {
			httputil.ErrorHandler(c, err)
			return
		}
		existing = &expense
	}

	expense, err := form.Validate(models.DB, errs)
	if errors.As(err, &errs) {
		invalidForm(c, form, errs, existing)
		return
	} else if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	message := msgAdded
	if form.IsEdit() {
		message = msgUpdated
		err = existing.Update(models.DB, expense)
		expense = *existing
	} else {
		err = expense.Create(models.DB)
	}

	if isNotFound(err) {
		notFound(c)
		return
	} else if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	data := newExpense(c, expense)
	redirect(c, MutationResponse{
		Data:         &data,
		Notification: Notification{Level: LevelSuccess, Message: message},
	})
}

// invalidForm returns the index view with the submitted values and their errors.
func invalidForm(c *gin.Context, form forms.ExpenseForm, errs forms.Errors, edit *models.Expense) {
	message := msgAddFailed
	if edit != nil {
		message = msgEditFailed
	}

	response, err := newIndexResponse(c, form, edit)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	response.Errors = errs
	response.Messages = append(response.Messages, Notification{Level: LevelError, Message: message})

	c.JSON(http.StatusBadRequest, response)
}

// redirect sends the client back to the view it came from.
func redirect(c *gin.Context, response MutationResponse) {
	response.Redirect = httputil.RedirectURL(c)

	c.Header("Location", response.Redirect)
	c.JSON(http.StatusSeeOther, response)
}

// notFound tells the client that the expense does not exist and where to continue.
func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, MutationResponse{
		Notification: Notification{Level: LevelWarning, Message: msgNotFound},
		Redirect:     httputil.RedirectURL(c),
	})
}
