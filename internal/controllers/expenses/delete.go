package expenses

import (
	"net/http"

	"github.com/controle-financeiro/gastos/internal/httputil"
	"github.com/controle-financeiro/gastos/internal/models"
	"github.com/gin-gonic/gin"
)

// GetDelete returns the expense to confirm its deletion
//
//	@Summary		Confirm deletion
//	@Description	Returns the expense together with the links to delete it or to cancel
//	@Tags			Expenses
//	@Produce		json
//	@Success		200		{object}	DeleteResponse
//	@Failure		404		{object}	httputil.HTTPError
//	@Failure		500		{object}	httputil.HTTPError
//	@Param			id		path		int		true	"ID of the expense"
//	@Param			origem	query		string	false	"View to return to, 'historico' for the history"
//	@Router			/apagar/{id}/ [get]
func GetDelete(c *gin.Context) {
	expense, err := findExpense(c.Param("id"))
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	data := newExpense(c, expense)
	c.JSON(http.StatusOK, DeleteResponse{
		Data: data,
		Links: DeleteLinks{
			Confirm: httputil.WithQuery(data.Links.Delete, c.Request.URL.Query()),
			Cancel:  httputil.RedirectURL(c),
		},
	})
}

// PostDelete deletes an expense
//
//	@Summary		Delete expense
//	@Description	Deletes the expense and responds with 303 See Other to the view the request came from
//	@Tags			Expenses
//	@Produce		json
//	@Success		303			{object}	MutationResponse
//	@Failure		404			{object}	MutationResponse
//	@Failure		500			{object}	httputil.HTTPError
//	@Param			id			path		int		true	"ID of the expense"
//	@Param			origem		query		string	false	"View to return to, 'historico' for the history"
//	@Param			recorrencia	query		string	false	"Recurrence filter of the history to return to"
//	@Param			data_inicio	query		string	false	"Start date filter of the history to return to"
//	@Param			data_fim	query		string	false	"End date filter of the history to return to"
//	@Router			/apagar/{id}/ [post]
func PostDelete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err == nil {
		err = models.DeleteExpense(models.DB, id)
	}

	if isNotFound(err) {
		notFound(c)
		return
	} else if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	redirect(c, MutationResponse{
		Notification: Notification{Level: LevelSuccess, Message: msgDeleted},
	})
}
