package httputil

import (
	"errors"
	"net/http"

	"github.com/controle-financeiro/gastos/internal/forms"
	"github.com/controle-financeiro/gastos/internal/models"
	"github.com/controle-financeiro/gastos/internal/query"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// HTTPError is used for error responses that contain a body.
type HTTPError struct {
	Error string `json:"error" example:"there is no expense matching your query"`
}

// Status returns the HTTP status code for an error.
func Status(err error) int {
	var formErrors forms.Errors

	switch {
	case errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.As(err, &formErrors),
		errors.Is(err, forms.ErrInvalidBody),
		errors.Is(err, query.ErrBadFilterInput),
		errors.Is(err, models.ErrCategoryDoesNotExist),
		errors.Is(err, models.ErrExpenseAmountNotPositive),
		errors.Is(err, models.ErrRecurrenceInvalid):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

// ErrorHandler writes the error with the matching status code.
//
// Errors that are not caused by the request are logged together with
// the request ID.
func ErrorHandler(c *gin.Context, err error) {
	status := Status(err)
	if status == http.StatusInternalServerError {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	}

	NewError(c, status, err)
}

// NewError writes the error as JSON with the status code.
func NewError(c *gin.Context, status int, err error) {
	c.JSON(status, HTTPError{
		Error: err.Error(),
	})
}
