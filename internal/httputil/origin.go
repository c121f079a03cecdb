package httputil

import (
	"net/url"

	"github.com/controle-financeiro/gastos/internal/models"
	"github.com/controle-financeiro/gastos/internal/query"
	"github.com/gin-gonic/gin"
)

const (
	// ParamOrigin names the view to return to after a change.
	ParamOrigin = "origem"

	// OriginHistory returns to the history view.
	OriginHistory = "historico"
)

// carried are the history filters kept when returning to the history view.
var carried = []string{query.ParamRecurrence, query.ParamFrom, query.ParamTo}

// BaseURL returns the external URL of the API without a trailing slash.
func BaseURL(c *gin.Context) string {
	return c.GetString(string(models.DBContextURL))
}

// RedirectURL returns the URL of the view the request came from.
//
// The origin is read from the query string, then from a form body. For the
// history view, the active history filters from the query string are kept.
// All other origins return to the recent expenses.
func RedirectURL(c *gin.Context) string {
	origin := c.Query(ParamOrigin)
	if origin == "" && c.ContentType() != gin.MIMEJSON {
		origin = c.PostForm(ParamOrigin)
	}

	if origin != OriginHistory {
		return BaseURL(c) + "/"
	}

	values := url.Values{}
	for _, param := range carried {
		if v := c.Query(param); v != "" {
			values.Set(param, v)
		}
	}

	return WithQuery(BaseURL(c)+"/historico/", values)
}

// WithQuery appends the values as query string to the URL.
func WithQuery(u string, values url.Values) string {
	if len(values) == 0 {
		return u
	}

	return u + "?" + values.Encode()
}
