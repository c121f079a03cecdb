// Package expenses implements the views for recording, listing, aggregating
// and exporting expenses.
package expenses

import (
	"github.com/controle-financeiro/gastos/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all expense views on the router group.
func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/", httputil.OptionsGetPost)
	r.GET("/", GetIndex)
	r.POST("/", CreateOrUpdateExpense)

	r.OPTIONS("/apagar/:id/", httputil.OptionsGetPost)
	r.GET("/apagar/:id/", GetDelete)
	r.POST("/apagar/:id/", PostDelete)

	r.OPTIONS("/dashboard/", httputil.OptionsGet)
	r.GET("/dashboard/", GetDashboard)

	r.OPTIONS("/dados-graficos/", httputil.OptionsGet)
	r.GET("/dados-graficos/", GetChartData)

	r.OPTIONS("/historico/", httputil.OptionsGet)
	r.GET("/historico/", GetHistory)

	r.OPTIONS("/exportar-gastos/", httputil.OptionsGet)
	r.GET("/exportar-gastos/", GetExport)
}
