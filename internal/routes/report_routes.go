package routes

import (
	"github.com/gin-gonic/gin"

	"bus_ledger/internal/controllers"
	"bus_ledger/internal/ledger"
)

func ReportRoutes(r *gin.RouterGroup, l *ledger.Ledger, now controllers.Clock) {
	rep := r.Group("/reports")
	{
		rep.GET("/dashboard", controllers.Dashboard(l, now))
		rep.GET("/bilan", controllers.Bilan(l, now))
		rep.GET("/bilan/print", controllers.PrintBilan(l, now))
		rep.GET("/rapport", controllers.Rapport(l, now))
		rep.GET("/benefice", controllers.Benefice(l, now))
		rep.GET("/driver", controllers.DriverReport(l, now))
		rep.GET("/advice", controllers.Advice(l, now))
		rep.GET("/series", controllers.Series(l))
	}
}
