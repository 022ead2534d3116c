package routes

import (
	"github.com/gin-gonic/gin"

	"bus_ledger/internal/controllers"
	"bus_ledger/internal/ledger"
)

func RemittanceRoutes(r *gin.RouterGroup, l *ledger.Ledger) {
	rem := r.Group("/remittances")
	{
		rem.GET("", controllers.ListRemittances(l))
		rem.POST("", controllers.CreateRemittance(l))
		rem.PUT("/:id", controllers.UpdateRemittance(l))
		rem.DELETE("/:id", controllers.DeleteRemittance(l))
	}
}
