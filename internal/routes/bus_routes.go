package routes

import (
	"github.com/gin-gonic/gin"

	"bus_ledger/internal/controllers"
	"bus_ledger/internal/ledger"
)

func BusRoutes(r *gin.RouterGroup, l *ledger.Ledger) {
	bus := r.Group("/buses")
	{
		bus.GET("", controllers.ListBuses(l))
		bus.POST("", controllers.CreateBus(l))
		bus.GET("/types", controllers.ListBusTypes(l))
		bus.GET("/available", controllers.ListAvailableBuses(l))
		bus.PUT("/:id", controllers.UpdateBus(l))
		bus.DELETE("/:id", controllers.DeleteBus(l))
	}
}
