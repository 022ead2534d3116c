package routes

import (
	"github.com/gin-gonic/gin"

	"bus_ledger/internal/controllers"
	"bus_ledger/internal/ledger"
)

func EmployeeRoutes(r *gin.RouterGroup, l *ledger.Ledger) {
	emp := r.Group("/employees")
	{
		emp.GET("", controllers.ListEmployees(l))
		emp.POST("", controllers.CreateEmployee(l))
		emp.PUT("/:id", controllers.UpdateEmployee(l))
		emp.DELETE("/:id", controllers.DeleteEmployee(l))
	}
}
