package router

import (
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"

	"attendance-tracker/internal/handlers"
	"attendance-tracker/internal/store"
)

func Setup(r *gin.Engine, employees store.EmployeeStore, slots store.WorkSlotStore) {
	eh := handlers.NewEmployeeHandler(employees)
	ah := handlers.NewAttendanceHandler(employees, slots)

	r.POST("/employees", eh.CreateEmployee)
	r.GET("/employees", eh.ListEmployees)
	r.GET("/employees/:date", eh.ListEmployees)

	r.POST("/employees/check-in", ah.CheckIn)
	r.POST("/employees/check-out", ah.CheckOut)

	// interactive API docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
