package routes

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Tharushi-Umesha/school-management-system/handlers"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, db *gorm.DB) {
	auth := handlers.NewAuthHandler(db)
	std := handlers.NewStudentHandler(db)
	tch := handlers.NewTeacherHandler(db)
	evt := handlers.NewEventHandler(db)
	att := handlers.NewAttendanceHandler(db)

	e.GET("/health", handlers.Health(db))

	e.POST("/login", auth.Login)

	e.GET("/students", std.List)
	e.POST("/students", std.Create)
	e.GET("/students/count", std.Count)
	e.PUT("/students/:id", std.Update)
	e.DELETE("/students/:id", std.Delete)

	e.GET("/teachers", tch.List)
	e.POST("/teachers", tch.Create)
	e.GET("/teachers/count", tch.Count)
	e.PUT("/teachers/:id", tch.Update)
	e.DELETE("/teachers/:id", tch.Delete)

	// Events are create/delete only — no update endpoint.
	e.GET("/events", evt.List)
	e.POST("/events", evt.Create)
	e.GET("/events/count", evt.Count)
	e.DELETE("/events/:id", evt.Delete)

	e.POST("/attendance", att.Mark)
	e.GET("/attendance/rate", att.Rate)
	e.GET("/attendance/today", att.Today)
}
