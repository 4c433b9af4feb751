package router

import (
	"github.com/labstack/echo/v4"

	"secretary-api/modules/calendar/controller"
)

// CalendarRouter handles scheduling routes
type CalendarRouter struct {
	CalendarController *controller.CalendarController
}

func NewCalendarRouter(calendarController *controller.CalendarController) *CalendarRouter {
	return &CalendarRouter{
		CalendarController: calendarController,
	}
}

// Setup registers scheduling routes
func (r *CalendarRouter) Setup(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.GET("/availability", r.CalendarController.Availability)

	sessions := v1.Group("/sessions")
	sessions.POST("", r.CalendarController.CreateSession)
	sessions.GET("/:id", r.CalendarController.GetSession)
	sessions.POST("/:id/search", r.CalendarController.SearchSlots)
	sessions.POST("/:id/book", r.CalendarController.BookSlot)
}
