package calendar

import (
	"time"

	"github.com/labstack/echo/v4"

	"secretary-api/core/cache"
	"secretary-api/core/config"
	"secretary-api/modules/calendar/controller"
	"secretary-api/modules/calendar/router"
	"secretary-api/modules/calendar/service"
	sessrepo "secretary-api/modules/session/repository"
)

// Init initializes the scheduling module and registers routes
func Init(e *echo.Echo, c cache.Cache) {
	cfg := config.Get()
	sessions := sessrepo.NewSessionRepository(c, time.Duration(cfg.Session.TTLMinutes)*time.Minute)

	api := service.NewGoogleCalendarAPI()
	svc := service.NewSchedulingService(api, sessions)
	ctrl := controller.NewCalendarController(svc)
	rtr := router.NewCalendarRouter(ctrl)

	rtr.Setup(e)
}
