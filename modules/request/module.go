package request

import (
	"github.com/labstack/echo/v4"

	"secretary-api/modules/request/controller"
	"secretary-api/modules/request/router"
	"secretary-api/modules/request/service"
)

// Init initializes the request module and registers routes
func Init(e *echo.Echo) {
	sheets := service.NewGoogleSheetsAPI()
	svc := service.NewRequestService(sheets)
	ctrl := controller.NewRequestController(svc)
	rtr := router.NewRequestRouter(ctrl)

	rtr.Setup(e)
}
