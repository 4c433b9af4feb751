package router

import (
	"github.com/labstack/echo/v4"

	"secretary-api/modules/request/controller"
)

// RequestRouter handles meeting-request routes
type RequestRouter struct {
	RequestController *controller.RequestController
}

func NewRequestRouter(requestController *controller.RequestController) *RequestRouter {
	return &RequestRouter{
		RequestController: requestController,
	}
}

// Setup registers request routes
func (r *RequestRouter) Setup(e *echo.Echo) {
	v1 := e.Group("/api/v1")
	v1.POST("/requests", r.RequestController.Submit)
}
