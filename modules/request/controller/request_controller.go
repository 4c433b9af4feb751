package controller

import (
	"github.com/labstack/echo/v4"

	"secretary-api/core/controller"
	"secretary-api/core/errors"
	"secretary-api/modules/request/dto"
	"secretary-api/modules/request/entity"
	"secretary-api/modules/request/service"
)

// RequestController handles meeting-request HTTP requests
type RequestController struct {
	controller.BaseController
	RequestService service.RequestService
}

func NewRequestController(svc service.RequestService) *RequestController {
	return &RequestController{
		BaseController: controller.NewBaseController(),
		RequestService: svc,
	}
}

// Submit handles POST /requests
// @Summary Record a meeting request
// @Description Appends the request to the spreadsheet for manual follow-up
// @Tags Request
// @Accept json
// @Produce json
// @Param request body dto.SubmitRequestBody true "Meeting request"
// @Success 200 {object} dto.SubmitResponse
// @Failure 400 {object} errors.AppError
// @Router /requests [post]
func (c *RequestController) Submit(ctx echo.Context) error {
	var body dto.SubmitRequestBody
	if err := ctx.Bind(&body); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	req := &entity.MeetingRequest{
		Email:       body.Email,
		Topic:       body.Topic,
		Description: body.Description,
		Priority:    body.Priority,
	}

	result, appErr := c.RequestService.Submit(ctx.Request().Context(), req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Request recorded successfully")
}
