package controller

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"secretary-api/core/controller"
	"secretary-api/core/errors"
	"secretary-api/modules/calendar/dto"
	"secretary-api/modules/calendar/entity"
	"secretary-api/modules/calendar/service"
	reqentity "secretary-api/modules/request/entity"
)

// CalendarController handles slot search and booking HTTP requests
type CalendarController struct {
	controller.BaseController
	SchedulingService service.SchedulingService
}

func NewCalendarController(svc service.SchedulingService) *CalendarController {
	return &CalendarController{
		BaseController:    controller.NewBaseController(),
		SchedulingService: svc,
	}
}

// Availability handles GET /availability
// @Summary Find open slots
// @Description Runs a stateless slot search over an explicit time window
// @Tags Scheduling
// @Produce json
// @Param start_time query string true "Window start (RFC3339)"
// @Param end_time query string true "Window end (RFC3339)"
// @Success 200 {object} dto.AvailabilityResponse
// @Failure 400 {object} errors.AppError
// @Router /availability [get]
func (c *CalendarController) Availability(ctx echo.Context) error {
	startStr := ctx.QueryParam("start_time")
	endStr := ctx.QueryParam("end_time")
	if startStr == "" || endStr == "" {
		return c.BadRequest(errors.ErrInvalidInput, "start_time and end_time are required")
	}

	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid start_time")
	}
	end, err := time.Parse(time.RFC3339, endStr)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid end_time")
	}

	result, appErr := c.SchedulingService.Availability(ctx.Request().Context(), entity.TimeWindow{Start: start, End: end})
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Slots found")
}

// CreateSession handles POST /sessions
// @Summary Open a booking session
// @Description Validates a meeting request and starts the booking flow
// @Tags Scheduling
// @Accept json
// @Produce json
// @Param request body dto.CreateSessionRequest true "Meeting request"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} errors.AppError
// @Router /sessions [post]
func (c *CalendarController) CreateSession(ctx echo.Context) error {
	var req dto.CreateSessionRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	meetingReq := &reqentity.MeetingRequest{
		Email:       req.Email,
		Topic:       req.Topic,
		Description: req.Description,
		Priority:    req.Priority,
	}

	result, appErr := c.SchedulingService.CreateSession(ctx.Request().Context(), meetingReq)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Session created")
}

// SearchSlots handles POST /sessions/:id/search
// @Summary Search slots for a session
// @Description Fetches busy intervals and computes candidate slots
// @Tags Scheduling
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} errors.AppError
// @Router /sessions/{id}/search [post]
func (c *CalendarController) SearchSlots(ctx echo.Context) error {
	sessionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid session ID")
	}

	result, appErr := c.SchedulingService.SearchSlots(ctx.Request().Context(), sessionID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Slots found")
}

// BookSlot handles POST /sessions/:id/book
// @Summary Book a selected slot
// @Description Books the candidate identified by its slot token
// @Tags Scheduling
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.BookSlotRequest true "Slot token"
// @Success 200 {object} dto.SessionResponse
// @Failure 409 {object} errors.AppError
// @Router /sessions/{id}/book [post]
func (c *CalendarController) BookSlot(ctx echo.Context) error {
	sessionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid session ID")
	}

	var req dto.BookSlotRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}
	if req.SlotToken == "" {
		return c.BadRequest(errors.ErrInvalidInput, "slot_token is required")
	}

	result, appErr := c.SchedulingService.Book(ctx.Request().Context(), sessionID, req.SlotToken)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Slot booked")
}

// GetSession handles GET /sessions/:id
// @Summary Get session state
// @Tags Scheduling
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} errors.AppError
// @Router /sessions/{id} [get]
func (c *CalendarController) GetSession(ctx echo.Context) error {
	sessionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid session ID")
	}

	result, appErr := c.SchedulingService.GetSession(ctx.Request().Context(), sessionID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}
