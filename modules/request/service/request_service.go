package service

import (
	"context"
	"time"

	"secretary-api/core/config"
	"secretary-api/core/constants"
	"secretary-api/core/errors"
	"secretary-api/core/logger"
	"secretary-api/modules/request/dto"
	"secretary-api/modules/request/entity"
)

// RequestService records meeting requests to the spreadsheet for manual
// follow-up; the alternate flow that does not book a calendar slot.
type RequestService interface {
	Submit(ctx context.Context, req *entity.MeetingRequest) (*dto.SubmitResponse, *errors.AppError)
}

type requestService struct {
	sheets SheetsAPI
}

func NewRequestService(sheets SheetsAPI) RequestService {
	return &requestService{sheets: sheets}
}

// Submit validates the request and appends it as a row:
// [timestamp, email, topic, description, priority], timestamp in the
// configured timezone.
func (s *requestService) Submit(ctx context.Context, req *entity.MeetingRequest) (*dto.SubmitResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultTimeout)
	defer cancel()

	if appErr := req.Validate(); appErr != nil {
		return nil, appErr
	}

	cfg, ok := config.GetSafe()
	if !ok {
		return nil, errors.NewAppError(errors.ErrConfiguration, "config not initialized", nil)
	}
	if cfg.GoogleAPI.SpreadsheetID == "" {
		return nil, errors.NewAppError(errors.ErrConfiguration, "spreadsheet ID not configured", nil)
	}

	loc, err := time.LoadLocation(cfg.Scheduling.Timezone)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrConfiguration, "invalid timezone "+cfg.Scheduling.Timezone, err)
	}

	submittedAt := time.Now().In(loc)
	row := []any{
		submittedAt.Format(constants.SheetTimestampLayout),
		req.Email,
		req.Topic,
		req.Description,
		req.Priority,
	}

	if appErr := s.sheets.AppendRow(ctx, cfg.GoogleAPI.SpreadsheetID, cfg.GoogleAPI.SheetName, row); appErr != nil {
		logger.Error("RequestService:Submit:AppendRow:Error", "error", appErr, "topic", req.Topic)
		return nil, appErr
	}

	logger.Info("RequestService:Submit:Success", "email", req.Email, "topic", req.Topic, "priority", req.Priority)
	return &dto.SubmitResponse{
		SubmittedAt: submittedAt,
		Message:     "Request recorded. You will receive a separate email to coordinate a time if a meeting is required.",
	}, nil
}
