package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"secretary-api/core/config"
	"secretary-api/core/constants"
	"secretary-api/core/errors"
	"secretary-api/core/logger"
	"secretary-api/core/utils"
	"secretary-api/modules/calendar/dto"
	"secretary-api/modules/calendar/entity"
	reqentity "secretary-api/modules/request/entity"
	sessentity "secretary-api/modules/session/entity"
	sessrepo "secretary-api/modules/session/repository"
)

// SchedulingService orchestrates the slot search and booking flow
type SchedulingService interface {
	// Availability runs a stateless search over an explicit window.
	Availability(ctx context.Context, window entity.TimeWindow) (*dto.AvailabilityResponse, *errors.AppError)

	// CreateSession validates a meeting request and opens a booking session.
	CreateSession(ctx context.Context, req *reqentity.MeetingRequest) (*dto.SessionResponse, *errors.AppError)

	// SearchSlots fetches a fresh busy snapshot, computes candidates and
	// stores them on the session.
	SearchSlots(ctx context.Context, sessionID uuid.UUID) (*dto.SessionResponse, *errors.AppError)

	// Book submits the candidate named by the slot token. On failure the
	// session keeps its candidate list so another slot can be tried.
	Book(ctx context.Context, sessionID uuid.UUID, slotToken string) (*dto.SessionResponse, *errors.AppError)

	// GetSession returns the current session state.
	GetSession(ctx context.Context, sessionID uuid.UUID) (*dto.SessionResponse, *errors.AppError)
}

type schedulingService struct {
	api      CalendarAPI
	finder   *SlotFinder
	executor *BookingExecutor
	sessions *sessrepo.SessionRepository
}

func NewSchedulingService(api CalendarAPI, sessions *sessrepo.SessionRepository) SchedulingService {
	cfg := config.Get()
	return &schedulingService{
		api:      api,
		finder:   NewSlotFinder(),
		executor: NewBookingExecutor(api, cfg.GoogleAPI.CalendarID, cfg.Scheduling.Timezone),
		sessions: sessions,
	}
}

// policy builds the scheduling policy from configuration
func (s *schedulingService) policy() (entity.SchedulingPolicy, *errors.AppError) {
	cfg, ok := config.GetSafe()
	if !ok {
		return entity.SchedulingPolicy{}, errors.NewAppError(errors.ErrConfiguration, "config not initialized", nil)
	}

	loc, err := time.LoadLocation(cfg.Scheduling.Timezone)
	if err != nil {
		return entity.SchedulingPolicy{}, errors.NewAppError(errors.ErrConfiguration, "invalid timezone "+cfg.Scheduling.Timezone, err)
	}

	policy := entity.SchedulingPolicy{
		MeetingDuration:   time.Duration(cfg.Scheduling.MeetingMinutes) * time.Minute,
		WorkingHoursStart: cfg.Scheduling.WorkingHoursStart,
		WorkingHoursEnd:   cfg.Scheduling.WorkingHoursEnd,
		WeekendDays:       entity.WeekendSet(cfg.Scheduling.WeekendDays),
		Buffer:            time.Duration(cfg.Scheduling.BufferMinutes) * time.Minute,
		MaxSlots:          cfg.Scheduling.MaxSlots,
		Location:          loc,
	}
	if err := policy.Validate(); err != nil {
		return entity.SchedulingPolicy{}, errors.NewAppError(errors.ErrConfiguration, "invalid scheduling policy", err)
	}
	return policy, nil
}

func (s *schedulingService) search(ctx context.Context, window entity.TimeWindow) ([]entity.Candidate, entity.SchedulingPolicy, *errors.AppError) {
	policy, appErr := s.policy()
	if appErr != nil {
		return nil, entity.SchedulingPolicy{}, appErr
	}

	if err := window.Validate(); err != nil {
		return nil, policy, errors.NewAppError(errors.ErrInvalidInput, err.Error(), nil)
	}

	// Normalize everything into the policy's timezone before the finder
	// compares wall-clock hours against busy intervals.
	window = window.In(policy.Location)

	cfg := config.Get()
	busy, appErr := s.api.ListBusyIntervals(ctx, cfg.GoogleAPI.CalendarID, window.Start, window.End)
	if appErr != nil {
		return nil, policy, appErr
	}
	for i := range busy {
		busy[i].Start = busy[i].Start.In(policy.Location)
		busy[i].End = busy[i].End.In(policy.Location)
	}

	candidates := s.finder.FindAvailableSlots(window, busy, policy)
	logger.Info("SchedulingService:Search",
		"window_start", window.Start.Format(time.RFC3339),
		"window_end", window.End.Format(time.RFC3339),
		"busy_count", len(busy),
		"candidates", len(candidates),
	)
	return candidates, policy, nil
}

func (s *schedulingService) Availability(ctx context.Context, window entity.TimeWindow) (*dto.AvailabilityResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultTimeout)
	defer cancel()

	candidates, _, appErr := s.search(ctx, window)
	if appErr != nil {
		return nil, appErr
	}

	return &dto.AvailabilityResponse{
		WindowStart: window.Start,
		WindowEnd:   window.End,
		Slots:       dto.ToSlotDTOs(candidates, nil),
	}, nil
}

func (s *schedulingService) CreateSession(ctx context.Context, req *reqentity.MeetingRequest) (*dto.SessionResponse, *errors.AppError) {
	if appErr := req.Validate(); appErr != nil {
		return nil, appErr
	}

	session := sessentity.NewBookingSession(*req)
	if appErr := s.sessions.Save(ctx, session); appErr != nil {
		return nil, appErr
	}

	logger.Info("SchedulingService:CreateSession", "session_id", session.ID, "topic", req.Topic)
	return dto.ToSessionResponse(session, nil), nil
}

func (s *schedulingService) SearchSlots(ctx context.Context, sessionID uuid.UUID) (*dto.SessionResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultTimeout)
	defer cancel()

	session, appErr := s.sessions.Get(ctx, sessionID)
	if appErr != nil {
		return nil, appErr
	}

	if appErr := session.Apply(sessentity.InputSubmit); appErr != nil {
		return nil, appErr
	}

	cfg := config.Get()
	// whole-minute anchor: slot tokens carry unix seconds, so the booked
	// instant must reproduce the offered one exactly
	now := time.Now().Truncate(time.Minute)
	window := entity.TimeWindow{
		Start: now,
		End:   now.AddDate(0, 0, cfg.Scheduling.SearchHorizonDays),
	}

	candidates, policy, searchErr := s.search(ctx, window)
	if searchErr != nil {
		session.LastError = searchErr.Message
		_ = session.Apply(sessentity.InputSearchFailed)
		_ = s.sessions.Save(ctx, session)
		return nil, searchErr
	}

	session.Candidates = candidates
	if appErr := session.Apply(sessentity.InputSearchComplete); appErr != nil {
		return nil, appErr
	}
	if appErr := s.sessions.Save(ctx, session); appErr != nil {
		return nil, appErr
	}

	tokens, appErr := s.slotTokens(session, policy)
	if appErr != nil {
		return nil, appErr
	}
	return dto.ToSessionResponse(session, tokens), nil
}

func (s *schedulingService) Book(ctx context.Context, sessionID uuid.UUID, slotToken string) (*dto.SessionResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultTimeout)
	defer cancel()

	session, appErr := s.sessions.Get(ctx, sessionID)
	if appErr != nil {
		return nil, appErr
	}
	if !session.CanBook() {
		return nil, errors.NewAppError(errors.ErrInvalidTransition,
			"session is not awaiting a slot selection", nil)
	}

	cfg := config.Get()
	claims, appErr := utils.VerifySlotToken(cfg.Session.TokenSecret, slotToken)
	if appErr != nil {
		return nil, appErr
	}
	if claims.SessionID != session.ID.String() {
		return nil, errors.NewAppError(errors.ErrForbidden, "slot token belongs to another session", nil)
	}

	slotStart := time.Unix(claims.SlotStart, 0)
	if !s.holdsCandidate(session, slotStart) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "slot is not among the offered candidates", nil)
	}

	if appErr := session.Apply(sessentity.InputSlotChosen); appErr != nil {
		return nil, appErr
	}

	duration := time.Duration(claims.DurationMinutes) * time.Minute
	booked, bookErr := s.executor.Book(ctx, slotStart, duration,
		session.Request.Topic, session.Request.Description, session.Request.Email)
	if bookErr != nil {
		// Candidates stay valid; the caller may retry with another slot.
		session.LastError = bookErr.Message
		_ = session.Apply(sessentity.InputBookingFailed)
		_ = s.sessions.Save(ctx, session)
		return nil, bookErr
	}

	booked.Reference = utils.BookingReference(session.Request.Topic)
	session.Booked = booked
	session.LastError = ""
	if appErr := session.Apply(sessentity.InputBookingComplete); appErr != nil {
		return nil, appErr
	}
	if appErr := s.sessions.Save(ctx, session); appErr != nil {
		return nil, appErr
	}

	return dto.ToSessionResponse(session, nil), nil
}

func (s *schedulingService) GetSession(ctx context.Context, sessionID uuid.UUID) (*dto.SessionResponse, *errors.AppError) {
	session, appErr := s.sessions.Get(ctx, sessionID)
	if appErr != nil {
		return nil, appErr
	}

	var tokens []string
	if session.State == sessentity.StateAwaitingSelection {
		policy, appErr := s.policy()
		if appErr != nil {
			return nil, appErr
		}
		tokens, appErr = s.slotTokens(session, policy)
		if appErr != nil {
			return nil, appErr
		}
	}
	return dto.ToSessionResponse(session, tokens), nil
}

// slotTokens signs one token per candidate, valid as long as the session
func (s *schedulingService) slotTokens(session *sessentity.BookingSession, policy entity.SchedulingPolicy) ([]string, *errors.AppError) {
	cfg := config.Get()
	durationMinutes := int(policy.MeetingDuration / time.Minute)

	tokens := make([]string, 0, len(session.Candidates))
	for _, c := range session.Candidates {
		token, err := utils.SignSlotToken(cfg.Session.TokenSecret, session.ID, c.Start, durationMinutes, s.sessions.TTL())
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "failed to sign slot token", err)
		}
		tokens = append(tokens, token)
	}
	return tokens, nil
}

func (s *schedulingService) holdsCandidate(session *sessentity.BookingSession, start time.Time) bool {
	for _, c := range session.Candidates {
		if c.Start.Unix() == start.Unix() {
			return true
		}
	}
	return false
}
