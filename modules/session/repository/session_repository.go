package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"secretary-api/core/cache"
	"secretary-api/core/errors"
	"secretary-api/core/logger"
	"secretary-api/modules/session/entity"
)

const keyPrefix = "booking_session:"

// SessionRepository persists booking sessions as JSON values with a TTL
type SessionRepository struct {
	cache cache.Cache
	ttl   time.Duration
}

func NewSessionRepository(c cache.Cache, ttl time.Duration) *SessionRepository {
	return &SessionRepository{cache: c, ttl: ttl}
}

func (r *SessionRepository) Save(ctx context.Context, session *entity.BookingSession) *errors.AppError {
	data, err := json.Marshal(session)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to encode session", err)
	}

	if err := r.cache.Set(ctx, keyPrefix+session.ID.String(), string(data), r.ttl); err != nil {
		logger.Error("SessionRepository:Save:Error", "error", err, "session_id", session.ID)
		return errors.NewAppError(errors.ErrInternalServer, "failed to store session", err)
	}
	return nil
}

func (r *SessionRepository) Get(ctx context.Context, id uuid.UUID) (*entity.BookingSession, *errors.AppError) {
	data, err := r.cache.Get(ctx, keyPrefix+id.String())
	if err != nil {
		if err == cache.ErrCacheMiss {
			return nil, errors.NewAppError(errors.ErrNotFound, "session not found or expired", nil)
		}
		logger.Error("SessionRepository:Get:Error", "error", err, "session_id", id)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load session", err)
	}

	var session entity.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to decode session", err)
	}
	return &session, nil
}

func (r *SessionRepository) Delete(ctx context.Context, id uuid.UUID) *errors.AppError {
	if err := r.cache.Delete(ctx, keyPrefix+id.String()); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to delete session", err)
	}
	return nil
}

// TTL exposes the configured session lifetime (slot tokens share it)
func (r *SessionRepository) TTL() time.Duration {
	return r.ttl
}
