package utils

import (
	stderrors "errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"secretary-api/core/errors"
)

// SlotClaims binds a presented candidate slot to its session so the booking
// endpoint only accepts slots the search actually produced.
type SlotClaims struct {
	SessionID       string `json:"sid"`
	SlotStart       int64  `json:"slot_start"` // unix seconds
	DurationMinutes int    `json:"duration_minutes"`
	jwt.RegisteredClaims
}

// SignSlotToken issues an HS256 token for a candidate slot.
func SignSlotToken(secret string, sessionID uuid.UUID, slotStart time.Time, durationMinutes int, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &SlotClaims{
		SessionID:       sessionID.String(),
		SlotStart:       slotStart.Unix(),
		DurationMinutes: durationMinutes,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Subject:   "slot",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifySlotToken parses and validates a slot token.
func VerifySlotToken(secret string, tokenStr string) (*SlotClaims, *errors.AppError) {
	claims := &SlotClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		if stderrors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.NewAppError(errors.ErrTokenExpired, "slot token expired", err)
		}
		return nil, errors.NewAppError(errors.ErrInvalidTokenFormat, "invalid slot token", err)
	}
	if !token.Valid {
		return nil, errors.NewAppError(errors.ErrInvalidTokenFormat, "invalid slot token", nil)
	}
	return claims, nil
}
