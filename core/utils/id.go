package utils

import (
	"github.com/gosimple/slug"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

func GenerateID() string {
	id, err := gonanoid.Generate("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz", 7)
	if err != nil {
		return ""
	}
	return id
}

// BookingReference builds a human-readable reference for a booked meeting,
// e.g. "q3-budget-review-Ab3dEf1".
func BookingReference(topic string) string {
	s := slug.Make(topic)
	if s == "" {
		return GenerateID()
	}
	if len(s) > 40 {
		s = s[:40]
	}
	return s + "-" + GenerateID()
}
