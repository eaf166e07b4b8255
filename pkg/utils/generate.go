package utils

import (
	"github.com/google/uuid"
)

// GenerateBookingID returns a unique, time-ordered booking id.
func GenerateBookingID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// v7 only fails when the random source does
		id = uuid.New()
	}
	return "booking-" + id.String()
}

func GenerateUserID() string {
	return uuid.New().String()
}
