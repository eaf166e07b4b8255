package entity

import (
	"time"
)

type BookingStatus string

const (
	// BookingStatusDraft is never persisted; it names the checkout before a booking exists.
	BookingStatusDraft     BookingStatus = "draft"
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type GuestDetails struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

type Booking struct {
	ID           string        `json:"id"`
	HotelID      string        `json:"hotel_id"`
	HotelName    string        `json:"hotel_name"`
	RoomID       string        `json:"room_id"`
	RoomName     string        `json:"room_name"`
	CheckIn      time.Time     `json:"check_in"`
	CheckOut     time.Time     `json:"check_out"`
	Guests       int           `json:"guests"`
	Nights       int           `json:"nights"`
	Price        float64       `json:"price"`
	Discount     float64       `json:"discount"`
	TotalPrice   int64         `json:"total_price"`
	GuestDetails GuestDetails  `json:"guest_details"`
	Status       BookingStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
}

var allowedTransitions = map[BookingStatus]map[BookingStatus]bool{
	BookingStatusDraft:     {BookingStatusPending: true},
	BookingStatusPending:   {BookingStatusConfirmed: true, BookingStatusCancelled: true},
	BookingStatusConfirmed: {BookingStatusCancelled: true},
	BookingStatusCancelled: {BookingStatusCancelled: true},
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
// Cancelling a cancelled booking is allowed and changes nothing.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	return allowedTransitions[s][next]
}

// Live reports whether the booking still holds a reservation.
func (s BookingStatus) Live() bool {
	return s == BookingStatusPending || s == BookingStatusConfirmed
}
