package request

type GuestDetailsRequest struct {
	FirstName       string `json:"first_name" validate:"required"`
	LastName        string `json:"last_name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

// CreateBookingRequest falls back to the current search for any stay field
// left empty.
type CreateBookingRequest struct {
	HotelID      string              `json:"hotel_id" validate:"required"`
	RoomID       string              `json:"room_id" validate:"required"`
	CheckIn      string              `json:"check_in,omitempty"`
	CheckOut     string              `json:"check_out,omitempty"`
	Guests       int                 `json:"guests,omitempty" validate:"omitempty,min=1,max=20"`
	GuestDetails GuestDetailsRequest `json:"guest_details"`
}

type PaymentRequest struct {
	CardName   string `json:"card_name" validate:"required"`
	CardNumber string `json:"card_number" validate:"required,cardnumber"`
	Expiry     string `json:"expiry" validate:"required,expiry"`
	CVV        string `json:"cvv" validate:"required,cvv"`
}

type CancelBookingRequest struct {
	Confirm bool `json:"confirm"`
}
