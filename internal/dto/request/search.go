package request

// UpdateSearchParamsRequest is merged into the current search; nil fields
// are kept and an empty date clears it.
type UpdateSearchParamsRequest struct {
	Location *string `json:"location,omitempty"`
	CheckIn  *string `json:"check_in,omitempty"`
	CheckOut *string `json:"check_out,omitempty"`
	Guests   *int    `json:"guests,omitempty" validate:"omitempty,min=1,max=20"`
	Rooms    *int    `json:"rooms,omitempty" validate:"omitempty,min=1,max=10"`
}
