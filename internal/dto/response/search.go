package response

import (
	"hotel-booking/internal/data/entity"
)

type SearchParamsResponse struct {
	Location string  `json:"location"`
	CheckIn  *string `json:"check_in"`
	CheckOut *string `json:"check_out"`
	Guests   int     `json:"guests"`
	Rooms    int     `json:"rooms"`
}

func SearchParamsToResponse(params entity.SearchParams, layout string) SearchParamsResponse {
	resp := SearchParamsResponse{
		Location: params.Location,
		Guests:   params.Guests,
		Rooms:    params.Rooms,
	}

	if params.CheckIn != nil {
		checkIn := params.CheckIn.Format(layout)
		resp.CheckIn = &checkIn
	}
	if params.CheckOut != nil {
		checkOut := params.CheckOut.Format(layout)
		resp.CheckOut = &checkOut
	}

	return resp
}
