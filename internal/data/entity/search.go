package entity

import (
	"time"
)

type SearchParams struct {
	Location string     `json:"location"`
	CheckIn  *time.Time `json:"check_in,omitempty"`
	CheckOut *time.Time `json:"check_out,omitempty"`
	Guests   int        `json:"guests"`
	Rooms    int        `json:"rooms"`
}

func DefaultSearchParams() SearchParams {
	return SearchParams{Guests: 2, Rooms: 1}
}

// FilterSet holds the listing filters; a nil price bound is not applied and
// a zero MinRating means no rating filter.
type FilterSet struct {
	PriceMin  *float64 `json:"price_min,omitempty"`
	PriceMax  *float64 `json:"price_max,omitempty"`
	MinRating float64  `json:"min_rating,omitempty"`
	Amenities []string `json:"amenities,omitempty"`
}

type HotelQuery struct {
	Location string `json:"location"`
	FilterSet
}

type SortCriterion string

const (
	SortRecommended   SortCriterion = "recommended"
	SortPriceLowHigh  SortCriterion = "price-low-high"
	SortPriceHighLow  SortCriterion = "price-high-low"
	SortRatingHighLow SortCriterion = "rating-high-low"
	SortPopularity    SortCriterion = "popularity"
)
