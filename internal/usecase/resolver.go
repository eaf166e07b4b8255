package usecase

import (
	"sort"
	"strings"

	"hotel-booking/internal/data/entity"
)

// FilterHotels returns the hotels passing every active filter of query, in
// catalog order. It does not modify catalog.
func FilterHotels(catalog []entity.Hotel, query entity.HotelQuery) []entity.Hotel {
	location := strings.ToLower(strings.TrimSpace(query.Location))

	result := make([]entity.Hotel, 0, len(catalog))
	for _, hotel := range catalog {
		if location != "" &&
			!strings.Contains(strings.ToLower(hotel.City), location) &&
			!strings.Contains(strings.ToLower(hotel.Name), location) {
			continue
		}
		if query.PriceMin != nil && hotel.Price < *query.PriceMin {
			continue
		}
		if query.PriceMax != nil && hotel.Price > *query.PriceMax {
			continue
		}
		if query.MinRating > 0 && hotel.Rating < query.MinRating {
			continue
		}
		if !hotel.HasAmenities(query.Amenities) {
			continue
		}
		result = append(result, hotel)
	}

	return result
}

// SortHotels returns a sorted copy of hotels. Equal keys keep their input
// order; an unknown criterion behaves like recommended.
func SortHotels(hotels []entity.Hotel, criterion entity.SortCriterion) []entity.Hotel {
	sorted := make([]entity.Hotel, len(hotels))
	copy(sorted, hotels)

	var less func(a, b entity.Hotel) bool
	switch criterion {
	case entity.SortPriceLowHigh:
		less = func(a, b entity.Hotel) bool { return a.Price < b.Price }
	case entity.SortPriceHighLow:
		less = func(a, b entity.Hotel) bool { return a.Price > b.Price }
	case entity.SortRatingHighLow:
		less = func(a, b entity.Hotel) bool { return a.Rating > b.Rating }
	case entity.SortPopularity:
		less = func(a, b entity.Hotel) bool { return a.ReviewCount > b.ReviewCount }
	default:
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})

	return sorted
}
