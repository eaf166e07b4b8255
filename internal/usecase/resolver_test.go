package usecase

import (
	"testing"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/fixture"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func ids(hotels []entity.Hotel) []string {
	result := make([]string, 0, len(hotels))
	for _, h := range hotels {
		result = append(result, h.ID)
	}
	return result
}

func TestFilterHotels(t *testing.T) {
	catalog := fixture.Hotels()

	tests := []struct {
		name  string
		query entity.HotelQuery
		want  []string
	}{
		{
			name:  "empty query matches everything",
			query: entity.HotelQuery{},
			want:  []string{"h1", "h2", "h3", "h4", "h5", "h6"},
		},
		{
			name:  "location matches city case-insensitively",
			query: entity.HotelQuery{Location: "miami"},
			want:  []string{"h1"},
		},
		{
			name:  "location matches name",
			query: entity.HotelQuery{Location: "Boutique"},
			want:  []string{"h2"},
		},
		{
			name: "miami with price and rating",
			query: entity.HotelQuery{
				Location:  "Miami",
				FilterSet: entity.FilterSet{PriceMin: ptr(0.0), PriceMax: ptr(300.0), MinRating: 4.5},
			},
			want: []string{"h1"},
		},
		{
			name: "rating above hotel excludes it",
			query: entity.HotelQuery{
				Location:  "Miami",
				FilterSet: entity.FilterSet{PriceMin: ptr(0.0), PriceMax: ptr(300.0), MinRating: 4.9},
			},
			want: []string{},
		},
		{
			name:  "price bounds are inclusive",
			query: entity.HotelQuery{FilterSet: entity.FilterSet{PriceMin: ptr(189.0), PriceMax: ptr(229.0)}},
			want:  []string{"h2", "h5"},
		},
		{
			name:  "only a lower bound",
			query: entity.HotelQuery{FilterSet: entity.FilterSet{PriceMin: ptr(280.0)}},
			want:  []string{"h1", "h3"},
		},
		{
			name:  "amenities are all required",
			query: entity.HotelQuery{FilterSet: entity.FilterSet{Amenities: []string{entity.AmenityPool, entity.AmenityGym}}},
			want:  []string{"h1"},
		},
		{
			name:  "single amenity",
			query: entity.HotelQuery{FilterSet: entity.FilterSet{Amenities: []string{entity.AmenityPetFriendly}}},
			want:  []string{"h2", "h5"},
		},
		{
			name:  "unknown location",
			query: entity.HotelQuery{Location: "Atlantis"},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterHotels(catalog, tt.query)))
		})
	}
}

func TestFilterHotels_Conjunction(t *testing.T) {
	catalog := fixture.Hotels()
	lo, hi := 150.0, 300.0
	query := entity.HotelQuery{
		FilterSet: entity.FilterSet{PriceMin: &lo, PriceMax: &hi, MinRating: 4.5},
	}

	got := map[string]bool{}
	for _, h := range FilterHotels(catalog, query) {
		got[h.ID] = true
	}

	for _, h := range catalog {
		want := h.Price >= lo && h.Price <= hi && h.Rating >= 4.5
		assert.Equal(t, want, got[h.ID], h.ID)
	}
}

func TestSortHotels(t *testing.T) {
	catalog := fixture.Hotels()

	t.Run("price ascending and descending are reversed", func(t *testing.T) {
		asc := ids(SortHotels(catalog, entity.SortPriceLowHigh))
		desc := ids(SortHotels(catalog, entity.SortPriceHighLow))

		require.Len(t, desc, len(asc))
		for i := range asc {
			assert.Equal(t, asc[i], desc[len(desc)-1-i])
		}
		assert.Equal(t, []string{"h4", "h2", "h5", "h6", "h1", "h3"}, asc)
	})

	t.Run("rating", func(t *testing.T) {
		assert.Equal(t, []string{"h3", "h1", "h2", "h5", "h6", "h4"}, ids(SortHotels(catalog, entity.SortRatingHighLow)))
	})

	t.Run("popularity", func(t *testing.T) {
		assert.Equal(t, []string{"h3", "h1", "h6", "h2", "h5", "h4"}, ids(SortHotels(catalog, entity.SortPopularity)))
	})

	t.Run("recommended and unknown keep catalog order", func(t *testing.T) {
		want := ids(catalog)
		assert.Equal(t, want, ids(SortHotels(catalog, entity.SortRecommended)))
		assert.Equal(t, want, ids(SortHotels(catalog, "cheapest-first")))
	})

	t.Run("ties keep input order", func(t *testing.T) {
		list := []entity.Hotel{
			{ID: "a", Price: 100, Rating: 4},
			{ID: "b", Price: 50, Rating: 4},
			{ID: "c", Price: 100, Rating: 4},
			{ID: "d", Price: 50, Rating: 4},
		}
		assert.Equal(t, []string{"b", "d", "a", "c"}, ids(SortHotels(list, entity.SortPriceLowHigh)))
		assert.Equal(t, []string{"a", "c", "b", "d"}, ids(SortHotels(list, entity.SortPriceHighLow)))
		assert.Equal(t, []string{"a", "b", "c", "d"}, ids(SortHotels(list, entity.SortRatingHighLow)))
	})

	t.Run("input is not modified", func(t *testing.T) {
		before := ids(catalog)
		SortHotels(catalog, entity.SortPriceHighLow)
		assert.Equal(t, before, ids(catalog))
	})
}
