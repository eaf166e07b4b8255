package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{"three nights", date("2024-06-01"), date("2024-06-04"), 3},
		{"one night", date("2024-06-01"), date("2024-06-02"), 1},
		{"same day floors to one", date("2024-06-01"), date("2024-06-01"), 1},
		{"reversed floors to one", date("2024-06-04"), date("2024-06-01"), 1},
		{"half day rounds up", date("2024-06-01"), date("2024-06-02").Add(12 * time.Hour), 2},
		{"across month end", date("2024-01-30"), date("2024-02-02"), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Nights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestDiscountedNightly(t *testing.T) {
	tests := []struct {
		price    float64
		discount float64
		want     int64
	}{
		{200, 10, 180},
		{229, 0, 229},
		{299, 10, 269},
		{259, 15, 220},
		{279, 12, 246},
		{199.5, 0, 200},
		{100, 100, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DiscountedNightly(tt.price, tt.discount), "price %v discount %v", tt.price, tt.discount)
	}
}

func TestTotals(t *testing.T) {
	assert.Equal(t, int64(540), TotalPrice(200, 10, 3))

	total := TotalPrice(229, 0, Nights(date("2024-06-01"), date("2024-06-04")))
	assert.Equal(t, int64(687), total)
	assert.Equal(t, int64(82), Tax(total))
	assert.Equal(t, int64(769), GrandTotal(total))

	assert.Equal(t, int64(0), Tax(0))
	assert.Equal(t, int64(6), Tax(50))
}
