package usecase

import (
	"math"
	"time"
)

// TaxRate is the display-only surcharge applied on top of a booking total.
const TaxRate = 0.12

// roundHalfUp rounds to the nearest whole currency unit, .5 going up.
func roundHalfUp(x float64) int64 {
	return int64(math.Floor(x + 0.5))
}

// Nights counts whole days between the dates, never fewer than one.
func Nights(checkIn, checkOut time.Time) int {
	nights := int(roundHalfUp(checkOut.Sub(checkIn).Hours() / 24))
	if nights < 1 {
		return 1
	}
	return nights
}

// DiscountedNightly applies a percentage discount to a nightly rate.
func DiscountedNightly(price, discount float64) int64 {
	if discount > 0 {
		return roundHalfUp(price - price*discount/100)
	}
	return roundHalfUp(price)
}

func TotalPrice(price, discount float64, nights int) int64 {
	return DiscountedNightly(price, discount) * int64(nights)
}

func Tax(total int64) int64 {
	return roundHalfUp(float64(total) * TaxRate)
}

func GrandTotal(total int64) int64 {
	return total + Tax(total)
}
