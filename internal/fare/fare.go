// Package fare computes booking totals from a per-seat unit price.
package fare

import (
	"math"

	"railway-booking/pkg/apperror"
)

// Total multiplies the per-seat fare by the seat count. Fares are exact
// integer unit amounts, so the result carries no rounding ambiguity.
func Total(farePerSeat int64, seats int) (int64, error) {
	if seats <= 0 {
		return 0, apperror.InvalidRequest("seat count must be a positive integer, got %d", seats)
	}
	if farePerSeat < 0 {
		return 0, apperror.InvalidRequest("fare per seat must not be negative, got %d", farePerSeat)
	}
	if farePerSeat > 0 && int64(seats) > math.MaxInt64/farePerSeat {
		return 0, apperror.InvalidRequest("total fare overflows for %d seats", seats)
	}
	return farePerSeat * int64(seats), nil
}
