package domain

import "time"

// The stay interval convention is half-open: [checkIn, checkOut).
// The checkout date itself is not an occupied night, so a booking ending on
// day D and another starting on day D do not conflict.

// StayOverlaps reports whether two half-open date intervals overlap
func StayOverlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// Nights returns the number of occupied nights in [checkIn, checkOut)
func Nights(checkIn, checkOut time.Time) int {
	return int(DateOnly(checkOut).Sub(DateOnly(checkIn)).Hours() / 24)
}

// ValidateStay checks that the interval is well-formed:
// check-out strictly after check-in
func ValidateStay(checkIn, checkOut time.Time) error {
	if checkIn.IsZero() || checkOut.IsZero() {
		return ErrInvalidDateRange
	}
	if !DateOnly(checkOut).After(DateOnly(checkIn)) {
		return ErrInvalidDateRange
	}
	return nil
}

// DateOnly truncates a timestamp to the calendar date in UTC
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
