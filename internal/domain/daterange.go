package domain

import (
	"errors"
	"time"
)

// ErrInvalidRange is returned when a range's check-in is not strictly before
// its check-out.
var ErrInvalidRange = errors.New("domain: check-in must be before check-out")

// DateRange is a half-open stay interval [CheckIn, CheckOut).
// Both bounds are calendar dates (midnight UTC); the check-out day itself is
// not part of the stay, so back-to-back reservations on the same room are
// allowed.
type DateRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// NewDateRange builds a validated DateRange, truncating both bounds to
// calendar dates.
func NewDateRange(checkIn, checkOut time.Time) (DateRange, error) {
	r := DateRange{CheckIn: DateOnly(checkIn), CheckOut: DateOnly(checkOut)}
	if err := r.Validate(); err != nil {
		return DateRange{}, err
	}
	return r, nil
}

// Validate rejects same-day and inverted ranges.
func (r DateRange) Validate() error {
	if !r.CheckIn.Before(r.CheckOut) {
		return ErrInvalidRange
	}
	return nil
}

// Overlaps reports whether two half-open ranges share at least one night.
// A range ending exactly where the other begins does not overlap.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.CheckIn.Before(other.CheckOut) && other.CheckIn.Before(r.CheckOut)
}

// Nights returns the number of nights in the stay.
func (r DateRange) Nights() int {
	return NightsBetween(r.CheckIn, r.CheckOut)
}

// NightsBetween returns the number of whole days from a to b.
func NightsBetween(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)).Hours() / 24)
}

// DateOnly truncates a timestamp to its calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
