package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinRating = 1
	MaxRating = 5

	MinGuestCount = 1

	// DefaultRating is reported for rooms that have no reviews yet.
	DefaultRating = 5.0

	// RoomsPageSize is the page size of the room catalog listing.
	RoomsPageSize = 6

	// PurgeAfterDays controls the expiry sweep: reserves whose check-out is
	// older than this many days are deleted.
	PurgeAfterDays = 180
)
