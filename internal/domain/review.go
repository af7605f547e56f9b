package domain

import "time"

// Review is a guest's review of a room, tied to the reserve it was written
// for. At most one review exists per reserve.
type Review struct {
	ID        int64
	RoomID    int64
	AuthorID  int64
	ReserveID int64
	Rating    int
	Body      string
	PubDate   time.Time
}

// ValidRating reports whether the rating is within the allowed scale.
func ValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}
