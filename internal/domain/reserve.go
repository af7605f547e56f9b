package domain

import "time"

// Reserve represents a room reservation held by a client.
type Reserve struct {
	ID         int64
	RoomID     int64
	ClientID   int64
	CheckIn    time.Time
	CheckOut   time.Time
	GuestCount int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Range returns the stay interval of the reserve.
func (r *Reserve) Range() DateRange {
	return DateRange{CheckIn: DateOnly(r.CheckIn), CheckOut: DateOnly(r.CheckOut)}
}

// IsOwnedBy reports whether the reserve belongs to the given client.
func (r *Reserve) IsOwnedBy(clientID int64) bool {
	return r.ClientID == clientID
}

// HasElapsed reports whether the stay is fully over at "now", i.e. the
// check-out day has passed.
func (r *Reserve) HasElapsed(now time.Time) bool {
	return DateOnly(now).After(DateOnly(r.CheckOut))
}
