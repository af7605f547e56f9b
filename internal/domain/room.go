package domain

import "time"

// Room represents a bookable hotel room. Rooms are read-only from the
// reservation core's perspective; the catalog is managed elsewhere.
type Room struct {
	ID           int64
	HotelID      int64
	Number       int
	TypeCode     string
	NightlyPrice int64 // integer currency units per night
	Capacity     int   // maximum number of guests

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullPrice returns the cost of staying the given number of nights.
func (r *Room) FullPrice(nights int) int64 {
	return r.NightlyPrice * int64(nights)
}

// Fits reports whether the room can host the given number of guests.
func (r *Room) Fits(guests int) bool {
	return guests <= r.Capacity
}
