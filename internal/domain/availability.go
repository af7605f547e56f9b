package domain

// IsAvailable reports whether a room can be booked for the requested range
// given the room's existing reserves. An empty reserve list means the room is
// free. Every reserve is checked; the first non-overlapping one proves
// nothing about the rest.
func IsAvailable(r DateRange, existing []DateRange) bool {
	for _, taken := range existing {
		if r.Overlaps(taken) {
			return false
		}
	}
	return true
}

// HasConflict reports whether the requested range overlaps any of a user's
// existing reserves, regardless of room. One client cannot hold two stays
// over the same nights.
func HasConflict(r DateRange, existing []DateRange) bool {
	for _, held := range existing {
		if r.Overlaps(held) {
			return true
		}
	}
	return false
}
