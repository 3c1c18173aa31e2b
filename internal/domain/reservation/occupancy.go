package reservation

import "time"

// Occupancy tells whether a confirmed reservation covers now and when that
// answer can next change (zero when no later boundary exists).
func Occupancy(reservations []*Reservation, now time.Time) (occupied bool, nextChange time.Time) {
	consider := func(t time.Time) {
		if t.After(now) && (nextChange.IsZero() || t.Before(nextChange)) {
			nextChange = t
		}
	}
	for _, r := range reservations {
		if !r.IsConfirmed() {
			continue
		}
		if r.OccupiesAt(now) {
			occupied = true
		}
		consider(r.TimeSlot().Start())
		consider(r.TimeSlot().End())
	}
	return occupied, nextChange
}
