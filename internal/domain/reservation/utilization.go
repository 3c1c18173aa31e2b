package reservation

import (
	"math"
	"sort"
	"time"

	"lab-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

// Window is a half-open reporting range [start, end).
type Window struct {
	start time.Time
	end   time.Time
}

func NewWindow(start, end time.Time) (Window, error) {
	if start.IsZero() || end.IsZero() {
		return Window{}, errs.Invalid("window", "start and end are required")
	}
	if end.Before(start) {
		return Window{}, errs.Invalid("window", "end must not be before start")
	}
	return Window{start: start, end: end}, nil
}

// NewDayWindow covers whole calendar days: from 00:00 up to the end of the to date.
func NewDayWindow(from, to time.Time) (Window, error) {
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	end := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, to.Location()).AddDate(0, 0, 1)
	return NewWindow(start, end)
}

func (w Window) Start() time.Time { return w.start }
func (w Window) End() time.Time   { return w.end }

func (w Window) Duration() time.Duration {
	return w.end.Sub(w.start)
}

func (w Window) Intersects(slot TimeSlot) bool {
	return slot.Start().Before(w.end) && slot.End().After(w.start)
}

type Usage struct {
	Reserved         time.Duration
	Available        time.Duration
	ReservationCount int
	Rate             float64
}

// ComputeUsage sums the reservations that held the equipment (confirmed, or
// completed by the expiry sweep) clipped to w. Rate is a percentage rounded
// to two decimals and clamped to [0, 100].
func ComputeUsage(reservations []*Reservation, w Window) Usage {
	usage := Usage{Available: w.Duration()}
	for _, r := range reservations {
		if !r.HeldEquipment() {
			continue
		}
		clipped, ok := r.TimeSlot().Clip(w)
		if !ok {
			continue
		}
		usage.Reserved += clipped.Duration()
		usage.ReservationCount++
	}
	usage.Rate = rate(usage.Reserved, usage.Available)
	return usage
}

func rate(reserved, available time.Duration) float64 {
	if available <= 0 || reserved <= 0 {
		return 0
	}
	pct := float64(reserved) / float64(available) * 100
	pct = math.Round(pct*100) / 100
	return math.Max(0, math.Min(100, pct))
}

type MemberCount struct {
	MemberID uuid.UUID
	Count    int
}

// CountsByMember counts reservations that actually held equipment (confirmed
// or completed) intersecting w, most active member first.
func CountsByMember(reservations []*Reservation, w Window) []MemberCount {
	counts := make(map[uuid.UUID]int)
	for _, r := range reservations {
		if !r.HeldEquipment() {
			continue
		}
		if !w.Intersects(r.TimeSlot()) {
			continue
		}
		counts[r.MemberID()]++
	}

	result := make([]MemberCount, 0, len(counts))
	for id, n := range counts {
		result = append(result, MemberCount{MemberID: id, Count: n})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].MemberID.String() < result[j].MemberID.String()
	})
	return result
}
