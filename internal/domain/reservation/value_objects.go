package reservation

import (
	"fmt"
	"strings"
	"time"

	"lab-scheduler/internal/pkg/errs"
)

const MaxReasonLength = 1000

// TimeSlot is the half-open interval [start, end).
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	verr := errs.NewValidationError()
	if start.IsZero() {
		verr.Add("start_at", "is required")
	}
	if end.IsZero() {
		verr.Add("end_at", "is required")
	}
	if verr.HasErrors() {
		return TimeSlot{}, verr
	}
	if !end.After(start) {
		return TimeSlot{}, errs.Invalid("end_at", "must be strictly after start_at")
	}
	return TimeSlot{start: start, end: end}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

// Overlaps is the half-open test: back-to-back slots do not overlap.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && ts.end.After(other.start)
}

func (ts TimeSlot) Covers(t time.Time) bool {
	return !t.Before(ts.start) && t.Before(ts.end)
}

// Clip intersects the slot with w; ok is false when nothing remains.
func (ts TimeSlot) Clip(w Window) (TimeSlot, bool) {
	start := ts.start
	if w.start.After(start) {
		start = w.start
	}
	end := ts.end
	if w.end.Before(end) {
		end = w.end
	}
	if !end.After(start) {
		return TimeSlot{}, false
	}
	return TimeSlot{start: start, end: end}, true
}

func (ts TimeSlot) String() string {
	return fmt.Sprintf("[%s,%s)", ts.start.Format(time.DateTime), ts.end.Format(time.DateTime))
}

type Reason struct {
	value string
}

func NewReason(value string) (Reason, error) {
	v := strings.TrimSpace(value)
	if len(v) > MaxReasonLength {
		return Reason{}, errs.Invalid("reason", fmt.Sprintf("must be at most %d characters", MaxReasonLength))
	}
	return Reason{value: v}, nil
}

func (r Reason) String() string {
	return r.value
}

func (r Reason) IsEmpty() bool {
	return r.value == ""
}

// Ptr maps the empty reason to nil for storage.
func (r Reason) Ptr() *string {
	if r.IsEmpty() {
		return nil
	}
	v := r.value
	return &v
}
