package request

import (
	"strings"
	"time"

	"lab-scheduler/internal/pkg/clock"
	"lab-scheduler/internal/pkg/errs"
)

// Layouts accepted for reservation instants. Zoned inputs keep their wall
// clock and drop the zone: scheduling runs on naive local time.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.DateTime,
	"2006-01-02 15:04",
}

const dateLayout = time.DateOnly

// ParseTime records a field error on verr and returns the zero time when raw is unusable.
func ParseTime(verr *errs.ValidationError, field, raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		verr.Add(field, "is required")
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return clock.Naive(t)
		}
	}
	verr.Add(field, "must look like 2006-01-02T15:04:05")
	return time.Time{}
}

func ParseDate(verr *errs.ValidationError, field, raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		verr.Add(field, "is required")
		return time.Time{}
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		verr.Add(field, "must look like 2006-01-02")
		return time.Time{}
	}
	return t
}
