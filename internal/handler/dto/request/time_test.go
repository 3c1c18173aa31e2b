//go:build unit

package request_test

import (
	"testing"
	"time"

	"lab-scheduler/internal/handler/dto/request"
	"lab-scheduler/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestParseTime(t *testing.T) {
	want := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		raw     string
		want    time.Time
		wantErr bool
	}{
		{raw: "2025-01-15T10:30:00", want: want},
		{raw: "2025-01-15T10:30", want: want},
		{raw: "2025-01-15 10:30:00", want: want},
		{raw: " 2025-01-15 10:30 ", want: want},
		{raw: "2025-01-15T10:30:00Z", want: want},
		{raw: "2025-01-15T10:30:00+09:00", want: want},
		{raw: "", wantErr: true},
		{raw: "15/01/2025 10:30", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			verr := errs.NewValidationError()
			got := request.ParseTime(verr, "start_at", tt.raw)
			if tt.wantErr {
				assert.True(t, verr.HasErrors())
				assert.Equal(t, "start_at", verr.Fields[0].Field)
				assert.True(t, got.IsZero())
				return
			}
			assert.False(t, verr.HasErrors())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRangeQueryToFilter(t *testing.T) {
	t.Run("one bound alone is rejected", func(t *testing.T) {
		_, err := request.RangeQuery{Start: "2025-01-15T00:00:00"}.ToFilter()
		v, ok := errs.AsValidation(err)
		if assert.True(t, ok) {
			assert.Equal(t, "end", v.Fields[0].Field)
		}
	})

	t.Run("comma separated and repeated statuses merge", func(t *testing.T) {
		f, err := request.RangeQuery{Status: []string{"pending, Confirmed", "completed"}}.ToFilter()
		assert.NoError(t, err)
		assert.Len(t, f.Statuses, 3)
	})
}

func TestWindowQueryToWindow(t *testing.T) {
	w, err := request.WindowQuery{From: "2025-03-01", To: "2025-03-31"}.ToWindow()
	assert.NoError(t, err)
	assert.Equal(t, 744*time.Hour, w.Duration())

	_, err = request.WindowQuery{From: "2025-03-31", To: "2025-03-01"}.ToWindow()
	v, ok := errs.AsValidation(err)
	if assert.True(t, ok) {
		assert.Equal(t, "window", v.Fields[0].Field)
	}
}
