package request

import (
	"strings"
	"time"

	"lab-scheduler/internal/domain/reservation"
	"lab-scheduler/internal/pkg/errs"
	"lab-scheduler/internal/usecase/commands"
	"lab-scheduler/internal/usecase/queries"
	"lab-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	EquipmentID uuid.UUID  `json:"equipment_id" binding:"required"`
	MemberID    *uuid.UUID `json:"member_id,omitempty"`
	StartAt     string     `json:"start_at" example:"2025-01-15T10:00:00"`
	EndAt       string     `json:"end_at" example:"2025-01-15T12:00:00"`
	Reason      string     `json:"reason,omitempty"`
	Status      string     `json:"status,omitempty" enums:"pending,confirmed"`
}

// ToInput books for actor unless the body names another member.
func (r CreateReservationRequest) ToInput(actor uuid.UUID) (commands.CreateReservationInput, error) {
	verr := errs.NewValidationError()
	in := commands.CreateReservationInput{
		EquipmentID: r.EquipmentID,
		MemberID:    actor,
		StartAt:     ParseTime(verr, "start_at", r.StartAt),
		EndAt:       ParseTime(verr, "end_at", r.EndAt),
		Reason:      strings.TrimSpace(r.Reason),
	}
	if r.MemberID != nil {
		in.MemberID = *r.MemberID
	}
	if r.Status != "" {
		s, ok := reservation.ParseStatus(strings.ToLower(r.Status))
		if !ok || !s.IsCreatable() {
			verr.Add("status", "must be pending or confirmed")
		}
		in.Status = s
	}
	return in, verr.OrNil()
}

// BooksForOther reports whether the body targets someone other than actor.
func (r CreateReservationRequest) BooksForOther(actor uuid.UUID) bool {
	return r.MemberID != nil && *r.MemberID != actor
}

type RescheduleRequest struct {
	StartAt string `json:"start_at" example:"2025-01-15T14:00:00"`
	EndAt   string `json:"end_at" example:"2025-01-15T16:00:00"`
}

func (r RescheduleRequest) Parse() (start, end time.Time, err error) {
	verr := errs.NewValidationError()
	start = ParseTime(verr, "start_at", r.StartAt)
	end = ParseTime(verr, "end_at", r.EndAt)
	return start, end, verr.OrNil()
}

// RangeQuery bounds default to the whole timeline when both are omitted.
type RangeQuery struct {
	Start       string   `form:"start"`
	End         string   `form:"end"`
	EquipmentID string   `form:"equipment_id"`
	MemberID    string   `form:"member_id"`
	Status      []string `form:"status"`
}

func (q RangeQuery) ToFilter() (shared.RangeFilter, error) {
	verr := errs.NewValidationError()
	var f shared.RangeFilter

	if q.Start == "" && q.End == "" {
		f.Start, f.End = queries.DefaultRange()
	} else {
		f.Start = ParseTime(verr, "start", q.Start)
		f.End = ParseTime(verr, "end", q.End)
	}
	f.EquipmentID = parseOptionalUUID(verr, "equipment_id", q.EquipmentID)
	f.MemberID = parseOptionalUUID(verr, "member_id", q.MemberID)

	for _, raw := range q.Status {
		for _, part := range strings.Split(raw, ",") {
			part = strings.ToLower(strings.TrimSpace(part))
			if part == "" {
				continue
			}
			s, ok := reservation.ParseStatus(part)
			if !ok {
				verr.Add("status", "unknown status "+part)
				continue
			}
			f.Statuses = append(f.Statuses, s)
		}
	}
	return f, verr.OrNil()
}

// WindowQuery selects whole calendar days, from and to inclusive.
type WindowQuery struct {
	From        string `form:"from" example:"2025-01-01"`
	To          string `form:"to" example:"2025-01-31"`
	EquipmentID string `form:"equipment_id"`
}

func (q WindowQuery) ToWindow() (reservation.Window, error) {
	verr := errs.NewValidationError()
	from := ParseDate(verr, "from", q.From)
	to := ParseDate(verr, "to", q.To)
	if err := verr.OrNil(); err != nil {
		return reservation.Window{}, err
	}
	return reservation.NewDayWindow(from, to)
}

func (q WindowQuery) Equipment() (*uuid.UUID, error) {
	verr := errs.NewValidationError()
	id := parseOptionalUUID(verr, "equipment_id", q.EquipmentID)
	return id, verr.OrNil()
}

func parseOptionalUUID(verr *errs.ValidationError, field, raw string) *uuid.UUID {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		verr.Add(field, "must be a UUID")
		return nil
	}
	return &id
}
