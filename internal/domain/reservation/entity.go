package reservation

import (
	"time"

	"lab-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

type Reservation struct {
	id          uuid.UUID
	equipmentID uuid.UUID
	memberID    uuid.UUID
	timeSlot    TimeSlot
	status      Status
	reason      Reason
	createdAt   time.Time
	updatedAt   time.Time
}

func NewReservation(
	equipmentID, memberID uuid.UUID,
	slot TimeSlot,
	reason Reason,
	status Status,
	now time.Time,
) (*Reservation, error) {
	verr := errs.NewValidationError()
	if equipmentID == uuid.Nil {
		verr.Add("equipment_id", "is required")
	}
	if memberID == uuid.Nil {
		verr.Add("member_id", "is required")
	}
	if !status.IsCreatable() {
		verr.Add("status", "must be pending or confirmed")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	return &Reservation{
		id:          uuid.New(),
		equipmentID: equipmentID,
		memberID:    memberID,
		timeSlot:    slot,
		status:      status,
		reason:      reason,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructReservation(
	id, equipmentID, memberID uuid.UUID,
	timeSlot TimeSlot,
	status Status,
	reason Reason,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:          id,
		equipmentID: equipmentID,
		memberID:    memberID,
		timeSlot:    timeSlot,
		status:      status,
		reason:      reason,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Confirm reports changed=false when the reservation was already confirmed.
func (r *Reservation) Confirm(now time.Time) (changed bool, err error) {
	switch r.status {
	case StatusConfirmed:
		return false, nil
	case StatusPending:
		r.status = StatusConfirmed
		r.updatedAt = now
		return true, nil
	default:
		return false, r.transitionErr(StatusConfirmed)
	}
}

// Cancel is idempotent on cancelled reservations.
func (r *Reservation) Cancel(now time.Time) (changed bool, err error) {
	switch r.status {
	case StatusCancelled:
		return false, nil
	case StatusPending, StatusConfirmed:
		r.status = StatusCancelled
		r.updatedAt = now
		return true, nil
	default:
		return false, r.transitionErr(StatusCancelled)
	}
}

// Complete moves a confirmed reservation whose slot has ended to completed.
func (r *Reservation) Complete(now time.Time) error {
	if r.status != StatusConfirmed {
		return r.transitionErr(StatusCompleted)
	}
	if !r.HasEnded(now) {
		return errs.Mark(
			errs.Newf("reservation %s ends at %s", r.id, r.timeSlot.End().Format(time.DateTime)),
			errs.ErrInvalidTransition,
		)
	}
	r.status = StatusCompleted
	r.updatedAt = now
	return nil
}

func (r *Reservation) Reschedule(slot TimeSlot, now time.Time) error {
	if r.status.IsTerminal() {
		return errs.Mark(
			errs.Newf("cannot reschedule a %s reservation", r.status),
			errs.ErrInvalidTransition,
		)
	}
	r.timeSlot = slot
	r.updatedAt = now
	return nil
}

func (r *Reservation) transitionErr(to Status) error {
	return errs.Mark(errs.Newf("cannot move reservation from %s to %s", r.status, to), errs.ErrInvalidTransition)
}

func (r *Reservation) IsConfirmed() bool {
	return r.status == StatusConfirmed
}

// HeldEquipment is true for bookings that count towards occupancy history.
func (r *Reservation) HeldEquipment() bool {
	return r.status == StatusConfirmed || r.status == StatusCompleted
}

func (r *Reservation) HasEnded(now time.Time) bool {
	return !r.timeSlot.End().After(now)
}

// IsFutureCommitment is a confirmed booking that is not over yet.
func (r *Reservation) IsFutureCommitment(now time.Time) bool {
	return r.IsConfirmed() && r.timeSlot.End().After(now)
}

func (r *Reservation) OccupiesAt(t time.Time) bool {
	return r.IsConfirmed() && r.timeSlot.Covers(t)
}

func (r *Reservation) ID() uuid.UUID          { return r.id }
func (r *Reservation) EquipmentID() uuid.UUID { return r.equipmentID }
func (r *Reservation) MemberID() uuid.UUID    { return r.memberID }
func (r *Reservation) TimeSlot() TimeSlot     { return r.timeSlot }
func (r *Reservation) Status() Status         { return r.status }
func (r *Reservation) Reason() Reason         { return r.reason }
func (r *Reservation) CreatedAt() time.Time   { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time   { return r.updatedAt }
