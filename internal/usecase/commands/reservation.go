package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"lab-scheduler/internal/domain/reservation"
	"lab-scheduler/internal/pkg/clock"
	"lab-scheduler/internal/pkg/errs"
	"lab-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReservationInput struct {
	EquipmentID uuid.UUID
	MemberID    uuid.UUID
	StartAt     time.Time
	EndAt       time.Time
	Reason      string
	// Status defaults to pending when empty.
	Status reservation.Status
}

type ReservationPolicy struct {
	AllowDirectConfirm bool
	SweepBatchSize     int
}

type SweepResult struct {
	Expired int
	Skipped int
}

type ReservationCommands interface {
	Create(ctx context.Context, in CreateReservationInput) (uuid.UUID, error)
	Confirm(ctx context.Context, id uuid.UUID) error
	Cancel(ctx context.Context, id uuid.UUID) error
	Expire(ctx context.Context, id uuid.UUID) error
	ExpireDue(ctx context.Context) (SweepResult, error)
	Reschedule(ctx context.Context, id uuid.UUID, startAt, endAt time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type reservationCommandsImpl struct {
	uow     shared.UnitOfWork
	members shared.MemberDirectory
	cache   shared.StateCache
	clock   clock.Clock
	policy  ReservationPolicy
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	members shared.MemberDirectory,
	cache shared.StateCache,
	clk clock.Clock,
	policy ReservationPolicy,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:     uow,
		members: members,
		cache:   cache,
		clock:   clk,
		policy:  policy,
	}
}

func (uc *reservationCommandsImpl) Create(ctx context.Context, in CreateReservationInput) (uuid.UUID, error) {
	res, err := uc.build(ctx, in)
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Equipment().Lock(ctx, res.EquipmentID()); err != nil {
			return err
		}
		if res.IsConfirmed() {
			if err := checkSlot(ctx, tx, res); err != nil {
				return err
			}
		}
		return tx.Reservations().Create(ctx, res)
	})
	if err != nil {
		return uuid.Nil, shared.TranslateErr(err)
	}

	slog.Info("reservation created",
		"reservation_id", res.ID(),
		"equipment_id", res.EquipmentID(),
		"member_id", res.MemberID(),
		"status", res.Status(),
		"slot", res.TimeSlot().String())
	uc.invalidate(ctx, res.EquipmentID())
	return res.ID(), nil
}

// build gathers every input problem into one validation error.
func (uc *reservationCommandsImpl) build(ctx context.Context, in CreateReservationInput) (*reservation.Reservation, error) {
	verr := errs.NewValidationError()
	collect := func(err error) {
		if v, ok := errs.AsValidation(err); ok {
			verr.Fields = append(verr.Fields, v.Fields...)
		}
	}

	slot, err := reservation.NewTimeSlot(in.StartAt, in.EndAt)
	collect(err)
	reason, err := reservation.NewReason(in.Reason)
	collect(err)

	status := in.Status
	if status == "" {
		status = reservation.StatusPending
	}
	if status == reservation.StatusConfirmed && !uc.policy.AllowDirectConfirm {
		verr.Add("status", "direct confirmation is disabled; create as pending and confirm")
	}
	if in.EquipmentID == uuid.Nil {
		verr.Add("equipment_id", "is required")
	}
	switch {
	case in.MemberID == uuid.Nil:
		verr.Add("member_id", "is required")
	case !uc.memberKnown(ctx, in.MemberID):
		verr.Add("member_id", "unknown member")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	return reservation.NewReservation(in.EquipmentID, in.MemberID, slot, reason, status, uc.clock.Now())
}

// memberKnown treats a failing directory as "known": member lookup is advisory.
func (uc *reservationCommandsImpl) memberKnown(ctx context.Context, id uuid.UUID) bool {
	ok, err := uc.members.Exists(ctx, id)
	if err != nil {
		slog.Warn("member lookup failed, accepting member", "member_id", id, "error", err.Error())
		return true
	}
	return ok
}

func (uc *reservationCommandsImpl) Confirm(ctx context.Context, id uuid.UUID) error {
	var (
		equipmentID uuid.UUID
		changed     bool
	)
	err := uc.transition(ctx, id, func(ctx context.Context, tx shared.Tx, res *reservation.Reservation) (bool, error) {
		equipmentID = res.EquipmentID()
		var err error
		changed, err = res.Confirm(uc.clock.Now())
		if err != nil || !changed {
			return false, err
		}
		return true, checkSlot(ctx, tx, res)
	})
	if err != nil {
		return err
	}
	if changed {
		slog.Info("reservation confirmed", "reservation_id", id, "equipment_id", equipmentID)
		uc.invalidate(ctx, equipmentID)
	}
	return nil
}

func (uc *reservationCommandsImpl) Cancel(ctx context.Context, id uuid.UUID) error {
	var (
		equipmentID uuid.UUID
		changed     bool
	)
	err := uc.transition(ctx, id, func(_ context.Context, _ shared.Tx, res *reservation.Reservation) (bool, error) {
		equipmentID = res.EquipmentID()
		var err error
		changed, err = res.Cancel(uc.clock.Now())
		return changed, err
	})
	if err != nil {
		return err
	}
	if changed {
		slog.Info("reservation cancelled", "reservation_id", id, "equipment_id", equipmentID)
		uc.invalidate(ctx, equipmentID)
	}
	return nil
}

func (uc *reservationCommandsImpl) Expire(ctx context.Context, id uuid.UUID) error {
	var equipmentID uuid.UUID
	err := uc.transition(ctx, id, func(_ context.Context, _ shared.Tx, res *reservation.Reservation) (bool, error) {
		equipmentID = res.EquipmentID()
		return true, res.Complete(uc.clock.Now())
	})
	if err != nil {
		return err
	}
	slog.Debug("reservation completed", "reservation_id", id, "equipment_id", equipmentID)
	uc.invalidate(ctx, equipmentID)
	return nil
}

// ExpireDue completes confirmed reservations that have ended, one transaction
// each. Reservations cancelled concurrently are skipped, not reported.
func (uc *reservationCommandsImpl) ExpireDue(ctx context.Context) (SweepResult, error) {
	var result SweepResult
	now := uc.clock.Now()

	var due []uuid.UUID
	err := uc.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		var err error
		due, err = reads.DueForExpiry(ctx, now, uc.policy.SweepBatchSize)
		return err
	})
	if err != nil {
		return result, shared.TranslateErr(err)
	}

	for _, id := range due {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		err := uc.Expire(ctx, id)
		switch {
		case err == nil:
			result.Expired++
		case errors.Is(err, errs.ErrInvalidTransition), errors.Is(err, errs.ErrNotFound):
			result.Skipped++
		default:
			return result, err
		}
	}
	return result, nil
}

func (uc *reservationCommandsImpl) Reschedule(ctx context.Context, id uuid.UUID, startAt, endAt time.Time) error {
	slot, err := reservation.NewTimeSlot(startAt, endAt)
	if err != nil {
		return err
	}

	var equipmentID uuid.UUID
	err = uc.transition(ctx, id, func(ctx context.Context, tx shared.Tx, res *reservation.Reservation) (bool, error) {
		equipmentID = res.EquipmentID()
		if err := res.Reschedule(slot, uc.clock.Now()); err != nil {
			return false, err
		}
		if res.IsConfirmed() {
			return true, checkSlot(ctx, tx, res)
		}
		return true, nil
	})
	if err != nil {
		return err
	}
	slog.Info("reservation rescheduled", "reservation_id", id, "slot", slot.String())
	uc.invalidate(ctx, equipmentID)
	return nil
}

func (uc *reservationCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	var equipmentID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reads().ReservationByID(ctx, id)
		if err != nil {
			return err
		}
		equipmentID = res.EquipmentID()
		return tx.Reservations().Delete(ctx, id)
	})
	if err != nil {
		return shared.TranslateErr(err)
	}
	slog.Info("reservation deleted", "reservation_id", id, "equipment_id", equipmentID)
	uc.invalidate(ctx, equipmentID)
	return nil
}

// transition loads the reservation under its equipment lock, applies fn and
// saves when fn reports a change.
func (uc *reservationCommandsImpl) transition(
	ctx context.Context,
	id uuid.UUID,
	fn func(ctx context.Context, tx shared.Tx, res *reservation.Reservation) (bool, error),
) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reads().ReservationByID(ctx, id)
		if err != nil {
			return err
		}
		if _, err := tx.Equipment().Lock(ctx, res.EquipmentID()); err != nil {
			return err
		}
		// re-read: the row may have moved while we waited for the lock
		if res, err = tx.Reads().ReservationByID(ctx, id); err != nil {
			return err
		}
		save, err := fn(ctx, tx, res)
		if err != nil || !save {
			return err
		}
		return tx.Reservations().Update(ctx, res)
	})
	return shared.TranslateErr(err)
}

// checkSlot runs the conflict detector against the other confirmed
// reservations of the same equipment. The caller holds the equipment lock.
func checkSlot(ctx context.Context, tx shared.Tx, res *reservation.Reservation) error {
	confirmed, err := tx.Reads().ReservationsForEquipment(ctx, res.EquipmentID(), reservation.StatusConfirmed)
	if err != nil {
		return err
	}
	if other := reservation.FindConflict(confirmed, res.TimeSlot(), res.ID()); other != nil {
		return errs.Mark(
			errs.Newf("slot %s overlaps confirmed reservation %s %s", res.TimeSlot(), other.ID(), other.TimeSlot()),
			errs.ErrSlotConflict,
		)
	}
	return nil
}

func (uc *reservationCommandsImpl) invalidate(ctx context.Context, ids ...uuid.UUID) {
	if err := uc.cache.Invalidate(ctx, ids...); err != nil {
		slog.Warn("failed to invalidate equipment state cache", "error", err.Error())
	}
}
