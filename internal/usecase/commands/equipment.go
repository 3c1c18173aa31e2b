package commands

import (
	"context"
	"log/slog"
	"time"

	"lab-scheduler/internal/domain/equipment"
	"lab-scheduler/internal/domain/reservation"
	"lab-scheduler/internal/pkg/clock"
	"lab-scheduler/internal/pkg/errs"
	"lab-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

type MaintenanceResult struct {
	EquipmentID uuid.UUID
	// Affected lists confirmed reservations that have not ended yet; they are
	// left untouched and must be resolved by the caller.
	Affected []*reservation.Reservation
}

type EquipmentCommands interface {
	Create(ctx context.Context, spec equipment.Spec) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, patch equipment.Patch) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetMaintenanceState(ctx context.Context, id uuid.UUID) (*MaintenanceResult, error)
}

type equipmentCommandsImpl struct {
	uow   shared.UnitOfWork
	cache shared.StateCache
	clock clock.Clock
}

func NewEquipmentCommands(uow shared.UnitOfWork, cache shared.StateCache, clk clock.Clock) EquipmentCommands {
	return &equipmentCommandsImpl{uow: uow, cache: cache, clock: clk}
}

func (uc *equipmentCommandsImpl) Create(ctx context.Context, spec equipment.Spec) (uuid.UUID, error) {
	e, err := equipment.NewEquipment(spec, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Equipment().Create(ctx, e)
	})
	if err != nil {
		return uuid.Nil, shared.TranslateErr(err)
	}

	slog.Info("equipment created", "equipment_id", e.ID(), "category", e.Category(), "state", e.State())
	return e.ID(), nil
}

func (uc *equipmentCommandsImpl) Update(ctx context.Context, id uuid.UUID, patch equipment.Patch) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		e, err := tx.Equipment().Lock(ctx, id)
		if err != nil {
			return err
		}
		if err := e.Apply(patch, uc.clock.Now()); err != nil {
			return err
		}
		return tx.Equipment().Update(ctx, e)
	})
	if err != nil {
		return shared.TranslateErr(err)
	}

	uc.invalidate(ctx, id)
	return nil
}

// Delete refuses while a confirmed reservation has not ended; past
// reservations go with the equipment.
func (uc *equipmentCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	now := uc.clock.Now()
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Equipment().Lock(ctx, id); err != nil {
			return err
		}
		confirmed, err := tx.Reads().ReservationsForEquipment(ctx, id, reservation.StatusConfirmed)
		if err != nil {
			return err
		}
		if n := countFuture(confirmed, now); n > 0 {
			return errs.Mark(
				errs.Newf("equipment %s has %d confirmed reservation(s) ending after %s", id, n, now.Format("2006-01-02 15:04")),
				errs.ErrHasFutureReservations,
			)
		}
		if _, err := tx.Reservations().DeleteForEquipment(ctx, id); err != nil {
			return err
		}
		return tx.Equipment().Delete(ctx, id)
	})
	if err != nil {
		return shared.TranslateErr(err)
	}

	slog.Info("equipment deleted", "equipment_id", id)
	uc.invalidate(ctx, id)
	return nil
}

func (uc *equipmentCommandsImpl) SetMaintenanceState(ctx context.Context, id uuid.UUID) (*MaintenanceResult, error) {
	now := uc.clock.Now()
	result := &MaintenanceResult{EquipmentID: id}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		e, err := tx.Equipment().Lock(ctx, id)
		if err != nil {
			return err
		}
		confirmed, err := tx.Reads().ReservationsForEquipment(ctx, id, reservation.StatusConfirmed)
		if err != nil {
			return err
		}
		result.Affected = result.Affected[:0]
		for _, r := range confirmed {
			if r.IsFutureCommitment(now) {
				result.Affected = append(result.Affected, r)
			}
		}
		e.PutInMaintenance(now)
		return tx.Equipment().Update(ctx, e)
	})
	if err != nil {
		return nil, shared.TranslateErr(err)
	}

	if len(result.Affected) > 0 {
		slog.Warn("equipment put in maintenance with outstanding confirmed reservations",
			"equipment_id", id,
			"affected", len(result.Affected))
	} else {
		slog.Info("equipment put in maintenance", "equipment_id", id)
	}
	uc.invalidate(ctx, id)
	return result, nil
}

func (uc *equipmentCommandsImpl) invalidate(ctx context.Context, ids ...uuid.UUID) {
	if err := uc.cache.Invalidate(ctx, ids...); err != nil {
		slog.Warn("failed to invalidate equipment state cache", "error", err.Error())
	}
}

func countFuture(rs []*reservation.Reservation, now time.Time) int {
	n := 0
	for _, r := range rs {
		if r.IsFutureCommitment(now) {
			n++
		}
	}
	return n
}
