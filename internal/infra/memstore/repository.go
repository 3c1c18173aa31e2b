package memstore

import (
	"context"

	"lab-scheduler/internal/domain/equipment"
	"lab-scheduler/internal/domain/reservation"
	"lab-scheduler/internal/infra"

	"github.com/google/uuid"
)

type equipmentRepo struct {
	state *state
}

func (r equipmentRepo) Create(_ context.Context, e *equipment.Equipment) error {
	if _, ok := r.state.equipment[e.ID()]; ok {
		return infra.WrapRepoErr("failed to create equipment", nil, infra.KindDuplicateKey)
	}
	r.state.equipment[e.ID()] = cloneEquipment(e)
	return nil
}

func (r equipmentRepo) Update(_ context.Context, e *equipment.Equipment) error {
	if _, ok := r.state.equipment[e.ID()]; !ok {
		return infra.NotFound("equipment not found")
	}
	r.state.equipment[e.ID()] = cloneEquipment(e)
	return nil
}

// Delete cascades to the equipment's reservations like the SQL schema does.
func (r equipmentRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.state.equipment[id]; !ok {
		return infra.NotFound("equipment not found")
	}
	delete(r.state.equipment, id)
	for rid, res := range r.state.reservations {
		if res.EquipmentID() == id {
			delete(r.state.reservations, rid)
		}
	}
	return nil
}

// Lock only checks existence: writers already hold the store-wide lock.
func (r equipmentRepo) Lock(_ context.Context, id uuid.UUID) (*equipment.Equipment, error) {
	e, ok := r.state.equipment[id]
	if !ok {
		return nil, infra.NotFound("equipment not found")
	}
	return cloneEquipment(e), nil
}

type reservationRepo struct {
	state *state
}

func (r reservationRepo) Create(_ context.Context, res *reservation.Reservation) error {
	if _, ok := r.state.reservations[res.ID()]; ok {
		return infra.WrapRepoErr("failed to create reservation", nil, infra.KindDuplicateKey)
	}
	if _, ok := r.state.equipment[res.EquipmentID()]; !ok {
		return infra.WrapRepoErr("failed to create reservation", nil, infra.KindForeignKeyViolated)
	}
	if err := r.checkOverlap(res); err != nil {
		return err
	}
	r.state.reservations[res.ID()] = cloneReservation(res)
	return nil
}

func (r reservationRepo) Update(_ context.Context, res *reservation.Reservation) error {
	if _, ok := r.state.reservations[res.ID()]; !ok {
		return infra.NotFound("reservation not found")
	}
	if err := r.checkOverlap(res); err != nil {
		return err
	}
	r.state.reservations[res.ID()] = cloneReservation(res)
	return nil
}

func (r reservationRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.state.reservations[id]; !ok {
		return infra.NotFound("reservation not found")
	}
	delete(r.state.reservations, id)
	return nil
}

func (r reservationRepo) DeleteForEquipment(_ context.Context, equipmentID uuid.UUID) (int, error) {
	n := 0
	for id, res := range r.state.reservations {
		if res.EquipmentID() == equipmentID {
			delete(r.state.reservations, id)
			n++
		}
	}
	return n, nil
}

// checkOverlap is the in-memory counterpart of the confirmed-overlap exclusion constraint.
func (r reservationRepo) checkOverlap(res *reservation.Reservation) error {
	if !res.IsConfirmed() {
		return nil
	}
	for _, other := range r.state.reservations {
		if other.EquipmentID() != res.EquipmentID() {
			continue
		}
		if reservation.HasConflict([]*reservation.Reservation{other}, res.TimeSlot(), res.ID()) {
			return infra.WrapRepoErr("confirmed reservations overlap", nil, infra.KindConflict)
		}
	}
	return nil
}
