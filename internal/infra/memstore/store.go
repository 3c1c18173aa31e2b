package memstore

import (
	"context"
	"sync"

	"lab-scheduler/internal/domain/equipment"
	"lab-scheduler/internal/domain/reservation"
	"lab-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

// UoW keeps everything in process. Writers are serialized and work on a
// private copy of the maps that replaces the committed state only when fn
// succeeds; readers share the committed state under a read lock.
type UoW struct {
	mu    sync.RWMutex
	state *state
}

func New() *UoW {
	return &UoW{state: newState()}
}

func NewUoW() shared.UnitOfWork {
	return New()
}

func (u *UoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	u.mu.Lock()
	defer u.mu.Unlock()

	work := u.state.clone()
	if err := fn(ctx, &memTx{state: work}); err != nil {
		return err
	}
	u.state = work
	return nil
}

func (u *UoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads shared.Reads) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	u.mu.RLock()
	defer u.mu.RUnlock()
	return fn(ctx, u.state)
}

// Seed stores entities directly, bypassing every rule; meant for fixtures.
func (u *UoW) Seed(items ...any) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, it := range items {
		switch v := it.(type) {
		case *equipment.Equipment:
			u.state.equipment[v.ID()] = cloneEquipment(v)
		case *reservation.Reservation:
			u.state.reservations[v.ID()] = cloneReservation(v)
		}
	}
}

type memTx struct {
	state *state
}

func (t *memTx) Equipment() shared.EquipmentRepository {
	return equipmentRepo{state: t.state}
}

func (t *memTx) Reservations() shared.ReservationRepository {
	return reservationRepo{state: t.state}
}

func (t *memTx) Reads() shared.Reads {
	return t.state
}

type state struct {
	equipment    map[uuid.UUID]*equipment.Equipment
	reservations map[uuid.UUID]*reservation.Reservation
}

func newState() *state {
	return &state{
		equipment:    make(map[uuid.UUID]*equipment.Equipment),
		reservations: make(map[uuid.UUID]*reservation.Reservation),
	}
}

// clone copies the maps only; stored entities are never mutated in place.
func (s *state) clone() *state {
	c := &state{
		equipment:    make(map[uuid.UUID]*equipment.Equipment, len(s.equipment)),
		reservations: make(map[uuid.UUID]*reservation.Reservation, len(s.reservations)),
	}
	for k, v := range s.equipment {
		c.equipment[k] = v
	}
	for k, v := range s.reservations {
		c.reservations[k] = v
	}
	return c
}

func cloneEquipment(e *equipment.Equipment) *equipment.Equipment {
	var location *string
	if e.Location() != nil {
		v := *e.Location()
		location = &v
	}
	var team *uuid.UUID
	if e.TeamID() != nil {
		v := *e.TeamID()
		team = &v
	}
	return equipment.ReconstructEquipment(
		e.ID(), e.Name(), e.Category(), e.State(), location, team, e.CreatedAt(), e.UpdatedAt(),
	)
}

func cloneReservation(r *reservation.Reservation) *reservation.Reservation {
	return reservation.ReconstructReservation(
		r.ID(), r.EquipmentID(), r.MemberID(), r.TimeSlot(), r.Status(), r.Reason(), r.CreatedAt(), r.UpdatedAt(),
	)
}
