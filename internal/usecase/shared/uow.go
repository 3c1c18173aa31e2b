package shared

import (
	"context"
	"time"

	"lab-scheduler/internal/domain/equipment"
	"lab-scheduler/internal/domain/reservation"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations; all-or-nothing per call
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Consistent snapshot for multi-query reads (conflict reports, utilization)
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads Reads) error) error
}

type Tx interface {
	Equipment() EquipmentRepository
	Reservations() ReservationRepository
	Reads() Reads
}

type Reads interface {
	EquipmentByID(ctx context.Context, id uuid.UUID) (*equipment.Equipment, error)
	ListEquipment(ctx context.Context, filter EquipmentFilter) ([]*equipment.Equipment, int, error)

	ReservationByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	// ReservationsForEquipment filters by status when statuses is non-empty; ordered by start.
	ReservationsForEquipment(ctx context.Context, equipmentID uuid.UUID, statuses ...reservation.Status) ([]*reservation.Reservation, error)
	ReservationsForMember(ctx context.Context, memberID uuid.UUID) ([]*reservation.Reservation, error)
	ReservationsInRange(ctx context.Context, filter RangeFilter) ([]*reservation.Reservation, error)
	CountInRange(ctx context.Context, filter RangeFilter) (int, error)
	// DueForExpiry lists confirmed reservations whose end is at or before now.
	DueForExpiry(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error)
}

type EquipmentRepository interface {
	Create(ctx context.Context, e *equipment.Equipment) error
	Update(ctx context.Context, e *equipment.Equipment) error
	Delete(ctx context.Context, id uuid.UUID) error
	// Lock holds the equipment row for the rest of the transaction so that
	// check-then-insert on its reservations cannot interleave.
	Lock(ctx context.Context, id uuid.UUID) (*equipment.Equipment, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, r *reservation.Reservation) error
	Update(ctx context.Context, r *reservation.Reservation) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteForEquipment(ctx context.Context, equipmentID uuid.UUID) (int, error)
}

// MemberDirectory validates member references owned by the identity layer.
type MemberDirectory interface {
	Exists(ctx context.Context, memberID uuid.UUID) (bool, error)
}

// StateCache memoises projected equipment states. It is never the source of truth.
type StateCache interface {
	// Epoch must be read before the snapshot the cached state is computed from.
	Epoch(ctx context.Context) (int64, error)
	Get(ctx context.Context, equipmentID uuid.UUID) (equipment.State, bool, error)
	// Set is a no-op when Invalidate ran after epoch was read.
	Set(ctx context.Context, equipmentID uuid.UUID, state equipment.State, epoch int64, ttl time.Duration) error
	Invalidate(ctx context.Context, equipmentIDs ...uuid.UUID) error
}
