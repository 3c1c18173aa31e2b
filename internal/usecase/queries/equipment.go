package queries

import (
	"context"
	"log/slog"
	"time"

	"lab-scheduler/internal/domain/equipment"
	"lab-scheduler/internal/domain/reservation"
	"lab-scheduler/internal/pkg/clock"
	"lab-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

type EquipmentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*EquipmentView, error)
	ListFiltered(ctx context.Context, filter shared.EquipmentFilter) (*EquipmentPage, error)
}

type equipmentQueriesImpl struct {
	uow   shared.UnitOfWork
	cache shared.StateCache
	clock clock.Clock
}

func NewEquipmentQueries(uow shared.UnitOfWork, cache shared.StateCache, clk clock.Clock) EquipmentQueries {
	return &equipmentQueriesImpl{uow: uow, cache: cache, clock: clk}
}

func (q *equipmentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*EquipmentView, error) {
	p := q.newProjection(ctx)
	var view *EquipmentView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		e, err := reads.EquipmentByID(ctx, id)
		if err != nil {
			return err
		}
		state, err := q.project(ctx, reads, e, p)
		if err != nil {
			return err
		}
		view = ToEquipmentView(e, state)
		return nil
	})
	if err != nil {
		return nil, shared.TranslateErr(err)
	}
	return view, nil
}

func (q *equipmentQueriesImpl) ListFiltered(ctx context.Context, filter shared.EquipmentFilter) (*EquipmentPage, error) {
	p := q.newProjection(ctx)
	filter.Now = p.now
	filter.Limit = shared.ValidateLimit(filter.Limit)
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	page := &EquipmentPage{Limit: filter.Limit, Offset: filter.Offset}
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		items, total, err := reads.ListEquipment(ctx, filter)
		if err != nil {
			return err
		}
		page.Total = total
		page.Items = make([]*EquipmentView, 0, len(items))
		for _, e := range items {
			state, err := q.project(ctx, reads, e, p)
			if err != nil {
				return err
			}
			page.Items = append(page.Items, ToEquipmentView(e, state))
		}
		return nil
	})
	if err != nil {
		return nil, shared.TranslateErr(err)
	}
	return page, nil
}

type projection struct {
	now      time.Time
	epoch    int64
	canStore bool
}

// newProjection reads the cache epoch before any snapshot is opened. A write
// committed after that point bumps the epoch and the stale Set is refused.
func (q *equipmentQueriesImpl) newProjection(ctx context.Context) projection {
	p := projection{now: q.clock.Now()}
	epoch, err := q.cache.Epoch(ctx)
	if err != nil {
		slog.Warn("equipment state cache epoch read failed", "error", err.Error())
		return p
	}
	p.epoch, p.canStore = epoch, true
	return p
}

// project resolves the current state, going to the reservations only on a
// cache miss. Cached entries expire at the next reservation boundary.
func (q *equipmentQueriesImpl) project(ctx context.Context, reads shared.Reads, e *equipment.Equipment, p projection) (equipment.State, error) {
	if e.State().Blocks() {
		return e.State(), nil
	}

	if state, ok, err := q.cache.Get(ctx, e.ID()); err != nil {
		slog.Warn("equipment state cache read failed", "equipment_id", e.ID(), "error", err.Error())
	} else if ok {
		return state, nil
	}

	confirmed, err := reads.ReservationsForEquipment(ctx, e.ID(), reservation.StatusConfirmed)
	if err != nil {
		return "", err
	}
	occupied, next := reservation.Occupancy(confirmed, p.now)
	state := equipment.Project(e.State(), occupied)
	if !p.canStore {
		return state, nil
	}

	var ttl time.Duration
	if !next.IsZero() {
		ttl = next.Sub(p.now)
	}
	if err := q.cache.Set(ctx, e.ID(), state, p.epoch, ttl); err != nil {
		slog.Warn("equipment state cache write failed", "equipment_id", e.ID(), "error", err.Error())
	}
	return state, nil
}
