//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"lab-scheduler/internal/domain/equipment"
	"lab-scheduler/internal/domain/reservation"
	"lab-scheduler/internal/infra/cache"
	"lab-scheduler/internal/infra/memstore"
	"lab-scheduler/internal/pkg/clock"
	"lab-scheduler/internal/pkg/errs"
	"lab-scheduler/internal/usecase/queries"
	"lab-scheduler/internal/usecase/shared"
	"lab-scheduler/tests/common/builder"
	sharedmock "lab-scheduler/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 1, 15, 11, 0, 0, 0, time.UTC)

func at(hour int) time.Time {
	return time.Date(2025, 1, 15, hour, 0, 0, 0, time.UTC)
}

func reservationOn(e *equipment.Equipment, start, end time.Time, status reservation.Status) *reservation.Reservation {
	return builder.NewReservationBuilder().
		WithEquipment(e.ID()).
		WithSlot(start, end).
		WithStatus(status).
		BuildStored()
}

func TestEquipmentQueries_GetByID_ProjectedState(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		stored    equipment.State
		slots     func(e *equipment.Equipment) []*reservation.Reservation
		wantState equipment.State
	}{
		{
			name:      "libre without reservations",
			stored:    equipment.StateFree,
			slots:     func(*equipment.Equipment) []*reservation.Reservation { return nil },
			wantState: equipment.StateFree,
		},
		{
			name:   "reserve while a confirmed slot covers now",
			stored: equipment.StateFree,
			slots: func(e *equipment.Equipment) []*reservation.Reservation {
				return []*reservation.Reservation{reservationOn(e, at(10), at(12), reservation.StatusConfirmed)}
			},
			wantState: equipment.StateReserved,
		},
		{
			name:   "libre when the slot ends exactly now",
			stored: equipment.StateFree,
			slots: func(e *equipment.Equipment) []*reservation.Reservation {
				return []*reservation.Reservation{reservationOn(e, at(9), at(11), reservation.StatusConfirmed)}
			},
			wantState: equipment.StateFree,
		},
		{
			name:   "pending slots do not occupy",
			stored: equipment.StateFree,
			slots: func(e *equipment.Equipment) []*reservation.Reservation {
				return []*reservation.Reservation{reservationOn(e, at(10), at(12), reservation.StatusPending)}
			},
			wantState: equipment.StateFree,
		},
		{
			name:   "maintenance wins over an active reservation",
			stored: equipment.StateInMaintenance,
			slots: func(e *equipment.Equipment) []*reservation.Reservation {
				return []*reservation.Reservation{reservationOn(e, at(10), at(12), reservation.StatusConfirmed)}
			},
			wantState: equipment.StateInMaintenance,
		},
		{
			name:      "out of service stays out of service",
			stored:    equipment.StateOutOfService,
			slots:     func(*equipment.Equipment) []*reservation.Reservation { return nil },
			wantState: equipment.StateOutOfService,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := memstore.New()
			e := builder.NewEquipmentBuilder().WithState(string(tc.stored)).MustBuildDomain()
			store.Seed(e)
			for _, r := range tc.slots(e) {
				store.Seed(r)
			}
			q := queries.NewEquipmentQueries(store, cache.NoopStateCache{}, clock.NewMockClock(testNow))

			view, err := q.GetByID(ctx, e.ID())

			require.NoError(t, err)
			assert.Equal(t, tc.wantState.String(), view.State)
			assert.Equal(t, tc.stored.String(), view.StoredState)
		})
	}
}

func TestEquipmentQueries_GetByID_NotFound(t *testing.T) {
	q := queries.NewEquipmentQueries(memstore.New(), cache.NoopStateCache{}, clock.NewMockClock(testNow))

	_, err := q.GetByID(context.Background(), uuid.New())

	assert.True(t, errors.Is(err, errs.ErrNotFound), "got %v", err)
}

func TestEquipmentQueries_StateCache(t *testing.T) {
	ctx := context.Background()

	t.Run("hit skips the reservations", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := memstore.New()
		e := builder.NewEquipmentBuilder().MustBuildDomain()
		store.Seed(e)
		stateCache := sharedmock.NewMockStateCache(ctrl)
		stateCache.EXPECT().Epoch(gomock.Any()).Return(int64(0), nil)
		stateCache.EXPECT().Get(gomock.Any(), e.ID()).Return(equipment.StateReserved, true, nil)
		q := queries.NewEquipmentQueries(store, stateCache, clock.NewMockClock(testNow))

		view, err := q.GetByID(ctx, e.ID())

		require.NoError(t, err)
		assert.Equal(t, equipment.StateReserved.String(), view.State)
	})

	t.Run("miss stores the state until the next boundary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := memstore.New()
		e := builder.NewEquipmentBuilder().MustBuildDomain()
		store.Seed(e, reservationOn(e, at(10), at(12), reservation.StatusConfirmed))
		stateCache := sharedmock.NewMockStateCache(ctrl)
		gomock.InOrder(
			stateCache.EXPECT().Epoch(gomock.Any()).Return(int64(7), nil),
			stateCache.EXPECT().Get(gomock.Any(), e.ID()).Return(equipment.State(""), false, nil),
			stateCache.EXPECT().Set(gomock.Any(), e.ID(), equipment.StateReserved, int64(7), time.Hour).Return(nil),
		)
		q := queries.NewEquipmentQueries(store, stateCache, clock.NewMockClock(testNow))

		view, err := q.GetByID(ctx, e.ID())

		require.NoError(t, err)
		assert.Equal(t, equipment.StateReserved.String(), view.State)
	})

	t.Run("cache errors fall back to computing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := memstore.New()
		e := builder.NewEquipmentBuilder().MustBuildDomain()
		store.Seed(e)
		stateCache := sharedmock.NewMockStateCache(ctrl)
		stateCache.EXPECT().Epoch(gomock.Any()).Return(int64(0), nil)
		stateCache.EXPECT().Get(gomock.Any(), e.ID()).Return(equipment.State(""), false, errors.New("redis down"))
		stateCache.EXPECT().Set(gomock.Any(), e.ID(), equipment.StateFree, int64(0), time.Duration(0)).Return(errors.New("redis down"))
		q := queries.NewEquipmentQueries(store, stateCache, clock.NewMockClock(testNow))

		view, err := q.GetByID(ctx, e.ID())

		require.NoError(t, err)
		assert.Equal(t, equipment.StateFree.String(), view.State)
	})

	t.Run("epoch read failure computes without storing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := memstore.New()
		e := builder.NewEquipmentBuilder().MustBuildDomain()
		store.Seed(e, reservationOn(e, at(10), at(12), reservation.StatusConfirmed))
		stateCache := sharedmock.NewMockStateCache(ctrl)
		stateCache.EXPECT().Epoch(gomock.Any()).Return(int64(0), errors.New("redis down"))
		stateCache.EXPECT().Get(gomock.Any(), e.ID()).Return(equipment.State(""), false, nil)
		q := queries.NewEquipmentQueries(store, stateCache, clock.NewMockClock(testNow))

		view, err := q.GetByID(ctx, e.ID())

		require.NoError(t, err)
		assert.Equal(t, equipment.StateReserved.String(), view.State)
	})

	t.Run("blocking states never read or write entries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := memstore.New()
		e := builder.NewEquipmentBuilder().WithState(string(equipment.StateOutOfService)).MustBuildDomain()
		store.Seed(e)
		stateCache := sharedmock.NewMockStateCache(ctrl)
		stateCache.EXPECT().Epoch(gomock.Any()).Return(int64(0), nil)
		q := queries.NewEquipmentQueries(store, stateCache, clock.NewMockClock(testNow))

		_, err := q.GetByID(ctx, e.ID())

		assert.NoError(t, err)
	})
}

// epochCache keeps entries in memory with the same epoch rule as the redis cache.
type epochCache struct {
	epoch  int64
	states map[uuid.UUID]equipment.State
}

func newEpochCache() *epochCache {
	return &epochCache{states: map[uuid.UUID]equipment.State{}}
}

func (c *epochCache) Epoch(context.Context) (int64, error) { return c.epoch, nil }

func (c *epochCache) Get(_ context.Context, id uuid.UUID) (equipment.State, bool, error) {
	state, ok := c.states[id]
	return state, ok, nil
}

func (c *epochCache) Set(_ context.Context, id uuid.UUID, state equipment.State, epoch int64, _ time.Duration) error {
	if epoch == c.epoch {
		c.states[id] = state
	}
	return nil
}

func (c *epochCache) Invalidate(_ context.Context, ids ...uuid.UUID) error {
	c.epoch++
	for _, id := range ids {
		delete(c.states, id)
	}
	return nil
}

// interleavedUoW runs afterReservations once the snapshot has served the
// reservation list, standing in for a writer that commits at that moment.
type interleavedUoW struct {
	*memstore.UoW
	afterReservations func(ctx context.Context)
}

func (u *interleavedUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads shared.Reads) error) error {
	return u.UoW.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		return fn(ctx, interleavedReads{Reads: reads, after: u.afterReservations})
	})
}

type interleavedReads struct {
	shared.Reads
	after func(ctx context.Context)
}

func (r interleavedReads) ReservationsForEquipment(ctx context.Context, equipmentID uuid.UUID, statuses ...reservation.Status) ([]*reservation.Reservation, error) {
	out, err := r.Reads.ReservationsForEquipment(ctx, equipmentID, statuses...)
	if r.after != nil {
		r.after(ctx)
	}
	return out, err
}

func TestEquipmentQueries_StateCache_WriteDuringProjection(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	e := builder.NewEquipmentBuilder().MustBuildDomain()
	store.Seed(e)
	stateCache := newEpochCache()

	// The reservation commits after the reader's snapshot and invalidates
	// before the reader gets to store what it computed.
	committed := false
	uow := &interleavedUoW{UoW: store, afterReservations: func(ctx context.Context) {
		if committed {
			return
		}
		committed = true
		require.NoError(t, stateCache.Invalidate(ctx, e.ID()))
	}}
	q := queries.NewEquipmentQueries(uow, stateCache, clock.NewMockClock(testNow))

	stale, err := q.GetByID(ctx, e.ID())
	require.NoError(t, err)
	assert.Equal(t, equipment.StateFree.String(), stale.State)
	_, cached, _ := stateCache.Get(ctx, e.ID())
	assert.False(t, cached, "a state computed before the invalidation must not be stored")

	store.Seed(reservationOn(e, at(10), at(12), reservation.StatusConfirmed))

	fresh, err := q.GetByID(ctx, e.ID())
	require.NoError(t, err)
	assert.Equal(t, equipment.StateReserved.String(), fresh.State)
	state, cached, _ := stateCache.Get(ctx, e.ID())
	assert.True(t, cached)
	assert.Equal(t, equipment.StateReserved, state)
}

func TestEquipmentQueries_ListFiltered(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()

	busy := builder.NewEquipmentBuilder().WithName("Laser cutter").MustBuildDomain()
	idle := builder.NewEquipmentBuilder().WithName("3D printer").WithCategory(string(equipment.CategoryPrinter)).MustBuildDomain()
	broken := builder.NewEquipmentBuilder().WithName("Centrifuge").WithState(string(equipment.StateOutOfService)).MustBuildDomain()
	store.Seed(busy, idle, broken, reservationOn(busy, at(10), at(12), reservation.StatusConfirmed))

	q := queries.NewEquipmentQueries(store, cache.NoopStateCache{}, clock.NewMockClock(testNow))

	reserved := equipment.StateReserved
	free := equipment.StateFree
	lab := equipment.CategoryLab

	testCases := []struct {
		name      string
		filter    shared.EquipmentFilter
		wantNames []string
		wantTotal int
	}{
		{
			name:      "all sorted by name",
			filter:    shared.EquipmentFilter{SortBy: shared.SortByName},
			wantNames: []string{"3D printer", "Centrifuge", "Laser cutter"},
			wantTotal: 3,
		},
		{
			name:      "projected reserve",
			filter:    shared.EquipmentFilter{State: &reserved},
			wantNames: []string{"Laser cutter"},
			wantTotal: 1,
		},
		{
			name:      "projected libre excludes occupied",
			filter:    shared.EquipmentFilter{State: &free},
			wantNames: []string{"3D printer"},
			wantTotal: 1,
		},
		{
			name:      "category",
			filter:    shared.EquipmentFilter{Category: &lab, SortBy: shared.SortByName},
			wantNames: []string{"Centrifuge", "Laser cutter"},
			wantTotal: 2,
		},
		{
			name:      "name search is case-insensitive",
			filter:    shared.EquipmentFilter{NameContains: "LASER"},
			wantNames: []string{"Laser cutter"},
			wantTotal: 1,
		},
		{
			name:      "page keeps the full total",
			filter:    shared.EquipmentFilter{SortBy: shared.SortByName, Limit: 1, Offset: 1},
			wantNames: []string{"Centrifuge"},
			wantTotal: 3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			page, err := q.ListFiltered(ctx, tc.filter)

			require.NoError(t, err)
			names := make([]string, len(page.Items))
			for i, v := range page.Items {
				names[i] = v.Name
			}
			assert.Equal(t, tc.wantNames, names)
			assert.Equal(t, tc.wantTotal, page.Total)
		})
	}
}

func TestEquipmentQueries_ListFiltered_DefaultLimit(t *testing.T) {
	q := queries.NewEquipmentQueries(memstore.New(), cache.NoopStateCache{}, clock.NewMockClock(testNow))

	page, err := q.ListFiltered(context.Background(), shared.EquipmentFilter{Limit: 10_000, Offset: -3})

	require.NoError(t, err)
	assert.Equal(t, shared.MaxListLimit, page.Limit)
	assert.Equal(t, 0, page.Offset)
	assert.Empty(t, page.Items)
}
