//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"lab-scheduler/internal/domain/equipment"
	"lab-scheduler/internal/domain/reservation"
	"lab-scheduler/internal/infra/cache"
	"lab-scheduler/internal/infra/memstore"
	"lab-scheduler/internal/infra/readstore"
	"lab-scheduler/internal/pkg/clock"
	"lab-scheduler/internal/pkg/errs"
	"lab-scheduler/internal/usecase/commands"
	"lab-scheduler/internal/usecase/shared"
	"lab-scheduler/tests/common/builder"
	sharedmock "lab-scheduler/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const hour = time.Hour

var (
	testNow = time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	testDay = time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
)

func at(h int) time.Time {
	return testDay.Add(time.Duration(h) * hour)
}

type fixture struct {
	store     *memstore.UoW
	clock     *clock.MockClock
	equipment *equipment.Equipment
	memberID  uuid.UUID
	uc        commands.ReservationCommands
}

func newFixture(t *testing.T, policy commands.ReservationPolicy) *fixture {
	t.Helper()
	f := &fixture{
		store:     memstore.New(),
		clock:     clock.NewMockClock(testNow),
		equipment: builder.NewEquipmentBuilder().MustBuildDomain(),
		memberID:  uuid.New(),
	}
	f.store.Seed(f.equipment)
	f.uc = commands.NewReservationCommands(f.store, readstore.OpenDirectory{}, cache.NoopStateCache{}, f.clock, policy)
	return f
}

func (f *fixture) input(start, end time.Time, status reservation.Status) commands.CreateReservationInput {
	return commands.CreateReservationInput{
		EquipmentID: f.equipment.ID(),
		MemberID:    f.memberID,
		StartAt:     start,
		EndAt:       end,
		Reason:      "Signal acquisition run",
		Status:      status,
	}
}

func (f *fixture) seed(start, end time.Time, status reservation.Status) *reservation.Reservation {
	r := builder.NewReservationBuilder().
		WithEquipment(f.equipment.ID()).
		WithMember(f.memberID).
		WithSlot(start, end).
		WithStatus(status).
		BuildStored()
	f.store.Seed(r)
	return r
}

func (f *fixture) status(t *testing.T, id uuid.UUID) reservation.Status {
	t.Helper()
	var status reservation.Status
	err := f.store.WithinReadOnly(context.Background(), func(ctx context.Context, reads shared.Reads) error {
		r, err := reads.ReservationByID(ctx, id)
		if err != nil {
			return err
		}
		status = r.Status()
		return nil
	})
	require.NoError(t, err)
	return status
}

var directConfirm = commands.ReservationPolicy{AllowDirectConfirm: true, SweepBatchSize: 100}

// =============================================================================
// Create Reservation Tests
// =============================================================================

func TestReservationCommands_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success: status defaults to pending", func(t *testing.T) {
		f := newFixture(t, commands.ReservationPolicy{})

		id, err := f.uc.Create(ctx, f.input(at(10), at(12), ""))

		require.NoError(t, err)
		assert.Equal(t, reservation.StatusPending, f.status(t, id))
	})

	t.Run("success: pending reservations may overlap", func(t *testing.T) {
		f := newFixture(t, directConfirm)
		f.seed(at(10), at(12), reservation.StatusConfirmed)

		_, err := f.uc.Create(ctx, f.input(at(11), at(13), reservation.StatusPending))

		assert.NoError(t, err)
	})

	t.Run("success: back-to-back confirmed slots do not conflict", func(t *testing.T) {
		f := newFixture(t, directConfirm)
		f.seed(at(10), at(12), reservation.StatusConfirmed)

		id, err := f.uc.Create(ctx, f.input(at(12), at(14), reservation.StatusConfirmed))

		require.NoError(t, err)
		assert.Equal(t, reservation.StatusConfirmed, f.status(t, id))
	})

	t.Run("error: overlapping confirmed slot", func(t *testing.T) {
		f := newFixture(t, directConfirm)
		f.seed(at(10), at(12), reservation.StatusConfirmed)

		id, err := f.uc.Create(ctx, f.input(at(11), at(13), reservation.StatusConfirmed))

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrSlotConflict), "got %v", err)
		assert.Equal(t, uuid.Nil, id)
	})

	t.Run("success: cancelled and completed reservations do not block", func(t *testing.T) {
		f := newFixture(t, directConfirm)
		f.seed(at(10), at(12), reservation.StatusCancelled)
		f.seed(at(10), at(12), reservation.StatusCompleted)

		_, err := f.uc.Create(ctx, f.input(at(10), at(12), reservation.StatusConfirmed))

		assert.NoError(t, err)
	})

	t.Run("error: direct confirmation disabled", func(t *testing.T) {
		f := newFixture(t, commands.ReservationPolicy{})

		_, err := f.uc.Create(ctx, f.input(at(10), at(12), reservation.StatusConfirmed))

		v, ok := errs.AsValidation(err)
		require.True(t, ok, "expected validation error, got %v", err)
		assert.Equal(t, "status", v.Fields[0].Field)
	})

	t.Run("error: every invalid field is reported", func(t *testing.T) {
		f := newFixture(t, directConfirm)
		in := f.input(at(12), at(10), reservation.StatusPending)
		in.MemberID = uuid.Nil
		in.EquipmentID = uuid.Nil

		_, err := f.uc.Create(ctx, in)

		v, ok := errs.AsValidation(err)
		require.True(t, ok, "expected validation error, got %v", err)
		var fields []string
		for _, fe := range v.Fields {
			fields = append(fields, fe.Field)
		}
		assert.ElementsMatch(t, []string{"end_at", "equipment_id", "member_id"}, fields)
	})

	t.Run("error: completed status is not creatable", func(t *testing.T) {
		f := newFixture(t, directConfirm)

		_, err := f.uc.Create(ctx, f.input(at(10), at(12), reservation.StatusCompleted))

		assert.True(t, errors.Is(err, errs.ErrValidation), "got %v", err)
	})

	t.Run("error: unknown equipment", func(t *testing.T) {
		f := newFixture(t, directConfirm)
		in := f.input(at(10), at(12), reservation.StatusPending)
		in.EquipmentID = uuid.New()

		_, err := f.uc.Create(ctx, in)

		assert.True(t, errors.Is(err, errs.ErrNotFound), "got %v", err)
	})
}

func TestReservationCommands_Create_MemberDirectory(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		exists    bool
		lookupErr error
		wantErr   bool
	}{
		{name: "success: known member", exists: true},
		{name: "error: unknown member", exists: false, wantErr: true},
		{name: "success: directory failure accepts member", lookupErr: errors.New("directory unavailable")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newFixture(t, directConfirm)
			members := sharedmock.NewMockMemberDirectory(ctrl)
			members.EXPECT().Exists(gomock.Any(), f.memberID).Return(tc.exists, tc.lookupErr)
			uc := commands.NewReservationCommands(f.store, members, cache.NoopStateCache{}, f.clock, directConfirm)

			_, err := uc.Create(ctx, f.input(at(10), at(12), reservation.StatusPending))

			if tc.wantErr {
				v, ok := errs.AsValidation(err)
				require.True(t, ok, "expected validation error, got %v", err)
				assert.Equal(t, "member_id", v.Fields[0].Field)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestReservationCommands_Create_InvalidatesState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, directConfirm)
	stateCache := sharedmock.NewMockStateCache(ctrl)
	stateCache.EXPECT().Invalidate(gomock.Any(), f.equipment.ID()).Return(nil).Times(1)
	uc := commands.NewReservationCommands(f.store, readstore.OpenDirectory{}, stateCache, f.clock, directConfirm)

	_, err := uc.Create(context.Background(), f.input(at(10), at(12), reservation.StatusConfirmed))

	assert.NoError(t, err)
}

func TestReservationCommands_Create_CacheFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, directConfirm)
	stateCache := sharedmock.NewMockStateCache(ctrl)
	stateCache.EXPECT().Invalidate(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
	uc := commands.NewReservationCommands(f.store, readstore.OpenDirectory{}, stateCache, f.clock, directConfirm)

	_, err := uc.Create(context.Background(), f.input(at(10), at(12), reservation.StatusConfirmed))

	assert.NoError(t, err)
}

// =============================================================================
// Status Transition Tests
// =============================================================================

func TestReservationCommands_Confirm(t *testing.T) {
	ctx := context.Background()

	t.Run("success: pending becomes confirmed", func(t *testing.T) {
		f := newFixture(t, commands.ReservationPolicy{})
		r := f.seed(at(10), at(12), reservation.StatusPending)

		require.NoError(t, f.uc.Confirm(ctx, r.ID()))
		assert.Equal(t, reservation.StatusConfirmed, f.status(t, r.ID()))
	})

	t.Run("success: confirming twice is a no-op", func(t *testing.T) {
		f := newFixture(t, commands.ReservationPolicy{})
		r := f.seed(at(10), at(12), reservation.StatusConfirmed)

		assert.NoError(t, f.uc.Confirm(ctx, r.ID()))
	})

	t.Run("error: slot taken since the request was made", func(t *testing.T) {
		f := newFixture(t, commands.ReservationPolicy{})
		f.seed(at(11), at(13), reservation.StatusConfirmed)
		r := f.seed(at(10), at(12), reservation.StatusPending)

		err := f.uc.Confirm(ctx, r.ID())

		assert.True(t, errors.Is(err, errs.ErrSlotConflict), "got %v", err)
		assert.Equal(t, reservation.StatusPending, f.status(t, r.ID()))
	})

	t.Run("error: cancelled reservation", func(t *testing.T) {
		f := newFixture(t, commands.ReservationPolicy{})
		r := f.seed(at(10), at(12), reservation.StatusCancelled)

		err := f.uc.Confirm(ctx, r.ID())

		assert.True(t, errors.Is(err, errs.ErrInvalidTransition), "got %v", err)
	})

	t.Run("error: unknown reservation", func(t *testing.T) {
		f := newFixture(t, commands.ReservationPolicy{})

		err := f.uc.Confirm(ctx, uuid.New())

		assert.True(t, errors.Is(err, errs.ErrNotFound), "got %v", err)
	})
}

func TestReservationCommands_Cancel(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name    string
		from    reservation.Status
		want    reservation.Status
		wantErr error
	}{
		{name: "success: pending", from: reservation.StatusPending, want: reservation.StatusCancelled},
		{name: "success: confirmed", from: reservation.StatusConfirmed, want: reservation.StatusCancelled},
		{name: "success: already cancelled", from: reservation.StatusCancelled, want: reservation.StatusCancelled},
		{name: "error: completed", from: reservation.StatusCompleted, want: reservation.StatusCompleted, wantErr: errs.ErrInvalidTransition},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, commands.ReservationPolicy{})
			r := f.seed(at(10), at(12), tc.from)

			err := f.uc.Cancel(ctx, r.ID())

			if tc.wantErr != nil {
				assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.want, f.status(t, r.ID()))
		})
	}
}

func TestReservationCommands_Cancel_FreesSlot(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, directConfirm)
	r := f.seed(at(10), at(12), reservation.StatusConfirmed)

	require.NoError(t, f.uc.Cancel(ctx, r.ID()))
	_, err := f.uc.Create(ctx, f.input(at(10), at(12), reservation.StatusConfirmed))

	assert.NoError(t, err)
}

func TestReservationCommands_Expire(t *testing.T) {
	ctx := context.Background()

	t.Run("error: slot has not ended", func(t *testing.T) {
		f := newFixture(t, commands.ReservationPolicy{})
		r := f.seed(at(10), at(12), reservation.StatusConfirmed)

		err := f.uc.Expire(ctx, r.ID())

		assert.True(t, errors.Is(err, errs.ErrInvalidTransition), "got %v", err)
	})

	t.Run("success: ended slot is completed", func(t *testing.T) {
		f := newFixture(t, commands.ReservationPolicy{})
		r := f.seed(at(10), at(12), reservation.StatusConfirmed)
		f.clock.Set(at(12))

		require.NoError(t, f.uc.Expire(ctx, r.ID()))
		assert.Equal(t, reservation.StatusCompleted, f.status(t, r.ID()))
	})

	t.Run("error: pending reservations never complete", func(t *testing.T) {
		f := newFixture(t, commands.ReservationPolicy{})
		r := f.seed(at(10), at(12), reservation.StatusPending)
		f.clock.Set(at(13))

		err := f.uc.Expire(ctx, r.ID())

		assert.True(t, errors.Is(err, errs.ErrInvalidTransition), "got %v", err)
	})
}

func TestReservationCommands_ExpireDue(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, commands.ReservationPolicy{SweepBatchSize: 10})
	ended1 := f.seed(at(8), at(9), reservation.StatusConfirmed)
	ended2 := f.seed(at(10), at(12), reservation.StatusConfirmed)
	future := f.seed(at(14), at(16), reservation.StatusConfirmed)
	pending := f.seed(at(9), at(10), reservation.StatusPending)
	f.clock.Set(at(13))

	result, err := f.uc.ExpireDue(ctx)

	require.NoError(t, err)
	assert.Equal(t, commands.SweepResult{Expired: 2}, result)
	assert.Equal(t, reservation.StatusCompleted, f.status(t, ended1.ID()))
	assert.Equal(t, reservation.StatusCompleted, f.status(t, ended2.ID()))
	assert.Equal(t, reservation.StatusConfirmed, f.status(t, future.ID()))
	assert.Equal(t, reservation.StatusPending, f.status(t, pending.ID()))

	again, err := f.uc.ExpireDue(ctx)
	require.NoError(t, err)
	assert.Equal(t, commands.SweepResult{}, again)
}

func TestReservationCommands_ExpireDue_Cancelled(t *testing.T) {
	f := newFixture(t, commands.ReservationPolicy{SweepBatchSize: 10})
	f.clock.Set(at(13))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.uc.ExpireDue(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

// =============================================================================
// Reschedule / Delete Tests
// =============================================================================

func TestReservationCommands_Reschedule(t *testing.T) {
	ctx := context.Background()

	t.Run("success: confirmed moves to a free slot", func(t *testing.T) {
		f := newFixture(t, commands.ReservationPolicy{})
		f.seed(at(10), at(12), reservation.StatusConfirmed)
		r := f.seed(at(13), at(14), reservation.StatusConfirmed)

		assert.NoError(t, f.uc.Reschedule(ctx, r.ID(), at(12), at(13)))
	})

	t.Run("success: a reservation may shrink inside its own slot", func(t *testing.T) {
		f := newFixture(t, commands.ReservationPolicy{})
		r := f.seed(at(10), at(12), reservation.StatusConfirmed)

		assert.NoError(t, f.uc.Reschedule(ctx, r.ID(), at(10), at(11)))
	})

	t.Run("error: confirmed moves onto another confirmed", func(t *testing.T) {
		f := newFixture(t, commands.ReservationPolicy{})
		f.seed(at(10), at(12), reservation.StatusConfirmed)
		r := f.seed(at(13), at(14), reservation.StatusConfirmed)

		err := f.uc.Reschedule(ctx, r.ID(), at(11), at(14))

		assert.True(t, errors.Is(err, errs.ErrSlotConflict), "got %v", err)
	})

	t.Run("error: terminal reservation", func(t *testing.T) {
		f := newFixture(t, commands.ReservationPolicy{})
		r := f.seed(at(10), at(12), reservation.StatusCancelled)

		err := f.uc.Reschedule(ctx, r.ID(), at(13), at(14))

		assert.True(t, errors.Is(err, errs.ErrInvalidTransition), "got %v", err)
	})

	t.Run("error: inverted slot", func(t *testing.T) {
		f := newFixture(t, commands.ReservationPolicy{})
		r := f.seed(at(10), at(12), reservation.StatusPending)

		err := f.uc.Reschedule(ctx, r.ID(), at(14), at(13))

		assert.True(t, errors.Is(err, errs.ErrValidation), "got %v", err)
	})
}

func TestReservationCommands_Delete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, commands.ReservationPolicy{})
	r := f.seed(at(10), at(12), reservation.StatusConfirmed)

	require.NoError(t, f.uc.Delete(ctx, r.ID()))

	err := f.uc.Delete(ctx, r.ID())
	assert.True(t, errors.Is(err, errs.ErrNotFound), "got %v", err)
}
