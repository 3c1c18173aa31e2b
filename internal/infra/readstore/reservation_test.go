//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"lab-scheduler/internal/domain/reservation"
	"lab-scheduler/internal/infra"
	"lab-scheduler/internal/infra/readstore"
	"lab-scheduler/internal/infra/sqlc"
	"lab-scheduler/internal/usecase/shared"
	"lab-scheduler/tests/common/builder"
	readstoremock "lab-scheduler/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReservationReadStore_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockReservationReadQueries(ctrl)
		db := &fakeDB{}
		store := readstore.NewReservationReadStore(mockQueries, db)
		b := builder.NewReservationBuilder()
		mockQueries.EXPECT().GetReservationByID(ctx, db, b.ID).Return(b.BuildInfra(), nil)

		r, err := store.FindByID(ctx, b.ID)

		require.NoError(t, err)
		assert.Equal(t, b.Start, r.TimeSlot().Start())
		assert.Equal(t, b.End, r.TimeSlot().End())
		assert.Equal(t, reservation.StatusConfirmed, r.Status())
		assert.Equal(t, b.Reason, r.Reason().String())
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockReservationReadQueries(ctrl)
		store := readstore.NewReservationReadStore(mockQueries, &fakeDB{})
		mockQueries.EXPECT().GetReservationByID(gomock.Any(), gomock.Any(), gomock.Any()).Return(sqlc.Reservation{}, pgx.ErrNoRows)

		_, err := store.FindByID(ctx, uuid.New())

		assert.True(t, infra.IsKind(err, infra.KindNotFound), "got %v", err)
	})

	t.Run("corrupt row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockReservationReadQueries(ctrl)
		store := readstore.NewReservationReadStore(mockQueries, &fakeDB{})
		row := builder.NewReservationBuilder().BuildInfra()
		row.Status = "archived"
		mockQueries.EXPECT().GetReservationByID(gomock.Any(), gomock.Any(), row.ID).Return(row, nil)

		_, err := store.FindByID(ctx, row.ID)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure), "got %v", err)
	})
}

func TestReservationReadStore_ListForEquipment(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockReservationReadQueries(ctrl)
	db := &fakeDB{}
	store := readstore.NewReservationReadStore(mockQueries, db)
	equipmentID := uuid.New()
	rows := []sqlc.Reservation{
		builder.NewReservationBuilder().WithEquipment(equipmentID).BuildInfra(),
		builder.NewReservationBuilder().WithEquipment(equipmentID).BuildInfra(),
	}
	mockQueries.EXPECT().ListReservationsByEquipment(ctx, db, sqlc.ListReservationsByEquipmentParams{
		EquipmentID: equipmentID,
		Statuses:    []string{"confirmed"},
	}).Return(rows, nil)

	got, err := store.ListForEquipment(ctx, equipmentID, reservation.StatusConfirmed)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, rows[0].ID, got[0].ID())
}

func TestReservationReadStore_ListInRange(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockReservationReadQueries(ctrl)
	db := &fakeDB{}
	store := readstore.NewReservationReadStore(mockQueries, db)
	equipmentID := uuid.New()
	filter := shared.RangeFilter{
		EquipmentID: &equipmentID,
		Start:       time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		End:         time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		Statuses:    []reservation.Status{reservation.StatusConfirmed, reservation.StatusCompleted},
	}

	var listSQL, countSQL string
	var listArgs []interface{}
	mockQueries.EXPECT().ListReservations(ctx, db, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, query string, args ...interface{}) ([]sqlc.Reservation, error) {
			listSQL, listArgs = query, args
			return nil, nil
		})
	mockQueries.EXPECT().Count(ctx, db, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, query string, _ ...interface{}) (int64, error) {
			countSQL = query
			return 4, nil
		})

	rs, err := store.ListInRange(ctx, filter)
	require.NoError(t, err)
	assert.Empty(t, rs)
	n, err := store.CountInRange(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	for _, q := range []string{listSQL, countSQL} {
		assert.Contains(t, q, "start_at < $1")
		assert.Contains(t, q, "end_at > $2")
		assert.Contains(t, q, "equipment_id = $3")
		assert.Contains(t, q, "status IN ($4,$5)")
	}
	assert.Contains(t, listSQL, "ORDER BY start_at, id")
	assert.Len(t, listArgs, 5)
}

func TestReservationReadStore_DueForExpiry(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockReservationReadQueries(ctrl)
	db := &fakeDB{}
	store := readstore.NewReservationReadStore(mockQueries, db)
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	mockQueries.EXPECT().ListDueForExpiry(ctx, db, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.ListDueForExpiryParams) ([]uuid.UUID, error) {
			assert.Equal(t, now, arg.Now.Time)
			assert.Equal(t, int32(shared.DefaultListLimit), arg.Limit)
			return ids, nil
		})

	got, err := store.DueForExpiry(ctx, now, 0)

	require.NoError(t, err)
	assert.Equal(t, ids, got)
}
