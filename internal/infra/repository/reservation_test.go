//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"lab-scheduler/internal/infra"
	"lab-scheduler/internal/infra/repository"
	"lab-scheduler/internal/infra/sqlc"
	"lab-scheduler/tests/common/builder"
	repositorymock "lab-scheduler/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Reservation Tests
// =============================================================================

func TestReservationRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		dbErr      error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: reservation created"},
		{
			name:       "error: overlapping confirmed slot rejected by exclusion constraint",
			dbErr:      &pgconn.PgError{Code: "23P01", Message: "conflicting key value violates exclusion constraint"},
			expectKind: infra.KindConflict,
		},
		{
			name:       "error: equipment row missing",
			dbErr:      &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"},
			expectKind: infra.KindForeignKeyViolated,
		},
		{
			name:       "error: database error occurs",
			dbErr:      errors.New("database connection error"),
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries, mockDB)
			res, err := builder.NewReservationBuilder().BuildDomain()
			require.NoError(t, err)

			mockQueries.EXPECT().CreateReservation(ctx, mockDB, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateReservationParams) error {
					assert.Equal(t, res.ID(), arg.ID)
					assert.Equal(t, res.TimeSlot().Start(), arg.StartAt.Time)
					assert.Equal(t, res.TimeSlot().End(), arg.EndAt.Time)
					assert.Equal(t, "confirmed", arg.Status)
					return tc.dbErr
				})

			err = repo.Create(ctx, res)

			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// =============================================================================
// Update / Delete Reservation Tests
// =============================================================================

func TestReservationRepository_Update(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		affected   int64
		dbErr      error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: reservation updated", affected: 1},
		{name: "error: reservation not found", expectKind: infra.KindNotFound},
		{
			name:       "error: reschedule onto a confirmed slot",
			dbErr:      &pgconn.PgError{Code: "23P01"},
			expectKind: infra.KindConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries, mockDB)
			res := builder.NewReservationBuilder().BuildStored()
			mockQueries.EXPECT().UpdateReservation(ctx, mockDB, gomock.Any()).Return(tc.affected, tc.dbErr)

			err := repo.Update(ctx, res)

			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReservationRepository_Delete(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewReservationRepository(mockQueries, mockDB)
	id := uuid.New()

	mockQueries.EXPECT().DeleteReservation(ctx, mockDB, id).Return(int64(1), nil)
	assert.NoError(t, repo.Delete(ctx, id))

	mockQueries.EXPECT().DeleteReservation(ctx, mockDB, id).Return(int64(0), nil)
	err := repo.Delete(ctx, id)
	assert.True(t, infra.IsKind(err, infra.KindNotFound), "got %v", err)
}

func TestReservationRepository_DeleteForEquipment(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewReservationRepository(mockQueries, mockDB)
	equipmentID := uuid.New()

	mockQueries.EXPECT().DeleteReservationsByEquipment(ctx, mockDB, equipmentID).Return(int64(3), nil)
	n, err := repo.DeleteForEquipment(ctx, equipmentID)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	mockQueries.EXPECT().DeleteReservationsByEquipment(ctx, mockDB, equipmentID).Return(int64(0), errors.New("boom"))
	_, err = repo.DeleteForEquipment(ctx, equipmentID)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure), "got %v", err)
}
