//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"lab-scheduler/internal/domain/equipment"
	"lab-scheduler/internal/infra"
	"lab-scheduler/internal/infra/readstore"
	"lab-scheduler/internal/infra/sqlc"
	"lab-scheduler/internal/usecase/shared"
	"lab-scheduler/tests/common/builder"
	readstoremock "lab-scheduler/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEquipmentReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	row := builder.NewEquipmentBuilder().BuildInfra()

	tests := []struct {
		name       string
		mockReturn sqlc.Equipment
		mockError  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success", mockReturn: row},
		{name: "not found", mockError: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "database error", mockError: assert.AnError, expectKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockEquipmentReadQueries(ctrl)
			db := &fakeDB{}
			store := readstore.NewEquipmentReadStore(mockQueries, db)
			mockQueries.EXPECT().GetEquipmentByID(ctx, db, row.ID).Return(tt.mockReturn, tt.mockError)

			e, err := store.FindByID(ctx, row.ID)

			if tt.expectKind != "" {
				assert.True(t, infra.IsKind(err, tt.expectKind), "expected kind [%v] but got (%v)", tt.expectKind, err)
				assert.Nil(t, e)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, row.ID, e.ID())
			assert.Equal(t, row.Name, e.Name())
			require.NotNil(t, e.Location())
			assert.Equal(t, row.Location.String, *e.Location())
		})
	}
}

func TestEquipmentReadStore_List(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 15, 11, 0, 0, 0, time.UTC)
	reserved := equipment.StateReserved
	free := equipment.StateFree
	maintenance := equipment.StateInMaintenance
	lab := equipment.CategoryLab
	team := uuid.New()

	tests := []struct {
		name         string
		filter       shared.EquipmentFilter
		wantWhere    []string
		wantNotWhere []string
		wantTail     string
	}{
		{
			name:      "no filter sorts by name",
			filter:    shared.EquipmentFilter{},
			wantTail:  "ORDER BY name, id LIMIT 50",
			wantWhere: []string{"FROM equipment"},
		},
		{
			name:      "category, team and search",
			filter:    shared.EquipmentFilter{Category: &lab, TeamID: &team, NameContains: "50%", Location: "B"},
			wantWhere: []string{"category = $1", "team_id = $2", "name ILIKE $3", "location ILIKE $4"},
		},
		{
			name:      "projected reserve needs an active confirmed slot",
			filter:    shared.EquipmentFilter{State: &reserved, Now: now},
			wantWhere: []string{"state = $1", "EXISTS (SELECT 1 FROM reservations r"},
		},
		{
			name:      "projected libre excludes active slots",
			filter:    shared.EquipmentFilter{State: &free, Now: now},
			wantWhere: []string{"state = $1", "NOT EXISTS (SELECT 1 FROM reservations r"},
		},
		{
			name:         "administrative states compare the column only",
			filter:       shared.EquipmentFilter{State: &maintenance, Now: now},
			wantWhere:    []string{"state = $1"},
			wantNotWhere: []string{"EXISTS"},
		},
		{
			name:     "descending page",
			filter:   shared.EquipmentFilter{SortBy: shared.SortByCreatedAt, SortDesc: true, Limit: 5, Offset: 10},
			wantTail: "ORDER BY created_at DESC, id LIMIT 5 OFFSET 10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockEquipmentReadQueries(ctrl)
			db := &fakeDB{}
			store := readstore.NewEquipmentReadStore(mockQueries, db)
			row := builder.NewEquipmentBuilder().BuildInfra()

			var countSQL, listSQL string
			mockQueries.EXPECT().Count(ctx, db, gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, query string, _ ...interface{}) (int64, error) {
					countSQL = query
					return 7, nil
				})
			mockQueries.EXPECT().ListEquipment(ctx, db, gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, query string, _ ...interface{}) ([]sqlc.Equipment, error) {
					listSQL = query
					return []sqlc.Equipment{row}, nil
				})

			items, total, err := store.List(ctx, tt.filter)

			require.NoError(t, err)
			assert.Equal(t, 7, total)
			require.Len(t, items, 1)
			assert.Contains(t, countSQL, "SELECT count(*) FROM equipment")
			for _, w := range tt.wantWhere {
				assert.Contains(t, listSQL, w)
				assert.Contains(t, countSQL, w)
			}
			for _, w := range tt.wantNotWhere {
				assert.NotContains(t, listSQL, w)
			}
			if tt.wantTail != "" {
				assert.Contains(t, listSQL, tt.wantTail)
			}
		})
	}
}

func TestEquipmentReadStore_List_CountFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockEquipmentReadQueries(ctrl)
	store := readstore.NewEquipmentReadStore(mockQueries, &fakeDB{})
	mockQueries.EXPECT().Count(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("boom"))

	_, _, err := store.List(context.Background(), shared.EquipmentFilter{})

	assert.True(t, infra.IsKind(err, infra.KindDBFailure), "got %v", err)
}

type fakeDB struct{}

func (f *fakeDB) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (f *fakeDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, nil
}

func (f *fakeDB) QueryRow(context.Context, string, ...any) pgx.Row {
	panic("fakeDB.QueryRow was called unexpectedly. Use the query mock instead.")
}
