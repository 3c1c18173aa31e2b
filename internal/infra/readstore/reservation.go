package readstore

import (
	"context"
	"time"

	"lab-scheduler/internal/domain/reservation"
	"lab-scheduler/internal/infra"
	"lab-scheduler/internal/infra/repository/converter"
	"lab-scheduler/internal/infra/sqlc"
	"lab-scheduler/internal/pkg/pgconv"
	"lab-scheduler/internal/usecase/shared"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type ReservationReadQueries interface {
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservation, error)
	ListReservationsByEquipment(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByEquipmentParams) ([]sqlc.Reservation, error)
	ListReservationsByMember(ctx context.Context, db sqlc.DBTX, memberID uuid.UUID) ([]sqlc.Reservation, error)
	ListDueForExpiry(ctx context.Context, db sqlc.DBTX, arg sqlc.ListDueForExpiryParams) ([]uuid.UUID, error)
	ListReservations(ctx context.Context, db sqlc.DBTX, query string, args ...interface{}) ([]sqlc.Reservation, error)
	Count(ctx context.Context, db sqlc.DBTX, query string, args ...interface{}) (int64, error)
}

type ReservationReadStore struct {
	queries ReservationReadQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationReadQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	res, err := converter.ReservationFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode reservation", err)
	}
	return res, nil
}

func (r *ReservationReadStore) ListForEquipment(ctx context.Context, equipmentID uuid.UUID, statuses ...reservation.Status) ([]*reservation.Reservation, error) {
	params := sqlc.ListReservationsByEquipmentParams{
		EquipmentID: equipmentID,
		Statuses:    statusStrings(statuses),
	}
	rows, err := r.queries.ListReservationsByEquipment(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations of equipment", err)
	}
	return decode(rows)
}

func (r *ReservationReadStore) ListForMember(ctx context.Context, memberID uuid.UUID) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListReservationsByMember(ctx, r.db, memberID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations of member", err)
	}
	return decode(rows)
}

func (r *ReservationReadStore) ListInRange(ctx context.Context, filter shared.RangeFilter) ([]*reservation.Reservation, error) {
	query, args, err := psql.Select(sqlc.ReservationColumns).From("reservations").
		Where(rangeWhere(filter)).
		OrderBy("start_at", "id").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build reservation range query", err)
	}
	rows, err := r.queries.ListReservations(ctx, r.db, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations in range", err)
	}
	return decode(rows)
}

func (r *ReservationReadStore) CountInRange(ctx context.Context, filter shared.RangeFilter) (int, error) {
	query, args, err := psql.Select("count(*)").From("reservations").Where(rangeWhere(filter)).ToSql()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to build reservation count query", err)
	}
	n, err := r.queries.Count(ctx, r.db, query, args...)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count reservations in range", err)
	}
	return int(n), nil
}

func (r *ReservationReadStore) DueForExpiry(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	params := sqlc.ListDueForExpiryParams{
		Now:   pgconv.TimestampToPgtype(now),
		Limit: int32(shared.ValidateLimit(limit)), // #nosec G115 -- bounded by MaxListLimit
	}
	ids, err := r.queries.ListDueForExpiry(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations due for expiry", err)
	}
	return ids, nil
}

// rangeWhere selects slots intersecting [Start, End).
func rangeWhere(f shared.RangeFilter) sq.And {
	where := sq.And{
		sq.Lt{"start_at": pgconv.TimestampToPgtype(f.End)},
		sq.Gt{"end_at": pgconv.TimestampToPgtype(f.Start)},
	}
	if f.EquipmentID != nil {
		where = append(where, sq.Eq{"equipment_id": *f.EquipmentID})
	}
	if f.MemberID != nil {
		where = append(where, sq.Eq{"member_id": *f.MemberID})
	}
	if len(f.Statuses) > 0 {
		where = append(where, sq.Eq{"status": statusStrings(f.Statuses)})
	}
	return where
}

func statusStrings(statuses []reservation.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = s.String()
	}
	return out
}

func decode(rows []sqlc.Reservation) ([]*reservation.Reservation, error) {
	result, err := converter.ReservationsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode reservations", err)
	}
	return result, nil
}
