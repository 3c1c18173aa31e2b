package readstore

import (
	"context"

	"lab-scheduler/internal/domain/equipment"
	"lab-scheduler/internal/infra"
	"lab-scheduler/internal/infra/repository/converter"
	"lab-scheduler/internal/infra/sqlc"
	"lab-scheduler/internal/pkg/pgconv"
	"lab-scheduler/internal/usecase/shared"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const occupiedNow = `SELECT 1 FROM reservations r
WHERE r.equipment_id = equipment.id AND r.status = 'confirmed' AND r.start_at <= ? AND r.end_at > ?`

type EquipmentReadQueries interface {
	GetEquipmentByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Equipment, error)
	ListEquipment(ctx context.Context, db sqlc.DBTX, query string, args ...interface{}) ([]sqlc.Equipment, error)
	Count(ctx context.Context, db sqlc.DBTX, query string, args ...interface{}) (int64, error)
}

type EquipmentReadStore struct {
	queries EquipmentReadQueries
	db      sqlc.DBTX
}

func NewEquipmentReadStore(queries EquipmentReadQueries, db sqlc.DBTX) *EquipmentReadStore {
	return &EquipmentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *EquipmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*equipment.Equipment, error) {
	row, err := r.queries.GetEquipmentByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("equipment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find equipment by ID", err)
	}
	return converter.EquipmentFromRow(row), nil
}

// List returns one page of matching equipment and the total match count.
func (r *EquipmentReadStore) List(ctx context.Context, filter shared.EquipmentFilter) ([]*equipment.Equipment, int, error) {
	where := equipmentWhere(filter)

	countSQL, countArgs, err := psql.Select("count(*)").From("equipment").Where(where).ToSql()
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to build equipment count query", err)
	}
	total, err := r.queries.Count(ctx, r.db, countSQL, countArgs...)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count equipment", err)
	}

	order := string(filter.SortBy)
	if !filter.SortBy.IsValid() {
		order = string(shared.SortByName)
	}
	if filter.SortDesc {
		order += " DESC"
	}
	query := psql.Select(sqlc.EquipmentColumns).From("equipment").Where(where).
		OrderBy(order, "id").
		Limit(uint64(shared.ValidateLimit(filter.Limit)))
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}
	listSQL, listArgs, err := query.ToSql()
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to build equipment list query", err)
	}

	rows, err := r.queries.ListEquipment(ctx, r.db, listSQL, listArgs...)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list equipment", err)
	}
	result := make([]*equipment.Equipment, len(rows))
	for i, row := range rows {
		result[i] = converter.EquipmentFromRow(row)
	}
	return result, int(total), nil
}

func equipmentWhere(filter shared.EquipmentFilter) sq.And {
	where := sq.And{}
	if filter.Category != nil {
		where = append(where, sq.Eq{"category": filter.Category.String()})
	}
	if filter.TeamID != nil {
		where = append(where, sq.Eq{"team_id": *filter.TeamID})
	}
	if filter.NameContains != "" {
		where = append(where, sq.ILike{"name": "%" + escapeLike(filter.NameContains) + "%"})
	}
	if filter.Location != "" {
		where = append(where, sq.ILike{"location": "%" + escapeLike(filter.Location) + "%"})
	}
	if filter.State != nil {
		now := pgconv.TimestampToPgtype(filter.Now)
		switch *filter.State {
		case equipment.StateFree:
			where = append(where,
				sq.Eq{"state": equipment.StateFree.String()},
				sq.Expr("NOT EXISTS ("+occupiedNow+")", now, now),
			)
		case equipment.StateReserved:
			where = append(where,
				sq.Eq{"state": equipment.StateFree.String()},
				sq.Expr("EXISTS ("+occupiedNow+")", now, now),
			)
		default:
			where = append(where, sq.Eq{"state": filter.State.String()})
		}
	}
	return where
}

func escapeLike(s string) string {
	out := make([]rune, 0, len(s))
	for _, c := range s {
		if c == '%' || c == '_' || c == '\\' {
			out = append(out, '\\')
		}
		out = append(out, c)
	}
	return string(out)
}
