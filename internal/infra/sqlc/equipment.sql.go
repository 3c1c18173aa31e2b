package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// EquipmentColumns is the select list matching scanEquipment.
const EquipmentColumns = "id, name, category, state, location, team_id, created_at, updated_at"

const createEquipment = `-- name: CreateEquipment :exec
INSERT INTO equipment (id, name, category, state, location, team_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

type CreateEquipmentParams struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	Category  string           `json:"category"`
	State     string           `json:"state"`
	Location  pgtype.Text      `json:"location"`
	TeamID    pgtype.UUID      `json:"team_id"`
	CreatedAt pgtype.Timestamp `json:"created_at"`
	UpdatedAt pgtype.Timestamp `json:"updated_at"`
}

func (q *Queries) CreateEquipment(ctx context.Context, db DBTX, arg CreateEquipmentParams) error {
	_, err := db.Exec(ctx, createEquipment,
		arg.ID,
		arg.Name,
		arg.Category,
		arg.State,
		arg.Location,
		arg.TeamID,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const updateEquipment = `-- name: UpdateEquipment :execrows
UPDATE equipment
SET name = $2, category = $3, state = $4, location = $5, team_id = $6, updated_at = $7
WHERE id = $1
`

type UpdateEquipmentParams struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	Category  string           `json:"category"`
	State     string           `json:"state"`
	Location  pgtype.Text      `json:"location"`
	TeamID    pgtype.UUID      `json:"team_id"`
	UpdatedAt pgtype.Timestamp `json:"updated_at"`
}

func (q *Queries) UpdateEquipment(ctx context.Context, db DBTX, arg UpdateEquipmentParams) (int64, error) {
	result, err := db.Exec(ctx, updateEquipment,
		arg.ID,
		arg.Name,
		arg.Category,
		arg.State,
		arg.Location,
		arg.TeamID,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteEquipment = `-- name: DeleteEquipment :execrows
DELETE FROM equipment WHERE id = $1
`

func (q *Queries) DeleteEquipment(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteEquipment, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getEquipmentByID = `-- name: GetEquipmentByID :one
SELECT ` + EquipmentColumns + ` FROM equipment WHERE id = $1
`

func (q *Queries) GetEquipmentByID(ctx context.Context, db DBTX, id uuid.UUID) (Equipment, error) {
	return scanEquipment(db.QueryRow(ctx, getEquipmentByID, id))
}

const lockEquipment = `-- name: LockEquipment :one
SELECT ` + EquipmentColumns + ` FROM equipment WHERE id = $1 FOR UPDATE
`

func (q *Queries) LockEquipment(ctx context.Context, db DBTX, id uuid.UUID) (Equipment, error) {
	return scanEquipment(db.QueryRow(ctx, lockEquipment, id))
}

// ListEquipment runs a caller-built select whose columns are EquipmentColumns.
func (q *Queries) ListEquipment(ctx context.Context, db DBTX, query string, args ...interface{}) ([]Equipment, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Equipment
	for rows.Next() {
		i, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Count runs a caller-built single-column count query.
func (q *Queries) Count(ctx context.Context, db DBTX, query string, args ...interface{}) (int64, error) {
	var n int64
	err := db.QueryRow(ctx, query, args...).Scan(&n)
	return n, err
}

func scanEquipment(row pgx.Row) (Equipment, error) {
	var i Equipment
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Category,
		&i.State,
		&i.Location,
		&i.TeamID,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
