package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// ReservationColumns is the select list matching scanReservation.
const ReservationColumns = "id, equipment_id, member_id, start_at, end_at, status, reason, created_at, updated_at"

const createReservation = `-- name: CreateReservation :exec
INSERT INTO reservations (id, equipment_id, member_id, start_at, end_at, status, reason, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

type CreateReservationParams struct {
	ID          uuid.UUID        `json:"id"`
	EquipmentID uuid.UUID        `json:"equipment_id"`
	MemberID    uuid.UUID        `json:"member_id"`
	StartAt     pgtype.Timestamp `json:"start_at"`
	EndAt       pgtype.Timestamp `json:"end_at"`
	Status      string           `json:"status"`
	Reason      pgtype.Text      `json:"reason"`
	CreatedAt   pgtype.Timestamp `json:"created_at"`
	UpdatedAt   pgtype.Timestamp `json:"updated_at"`
}

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg CreateReservationParams) error {
	_, err := db.Exec(ctx, createReservation,
		arg.ID,
		arg.EquipmentID,
		arg.MemberID,
		arg.StartAt,
		arg.EndAt,
		arg.Status,
		arg.Reason,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const updateReservation = `-- name: UpdateReservation :execrows
UPDATE reservations
SET start_at = $2, end_at = $3, status = $4, updated_at = $5
WHERE id = $1
`

type UpdateReservationParams struct {
	ID        uuid.UUID        `json:"id"`
	StartAt   pgtype.Timestamp `json:"start_at"`
	EndAt     pgtype.Timestamp `json:"end_at"`
	Status    string           `json:"status"`
	UpdatedAt pgtype.Timestamp `json:"updated_at"`
}

func (q *Queries) UpdateReservation(ctx context.Context, db DBTX, arg UpdateReservationParams) (int64, error) {
	result, err := db.Exec(ctx, updateReservation,
		arg.ID,
		arg.StartAt,
		arg.EndAt,
		arg.Status,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteReservation = `-- name: DeleteReservation :execrows
DELETE FROM reservations WHERE id = $1
`

func (q *Queries) DeleteReservation(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteReservation, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteReservationsByEquipment = `-- name: DeleteReservationsByEquipment :execrows
DELETE FROM reservations WHERE equipment_id = $1
`

func (q *Queries) DeleteReservationsByEquipment(ctx context.Context, db DBTX, equipmentID uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteReservationsByEquipment, equipmentID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getReservationByID = `-- name: GetReservationByID :one
SELECT ` + ReservationColumns + ` FROM reservations WHERE id = $1
`

func (q *Queries) GetReservationByID(ctx context.Context, db DBTX, id uuid.UUID) (Reservation, error) {
	return scanReservation(db.QueryRow(ctx, getReservationByID, id))
}

const listReservationsByEquipment = `-- name: ListReservationsByEquipment :many
SELECT ` + ReservationColumns + ` FROM reservations
WHERE equipment_id = $1
  AND (cardinality($2::text[]) = 0 OR status = ANY($2::text[]))
ORDER BY start_at, id
`

type ListReservationsByEquipmentParams struct {
	EquipmentID uuid.UUID `json:"equipment_id"`
	Statuses    []string  `json:"statuses"`
}

func (q *Queries) ListReservationsByEquipment(ctx context.Context, db DBTX, arg ListReservationsByEquipmentParams) ([]Reservation, error) {
	statuses := arg.Statuses
	if statuses == nil {
		statuses = []string{}
	}
	return q.ListReservations(ctx, db, listReservationsByEquipment, arg.EquipmentID, statuses)
}

const listReservationsByMember = `-- name: ListReservationsByMember :many
SELECT ` + ReservationColumns + ` FROM reservations
WHERE member_id = $1
ORDER BY start_at, id
`

func (q *Queries) ListReservationsByMember(ctx context.Context, db DBTX, memberID uuid.UUID) ([]Reservation, error) {
	return q.ListReservations(ctx, db, listReservationsByMember, memberID)
}

const listDueForExpiry = `-- name: ListDueForExpiry :many
SELECT id FROM reservations
WHERE status = 'confirmed' AND end_at <= $1
ORDER BY end_at, id
LIMIT $2
`

type ListDueForExpiryParams struct {
	Now   pgtype.Timestamp `json:"now"`
	Limit int32            `json:"limit"`
}

func (q *Queries) ListDueForExpiry(ctx context.Context, db DBTX, arg ListDueForExpiryParams) ([]uuid.UUID, error) {
	rows, err := db.Query(ctx, listDueForExpiry, arg.Now, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		items = append(items, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// ListReservations runs a select whose columns are ReservationColumns.
func (q *Queries) ListReservations(ctx context.Context, db DBTX, query string, args ...interface{}) ([]Reservation, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Reservation
	for rows.Next() {
		i, err := scanReservation(rows)
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

func scanReservation(row pgx.Row) (Reservation, error) {
	var i Reservation
	err := row.Scan(
		&i.ID,
		&i.EquipmentID,
		&i.MemberID,
		&i.StartAt,
		&i.EndAt,
		&i.Status,
		&i.Reason,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
