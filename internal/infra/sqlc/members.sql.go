package sqlc

import (
	"context"

	"github.com/google/uuid"
)

const memberExists = `-- name: MemberExists :one
SELECT EXISTS (SELECT 1 FROM members WHERE id = $1)
`

func (q *Queries) MemberExists(ctx context.Context, db DBTX, id uuid.UUID) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, memberExists, id).Scan(&exists)
	return exists, err
}

const upsertMember = `-- name: UpsertMember :exec
INSERT INTO members (id, display_name, role) VALUES ($1, $2, $3)
ON CONFLICT (id) DO UPDATE SET display_name = EXCLUDED.display_name, role = EXCLUDED.role
`

type UpsertMemberParams struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
}

func (q *Queries) UpsertMember(ctx context.Context, db DBTX, arg UpsertMemberParams) error {
	_, err := db.Exec(ctx, upsertMember, arg.ID, arg.DisplayName, arg.Role)
	return err
}
