package readstore

import (
	"context"

	"lab-scheduler/internal/infra"
	"lab-scheduler/internal/infra/sqlc"

	"github.com/google/uuid"
)

type MemberReadQueries interface {
	MemberExists(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (bool, error)
}

// MemberDirectory answers member lookups from the members table kept in sync by the portal.
type MemberDirectory struct {
	queries MemberReadQueries
	db      sqlc.DBTX
}

func NewMemberDirectory(queries MemberReadQueries, db sqlc.DBTX) *MemberDirectory {
	return &MemberDirectory{
		queries: queries,
		db:      db,
	}
}

func (d *MemberDirectory) Exists(ctx context.Context, memberID uuid.UUID) (bool, error) {
	ok, err := d.queries.MemberExists(ctx, d.db, memberID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to look up member", err)
	}
	return ok, nil
}

// OpenDirectory accepts every member id; used when no members table is available.
type OpenDirectory struct{}

func (OpenDirectory) Exists(context.Context, uuid.UUID) (bool, error) {
	return true, nil
}
