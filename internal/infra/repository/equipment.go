package repository

import (
	"context"

	"lab-scheduler/internal/domain/equipment"
	"lab-scheduler/internal/infra"
	"lab-scheduler/internal/infra/repository/converter"
	"lab-scheduler/internal/infra/sqlc"

	"github.com/google/uuid"
)

type EquipmentWriteQueries interface {
	CreateEquipment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateEquipmentParams) error
	UpdateEquipment(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateEquipmentParams) (int64, error)
	DeleteEquipment(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	LockEquipment(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Equipment, error)
}

type EquipmentRepository struct {
	queries EquipmentWriteQueries
	db      sqlc.DBTX
}

func NewEquipmentRepository(queries EquipmentWriteQueries, db sqlc.DBTX) *EquipmentRepository {
	return &EquipmentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *EquipmentRepository) Create(ctx context.Context, e *equipment.Equipment) error {
	if err := r.queries.CreateEquipment(ctx, r.db, converter.EquipmentToCreateParams(e)); err != nil {
		return infra.WrapRepoErr("failed to create equipment", err)
	}
	return nil
}

func (r *EquipmentRepository) Update(ctx context.Context, e *equipment.Equipment) error {
	n, err := r.queries.UpdateEquipment(ctx, r.db, converter.EquipmentToUpdateParams(e))
	if err != nil {
		return infra.WrapRepoErr("failed to update equipment", err)
	}
	if n == 0 {
		return infra.NotFound("equipment not found")
	}
	return nil
}

func (r *EquipmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteEquipment(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete equipment", err)
	}
	if n == 0 {
		return infra.NotFound("equipment not found")
	}
	return nil
}

// Lock takes a row lock held until the surrounding transaction ends.
func (r *EquipmentRepository) Lock(ctx context.Context, id uuid.UUID) (*equipment.Equipment, error) {
	row, err := r.queries.LockEquipment(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock equipment", err)
	}
	return converter.EquipmentFromRow(row), nil
}
