package converter

import (
	"lab-scheduler/internal/domain/equipment"
	"lab-scheduler/internal/infra/sqlc"
	"lab-scheduler/internal/pkg/pgconv"
)

func EquipmentToCreateParams(e *equipment.Equipment) sqlc.CreateEquipmentParams {
	return sqlc.CreateEquipmentParams{
		ID:        e.ID(),
		Name:      e.Name(),
		Category:  e.Category().String(),
		State:     e.State().String(),
		Location:  pgconv.StringPtrToPgtype(e.Location()),
		TeamID:    pgconv.UUIDPtrToPgtype(e.TeamID()),
		CreatedAt: pgconv.TimestampToPgtype(e.CreatedAt()),
		UpdatedAt: pgconv.TimestampToPgtype(e.UpdatedAt()),
	}
}

func EquipmentToUpdateParams(e *equipment.Equipment) sqlc.UpdateEquipmentParams {
	return sqlc.UpdateEquipmentParams{
		ID:        e.ID(),
		Name:      e.Name(),
		Category:  e.Category().String(),
		State:     e.State().String(),
		Location:  pgconv.StringPtrToPgtype(e.Location()),
		TeamID:    pgconv.UUIDPtrToPgtype(e.TeamID()),
		UpdatedAt: pgconv.TimestampToPgtype(e.UpdatedAt()),
	}
}

func EquipmentFromRow(row sqlc.Equipment) *equipment.Equipment {
	return equipment.ReconstructEquipment(
		row.ID,
		row.Name,
		equipment.Category(row.Category),
		equipment.State(row.State),
		pgconv.StringPtrFromPgtype(row.Location),
		pgconv.UUIDPtrFromPgtype(row.TeamID),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
