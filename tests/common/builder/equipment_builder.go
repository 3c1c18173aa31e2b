//go:build unit || e2e

package builder

import (
	"time"

	"lab-scheduler/internal/domain/equipment"
	reqdto "lab-scheduler/internal/handler/dto/request"
	"lab-scheduler/internal/infra/sqlc"
	"lab-scheduler/internal/pkg/pgconv"
	"lab-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
)

type EquipmentBuilder struct {
	Name     string
	Category string
	State    string
	Location *string
	TeamID   *uuid.UUID
	Now      time.Time
}

func NewEquipmentBuilder() *EquipmentBuilder {
	location := "Building B, room 204"
	return &EquipmentBuilder{
		Name:     "Oscilloscope Tektronix",
		Category: string(equipment.CategoryLab),
		State:    string(equipment.StateFree),
		Location: &location,
		Now:      time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
	}
}

func (b *EquipmentBuilder) With(mutate func(*EquipmentBuilder)) *EquipmentBuilder {
	mutate(b)
	return b
}

func (b *EquipmentBuilder) WithName(name string) *EquipmentBuilder {
	b.Name = name
	return b
}

func (b *EquipmentBuilder) WithCategory(category string) *EquipmentBuilder {
	b.Category = category
	return b
}

func (b *EquipmentBuilder) WithState(state string) *EquipmentBuilder {
	b.State = state
	return b
}

func (b *EquipmentBuilder) Spec() equipment.Spec {
	return equipment.Spec{
		Name:     b.Name,
		Category: b.Category,
		State:    b.State,
		Location: b.Location,
		TeamID:   b.TeamID,
	}
}

// Build methods
func (b *EquipmentBuilder) BuildDomain() (*equipment.Equipment, error) {
	return equipment.NewEquipment(b.Spec(), b.Now)
}

func (b *EquipmentBuilder) MustBuildDomain() *equipment.Equipment {
	e, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return e
}

// BuildInfra returns the stored row form.
func (b *EquipmentBuilder) BuildInfra() sqlc.Equipment {
	e := b.MustBuildDomain()
	return sqlc.Equipment{
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

func (b *EquipmentBuilder) BuildCreateRequestDTO() reqdto.CreateEquipmentRequest {
	return reqdto.CreateEquipmentRequest{
		Name:     b.Name,
		Category: b.Category,
		State:    b.State,
		Location: b.Location,
		TeamID:   b.TeamID,
	}
}

// BuildView projects the stored state unchanged.
func (b *EquipmentBuilder) BuildView() *queries.EquipmentView {
	e := b.MustBuildDomain()
	return queries.ToEquipmentView(e, e.State())
}
