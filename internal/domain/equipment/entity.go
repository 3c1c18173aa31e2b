package equipment

import (
	"strings"
	"time"

	"lab-scheduler/internal/pkg/errs"
	"lab-scheduler/internal/pkg/patch"
	"lab-scheduler/internal/pkg/validation"

	"github.com/google/uuid"
)

const MaxNameLength = 255

// Spec is the creation input of an equipment item.
type Spec struct {
	Name     string     `json:"name" validate:"notblank,max=255"`
	Category string     `json:"category"`
	State    string     `json:"state"`
	Location *string    `json:"location" validate:"omitempty,max=255"`
	TeamID   *uuid.UUID `json:"team_id"`
}

// Patch carries optional field updates; nil means "leave unchanged".
type Patch struct {
	Name          *string    `json:"name" validate:"omitempty,notblank,max=255"`
	Category      *string    `json:"category"`
	State         *string    `json:"state"`
	Location      *string    `json:"location" validate:"omitempty,max=255"`
	ClearLocation bool       `json:"-"`
	TeamID        *uuid.UUID `json:"team_id"`
	ClearTeam     bool       `json:"-"`
}

type Equipment struct {
	id        uuid.UUID
	name      string
	category  Category
	state     State
	location  *string
	teamID    *uuid.UUID
	createdAt time.Time
	updatedAt time.Time
}

func NewEquipment(spec Spec, now time.Time) (*Equipment, error) {
	verr := validation.Struct(spec)
	category := checkCategory(verr, spec.Category)
	state := checkState(verr, spec.State)
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	return &Equipment{
		id:        uuid.New(),
		name:      strings.TrimSpace(spec.Name),
		category:  category,
		state:     state,
		location:  trimOptional(spec.Location),
		teamID:    spec.TeamID,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructEquipment(
	id uuid.UUID,
	name string,
	category Category,
	state State,
	location *string,
	teamID *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Equipment {
	return &Equipment{
		id:        id,
		name:      name,
		category:  category,
		state:     state,
		location:  location,
		teamID:    teamID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Apply validates the whole patch before touching any field.
func (e *Equipment) Apply(p Patch, now time.Time) error {
	verr := validation.Struct(p)
	category := e.category
	if p.Category != nil {
		category = checkCategory(verr, *p.Category)
	}
	state := e.state
	if p.State != nil {
		state = checkState(verr, *p.State)
	}
	if err := verr.OrNil(); err != nil {
		return err
	}

	e.name = strings.TrimSpace(patch.Coalesce(p.Name, e.name))
	e.category = category
	e.state = state
	switch {
	case p.ClearLocation:
		e.location = nil
	case p.Location != nil:
		e.location = trimOptional(p.Location)
	}
	switch {
	case p.ClearTeam:
		e.teamID = nil
	case p.TeamID != nil:
		id := *p.TeamID
		e.teamID = &id
	}
	e.updatedAt = now
	return nil
}

// PutInMaintenance does not look at reservations; callers decide what to do with them.
func (e *Equipment) PutInMaintenance(now time.Time) {
	e.state = StateInMaintenance
	e.updatedAt = now
}

// checkCategory and checkState run for creation and for every non-nil patch
// field, so a blank value is rejected in both paths.
func checkCategory(verr *errs.ValidationError, raw string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	switch {
	case c == "":
		verr.Add("category", "is required")
	case !c.IsValid():
		verr.Add("category", "unknown category "+raw)
	}
	return c
}

func checkState(verr *errs.ValidationError, raw string) State {
	s := State(strings.ToLower(strings.TrimSpace(raw)))
	switch {
	case s == "":
		verr.Add("state", "is required")
	case s == StateReserved:
		verr.Add("state", "reserve is derived from confirmed reservations and cannot be set")
	case !s.IsValid():
		verr.Add("state", "unknown state "+raw)
	}
	return s
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func (e *Equipment) ID() uuid.UUID        { return e.id }
func (e *Equipment) Name() string         { return e.name }
func (e *Equipment) Category() Category   { return e.category }
func (e *Equipment) State() State         { return e.state }
func (e *Equipment) Location() *string    { return e.location }
func (e *Equipment) TeamID() *uuid.UUID   { return e.teamID }
func (e *Equipment) CreatedAt() time.Time { return e.createdAt }
func (e *Equipment) UpdatedAt() time.Time { return e.updatedAt }
