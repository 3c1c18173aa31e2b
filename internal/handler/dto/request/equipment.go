package request

import (
	"strings"

	"lab-scheduler/internal/domain/equipment"
	"lab-scheduler/internal/pkg/errs"
	"lab-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CreateEquipmentRequest struct {
	Name     string     `json:"name"`
	Category string     `json:"category"`
	State    string     `json:"state"`
	Location *string    `json:"location,omitempty"`
	TeamID   *uuid.UUID `json:"team_id,omitempty"`
}

// ToSpec maps fields as-is; a missing state is rejected by the domain.
func (r CreateEquipmentRequest) ToSpec() (equipment.Spec, error) {
	var spec equipment.Spec
	if err := copier.Copy(&spec, &r); err != nil {
		return equipment.Spec{}, errs.Wrap(err, "failed to map equipment request")
	}
	return spec, nil
}

type UpdateEquipmentRequest struct {
	Name          *string    `json:"name,omitempty"`
	Category      *string    `json:"category,omitempty"`
	State         *string    `json:"state,omitempty"`
	Location      *string    `json:"location,omitempty"`
	ClearLocation bool       `json:"clear_location,omitempty"`
	TeamID        *uuid.UUID `json:"team_id,omitempty"`
	ClearTeam     bool       `json:"clear_team,omitempty"`
}

func (r UpdateEquipmentRequest) ToPatch() (equipment.Patch, error) {
	var p equipment.Patch
	if err := copier.Copy(&p, &r); err != nil {
		return equipment.Patch{}, errs.Wrap(err, "failed to map equipment patch")
	}
	return p, nil
}

type ListEquipmentQuery struct {
	Category string `form:"category"`
	State    string `form:"state"`
	TeamID   string `form:"team_id"`
	Name     string `form:"q"`
	Location string `form:"location"`
	Sort     string `form:"sort"`
	Order    string `form:"order"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

func (q ListEquipmentQuery) ToFilter() (shared.EquipmentFilter, error) {
	verr := errs.NewValidationError()
	filter := shared.EquipmentFilter{
		NameContains: strings.TrimSpace(q.Name),
		Location:     strings.TrimSpace(q.Location),
		Limit:        q.Limit,
		Offset:       q.Offset,
	}

	if q.Category != "" {
		c := equipment.Category(strings.ToLower(q.Category))
		if !c.IsValid() {
			verr.Add("category", "unknown category "+q.Category)
		}
		filter.Category = &c
	}
	if q.State != "" {
		s := equipment.State(strings.ToLower(q.State))
		if !s.IsValid() {
			verr.Add("state", "unknown state "+q.State)
		}
		filter.State = &s
	}
	if q.TeamID != "" {
		id, err := uuid.Parse(q.TeamID)
		if err != nil {
			verr.Add("team_id", "must be a UUID")
		}
		filter.TeamID = &id
	}
	if q.Sort != "" {
		filter.SortBy = shared.EquipmentSort(q.Sort)
		if !filter.SortBy.IsValid() {
			verr.Add("sort", "must be one of [name category created_at]")
		}
	}
	switch strings.ToLower(q.Order) {
	case "", "asc":
	case "desc":
		filter.SortDesc = true
	default:
		verr.Add("order", "must be asc or desc")
	}
	if q.Limit < 0 {
		verr.Add("limit", "must not be negative")
	}
	if q.Offset < 0 {
		verr.Add("offset", "must not be negative")
	}

	return filter, verr.OrNil()
}
