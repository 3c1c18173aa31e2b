package response

import (
	"time"

	"lab-scheduler/internal/usecase/commands"
	"lab-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type EquipmentResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	State       string     `json:"state" enums:"libre,reserve,en_maintenance,hors_service"`
	StoredState string     `json:"stored_state"`
	Location    *string    `json:"location,omitempty"`
	TeamID      *uuid.UUID `json:"team_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type EquipmentListResponse struct {
	Items  []*EquipmentResponse `json:"items"`
	Total  int                  `json:"total"`
	Limit  int                  `json:"limit"`
	Offset int                  `json:"offset"`
}

type MaintenanceResponse struct {
	EquipmentID uuid.UUID              `json:"equipment_id"`
	Affected    []*ReservationResponse `json:"affected"`
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromEquipmentView(v *queries.EquipmentView) *EquipmentResponse {
	out := &EquipmentResponse{}
	_ = copier.Copy(out, v)
	return out
}

func FromEquipmentPage(p *queries.EquipmentPage) *EquipmentListResponse {
	out := &EquipmentListResponse{
		Items:  make([]*EquipmentResponse, len(p.Items)),
		Total:  p.Total,
		Limit:  p.Limit,
		Offset: p.Offset,
	}
	for i, v := range p.Items {
		out.Items[i] = FromEquipmentView(v)
	}
	return out
}

func FromMaintenanceResult(r *commands.MaintenanceResult) *MaintenanceResponse {
	return &MaintenanceResponse{
		EquipmentID: r.EquipmentID,
		Affected:    FromReservationViews(queries.ToReservationViews(r.Affected)),
	}
}
