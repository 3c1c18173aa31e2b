package queries

import (
	"time"

	"lab-scheduler/internal/domain/equipment"
	"lab-scheduler/internal/domain/reservation"

	"github.com/google/uuid"
)

// EquipmentView carries the projected state; StoredState is the administrative one.
type EquipmentView struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	State       string     `json:"state"`
	StoredState string     `json:"stored_state"`
	Location    *string    `json:"location,omitempty"`
	TeamID      *uuid.UUID `json:"team_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type EquipmentPage struct {
	Items  []*EquipmentView `json:"items"`
	Total  int              `json:"total"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
}

type ReservationView struct {
	ID          uuid.UUID `json:"id"`
	EquipmentID uuid.UUID `json:"equipment_id"`
	MemberID    uuid.UUID `json:"member_id"`
	StartAt     time.Time `json:"start_at"`
	EndAt       time.Time `json:"end_at"`
	Status      string    `json:"status"`
	Reason      *string   `json:"reason,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ConflictView struct {
	First  *ReservationView `json:"first"`
	Second *ReservationView `json:"second"`
}

type UtilizationView struct {
	EquipmentID      uuid.UUID `json:"equipment_id"`
	WindowStart      time.Time `json:"window_start"`
	WindowEnd        time.Time `json:"window_end"`
	ReservedHours    float64   `json:"reserved_hours"`
	AvailableHours   float64   `json:"available_hours"`
	ReservationCount int       `json:"reservation_count"`
	Rate             float64   `json:"rate"`
}

type MemberStatView struct {
	MemberID         uuid.UUID `json:"member_id"`
	ReservationCount int       `json:"reservation_count"`
}

func ToEquipmentView(e *equipment.Equipment, projected equipment.State) *EquipmentView {
	return &EquipmentView{
		ID:          e.ID(),
		Name:        e.Name(),
		Category:    e.Category().String(),
		State:       projected.String(),
		StoredState: e.State().String(),
		Location:    e.Location(),
		TeamID:      e.TeamID(),
		CreatedAt:   e.CreatedAt(),
		UpdatedAt:   e.UpdatedAt(),
	}
}

func ToReservationView(r *reservation.Reservation) *ReservationView {
	slot := r.TimeSlot()
	return &ReservationView{
		ID:          r.ID(),
		EquipmentID: r.EquipmentID(),
		MemberID:    r.MemberID(),
		StartAt:     slot.Start(),
		EndAt:       slot.End(),
		Status:      r.Status().String(),
		Reason:      r.Reason().Ptr(),
		CreatedAt:   r.CreatedAt(),
		UpdatedAt:   r.UpdatedAt(),
	}
}

func ToReservationViews(rs []*reservation.Reservation) []*ReservationView {
	out := make([]*ReservationView, len(rs))
	for i, r := range rs {
		out[i] = ToReservationView(r)
	}
	return out
}
