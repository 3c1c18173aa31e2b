package response

import (
	"time"

	"lab-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID          uuid.UUID `json:"id"`
	EquipmentID uuid.UUID `json:"equipment_id"`
	MemberID    uuid.UUID `json:"member_id"`
	StartAt     time.Time `json:"start_at"`
	EndAt       time.Time `json:"end_at"`
	Status      string    `json:"status" enums:"pending,confirmed,cancelled,completed"`
	Reason      *string   `json:"reason,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ConflictResponse struct {
	First  *ReservationResponse `json:"first"`
	Second *ReservationResponse `json:"second"`
}

type CountResponse struct {
	Count int `json:"count"`
}

type UtilizationResponse struct {
	EquipmentID      uuid.UUID `json:"equipment_id"`
	WindowStart      time.Time `json:"window_start"`
	WindowEnd        time.Time `json:"window_end"`
	ReservedHours    float64   `json:"reserved_hours"`
	AvailableHours   float64   `json:"available_hours"`
	ReservationCount int       `json:"reservation_count"`
	Rate             float64   `json:"rate"`
}

type MemberStatResponse struct {
	MemberID         uuid.UUID `json:"member_id"`
	ReservationCount int       `json:"reservation_count"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	out := &ReservationResponse{}
	_ = copier.Copy(out, v)
	return out
}

func FromReservationViews(vs []*queries.ReservationView) []*ReservationResponse {
	out := make([]*ReservationResponse, len(vs))
	for i, v := range vs {
		out[i] = FromReservationView(v)
	}
	return out
}

func FromConflictViews(vs []*queries.ConflictView) []*ConflictResponse {
	out := make([]*ConflictResponse, len(vs))
	for i, v := range vs {
		out[i] = &ConflictResponse{
			First:  FromReservationView(v.First),
			Second: FromReservationView(v.Second),
		}
	}
	return out
}

func FromUtilizationView(v *queries.UtilizationView) *UtilizationResponse {
	out := &UtilizationResponse{}
	_ = copier.Copy(out, v)
	return out
}

func FromMemberStatViews(vs []*queries.MemberStatView) []*MemberStatResponse {
	out := make([]*MemberStatResponse, 0, len(vs))
	_ = copier.Copy(&out, &vs)
	return out
}
