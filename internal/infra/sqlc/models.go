package sqlc

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Equipment struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	Category  string           `json:"category"`
	State     string           `json:"state"`
	Location  pgtype.Text      `json:"location"`
	TeamID    pgtype.UUID      `json:"team_id"`
	CreatedAt pgtype.Timestamp `json:"created_at"`
	UpdatedAt pgtype.Timestamp `json:"updated_at"`
}

type Reservation struct {
	ID          uuid.UUID        `json:"id"`
	EquipmentID uuid.UUID        `json:"equipment_id"`
	MemberID    uuid.UUID        `json:"member_id"`
	StartAt     pgtype.Timestamp `json:"start_at"`
	EndAt       pgtype.Timestamp `json:"end_at"`
	Status      string           `json:"status"`
	Reason      pgtype.Text      `json:"reason"`
	CreatedAt   pgtype.Timestamp `json:"created_at"`
	UpdatedAt   pgtype.Timestamp `json:"updated_at"`
}

type Member struct {
	ID          uuid.UUID        `json:"id"`
	DisplayName string           `json:"display_name"`
	Role        string           `json:"role"`
	CreatedAt   pgtype.Timestamp `json:"created_at"`
}
