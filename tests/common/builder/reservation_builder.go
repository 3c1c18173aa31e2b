//go:build unit || e2e

package builder

import (
	"time"

	"lab-scheduler/internal/domain/reservation"
	reqdto "lab-scheduler/internal/handler/dto/request"
	"lab-scheduler/internal/infra/sqlc"
	"lab-scheduler/internal/pkg/pgconv"
	"lab-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID          uuid.UUID
	EquipmentID uuid.UUID
	MemberID    uuid.UUID
	Start       time.Time
	End         time.Time
	Reason      string
	Status      reservation.Status
	Now         time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	start := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:          uuid.New(),
		EquipmentID: uuid.New(),
		MemberID:    uuid.New(),
		Start:       start,
		End:         start.Add(2 * time.Hour),
		Reason:      "Signal acquisition run",
		Status:      reservation.StatusConfirmed,
		Now:         time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithEquipment(id uuid.UUID) *ReservationBuilder {
	b.EquipmentID = id
	return b
}

func (b *ReservationBuilder) WithMember(id uuid.UUID) *ReservationBuilder {
	b.MemberID = id
	return b
}

func (b *ReservationBuilder) WithSlot(start, end time.Time) *ReservationBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *ReservationBuilder) WithStatus(status reservation.Status) *ReservationBuilder {
	b.Status = status
	return b
}

// Build methods
func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	slot, err := reservation.NewTimeSlot(b.Start, b.End)
	if err != nil {
		return nil, err
	}
	reason, err := reservation.NewReason(b.Reason)
	if err != nil {
		return nil, err
	}
	return reservation.NewReservation(b.EquipmentID, b.MemberID, slot, reason, b.Status, b.Now)
}

// BuildStored skips creation rules so any status, including terminal ones, can be seeded.
func (b *ReservationBuilder) BuildStored() *reservation.Reservation {
	slot, err := reservation.NewTimeSlot(b.Start, b.End)
	if err != nil {
		panic(err)
	}
	reason, err := reservation.NewReason(b.Reason)
	if err != nil {
		panic(err)
	}
	return reservation.ReconstructReservation(b.ID, b.EquipmentID, b.MemberID, slot, b.Status, reason, b.Now, b.Now)
}

func (b *ReservationBuilder) BuildInfra() sqlc.Reservation {
	reason := b.Reason
	return sqlc.Reservation{
		ID:          b.ID,
		EquipmentID: b.EquipmentID,
		MemberID:    b.MemberID,
		StartAt:     pgconv.TimestampToPgtype(b.Start),
		EndAt:       pgconv.TimestampToPgtype(b.End),
		Status:      b.Status.String(),
		Reason:      pgconv.StringPtrToPgtype(&reason),
		CreatedAt:   pgconv.TimestampToPgtype(b.Now),
		UpdatedAt:   pgconv.TimestampToPgtype(b.Now),
	}
}

// BuildCreateRequestDTO leaves member_id out so the caller books for itself.
func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		EquipmentID: b.EquipmentID,
		StartAt:     b.Start.Format("2006-01-02T15:04:05"),
		EndAt:       b.End.Format("2006-01-02T15:04:05"),
		Reason:      b.Reason,
		Status:      b.Status.String(),
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return queries.ToReservationView(b.BuildStored())
}
