package queries

import (
	"context"
	"time"

	"lab-scheduler/internal/domain/reservation"
	"lab-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

type UtilizationQueries interface {
	UtilizationForEquipment(ctx context.Context, equipmentID uuid.UUID, window reservation.Window) (*UtilizationView, error)
	StatsByMember(ctx context.Context, window reservation.Window, equipmentID *uuid.UUID) ([]*MemberStatView, error)
}

// heldStatuses are the statuses that count as occupancy history.
var heldStatuses = []reservation.Status{reservation.StatusConfirmed, reservation.StatusCompleted}

type utilizationQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewUtilizationQueries(uow shared.UnitOfWork) UtilizationQueries {
	return &utilizationQueriesImpl{uow: uow}
}

func (q *utilizationQueriesImpl) UtilizationForEquipment(ctx context.Context, equipmentID uuid.UUID, window reservation.Window) (*UtilizationView, error) {
	var usage reservation.Usage
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		if _, err := reads.EquipmentByID(ctx, equipmentID); err != nil {
			return err
		}
		rs, err := reads.ReservationsInRange(ctx, shared.RangeFilter{
			EquipmentID: &equipmentID,
			Start:       window.Start(),
			End:         window.End(),
			Statuses:    heldStatuses,
		})
		if err != nil {
			return err
		}
		usage = reservation.ComputeUsage(rs, window)
		return nil
	})
	if err != nil {
		return nil, shared.TranslateErr(err)
	}

	return &UtilizationView{
		EquipmentID:      equipmentID,
		WindowStart:      window.Start(),
		WindowEnd:        window.End(),
		ReservedHours:    hours(usage.Reserved),
		AvailableHours:   hours(usage.Available),
		ReservationCount: usage.ReservationCount,
		Rate:             usage.Rate,
	}, nil
}

func (q *utilizationQueriesImpl) StatsByMember(ctx context.Context, window reservation.Window, equipmentID *uuid.UUID) ([]*MemberStatView, error) {
	var counts []reservation.MemberCount
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		if equipmentID != nil {
			if _, err := reads.EquipmentByID(ctx, *equipmentID); err != nil {
				return err
			}
		}
		rs, err := reads.ReservationsInRange(ctx, shared.RangeFilter{
			EquipmentID: equipmentID,
			Start:       window.Start(),
			End:         window.End(),
			Statuses:    heldStatuses,
		})
		if err != nil {
			return err
		}
		counts = reservation.CountsByMember(rs, window)
		return nil
	})
	if err != nil {
		return nil, shared.TranslateErr(err)
	}

	out := make([]*MemberStatView, len(counts))
	for i, c := range counts {
		out[i] = &MemberStatView{MemberID: c.MemberID, ReservationCount: c.Count}
	}
	return out, nil
}

func hours(d time.Duration) float64 {
	return float64(d.Round(time.Second)) / float64(time.Hour)
}
