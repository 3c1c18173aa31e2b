package queries

import (
	"context"
	"time"

	"lab-scheduler/internal/domain/reservation"
	"lab-scheduler/internal/pkg/clock"
	"lab-scheduler/internal/pkg/errs"
	"lab-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListForEquipment(ctx context.Context, equipmentID uuid.UUID) ([]*ReservationView, error)
	ListForMember(ctx context.Context, memberID uuid.UUID) ([]*ReservationView, error)
	ListAll(ctx context.Context, filter shared.RangeFilter) ([]*ReservationView, error)
	CountInRange(ctx context.Context, filter shared.RangeFilter) (int, error)
	HasFutureReservations(ctx context.Context, equipmentID uuid.UUID) (bool, error)
	ListConflicts(ctx context.Context, equipmentID uuid.UUID) ([]*ConflictView, error)
}

type reservationQueriesImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReservationQueries(uow shared.UnitOfWork, clk clock.Clock) ReservationQueries {
	return &reservationQueriesImpl{uow: uow, clock: clk}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	var view *ReservationView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		r, err := reads.ReservationByID(ctx, id)
		if err != nil {
			return err
		}
		view = ToReservationView(r)
		return nil
	})
	if err != nil {
		return nil, shared.TranslateErr(err)
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListForEquipment(ctx context.Context, equipmentID uuid.UUID) ([]*ReservationView, error) {
	var views []*ReservationView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		if _, err := reads.EquipmentByID(ctx, equipmentID); err != nil {
			return err
		}
		rs, err := reads.ReservationsForEquipment(ctx, equipmentID)
		if err != nil {
			return err
		}
		views = ToReservationViews(rs)
		return nil
	})
	if err != nil {
		return nil, shared.TranslateErr(err)
	}
	return views, nil
}

func (q *reservationQueriesImpl) ListForMember(ctx context.Context, memberID uuid.UUID) ([]*ReservationView, error) {
	var views []*ReservationView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		rs, err := reads.ReservationsForMember(ctx, memberID)
		if err != nil {
			return err
		}
		views = ToReservationViews(rs)
		return nil
	})
	if err != nil {
		return nil, shared.TranslateErr(err)
	}
	return views, nil
}

func (q *reservationQueriesImpl) ListAll(ctx context.Context, filter shared.RangeFilter) ([]*ReservationView, error) {
	if err := validateRange(filter); err != nil {
		return nil, err
	}
	var views []*ReservationView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		rs, err := reads.ReservationsInRange(ctx, filter)
		if err != nil {
			return err
		}
		views = ToReservationViews(rs)
		return nil
	})
	if err != nil {
		return nil, shared.TranslateErr(err)
	}
	return views, nil
}

func (q *reservationQueriesImpl) CountInRange(ctx context.Context, filter shared.RangeFilter) (int, error) {
	if err := validateRange(filter); err != nil {
		return 0, err
	}
	var n int
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		var err error
		n, err = reads.CountInRange(ctx, filter)
		return err
	})
	if err != nil {
		return 0, shared.TranslateErr(err)
	}
	return n, nil
}

func (q *reservationQueriesImpl) HasFutureReservations(ctx context.Context, equipmentID uuid.UUID) (bool, error) {
	now := q.clock.Now()
	var found bool
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		if _, err := reads.EquipmentByID(ctx, equipmentID); err != nil {
			return err
		}
		confirmed, err := reads.ReservationsForEquipment(ctx, equipmentID, reservation.StatusConfirmed)
		if err != nil {
			return err
		}
		for _, r := range confirmed {
			if r.IsFutureCommitment(now) {
				found = true
				break
			}
		}
		return nil
	})
	if err != nil {
		return false, shared.TranslateErr(err)
	}
	return found, nil
}

// ListConflicts reads one snapshot; an empty result is the normal case.
func (q *reservationQueriesImpl) ListConflicts(ctx context.Context, equipmentID uuid.UUID) ([]*ConflictView, error) {
	var views []*ConflictView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		if _, err := reads.EquipmentByID(ctx, equipmentID); err != nil {
			return err
		}
		confirmed, err := reads.ReservationsForEquipment(ctx, equipmentID, reservation.StatusConfirmed)
		if err != nil {
			return err
		}
		pairs := reservation.ListConflicts(confirmed)
		views = make([]*ConflictView, len(pairs))
		for i, p := range pairs {
			views[i] = &ConflictView{First: ToReservationView(p.First), Second: ToReservationView(p.Second)}
		}
		return nil
	})
	if err != nil {
		return nil, shared.TranslateErr(err)
	}
	return views, nil
}

func validateRange(f shared.RangeFilter) error {
	verr := errs.NewValidationError()
	if f.Start.IsZero() {
		verr.Add("start", "is required")
	}
	if f.End.IsZero() {
		verr.Add("end", "is required")
	}
	if !f.Start.IsZero() && !f.End.IsZero() && f.End.Before(f.Start) {
		verr.Add("end", "must not be before start")
	}
	for _, s := range f.Statuses {
		if !s.IsValid() {
			verr.Add("status", "unknown status "+s.String())
		}
	}
	return verr.OrNil()
}

// DefaultRange is used by listings that were given no explicit bounds.
func DefaultRange() (time.Time, time.Time) {
	return time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
}
