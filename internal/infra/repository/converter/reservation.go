package converter

import (
	"lab-scheduler/internal/domain/reservation"
	"lab-scheduler/internal/infra/sqlc"
	"lab-scheduler/internal/pkg/errs"
	"lab-scheduler/internal/pkg/pgconv"
)

func ReservationToCreateParams(r *reservation.Reservation) sqlc.CreateReservationParams {
	slot := r.TimeSlot()
	return sqlc.CreateReservationParams{
		ID:          r.ID(),
		EquipmentID: r.EquipmentID(),
		MemberID:    r.MemberID(),
		StartAt:     pgconv.TimestampToPgtype(slot.Start()),
		EndAt:       pgconv.TimestampToPgtype(slot.End()),
		Status:      r.Status().String(),
		Reason:      pgconv.StringPtrToPgtype(r.Reason().Ptr()),
		CreatedAt:   pgconv.TimestampToPgtype(r.CreatedAt()),
		UpdatedAt:   pgconv.TimestampToPgtype(r.UpdatedAt()),
	}
}

func ReservationToUpdateParams(r *reservation.Reservation) sqlc.UpdateReservationParams {
	slot := r.TimeSlot()
	return sqlc.UpdateReservationParams{
		ID:        r.ID(),
		StartAt:   pgconv.TimestampToPgtype(slot.Start()),
		EndAt:     pgconv.TimestampToPgtype(slot.End()),
		Status:    r.Status().String(),
		UpdatedAt: pgconv.TimestampToPgtype(r.UpdatedAt()),
	}
}

func ReservationFromRow(row sqlc.Reservation) (*reservation.Reservation, error) {
	slot, err := reservation.NewTimeSlot(pgconv.TimeFromPgtype(row.StartAt), pgconv.TimeFromPgtype(row.EndAt))
	if err != nil {
		return nil, errs.Wrapf(err, "stored reservation %s has an invalid slot", row.ID)
	}
	status, ok := reservation.ParseStatus(row.Status)
	if !ok {
		return nil, errs.Newf("stored reservation %s has unknown status %q", row.ID, row.Status)
	}
	reason, err := reservation.NewReason(row.Reason.String)
	if err != nil {
		return nil, errs.Wrapf(err, "stored reservation %s has an invalid reason", row.ID)
	}
	return reservation.ReconstructReservation(
		row.ID,
		row.EquipmentID,
		row.MemberID,
		slot,
		status,
		reason,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func ReservationsFromRows(rows []sqlc.Reservation) ([]*reservation.Reservation, error) {
	result := make([]*reservation.Reservation, 0, len(rows))
	for _, row := range rows {
		r, err := ReservationFromRow(row)
		if err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, nil
}
