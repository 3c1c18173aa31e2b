package shared

import (
	"context"
	"errors"

	"lab-scheduler/internal/infra"
	"lab-scheduler/internal/pkg/errs"
)

// TranslateErr keeps core error kinds verbatim and folds infrastructure
// failures into NotFound, SlotConflict or Storage.
func TranslateErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, errs.ErrValidation),
		errors.Is(err, errs.ErrNotFound),
		errors.Is(err, errs.ErrSlotConflict),
		errors.Is(err, errs.ErrHasFutureReservations),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrForbidden),
		errors.Is(err, errs.ErrStorage):
		return err
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrNotFound)
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, errs.ErrSlotConflict)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return errs.Mark(err, errs.ErrStorage)
	}
}
