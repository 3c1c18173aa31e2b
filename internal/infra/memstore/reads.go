package memstore

import (
	"context"
	"sort"
	"strings"
	"time"

	"lab-scheduler/internal/domain/equipment"
	"lab-scheduler/internal/domain/reservation"
	"lab-scheduler/internal/infra"
	"lab-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

func (s *state) EquipmentByID(_ context.Context, id uuid.UUID) (*equipment.Equipment, error) {
	e, ok := s.equipment[id]
	if !ok {
		return nil, infra.NotFound("equipment not found")
	}
	return cloneEquipment(e), nil
}

func (s *state) ListEquipment(_ context.Context, filter shared.EquipmentFilter) ([]*equipment.Equipment, int, error) {
	matched := make([]*equipment.Equipment, 0, len(s.equipment))
	for _, e := range s.equipment {
		if s.matches(e, filter) {
			matched = append(matched, e)
		}
	}
	sortEquipment(matched, filter.SortBy, filter.SortDesc)

	total := len(matched)
	start := min(max(filter.Offset, 0), total)
	end := min(start+shared.ValidateLimit(filter.Limit), total)

	page := make([]*equipment.Equipment, 0, end-start)
	for _, e := range matched[start:end] {
		page = append(page, cloneEquipment(e))
	}
	return page, total, nil
}

func (s *state) matches(e *equipment.Equipment, f shared.EquipmentFilter) bool {
	if f.Category != nil && e.Category() != *f.Category {
		return false
	}
	if f.TeamID != nil && (e.TeamID() == nil || *e.TeamID() != *f.TeamID) {
		return false
	}
	if f.NameContains != "" && !containsFold(e.Name(), f.NameContains) {
		return false
	}
	if f.Location != "" && (e.Location() == nil || !containsFold(*e.Location(), f.Location)) {
		return false
	}
	if f.State != nil {
		occupied, _ := reservation.Occupancy(s.forEquipment(e.ID()), f.Now)
		if equipment.Project(e.State(), occupied) != *f.State {
			return false
		}
	}
	return true
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func sortEquipment(items []*equipment.Equipment, by shared.EquipmentSort, desc bool) {
	key := func(e *equipment.Equipment) string {
		switch by {
		case shared.SortByCategory:
			return e.Category().String()
		case shared.SortByCreatedAt:
			return e.CreatedAt().Format(time.RFC3339Nano)
		default:
			return e.Name()
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		ki, kj := key(items[i]), key(items[j])
		if ki == kj {
			return items[i].ID().String() < items[j].ID().String()
		}
		if desc {
			return ki > kj
		}
		return ki < kj
	})
}

func (s *state) ReservationByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	r, ok := s.reservations[id]
	if !ok {
		return nil, infra.NotFound("reservation not found")
	}
	return cloneReservation(r), nil
}

func (s *state) ReservationsForEquipment(_ context.Context, equipmentID uuid.UUID, statuses ...reservation.Status) ([]*reservation.Reservation, error) {
	return s.collect(func(r *reservation.Reservation) bool {
		return r.EquipmentID() == equipmentID && hasStatus(r, statuses)
	}), nil
}

func (s *state) ReservationsForMember(_ context.Context, memberID uuid.UUID) ([]*reservation.Reservation, error) {
	return s.collect(func(r *reservation.Reservation) bool {
		return r.MemberID() == memberID
	}), nil
}

func (s *state) ReservationsInRange(_ context.Context, filter shared.RangeFilter) ([]*reservation.Reservation, error) {
	return s.collect(filter.Matches), nil
}

func (s *state) CountInRange(_ context.Context, filter shared.RangeFilter) (int, error) {
	n := 0
	for _, r := range s.reservations {
		if filter.Matches(r) {
			n++
		}
	}
	return n, nil
}

func (s *state) DueForExpiry(_ context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	due := s.collect(func(r *reservation.Reservation) bool {
		return r.IsConfirmed() && r.HasEnded(now)
	})
	sort.SliceStable(due, func(i, j int) bool {
		return due[i].TimeSlot().End().Before(due[j].TimeSlot().End())
	})
	limit = shared.ValidateLimit(limit)
	if len(due) > limit {
		due = due[:limit]
	}
	ids := make([]uuid.UUID, len(due))
	for i, r := range due {
		ids[i] = r.ID()
	}
	return ids, nil
}

func (s *state) forEquipment(id uuid.UUID) []*reservation.Reservation {
	var out []*reservation.Reservation
	for _, r := range s.reservations {
		if r.EquipmentID() == id {
			out = append(out, r)
		}
	}
	return out
}

// collect returns clones ordered by start.
func (s *state) collect(keep func(*reservation.Reservation) bool) []*reservation.Reservation {
	out := make([]*reservation.Reservation, 0)
	for _, r := range s.reservations {
		if keep(r) {
			out = append(out, cloneReservation(r))
		}
	}
	reservation.SortByStart(out)
	return out
}

func hasStatus(r *reservation.Reservation, statuses []reservation.Status) bool {
	if len(statuses) == 0 {
		return true
	}
	for _, s := range statuses {
		if r.Status() == s {
			return true
		}
	}
	return false
}
