package shared

import (
	"time"

	"lab-scheduler/internal/domain/equipment"
	"lab-scheduler/internal/domain/reservation"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

type EquipmentSort string

const (
	SortByName      EquipmentSort = "name"
	SortByCategory  EquipmentSort = "category"
	SortByCreatedAt EquipmentSort = "created_at"
)

func (s EquipmentSort) IsValid() bool {
	switch s {
	case SortByName, SortByCategory, SortByCreatedAt:
		return true
	default:
		return false
	}
}

// EquipmentFilter matches State against the projected state at Now.
type EquipmentFilter struct {
	Category     *equipment.Category
	State        *equipment.State
	TeamID       *uuid.UUID
	NameContains string
	Location     string
	Now          time.Time
	SortBy       EquipmentSort
	SortDesc     bool
	Limit        int
	Offset       int
}

// RangeFilter selects reservations whose slot intersects [Start, End).
type RangeFilter struct {
	EquipmentID *uuid.UUID
	MemberID    *uuid.UUID
	Start       time.Time
	End         time.Time
	Statuses    []reservation.Status
}

func (f RangeFilter) Matches(r *reservation.Reservation) bool {
	if f.EquipmentID != nil && r.EquipmentID() != *f.EquipmentID {
		return false
	}
	if f.MemberID != nil && r.MemberID() != *f.MemberID {
		return false
	}
	slot := r.TimeSlot()
	if !slot.Start().Before(f.End) || !slot.End().After(f.Start) {
		return false
	}
	if len(f.Statuses) == 0 {
		return true
	}
	for _, s := range f.Statuses {
		if r.Status() == s {
			return true
		}
	}
	return false
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
