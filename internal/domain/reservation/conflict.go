package reservation

import (
	"container/heap"
	"sort"
	"time"

	"github.com/google/uuid"
)

// FindConflict returns the first confirmed reservation overlapping slot,
// skipping exclude so a reservation can be re-saved over itself.
func FindConflict(existing []*Reservation, slot TimeSlot, exclude uuid.UUID) *Reservation {
	for _, r := range existing {
		if !r.IsConfirmed() || r.ID() == exclude {
			continue
		}
		if r.TimeSlot().Overlaps(slot) {
			return r
		}
	}
	return nil
}

func HasConflict(existing []*Reservation, slot TimeSlot, exclude uuid.UUID) bool {
	return FindConflict(existing, slot, exclude) != nil
}

type ConflictPair struct {
	First  *Reservation
	Second *Reservation
}

// ListConflicts sweeps the confirmed reservations in start order, keeping a
// min-heap of still-open slots keyed by end. Every slot left open when a new
// one starts overlaps it. Cost is O(n log n + pairs).
func ListConflicts(reservations []*Reservation) []ConflictPair {
	confirmed := make([]*Reservation, 0, len(reservations))
	for _, r := range reservations {
		if r.IsConfirmed() {
			confirmed = append(confirmed, r)
		}
	}
	sortByStart(confirmed)

	var (
		pairs []ConflictPair
		open  endHeap
	)
	for i, cur := range confirmed {
		start := cur.TimeSlot().Start()
		// running max end: nothing open can reach past start, skip the heap scan
		if i > 0 && open.Len() > 0 && !open.maxEnd.After(start) {
			open = endHeap{}
		}
		for open.Len() > 0 && !open.items[0].TimeSlot().End().After(start) {
			heap.Pop(&open)
		}
		for _, prev := range open.items {
			pairs = append(pairs, ConflictPair{First: prev, Second: cur})
		}
		heap.Push(&open, cur)
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		a, b := pairs[i], pairs[j]
		if !a.Second.TimeSlot().Start().Equal(b.Second.TimeSlot().Start()) {
			return a.Second.TimeSlot().Start().Before(b.Second.TimeSlot().Start())
		}
		return a.First.TimeSlot().Start().Before(b.First.TimeSlot().Start())
	})
	return pairs
}

func sortByStart(rs []*Reservation) {
	sort.SliceStable(rs, func(i, j int) bool {
		si, sj := rs[i].TimeSlot().Start(), rs[j].TimeSlot().Start()
		if !si.Equal(sj) {
			return si.Before(sj)
		}
		return rs[i].ID().String() < rs[j].ID().String()
	})
}

// SortByStart orders reservations the way every store read returns them.
func SortByStart(rs []*Reservation) {
	sortByStart(rs)
}

type endHeap struct {
	items  []*Reservation
	maxEnd time.Time
}

func (h endHeap) Len() int { return len(h.items) }
func (h endHeap) Less(i, j int) bool {
	return h.items[i].TimeSlot().End().Before(h.items[j].TimeSlot().End())
}
func (h endHeap) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *endHeap) Push(x any) {
	r := x.(*Reservation)
	if end := r.TimeSlot().End(); end.After(h.maxEnd) {
		h.maxEnd = end
	}
	h.items = append(h.items, r)
}

func (h *endHeap) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]
	return item
}
