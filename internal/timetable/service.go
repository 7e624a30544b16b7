// Package timetable serves the weekly grid. Edits arrive as a full overwrite
// of the entire timetable document; there is no per-entry endpoint and no
// conflict check on (division, day, timeSlot).
package timetable

import (
	"context"

	"campusconnect/internal/model"
	"campusconnect/internal/seed"
	"campusconnect/internal/store"
)

// Service owns the timetable document.
type Service struct {
	store store.Store
}

// NewService creates a timetable service.
func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// List returns the stored timetable, or the seed grid when nothing has been
// persisted yet.
func (s *Service) List(ctx context.Context) []model.TimetableEntry {
	var entries []model.TimetableEntry
	s.store.Get(ctx, store.KeyTimetable, &entries)
	if len(entries) == 0 {
		return seed.Timetable()
	}
	return entries
}

// ByDivision filters the grid down to one division by display name.
func (s *Service) ByDivision(ctx context.Context, division string) []model.TimetableEntry {
	entries := s.List(ctx)
	filtered := make([]model.TimetableEntry, 0, len(entries))
	for _, e := range entries {
		if e.Division == division {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// Save overwrites the whole timetable.
func (s *Service) Save(ctx context.Context, entries []model.TimetableEntry) {
	s.store.Set(ctx, store.KeyTimetable, entries)
}
