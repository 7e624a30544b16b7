// Package events manages the campus event feed: CRUD plus likes, RSVPs and
// comments, all backed by a single whole-document collection.
package events

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"campusconnect/internal/model"
	"campusconnect/internal/seed"
	"campusconnect/internal/store"
)

// Service owns the events document.
type Service struct {
	store store.Store
}

// NewService creates an events service.
func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// List returns the stored events, or the seed feed when nothing has been
// persisted yet.
func (s *Service) List(ctx context.Context) []model.Event {
	var events []model.Event
	s.store.Get(ctx, store.KeyEvents, &events)
	if len(events) == 0 {
		return seed.Events()
	}
	return events
}

// ByID finds one event, nil when absent.
func (s *Service) ByID(ctx context.Context, id string) *model.Event {
	for _, e := range s.List(ctx) {
		if e.ID == id {
			out := e
			return &out
		}
	}
	return nil
}

// Create assigns an event-<millis> id, zeroes the social counters and
// prepends the event to the feed.
func (s *Service) Create(ctx context.Context, event model.Event) model.Event {
	event.ID = fmt.Sprintf("event-%d", time.Now().UnixMilli())
	event.Likes = 0
	event.RSVPs = []string{}
	event.Comments = []model.Comment{}
	if event.Tags == nil {
		event.Tags = []string{}
	}
	updated := append([]model.Event{event}, s.List(ctx)...)
	s.store.Set(ctx, store.KeyEvents, updated)
	return event
}

// Update shallow-merges partial fields into the matching event. Returns nil
// when the id is absent.
func (s *Service) Update(ctx context.Context, id string, patch map[string]any) (*model.Event, error) {
	events := s.List(ctx)
	for i := range events {
		if events[i].ID != id {
			continue
		}
		if err := model.MergePatch(&events[i], patch); err != nil {
			return nil, err
		}
		s.store.Set(ctx, store.KeyEvents, events)
		out := events[i]
		return &out, nil
	}
	return nil, nil
}

// Delete removes the matching event and reports whether the feed shrank.
func (s *Service) Delete(ctx context.Context, id string) bool {
	events := s.List(ctx)
	kept := events[:0:0]
	for _, e := range events {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.store.Set(ctx, store.KeyEvents, kept)
	return len(kept) < len(events)
}

// Like increments the bare like counter. There is no per-user identity on
// likes, so repeated calls from one caller all count.
func (s *Service) Like(ctx context.Context, id string) *model.Event {
	events := s.List(ctx)
	for i := range events {
		if events[i].ID != id {
			continue
		}
		events[i].Likes++
		s.store.Set(ctx, store.KeyEvents, events)
		out := events[i]
		return &out
	}
	return nil
}

// RSVP toggles userID's membership in the event's RSVP set.
func (s *Service) RSVP(ctx context.Context, id, userID string) *model.Event {
	events := s.List(ctx)
	for i := range events {
		if events[i].ID != id {
			continue
		}
		rsvps := events[i].RSVPs[:0:0]
		removed := false
		for _, u := range events[i].RSVPs {
			if u == userID {
				removed = true
				continue
			}
			rsvps = append(rsvps, u)
		}
		if !removed {
			rsvps = append(rsvps, userID)
		}
		if rsvps == nil {
			rsvps = []string{}
		}
		events[i].RSVPs = rsvps
		s.store.Set(ctx, store.KeyEvents, events)
		out := events[i]
		return &out
	}
	return nil
}

// AddComment appends a comment to the event, assigning an id when the client
// did not send one.
func (s *Service) AddComment(ctx context.Context, id string, comment model.Comment) *model.Event {
	events := s.List(ctx)
	for i := range events {
		if events[i].ID != id {
			continue
		}
		if comment.ID == "" {
			comment.ID = uuid.NewString()
		}
		events[i].Comments = append(events[i].Comments, comment)
		s.store.Set(ctx, store.KeyEvents, events)
		out := events[i]
		return &out
	}
	return nil
}
