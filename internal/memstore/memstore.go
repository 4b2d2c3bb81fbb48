// Package memstore is an in-memory remote.Store for scaffolding and tests.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kallosgym/cms/content"
	"github.com/kallosgym/cms/remote"
)

// Store keeps every collection in process memory. All reads return deep
// copies so callers can mutate freely.
type Store struct {
	mu           sync.RWMutex
	lastStamp    time.Time
	general      *content.GeneralContent
	pages        map[string]*content.Page
	schedule     map[string]*content.ScheduleDay
	coaches      map[uuid.UUID]*content.Coach
	testimonials map[uuid.UUID]*content.Testimonial
	highlights   map[content.HighlightKind]map[uuid.UUID]*content.Highlight
	messages     []*content.Message
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		pages:        make(map[string]*content.Page),
		schedule:     make(map[string]*content.ScheduleDay),
		coaches:      make(map[uuid.UUID]*content.Coach),
		testimonials: make(map[uuid.UUID]*content.Testimonial),
		highlights: map[content.HighlightKind]map[uuid.UUID]*content.Highlight{
			content.HighlightFeatures:     {},
			content.HighlightValues:       {},
			content.HighlightAchievements: {},
		},
	}
}

var _ remote.Store = (*Store)(nil)

// stamp returns a strictly increasing creation time so rows inserted within
// the same wall-clock tick keep their insertion order. Must be called with
// s.mu held.
func (s *Store) stamp() time.Time {
	now := time.Now().UTC()
	if !now.After(s.lastStamp) {
		now = s.lastStamp.Add(time.Microsecond)
	}
	s.lastStamp = now
	return now
}

// Seed populates the store with the built-in defaults.
func (s *Store) Seed(ctx context.Context) error {
	if err := s.SaveGeneral(ctx, content.DefaultGeneralContent()); err != nil {
		return err
	}
	if err := s.UpsertPages(ctx, content.DefaultPages()); err != nil {
		return err
	}
	return s.UpsertSchedule(ctx, content.DefaultSchedule())
}

func (s *Store) FetchGeneral(_ context.Context) (*content.GeneralContent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.general == nil {
		return nil, &content.NotFoundError{Collection: remote.CollectionGeneral, Key: "1"}
	}
	return s.general.Clone(), nil
}

func (s *Store) SaveGeneral(_ context.Context, gc *content.GeneralContent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := gc.Clone()
	copied.ID = content.GeneralContentID
	s.general = copied
	return nil
}

func (s *Store) FetchPages(_ context.Context) ([]*content.Page, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*content.Page, 0, len(s.pages))
	for _, p := range s.pages {
		out = append(out, p.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out, nil
}

func (s *Store) UpsertPages(_ context.Context, pages []*content.Page) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range pages {
		s.pages[p.Slug] = p.Clone()
	}
	return nil
}

func (s *Store) FetchSchedule(_ context.Context) ([]*content.ScheduleDay, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*content.ScheduleDay, 0, len(content.Weekdays))
	for _, day := range content.Weekdays {
		if d, ok := s.schedule[day]; ok {
			out = append(out, d.Clone())
		}
	}
	return out, nil
}

func (s *Store) UpsertSchedule(_ context.Context, days []*content.ScheduleDay) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range days {
		s.schedule[d.DayName] = d.Clone()
	}
	return nil
}

func (s *Store) FetchCoaches(_ context.Context) ([]*content.Coach, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*content.Coach, 0, len(s.coaches))
	for _, c := range s.coaches {
		out = append(out, c.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) InsertCoaches(_ context.Context, coaches []*content.Coach) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range coaches {
		copied := c.Clone()
		if copied.CreatedAt.IsZero() {
			if prev, ok := s.coaches[copied.ID]; ok {
				copied.CreatedAt = prev.CreatedAt
			} else {
				copied.CreatedAt = s.stamp()
			}
		}
		s.coaches[copied.ID] = copied
	}
	return nil
}

func (s *Store) UpsertCoaches(ctx context.Context, coaches []*content.Coach) error {
	return s.InsertCoaches(ctx, coaches)
}

func (s *Store) DeleteCoach(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.coaches, id)
	return nil
}

func (s *Store) FetchTestimonials(_ context.Context) ([]*content.Testimonial, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*content.Testimonial, 0, len(s.testimonials))
	for _, item := range s.testimonials {
		out = append(out, item.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) InsertTestimonials(_ context.Context, items []*content.Testimonial) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range items {
		copied := item.Clone()
		if copied.CreatedAt.IsZero() {
			if prev, ok := s.testimonials[copied.ID]; ok {
				copied.CreatedAt = prev.CreatedAt
			} else {
				copied.CreatedAt = s.stamp()
			}
		}
		s.testimonials[copied.ID] = copied
	}
	return nil
}

func (s *Store) UpsertTestimonials(ctx context.Context, items []*content.Testimonial) error {
	return s.InsertTestimonials(ctx, items)
}

func (s *Store) DeleteTestimonial(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.testimonials, id)
	return nil
}

func (s *Store) FetchHighlights(_ context.Context, kind content.HighlightKind) ([]*content.Highlight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bucket := s.highlights[kind]
	out := make([]*content.Highlight, 0, len(bucket))
	for _, item := range bucket {
		out = append(out, item.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) InsertHighlights(_ context.Context, kind content.HighlightKind, items []*content.Highlight) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bucket := s.highlights[kind]
	if bucket == nil {
		bucket = make(map[uuid.UUID]*content.Highlight)
		s.highlights[kind] = bucket
	}
	for _, item := range items {
		copied := item.Clone()
		if copied.CreatedAt.IsZero() {
			if prev, ok := bucket[copied.ID]; ok {
				copied.CreatedAt = prev.CreatedAt
			} else {
				copied.CreatedAt = s.stamp()
			}
		}
		bucket[copied.ID] = copied
	}
	return nil
}

func (s *Store) UpsertHighlights(ctx context.Context, kind content.HighlightKind, items []*content.Highlight) error {
	return s.InsertHighlights(ctx, kind, items)
}

func (s *Store) DeleteHighlight(_ context.Context, kind content.HighlightKind, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.highlights[kind], id)
	return nil
}

func (s *Store) InsertMessage(_ context.Context, msg *content.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = append(s.messages, msg.Clone())
	return nil
}

func (s *Store) FetchMessages(_ context.Context) ([]*content.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*content.Message, len(s.messages))
	for i, msg := range s.messages {
		out[i] = msg.Clone()
	}
	return out, nil
}
