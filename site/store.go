// Package site holds the published content cache the public site reads from.
// One Store instance serves every request; collections refresh independently
// so a single failing fetch degrades to stale data instead of an outage.
package site

import (
	"context"
	"errors"
	"sync"

	"github.com/kallosgym/cms/content"
	"github.com/kallosgym/cms/internal/logging"
	"github.com/kallosgym/cms/pkg/interfaces"
	"github.com/kallosgym/cms/remote"
)

// Store caches the published value of every collection. Reads never touch
// the remote store; Load and Refetch swap collections in atomically as each
// fetch settles.
type Store struct {
	remote remote.Store
	logger interfaces.Logger

	mu           sync.RWMutex
	loading      bool
	disposed     bool
	general      *content.GeneralContent
	pages        []*content.Page
	coaches      []*content.Coach
	schedule     []*content.ScheduleDay
	testimonials []*content.Testimonial
	highlights   map[content.HighlightKind][]*content.Highlight
}

// NewStore builds an empty cache over the given remote store. Call Load to
// populate it.
func NewStore(remoteStore remote.Store, provider interfaces.LoggerProvider) *Store {
	return &Store{
		remote:     remoteStore,
		logger:     logging.SiteLogger(provider),
		highlights: make(map[content.HighlightKind][]*content.Highlight),
	}
}

// Collections lists every cached collection name, highlight kinds included.
func Collections() []string {
	out := []string{
		remote.CollectionGeneral,
		remote.CollectionPages,
		remote.CollectionCoaches,
		remote.CollectionSchedule,
		remote.CollectionTestimonials,
	}
	for _, kind := range content.HighlightKinds {
		out = append(out, string(kind))
	}
	return out
}

// Load fetches every collection concurrently. Each fetch settles on its own:
// a failing collection keeps its previous value and contributes a
// content.FetchError to the joined result, while the others still refresh.
func (s *Store) Load(ctx context.Context) error {
	return s.Refetch(ctx, Collections()...)
}

// Refetch refreshes the named collections. With no names it behaves like
// Load. Unknown names are reported as fetch errors.
func (s *Store) Refetch(ctx context.Context, collections ...string) error {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return errors.New("site: store is disposed")
	}
	s.loading = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	if len(collections) == 0 {
		collections = Collections()
	}

	var wg sync.WaitGroup
	errs := make([]error, len(collections))
	for i, name := range collections {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			if err := s.fetch(ctx, name); err != nil {
				errs[i] = &content.FetchError{Collection: name, Err: err}
				s.logger.Error("collection fetch failed", "collection", name, "error", err)
			}
		}(i, name)
	}
	wg.Wait()

	return errors.Join(errs...)
}

// fetch pulls one collection and swaps it into the cache.
func (s *Store) fetch(ctx context.Context, name string) error {
	switch name {
	case remote.CollectionGeneral:
		gc, err := s.remote.FetchGeneral(ctx)
		if err != nil {
			return err
		}
		s.apply(func() { s.general = gc })
	case remote.CollectionPages:
		pages, err := s.remote.FetchPages(ctx)
		if err != nil {
			return err
		}
		s.apply(func() { s.pages = pages })
	case remote.CollectionCoaches:
		coaches, err := s.remote.FetchCoaches(ctx)
		if err != nil {
			return err
		}
		s.apply(func() { s.coaches = coaches })
	case remote.CollectionSchedule:
		days, err := s.remote.FetchSchedule(ctx)
		if err != nil {
			return err
		}
		s.apply(func() { s.schedule = days })
	case remote.CollectionTestimonials:
		items, err := s.remote.FetchTestimonials(ctx)
		if err != nil {
			return err
		}
		s.apply(func() { s.testimonials = items })
	default:
		kind := content.HighlightKind(name)
		if !isHighlightKind(kind) {
			return errors.New("site: unknown collection " + name)
		}
		items, err := s.remote.FetchHighlights(ctx, kind)
		if err != nil {
			return err
		}
		s.apply(func() { s.highlights[kind] = items })
	}
	return nil
}

func (s *Store) apply(swap func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	swap()
}

func isHighlightKind(kind content.HighlightKind) bool {
	for _, k := range content.HighlightKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Loading reports whether a Load or Refetch is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// General returns the cached settings singleton, or the built-in defaults
// when nothing has loaded yet.
func (s *Store) General() *content.GeneralContent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.general == nil {
		return content.DefaultGeneralContent()
	}
	return s.general.Clone()
}

// Pages returns every cached page.
func (s *Store) Pages() []*content.Page {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return content.ClonePages(s.pages)
}

// Page returns the cached page for slug.
func (s *Store) Page(slug string) (*content.Page, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.pages {
		if p.Slug == slug {
			return p.Clone(), nil
		}
	}
	return nil, &content.NotFoundError{Collection: remote.CollectionPages, Key: slug}
}

// Coaches returns the cached coach list.
func (s *Store) Coaches() []*content.Coach {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return content.CloneCoaches(s.coaches)
}

// Schedule returns the cached week.
func (s *Store) Schedule() []*content.ScheduleDay {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return content.CloneSchedule(s.schedule)
}

// Testimonials returns the cached testimonial list.
func (s *Store) Testimonials() []*content.Testimonial {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return content.CloneTestimonials(s.testimonials)
}

// Highlights returns the cached rows for one highlight kind.
func (s *Store) Highlights(kind content.HighlightKind) []*content.Highlight {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return content.CloneHighlights(s.highlights[kind])
}

// Snapshot is a point-in-time copy of every published collection. Pages are
// keyed by slug and schedule days by day name; the list collections keep
// their creation order.
type Snapshot struct {
	General      *content.GeneralContent
	Pages        map[string]*content.Page
	Coaches      []*content.Coach
	Schedule     map[string]*content.ScheduleDay
	Testimonials []*content.Testimonial
	Highlights   map[content.HighlightKind][]*content.Highlight
	Loading      bool
}

// Snapshot copies the whole cache in one pass under the read lock, so the
// collections in it are consistent with each other.
func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := &Snapshot{
		General:      content.DefaultGeneralContent(),
		Pages:        make(map[string]*content.Page, len(s.pages)),
		Coaches:      content.CloneCoaches(s.coaches),
		Schedule:     make(map[string]*content.ScheduleDay, len(s.schedule)),
		Testimonials: content.CloneTestimonials(s.testimonials),
		Highlights:   make(map[content.HighlightKind][]*content.Highlight, len(s.highlights)),
		Loading:      s.loading,
	}
	if s.general != nil {
		snap.General = s.general.Clone()
	}
	for _, p := range s.pages {
		snap.Pages[p.Slug] = p.Clone()
	}
	for _, d := range s.schedule {
		snap.Schedule[d.DayName] = d.Clone()
	}
	for _, kind := range content.HighlightKinds {
		snap.Highlights[kind] = content.CloneHighlights(s.highlights[kind])
	}
	return snap
}

// Dispose marks the store unusable for further loads. Cached reads keep
// working so in-flight requests drain cleanly.
func (s *Store) Dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.disposed = true
}
