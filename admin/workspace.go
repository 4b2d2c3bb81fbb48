// Package admin implements the draft workspace behind the embedded CMS
// admin: staged edits per collection, immediate deletes, and per-collection
// saves that reconcile the draft against the remote store.
package admin

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/kallosgym/cms/content"
	"github.com/kallosgym/cms/internal/logging"
	"github.com/kallosgym/cms/pkg/interfaces"
	"github.com/kallosgym/cms/remote"
	"github.com/kallosgym/cms/site"
)

// Workspace holds one editor's draft of every collection. Add and update
// operations stage changes locally until the collection is saved; removals
// of persisted records delete remotely right away.
type Workspace struct {
	remote    remote.Store
	published *site.Store
	logger    interfaces.Logger

	mu           sync.Mutex
	general      *content.GeneralContent
	pages        []*content.Page
	schedule     []*content.ScheduleDay
	coaches      []*content.Coach
	testimonials []*content.Testimonial
	highlights   map[content.HighlightKind][]*content.Highlight
}

// NewWorkspace builds an empty workspace. published may be nil; when set,
// successful saves refetch the published cache for the saved collection.
func NewWorkspace(remoteStore remote.Store, published *site.Store, provider interfaces.LoggerProvider) *Workspace {
	return &Workspace{
		remote:    remoteStore,
		published: published,
		logger:    logging.AdminLogger(provider),
		general:   content.DefaultGeneralContent(),
		pages:     content.DefaultPages(),
		schedule:  content.DefaultSchedule(),
		highlights: map[content.HighlightKind][]*content.Highlight{
			content.HighlightFeatures:     {},
			content.HighlightValues:       {},
			content.HighlightAchievements: {},
		},
	}
}

// Load pulls every collection into the draft. Collections settle
// independently: a failing fetch keeps that collection's current draft and
// contributes to the joined error. Missing singletons fall back to defaults.
func (w *Workspace) Load(ctx context.Context) error {
	var errs []error

	gc, err := w.remote.FetchGeneral(ctx)
	switch {
	case err == nil:
		w.mu.Lock()
		w.general = gc
		w.mu.Unlock()
	case errors.Is(err, content.ErrNotFound):
		w.mu.Lock()
		w.general = content.DefaultGeneralContent()
		w.mu.Unlock()
	default:
		errs = append(errs, &content.FetchError{Collection: remote.CollectionGeneral, Err: err})
	}

	if pages, err := w.remote.FetchPages(ctx); err != nil {
		errs = append(errs, &content.FetchError{Collection: remote.CollectionPages, Err: err})
	} else {
		w.mu.Lock()
		w.pages = mergePages(pages)
		w.mu.Unlock()
	}

	if days, err := w.remote.FetchSchedule(ctx); err != nil {
		errs = append(errs, &content.FetchError{Collection: remote.CollectionSchedule, Err: err})
	} else {
		w.mu.Lock()
		w.schedule = padWeek(days)
		w.mu.Unlock()
	}

	if coaches, err := w.remote.FetchCoaches(ctx); err != nil {
		errs = append(errs, &content.FetchError{Collection: remote.CollectionCoaches, Err: err})
	} else {
		w.mu.Lock()
		w.coaches = coaches
		w.mu.Unlock()
	}

	if items, err := w.remote.FetchTestimonials(ctx); err != nil {
		errs = append(errs, &content.FetchError{Collection: remote.CollectionTestimonials, Err: err})
	} else {
		w.mu.Lock()
		w.testimonials = items
		w.mu.Unlock()
	}

	for _, kind := range content.HighlightKinds {
		items, err := w.remote.FetchHighlights(ctx, kind)
		if err != nil {
			errs = append(errs, &content.FetchError{Collection: string(kind), Err: err})
			continue
		}
		w.mu.Lock()
		w.highlights[kind] = items
		w.mu.Unlock()
	}

	if len(errs) > 0 {
		err := errors.Join(errs...)
		w.logger.Error("workspace load incomplete", "error", err)
		return err
	}
	return nil
}

// mergePages overlays fetched pages on the default set so the well-known
// slugs are always editable, even against an empty store.
func mergePages(fetched []*content.Page) []*content.Page {
	out := content.DefaultPages()
	index := make(map[string]int, len(out))
	for i, p := range out {
		index[p.Slug] = i
	}
	for _, p := range fetched {
		if i, ok := index[p.Slug]; ok {
			out[i] = p
		} else {
			out = append(out, p)
		}
	}
	return out
}

// padWeek returns exactly one row per weekday in site order, filling missing
// days with empty rows and dropping rows with unknown day names.
func padWeek(days []*content.ScheduleDay) []*content.ScheduleDay {
	byName := make(map[string]*content.ScheduleDay, len(days))
	for _, d := range days {
		byName[d.DayName] = d
	}
	out := make([]*content.ScheduleDay, 0, len(content.Weekdays))
	for _, name := range content.Weekdays {
		if d, ok := byName[name]; ok {
			out = append(out, d)
			continue
		}
		out = append(out, &content.ScheduleDay{
			DayName:     name,
			Classes:     content.ClassList{},
			KidsClasses: content.ClassList{},
		})
	}
	return out
}

// General returns a copy of the drafted settings.
func (w *Workspace) General() *content.GeneralContent {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.general.Clone()
}

// SetGeneral stages a new settings draft.
func (w *Workspace) SetGeneral(gc *content.GeneralContent) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.general = gc.Clone()
}

// Pages returns a copy of the drafted pages.
func (w *Workspace) Pages() []*content.Page {
	w.mu.Lock()
	defer w.mu.Unlock()
	return content.ClonePages(w.pages)
}

// SetPage stages a page draft, replacing the page with the same slug or
// appending a new one.
func (w *Workspace) SetPage(p *content.Page) error {
	if err := p.Validate(); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	for i, existing := range w.pages {
		if existing.Slug == p.Slug {
			w.pages[i] = p.Clone()
			return nil
		}
	}
	w.pages = append(w.pages, p.Clone())
	return nil
}

// Schedule returns a copy of the drafted week.
func (w *Workspace) Schedule() []*content.ScheduleDay {
	w.mu.Lock()
	defer w.mu.Unlock()
	return content.CloneSchedule(w.schedule)
}

// SetScheduleDay stages one weekday's draft.
func (w *Workspace) SetScheduleDay(d *content.ScheduleDay) error {
	if err := d.Validate(); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	for i, existing := range w.schedule {
		if existing.DayName == d.DayName {
			w.schedule[i] = d.Clone()
			return nil
		}
	}
	w.schedule = append(w.schedule, d.Clone())
	return nil
}

// Weekday class sub-list names.
const (
	ClassListClasses = "classes"
	ClassListKids    = "kids_classes"
)

// classList resolves one of a drafted weekday's class sub-lists. Must be
// called with w.mu held.
func (w *Workspace) classList(day, list string) (*content.ClassList, error) {
	for _, d := range w.schedule {
		if d.DayName != day {
			continue
		}
		switch list {
		case ClassListClasses:
			return &d.Classes, nil
		case ClassListKids:
			return &d.KidsClasses, nil
		default:
			return nil, fmt.Errorf("admin: unknown class list %q", list)
		}
	}
	return nil, fmt.Errorf("admin: schedule day %q not drafted", day)
}

// AddClass appends an empty class entry to a weekday's named sub-list.
func (w *Workspace) AddClass(day, list string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	classes, err := w.classList(day, list)
	if err != nil {
		return err
	}
	*classes = append(*classes, content.Localized{})
	return nil
}

// UpdateClass stages an edit to one class entry.
func (w *Workspace) UpdateClass(day, list string, index int, class content.Localized) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	classes, err := w.classList(day, list)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(*classes) {
		return fmt.Errorf("admin: class index %d out of range", index)
	}
	(*classes)[index] = class.Clone()
	return nil
}

// RemoveClass drops one class entry from a weekday's named sub-list. Class
// entries have no remote identity of their own, so removal stays staged
// until the schedule is saved.
func (w *Workspace) RemoveClass(day, list string, index int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	classes, err := w.classList(day, list)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(*classes) {
		return fmt.Errorf("admin: class index %d out of range", index)
	}
	*classes = append((*classes)[:index], (*classes)[index+1:]...)
	return nil
}

// Coaches returns a copy of the drafted coach list.
func (w *Workspace) Coaches() []*content.Coach {
	w.mu.Lock()
	defer w.mu.Unlock()
	return content.CloneCoaches(w.coaches)
}

// AddCoach stages a placeholder coach and returns its copy. The record gets
// no identity until the collection is saved.
func (w *Workspace) AddCoach() *content.Coach {
	w.mu.Lock()
	defer w.mu.Unlock()
	coach := content.NewCoach()
	w.coaches = append(w.coaches, coach)
	return coach.Clone()
}

// UpdateCoach stages an edit to the coach at index. The stored identity is
// kept, so edits cannot repoint a draft row at another record.
func (w *Workspace) UpdateCoach(index int, c *content.Coach) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if index < 0 || index >= len(w.coaches) {
		return fmt.Errorf("admin: coach index %d out of range", index)
	}
	updated := c.Clone()
	updated.ID = w.coaches[index].ID
	updated.CreatedAt = w.coaches[index].CreatedAt
	w.coaches[index] = updated
	return nil
}

// RemoveCoach removes the coach at index. Staged coaches are dropped from
// the draft only; persisted coaches are deleted remotely first, and the
// draft keeps the row when that delete fails.
func (w *Workspace) RemoveCoach(ctx context.Context, index int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if index < 0 || index >= len(w.coaches) {
		return fmt.Errorf("admin: coach index %d out of range", index)
	}

	coach := w.coaches[index]
	if !coach.IsNew() {
		if err := w.remote.DeleteCoach(ctx, coach.ID); err != nil {
			return fmt.Errorf("admin: delete coach: %w", err)
		}
		w.refreshPublished(ctx, remote.CollectionCoaches)
	}
	w.coaches = append(w.coaches[:index], w.coaches[index+1:]...)
	return nil
}

// Testimonials returns a copy of the drafted testimonial list.
func (w *Workspace) Testimonials() []*content.Testimonial {
	w.mu.Lock()
	defer w.mu.Unlock()
	return content.CloneTestimonials(w.testimonials)
}

// AddTestimonial stages a blank testimonial and returns its copy.
func (w *Workspace) AddTestimonial() *content.Testimonial {
	w.mu.Lock()
	defer w.mu.Unlock()
	item := content.NewTestimonial()
	w.testimonials = append(w.testimonials, item)
	return item.Clone()
}

// UpdateTestimonial stages an edit to the testimonial at index.
func (w *Workspace) UpdateTestimonial(index int, t *content.Testimonial) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if index < 0 || index >= len(w.testimonials) {
		return fmt.Errorf("admin: testimonial index %d out of range", index)
	}
	updated := t.Clone()
	updated.ID = w.testimonials[index].ID
	updated.CreatedAt = w.testimonials[index].CreatedAt
	w.testimonials[index] = updated
	return nil
}

// RemoveTestimonial removes the testimonial at index, deleting persisted
// records remotely first.
func (w *Workspace) RemoveTestimonial(ctx context.Context, index int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if index < 0 || index >= len(w.testimonials) {
		return fmt.Errorf("admin: testimonial index %d out of range", index)
	}

	item := w.testimonials[index]
	if !item.IsNew() {
		if err := w.remote.DeleteTestimonial(ctx, item.ID); err != nil {
			return fmt.Errorf("admin: delete testimonial: %w", err)
		}
		w.refreshPublished(ctx, remote.CollectionTestimonials)
	}
	w.testimonials = append(w.testimonials[:index], w.testimonials[index+1:]...)
	return nil
}

// Highlights returns a copy of the drafted rows for one highlight kind.
func (w *Workspace) Highlights(kind content.HighlightKind) []*content.Highlight {
	w.mu.Lock()
	defer w.mu.Unlock()
	return content.CloneHighlights(w.highlights[kind])
}

// AddHighlight stages a blank highlight for kind and returns its copy.
func (w *Workspace) AddHighlight(kind content.HighlightKind) *content.Highlight {
	w.mu.Lock()
	defer w.mu.Unlock()
	item := content.NewHighlight(kind)
	w.highlights[kind] = append(w.highlights[kind], item)
	return item.Clone()
}

// UpdateHighlight stages an edit to the highlight at index within kind.
func (w *Workspace) UpdateHighlight(kind content.HighlightKind, index int, h *content.Highlight) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	items := w.highlights[kind]
	if index < 0 || index >= len(items) {
		return fmt.Errorf("admin: %s index %d out of range", kind, index)
	}
	updated := h.Clone()
	updated.ID = items[index].ID
	updated.CreatedAt = items[index].CreatedAt
	items[index] = updated
	return nil
}

// RemoveHighlight removes the highlight at index within kind, deleting
// persisted records remotely first.
func (w *Workspace) RemoveHighlight(ctx context.Context, kind content.HighlightKind, index int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	items := w.highlights[kind]
	if index < 0 || index >= len(items) {
		return fmt.Errorf("admin: %s index %d out of range", kind, index)
	}

	item := items[index]
	if !item.IsNew() {
		if err := w.remote.DeleteHighlight(ctx, kind, item.ID); err != nil {
			return fmt.Errorf("admin: delete %s: %w", kind, err)
		}
		w.refreshPublished(ctx, string(kind))
	}
	w.highlights[kind] = append(items[:index], items[index+1:]...)
	return nil
}

// SaveGeneral validates and writes the settings draft. The row always lands
// on the fixed singleton id.
func (w *Workspace) SaveGeneral(ctx context.Context) error {
	draft := w.General()
	if err := draft.Validate(); err != nil {
		return err
	}

	if err := w.remote.SaveGeneral(ctx, draft); err != nil {
		w.logger.Error("general save failed", "error", err)
		return &content.SaveError{Collection: remote.CollectionGeneral, Update: err}
	}
	return w.afterSave(ctx, remote.CollectionGeneral)
}

// SavePages validates and writes every drafted page.
func (w *Workspace) SavePages(ctx context.Context) error {
	drafts := w.Pages()
	for _, p := range drafts {
		if err := p.Validate(); err != nil {
			return err
		}
	}

	if err := w.remote.UpsertPages(ctx, drafts); err != nil {
		w.logger.Error("pages save failed", "error", err)
		return &content.SaveError{Collection: remote.CollectionPages, Update: err}
	}
	return w.afterSave(ctx, remote.CollectionPages)
}

// SavePage validates and writes the single drafted page with the given slug.
func (w *Workspace) SavePage(ctx context.Context, slug string) error {
	var draft *content.Page
	for _, p := range w.Pages() {
		if p.Slug == slug {
			draft = p
			break
		}
	}
	if draft == nil {
		return &content.NotFoundError{Collection: remote.CollectionPages, Key: slug}
	}
	if err := draft.Validate(); err != nil {
		return err
	}

	if err := w.remote.UpsertPages(ctx, []*content.Page{draft}); err != nil {
		w.logger.Error("page save failed", "slug", slug, "error", err)
		return &content.SaveError{Collection: remote.CollectionPages, Update: err}
	}
	return w.afterSave(ctx, remote.CollectionPages)
}

// SaveSchedule writes the drafted week, padded to exactly one row per
// weekday so a partial draft can never shrink the published schedule.
func (w *Workspace) SaveSchedule(ctx context.Context) error {
	drafts := padWeek(w.Schedule())
	for _, d := range drafts {
		if err := d.Validate(); err != nil {
			return err
		}
	}

	if err := w.remote.UpsertSchedule(ctx, drafts); err != nil {
		w.logger.Error("schedule save failed", "error", err)
		return &content.SaveError{Collection: remote.CollectionSchedule, Update: err}
	}
	return w.afterSave(ctx, remote.CollectionSchedule)
}

// SaveCoaches reconciles the drafted coach list: staged records are bulk
// inserted with fresh identities, existing records bulk upserted.
func (w *Workspace) SaveCoaches(ctx context.Context) error {
	createErr, updateErr := reconcile(ctx, w.Coaches(),
		func(c *content.Coach) bool { return c.IsNew() },
		func(c *content.Coach) *content.Coach {
			staged := c.Clone()
			staged.ID = uuid.New()
			return staged
		},
		w.remote.InsertCoaches,
		w.remote.UpsertCoaches,
	)
	if createErr != nil || updateErr != nil {
		w.logger.Error("coaches save failed", "create_error", createErr, "update_error", updateErr)
		return &content.SaveError{Collection: remote.CollectionCoaches, Create: createErr, Update: updateErr}
	}
	return w.afterSave(ctx, remote.CollectionCoaches)
}

// SaveTestimonials reconciles the drafted testimonial list.
func (w *Workspace) SaveTestimonials(ctx context.Context) error {
	createErr, updateErr := reconcile(ctx, w.Testimonials(),
		func(t *content.Testimonial) bool { return t.IsNew() },
		func(t *content.Testimonial) *content.Testimonial {
			staged := t.Clone()
			staged.ID = uuid.New()
			return staged
		},
		w.remote.InsertTestimonials,
		w.remote.UpsertTestimonials,
	)
	if createErr != nil || updateErr != nil {
		w.logger.Error("testimonials save failed", "create_error", createErr, "update_error", updateErr)
		return &content.SaveError{Collection: remote.CollectionTestimonials, Create: createErr, Update: updateErr}
	}
	return w.afterSave(ctx, remote.CollectionTestimonials)
}

// SaveHighlights reconciles the drafted rows of one highlight kind.
func (w *Workspace) SaveHighlights(ctx context.Context, kind content.HighlightKind) error {
	insert := func(ctx context.Context, items []*content.Highlight) error {
		return w.remote.InsertHighlights(ctx, kind, items)
	}
	upsert := func(ctx context.Context, items []*content.Highlight) error {
		return w.remote.UpsertHighlights(ctx, kind, items)
	}

	createErr, updateErr := reconcile(ctx, w.Highlights(kind),
		func(h *content.Highlight) bool { return h.IsNew() },
		func(h *content.Highlight) *content.Highlight {
			staged := h.Clone()
			staged.ID = uuid.New()
			return staged
		},
		insert,
		upsert,
	)
	if createErr != nil || updateErr != nil {
		w.logger.Error("highlights save failed", "kind", kind, "create_error", createErr, "update_error", updateErr)
		return &content.SaveError{Collection: string(kind), Create: createErr, Update: updateErr}
	}
	return w.afterSave(ctx, string(kind))
}

// afterSave reloads the saved collection into the draft (picking up assigned
// identities and server timestamps) and refreshes the published cache.
func (w *Workspace) afterSave(ctx context.Context, collection string) error {
	if err := w.reloadCollection(ctx, collection); err != nil {
		w.logger.Warn("draft reload after save failed", "collection", collection, "error", err)
	}

	w.mu.Lock()
	w.refreshPublished(ctx, collection)
	w.mu.Unlock()

	w.logger.Info("collection saved", "collection", collection)
	return nil
}

func (w *Workspace) reloadCollection(ctx context.Context, collection string) error {
	switch collection {
	case remote.CollectionGeneral:
		gc, err := w.remote.FetchGeneral(ctx)
		if err != nil {
			return err
		}
		w.mu.Lock()
		w.general = gc
		w.mu.Unlock()
	case remote.CollectionPages:
		pages, err := w.remote.FetchPages(ctx)
		if err != nil {
			return err
		}
		w.mu.Lock()
		w.pages = mergePages(pages)
		w.mu.Unlock()
	case remote.CollectionSchedule:
		days, err := w.remote.FetchSchedule(ctx)
		if err != nil {
			return err
		}
		w.mu.Lock()
		w.schedule = padWeek(days)
		w.mu.Unlock()
	case remote.CollectionCoaches:
		coaches, err := w.remote.FetchCoaches(ctx)
		if err != nil {
			return err
		}
		w.mu.Lock()
		w.coaches = coaches
		w.mu.Unlock()
	case remote.CollectionTestimonials:
		items, err := w.remote.FetchTestimonials(ctx)
		if err != nil {
			return err
		}
		w.mu.Lock()
		w.testimonials = items
		w.mu.Unlock()
	default:
		kind := content.HighlightKind(collection)
		items, err := w.remote.FetchHighlights(ctx, kind)
		if err != nil {
			return err
		}
		w.mu.Lock()
		w.highlights[kind] = items
		w.mu.Unlock()
	}
	return nil
}

// refreshPublished refetches one collection in the published cache. Best
// effort: the save already succeeded, so failures only log. Callers hold
// w.mu where draft state is involved; the published store locks internally.
func (w *Workspace) refreshPublished(ctx context.Context, collection string) {
	if w.published == nil {
		return
	}
	if err := w.published.Refetch(ctx, collection); err != nil {
		w.logger.Warn("published refresh failed", "collection", collection, "error", err)
	}
}
