// Package bunstore is the SQL remote.Store built on uptrace/bun.
package bunstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/kallosgym/cms/content"
	"github.com/kallosgym/cms/remote"
)

// Store persists every managed collection through a bun.DB. The three
// highlight collections share one model and differ only in table name.
type Store struct {
	db *bun.DB
}

// New constructs a Store over an initialized bun.DB.
func New(db *bun.DB) *Store {
	return &Store{db: db}
}

var _ remote.Store = (*Store)(nil)

// highlightTable returns the quoted table expression for a highlight kind.
// "values" is a reserved word, so every kind is quoted.
func highlightTable(kind content.HighlightKind) string {
	return `"` + string(kind) + `"`
}

// CreateTables creates every collection table when missing.
func (s *Store) CreateTables(ctx context.Context) error {
	models := []any{
		(*content.GeneralContent)(nil),
		(*content.Page)(nil),
		(*content.Coach)(nil),
		(*content.ScheduleDay)(nil),
		(*content.Testimonial)(nil),
		(*content.Message)(nil),
	}
	for _, model := range models {
		if _, err := s.db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("bunstore: create table for %T: %w", model, err)
		}
	}
	for _, kind := range content.HighlightKinds {
		if _, err := s.db.NewCreateTable().
			Model((*content.Highlight)(nil)).
			ModelTableExpr(highlightTable(kind)).
			IfNotExists().
			Exec(ctx); err != nil {
			return fmt.Errorf("bunstore: create table %s: %w", kind, err)
		}
	}
	return nil
}

func (s *Store) FetchGeneral(ctx context.Context) (*content.GeneralContent, error) {
	gc := new(content.GeneralContent)
	err := s.db.NewSelect().Model(gc).Where("gc.id = ?", content.GeneralContentID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &content.NotFoundError{
				Collection: remote.CollectionGeneral,
				Key:        fmt.Sprint(content.GeneralContentID),
			}
		}
		return nil, err
	}
	return gc, nil
}

func (s *Store) SaveGeneral(ctx context.Context, gc *content.GeneralContent) error {
	row := gc.Clone()
	row.ID = content.GeneralContentID
	row.UpdatedAt = time.Now().UTC()

	_, err := s.db.NewInsert().
		Model(row).
		On("CONFLICT (id) DO UPDATE").
		Set("logo_text = EXCLUDED.logo_text").
		Set("logo_url = EXCLUDED.logo_url").
		Set("hero_media_type = EXCLUDED.hero_media_type").
		Set("hero_media_url = EXCLUDED.hero_media_url").
		Set("join_now_link = EXCLUDED.join_now_link").
		Set("learn_more_link = EXCLUDED.learn_more_link").
		Set("cta_title = EXCLUDED.cta_title").
		Set("cta_subtitle = EXCLUDED.cta_subtitle").
		Set("footer_text = EXCLUDED.footer_text").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return err
}

func (s *Store) FetchPages(ctx context.Context) ([]*content.Page, error) {
	var pages []*content.Page
	if err := s.db.NewSelect().Model(&pages).Order("id ASC").Scan(ctx); err != nil {
		return nil, err
	}
	return pages, nil
}

func (s *Store) UpsertPages(ctx context.Context, pages []*content.Page) error {
	if len(pages) == 0 {
		return nil
	}
	rows := content.ClonePages(pages)
	now := time.Now().UTC()
	for _, p := range rows {
		p.UpdatedAt = now
	}
	_, err := s.db.NewInsert().
		Model(&rows).
		On("CONFLICT (id) DO UPDATE").
		Set("title = EXCLUDED.title").
		Set("content = EXCLUDED.content").
		Set("image_url = EXCLUDED.image_url").
		Set("map_url = EXCLUDED.map_url").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return err
}

func (s *Store) FetchSchedule(ctx context.Context) ([]*content.ScheduleDay, error) {
	var days []*content.ScheduleDay
	if err := s.db.NewSelect().Model(&days).Scan(ctx); err != nil {
		return nil, err
	}
	return sortSchedule(days), nil
}

// sortSchedule orders rows saturday-first regardless of storage order.
func sortSchedule(days []*content.ScheduleDay) []*content.ScheduleDay {
	byName := make(map[string]*content.ScheduleDay, len(days))
	for _, d := range days {
		byName[d.DayName] = d
	}
	out := make([]*content.ScheduleDay, 0, len(days))
	for _, name := range content.Weekdays {
		if d, ok := byName[name]; ok {
			out = append(out, d)
		}
	}
	return out
}

func (s *Store) UpsertSchedule(ctx context.Context, days []*content.ScheduleDay) error {
	if len(days) == 0 {
		return nil
	}
	rows := content.CloneSchedule(days)
	now := time.Now().UTC()
	for _, d := range rows {
		d.UpdatedAt = now
	}
	_, err := s.db.NewInsert().
		Model(&rows).
		On("CONFLICT (day_name) DO UPDATE").
		Set("image_url = EXCLUDED.image_url").
		Set("classes = EXCLUDED.classes").
		Set("kids_classes = EXCLUDED.kids_classes").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return err
}

func (s *Store) FetchCoaches(ctx context.Context) ([]*content.Coach, error) {
	var coaches []*content.Coach
	if err := s.db.NewSelect().Model(&coaches).Order("created_at ASC", "id ASC").Scan(ctx); err != nil {
		return nil, err
	}
	return coaches, nil
}

func (s *Store) InsertCoaches(ctx context.Context, coaches []*content.Coach) error {
	if len(coaches) == 0 {
		return nil
	}
	rows := content.CloneCoaches(coaches)
	now := time.Now().UTC()
	for _, c := range rows {
		if c.CreatedAt.IsZero() {
			c.CreatedAt = now
		}
	}
	_, err := s.db.NewInsert().Model(&rows).Exec(ctx)
	return err
}

func (s *Store) UpsertCoaches(ctx context.Context, coaches []*content.Coach) error {
	if len(coaches) == 0 {
		return nil
	}
	rows := content.CloneCoaches(coaches)
	now := time.Now().UTC()
	for _, c := range rows {
		if c.CreatedAt.IsZero() {
			c.CreatedAt = now
		}
	}
	_, err := s.db.NewInsert().
		Model(&rows).
		On("CONFLICT (id) DO UPDATE").
		Set("name = EXCLUDED.name").
		Set("bio = EXCLUDED.bio").
		Set("image_url = EXCLUDED.image_url").
		Exec(ctx)
	return err
}

func (s *Store) DeleteCoach(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.NewDelete().
		Model((*content.Coach)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	return err
}

func (s *Store) FetchTestimonials(ctx context.Context) ([]*content.Testimonial, error) {
	var items []*content.Testimonial
	if err := s.db.NewSelect().Model(&items).Order("created_at ASC", "id ASC").Scan(ctx); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) InsertTestimonials(ctx context.Context, items []*content.Testimonial) error {
	if len(items) == 0 {
		return nil
	}
	rows := content.CloneTestimonials(items)
	now := time.Now().UTC()
	for _, item := range rows {
		if item.CreatedAt.IsZero() {
			item.CreatedAt = now
		}
	}
	_, err := s.db.NewInsert().Model(&rows).Exec(ctx)
	return err
}

func (s *Store) UpsertTestimonials(ctx context.Context, items []*content.Testimonial) error {
	if len(items) == 0 {
		return nil
	}
	rows := content.CloneTestimonials(items)
	now := time.Now().UTC()
	for _, item := range rows {
		if item.CreatedAt.IsZero() {
			item.CreatedAt = now
		}
	}
	_, err := s.db.NewInsert().
		Model(&rows).
		On("CONFLICT (id) DO UPDATE").
		Set("name = EXCLUDED.name").
		Set("quote = EXCLUDED.quote").
		Exec(ctx)
	return err
}

func (s *Store) DeleteTestimonial(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.NewDelete().
		Model((*content.Testimonial)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	return err
}

func (s *Store) FetchHighlights(ctx context.Context, kind content.HighlightKind) ([]*content.Highlight, error) {
	var items []*content.Highlight
	err := s.db.NewSelect().
		Model(&items).
		ModelTableExpr(highlightTable(kind)+" AS h").
		Order("created_at ASC", "id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) InsertHighlights(ctx context.Context, kind content.HighlightKind, items []*content.Highlight) error {
	if len(items) == 0 {
		return nil
	}
	rows := content.CloneHighlights(items)
	now := time.Now().UTC()
	for _, item := range rows {
		if item.CreatedAt.IsZero() {
			item.CreatedAt = now
		}
	}
	_, err := s.db.NewInsert().
		Model(&rows).
		ModelTableExpr(highlightTable(kind)).
		Exec(ctx)
	return err
}

func (s *Store) UpsertHighlights(ctx context.Context, kind content.HighlightKind, items []*content.Highlight) error {
	if len(items) == 0 {
		return nil
	}
	rows := content.CloneHighlights(items)
	now := time.Now().UTC()
	for _, item := range rows {
		if item.CreatedAt.IsZero() {
			item.CreatedAt = now
		}
	}
	_, err := s.db.NewInsert().
		Model(&rows).
		ModelTableExpr(highlightTable(kind)).
		On("CONFLICT (id) DO UPDATE").
		Set("icon = EXCLUDED.icon").
		Set("title = EXCLUDED.title").
		Set("description = EXCLUDED.description").
		Exec(ctx)
	return err
}

func (s *Store) DeleteHighlight(ctx context.Context, kind content.HighlightKind, id uuid.UUID) error {
	_, err := s.db.NewDelete().
		Model((*content.Highlight)(nil)).
		ModelTableExpr(highlightTable(kind)).
		Where("id = ?", id).
		Exec(ctx)
	return err
}

func (s *Store) InsertMessage(ctx context.Context, msg *content.Message) error {
	row := msg.Clone()
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.NewInsert().Model(row).Exec(ctx)
	return err
}

func (s *Store) FetchMessages(ctx context.Context) ([]*content.Message, error) {
	var msgs []*content.Message
	if err := s.db.NewSelect().Model(&msgs).Order("created_at ASC", "id ASC").Scan(ctx); err != nil {
		return nil, err
	}
	return msgs, nil
}
