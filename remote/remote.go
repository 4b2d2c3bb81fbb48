// Package remote defines the persistence contracts the rest of the module
// programs against. Implementations live in internal/bunstore (SQL) and
// internal/memstore (in-memory); object storage backends in internal/blob.
package remote

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/kallosgym/cms/content"
)

// Collection names used in error reporting and logging. Highlight
// collections reuse their content.HighlightKind values.
const (
	CollectionGeneral      = "general_content"
	CollectionPages        = "pages"
	CollectionCoaches      = "coaches"
	CollectionSchedule     = "schedule"
	CollectionTestimonials = "testimonials"
	CollectionMessages     = "messages"
)

// Store is the typed persistence surface for every managed collection.
// Fetch methods return copies the caller owns. Insert methods expect
// records with assigned IDs; Upsert methods replace by primary key.
type Store interface {
	FetchGeneral(ctx context.Context) (*content.GeneralContent, error)
	SaveGeneral(ctx context.Context, gc *content.GeneralContent) error

	FetchPages(ctx context.Context) ([]*content.Page, error)
	UpsertPages(ctx context.Context, pages []*content.Page) error

	FetchSchedule(ctx context.Context) ([]*content.ScheduleDay, error)
	UpsertSchedule(ctx context.Context, days []*content.ScheduleDay) error

	FetchCoaches(ctx context.Context) ([]*content.Coach, error)
	InsertCoaches(ctx context.Context, coaches []*content.Coach) error
	UpsertCoaches(ctx context.Context, coaches []*content.Coach) error
	DeleteCoach(ctx context.Context, id uuid.UUID) error

	FetchTestimonials(ctx context.Context) ([]*content.Testimonial, error)
	InsertTestimonials(ctx context.Context, items []*content.Testimonial) error
	UpsertTestimonials(ctx context.Context, items []*content.Testimonial) error
	DeleteTestimonial(ctx context.Context, id uuid.UUID) error

	FetchHighlights(ctx context.Context, kind content.HighlightKind) ([]*content.Highlight, error)
	InsertHighlights(ctx context.Context, kind content.HighlightKind, items []*content.Highlight) error
	UpsertHighlights(ctx context.Context, kind content.HighlightKind, items []*content.Highlight) error
	DeleteHighlight(ctx context.Context, kind content.HighlightKind, id uuid.UUID) error

	InsertMessage(ctx context.Context, msg *content.Message) error
	FetchMessages(ctx context.Context) ([]*content.Message, error)
}

// ObjectStore stores media binaries and hands back a public URL.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, r io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}
