package bunstore

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/kallosgym/cms/content"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	sqldb, err := sql.Open("sqlite3", "file:bunstore_"+uuid.NewString()+"?mode=memory&cache=shared&_fk=1")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = sqldb.Close() })

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { _ = db.Close() })

	store := New(db)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := store.CreateTables(ctx); err != nil {
		t.Fatalf("create tables: %v", err)
	}
	return store
}

func TestGeneralSaveIsSingleton(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.FetchGeneral(ctx); !errors.Is(err, content.ErrNotFound) {
		t.Fatalf("expected not-found on empty table, got %v", err)
	}

	first := content.DefaultGeneralContent()
	first.LogoText = "First"
	if err := store.SaveGeneral(ctx, first); err != nil {
		t.Fatalf("SaveGeneral() error = %v", err)
	}

	second := content.DefaultGeneralContent()
	second.ID = 42 // saves always land on the fixed row
	second.LogoText = "Second"
	if err := store.SaveGeneral(ctx, second); err != nil {
		t.Fatalf("SaveGeneral() second error = %v", err)
	}

	got, err := store.FetchGeneral(ctx)
	if err != nil {
		t.Fatalf("FetchGeneral() error = %v", err)
	}
	if got.ID != content.GeneralContentID {
		t.Fatalf("expected row %d, got %d", content.GeneralContentID, got.ID)
	}
	if got.LogoText != "Second" {
		t.Fatalf("second save did not replace the row: %q", got.LogoText)
	}
	if !got.FooterText.Complete() {
		t.Fatalf("localized column did not round trip: %v", got.FooterText)
	}
}

func TestPagesUpsertBySlug(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.UpsertPages(ctx, content.DefaultPages()); err != nil {
		t.Fatalf("UpsertPages() error = %v", err)
	}

	about := &content.Page{
		Slug:  content.PageAbout,
		Title: content.NewLocalized("About Us", "من نحن"),
	}
	if err := store.UpsertPages(ctx, []*content.Page{about}); err != nil {
		t.Fatalf("UpsertPages() update error = %v", err)
	}

	pages, err := store.FetchPages(ctx)
	if err != nil {
		t.Fatalf("FetchPages() error = %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(pages))
	}
	for _, p := range pages {
		if p.Slug == content.PageAbout && p.Title.Resolve(content.LanguageEnglish) != "About Us" {
			t.Fatalf("about page not updated: %v", p.Title)
		}
	}
}

func TestScheduleUpsertAndOrder(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	days := content.DefaultSchedule()
	days[2].Classes = content.ClassList{content.NewLocalized("6 PM Calisthenics", "٦م كاليسثينيكس")}
	if err := store.UpsertSchedule(ctx, days); err != nil {
		t.Fatalf("UpsertSchedule() error = %v", err)
	}

	got, err := store.FetchSchedule(ctx)
	if err != nil {
		t.Fatalf("FetchSchedule() error = %v", err)
	}
	if len(got) != len(content.Weekdays) {
		t.Fatalf("expected %d rows, got %d", len(content.Weekdays), len(got))
	}
	for i, name := range content.Weekdays {
		if got[i].DayName != name {
			t.Fatalf("position %d: expected %s, got %s", i, name, got[i].DayName)
		}
	}
	if len(got[2].Classes) != 1 {
		t.Fatalf("class list did not round trip: %v", got[2].Classes)
	}
}

func TestCoachesInsertUpsertDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	coach := content.NewCoach()
	coach.ID = uuid.New()
	if err := store.InsertCoaches(ctx, []*content.Coach{coach}); err != nil {
		t.Fatalf("InsertCoaches() error = %v", err)
	}

	coach.Name = content.NewLocalized("Omar", "عمر")
	if err := store.UpsertCoaches(ctx, []*content.Coach{coach}); err != nil {
		t.Fatalf("UpsertCoaches() error = %v", err)
	}

	got, err := store.FetchCoaches(ctx)
	if err != nil {
		t.Fatalf("FetchCoaches() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("upsert duplicated the row: %d rows", len(got))
	}
	if got[0].Name.Resolve(content.LanguageEnglish) != "Omar" {
		t.Fatalf("upsert did not update name: %v", got[0].Name)
	}
	if got[0].CreatedAt.IsZero() {
		t.Fatal("insert did not stamp created_at")
	}

	if err := store.DeleteCoach(ctx, coach.ID); err != nil {
		t.Fatalf("DeleteCoach() error = %v", err)
	}
	got, _ = store.FetchCoaches(ctx)
	if len(got) != 0 {
		t.Fatalf("expected empty table after delete, got %d rows", len(got))
	}
}

func TestHighlightTablesAreSeparate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, kind := range content.HighlightKinds {
		h := content.NewHighlight(kind)
		h.ID = uuid.New()
		h.Title = content.NewLocalized(string(kind), string(kind))
		if err := store.InsertHighlights(ctx, kind, []*content.Highlight{h}); err != nil {
			t.Fatalf("InsertHighlights(%s) error = %v", kind, err)
		}
	}

	for _, kind := range content.HighlightKinds {
		got, err := store.FetchHighlights(ctx, kind)
		if err != nil {
			t.Fatalf("FetchHighlights(%s) error = %v", kind, err)
		}
		if len(got) != 1 {
			t.Fatalf("kind %s: expected 1 row, got %d", kind, len(got))
		}
		if got[0].Title.Resolve(content.LanguageEnglish) != string(kind) {
			t.Fatalf("kind %s: rows crossed tables: %v", kind, got[0].Title)
		}
	}

	h, _ := store.FetchHighlights(ctx, content.HighlightValues)
	if err := store.DeleteHighlight(ctx, content.HighlightValues, h[0].ID); err != nil {
		t.Fatalf("DeleteHighlight() error = %v", err)
	}
	remaining, _ := store.FetchHighlights(ctx, content.HighlightValues)
	if len(remaining) != 0 {
		t.Fatalf("values row not deleted: %d rows", len(remaining))
	}
	others, _ := store.FetchHighlights(ctx, content.HighlightFeatures)
	if len(others) != 1 {
		t.Fatal("delete leaked across highlight tables")
	}
}

func TestMessagesInsertAssignsIdentity(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	msg := &content.Message{
		Name:    "Sara",
		Email:   "sara@example.com",
		Message: "Do you run morning classes?",
	}
	if err := store.InsertMessage(ctx, msg); err != nil {
		t.Fatalf("InsertMessage() error = %v", err)
	}

	got, err := store.FetchMessages(ctx)
	if err != nil {
		t.Fatalf("FetchMessages() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 message, got %d", len(got))
	}
	if got[0].ID == uuid.Nil {
		t.Fatal("insert did not assign an ID")
	}
	if got[0].CreatedAt.IsZero() {
		t.Fatal("insert did not stamp created_at")
	}
}

func TestTestimonialsUpsert(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	item := content.NewTestimonial()
	item.ID = uuid.New()
	item.Name = "Lina"
	item.Quote = content.NewLocalized("Great gym", "صالة رائعة")
	if err := store.InsertTestimonials(ctx, []*content.Testimonial{item}); err != nil {
		t.Fatalf("InsertTestimonials() error = %v", err)
	}

	item.Quote = content.NewLocalized("Best gym", "أفضل صالة")
	if err := store.UpsertTestimonials(ctx, []*content.Testimonial{item}); err != nil {
		t.Fatalf("UpsertTestimonials() error = %v", err)
	}

	got, err := store.FetchTestimonials(ctx)
	if err != nil {
		t.Fatalf("FetchTestimonials() error = %v", err)
	}
	if len(got) != 1 || got[0].Quote.Resolve(content.LanguageEnglish) != "Best gym" {
		t.Fatalf("upsert did not replace quote: %v", got)
	}
}
