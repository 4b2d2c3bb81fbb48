package seed

import (
	"context"
	"os"
	"testing"

	"github.com/kallosgym/cms/content"
	"github.com/kallosgym/cms/internal/memstore"
)

func TestDefaults(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	seeder := New(store, nil)

	if err := seeder.Defaults(ctx); err != nil {
		t.Fatalf("Defaults() error = %v", err)
	}

	gc, err := store.FetchGeneral(ctx)
	if err != nil {
		t.Fatalf("general content not seeded: %v", err)
	}
	if gc.LogoText != "Kallos" {
		t.Fatalf("unexpected seeded logo: %q", gc.LogoText)
	}

	pages, _ := store.FetchPages(ctx)
	if len(pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(pages))
	}
	days, _ := store.FetchSchedule(ctx)
	if len(days) != len(content.Weekdays) {
		t.Fatalf("expected full week, got %d", len(days))
	}
}

func TestDefaultsDoesNotOverwrite(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	seeder := New(store, nil)

	custom := content.DefaultGeneralContent()
	custom.LogoText = "Customized"
	if err := store.SaveGeneral(ctx, custom); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := seeder.Defaults(ctx); err != nil {
		t.Fatalf("Defaults() error = %v", err)
	}

	gc, _ := store.FetchGeneral(ctx)
	if gc.LogoText != "Customized" {
		t.Fatal("re-seeding overwrote existing content")
	}
}

func TestPagesFromMarkdown(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	seeder := New(store, nil)

	if err := seeder.Pages(ctx, os.DirFS("testdata")); err != nil {
		t.Fatalf("Pages() error = %v", err)
	}

	pages, _ := store.FetchPages(ctx)
	if len(pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(pages))
	}

	byID := map[string]*content.Page{}
	for _, p := range pages {
		byID[p.Slug] = p
	}

	about := byID["about"]
	if about == nil {
		t.Fatal("about page missing")
	}
	if about.Title.Resolve(content.LanguageEnglish) != "About Kallos" {
		t.Fatalf("english title = %q", about.Title.Resolve(content.LanguageEnglish))
	}
	if about.Title.Resolve(content.LanguageArabic) != "عن كالوس" {
		t.Fatalf("arabic title = %q", about.Title.Resolve(content.LanguageArabic))
	}
	if about.ImageURL != "https://cdn.example.com/public/about.jpg" {
		t.Fatalf("image url = %q", about.ImageURL)
	}
	if body := about.Content.Resolve(content.LanguageArabic); body == "" {
		t.Fatal("arabic body missing")
	}

	contact := byID["contact"]
	if contact == nil || contact.MapURL != "https://maps.example.com/kallos" {
		t.Fatalf("contact page = %+v", contact)
	}
	// no arabic file: falls back to english
	if contact.Title.Resolve(content.LanguageArabic) != "Get in Touch" {
		t.Fatalf("fallback title = %q", contact.Title.Resolve(content.LanguageArabic))
	}
}
