package site

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/kallosgym/cms/content"
	"github.com/kallosgym/cms/internal/memstore"
	"github.com/kallosgym/cms/remote"
)

// flakyStore fails FetchCoaches on demand while delegating everything else.
type flakyStore struct {
	*memstore.Store
	failCoaches bool
}

var errCoachesDown = errors.New("coaches table unavailable")

func (f *flakyStore) FetchCoaches(ctx context.Context) ([]*content.Coach, error) {
	if f.failCoaches {
		return nil, errCoachesDown
	}
	return f.Store.FetchCoaches(ctx)
}

func seededRemote(t *testing.T) *memstore.Store {
	t.Helper()
	ctx := context.Background()

	store := memstore.New()
	if err := store.Seed(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}

	coach := content.NewCoach()
	coach.ID = uuid.New()
	if err := store.InsertCoaches(ctx, []*content.Coach{coach}); err != nil {
		t.Fatalf("insert coach: %v", err)
	}
	return store
}

func TestStoreLoad(t *testing.T) {
	ctx := context.Background()
	cache := NewStore(seededRemote(t), nil)

	if err := cache.Load(ctx); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cache.General().LogoText != "Kallos" {
		t.Fatalf("general content not loaded: %v", cache.General())
	}
	if len(cache.Pages()) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(cache.Pages()))
	}
	if len(cache.Schedule()) != len(content.Weekdays) {
		t.Fatalf("expected full week, got %d days", len(cache.Schedule()))
	}
	if len(cache.Coaches()) != 1 {
		t.Fatalf("expected 1 coach, got %d", len(cache.Coaches()))
	}
	if cache.Loading() {
		t.Fatal("loading flag stuck after Load")
	}
}

func TestStoreDegradesPerCollection(t *testing.T) {
	ctx := context.Background()
	flaky := &flakyStore{Store: seededRemote(t)}
	cache := NewStore(flaky, nil)

	if err := cache.Load(ctx); err != nil {
		t.Fatalf("initial Load() error = %v", err)
	}

	flaky.failCoaches = true
	err := cache.Load(ctx)
	if err == nil {
		t.Fatal("expected error from failing collection")
	}
	if !errors.Is(err, content.ErrFetchFailed) {
		t.Fatalf("expected fetch-failed category, got %v", err)
	}
	if !errors.Is(err, errCoachesDown) {
		t.Fatalf("cause not preserved: %v", err)
	}

	// failing collection keeps its previous value, others still refresh
	if len(cache.Coaches()) != 1 {
		t.Fatalf("stale coaches dropped: %d", len(cache.Coaches()))
	}
	if len(cache.Pages()) != 2 {
		t.Fatalf("healthy collections did not refresh: %d pages", len(cache.Pages()))
	}
}

func TestStoreReadsBeforeLoad(t *testing.T) {
	cache := NewStore(memstore.New(), nil)

	if cache.General() == nil || cache.General().LogoText == "" {
		t.Fatal("expected default general content before load")
	}
	if len(cache.Pages()) != 0 {
		t.Fatal("expected no pages before load")
	}
	if _, err := cache.Page(content.PageAbout); !errors.Is(err, content.ErrNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestStoreRefetchSingleCollection(t *testing.T) {
	ctx := context.Background()
	remoteStore := seededRemote(t)
	cache := NewStore(remoteStore, nil)
	if err := cache.Load(ctx); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	coach := content.NewCoach()
	coach.ID = uuid.New()
	if err := remoteStore.InsertCoaches(ctx, []*content.Coach{coach}); err != nil {
		t.Fatalf("insert coach: %v", err)
	}
	about := &content.Page{Slug: content.PageAbout, Title: content.NewLocalized("Changed", "تغير")}
	if err := remoteStore.UpsertPages(ctx, []*content.Page{about}); err != nil {
		t.Fatalf("upsert page: %v", err)
	}

	if err := cache.Refetch(ctx, remote.CollectionCoaches); err != nil {
		t.Fatalf("Refetch() error = %v", err)
	}

	if len(cache.Coaches()) != 2 {
		t.Fatalf("coaches not refreshed: %d", len(cache.Coaches()))
	}
	page, err := cache.Page(content.PageAbout)
	if err != nil {
		t.Fatalf("Page() error = %v", err)
	}
	if page.Title.Resolve(content.LanguageEnglish) == "Changed" {
		t.Fatal("untargeted collection was refreshed")
	}
}

func TestStoreRejectsUnknownCollection(t *testing.T) {
	cache := NewStore(memstore.New(), nil)
	if err := cache.Refetch(context.Background(), "blog"); err == nil {
		t.Fatal("expected error for unknown collection")
	}
}

func TestStoreDispose(t *testing.T) {
	cache := NewStore(seededRemote(t), nil)
	ctx := context.Background()
	if err := cache.Load(ctx); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	cache.Dispose()
	if err := cache.Load(ctx); err == nil {
		t.Fatal("expected error loading a disposed store")
	}
	// cached reads still serve
	if len(cache.Pages()) != 2 {
		t.Fatal("cached reads should survive dispose")
	}
}

func TestHighlightsLoadPerKind(t *testing.T) {
	ctx := context.Background()
	remoteStore := seededRemote(t)
	h := content.NewHighlight(content.HighlightValues)
	h.ID = uuid.New()
	if err := remoteStore.InsertHighlights(ctx, content.HighlightValues, []*content.Highlight{h}); err != nil {
		t.Fatalf("insert highlight: %v", err)
	}

	cache := NewStore(remoteStore, nil)
	if err := cache.Load(ctx); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cache.Highlights(content.HighlightValues)) != 1 {
		t.Fatal("values highlights not loaded")
	}
	if len(cache.Highlights(content.HighlightFeatures)) != 0 {
		t.Fatal("features should be empty")
	}
}

func TestSnapshotKeysAndIsolation(t *testing.T) {
	ctx := context.Background()
	cache := NewStore(seededRemote(t), nil)
	if err := cache.Load(ctx); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	snap := cache.Snapshot()

	if snap.Pages["about"] == nil || snap.Pages["contact"] == nil {
		t.Fatalf("pages not keyed by slug: %v", snap.Pages)
	}
	for _, day := range content.Weekdays {
		if snap.Schedule[day] == nil {
			t.Fatalf("schedule missing %s", day)
		}
	}
	for _, kind := range content.HighlightKinds {
		if _, ok := snap.Highlights[kind]; !ok {
			t.Fatalf("highlights missing kind %s", kind)
		}
	}
	if len(snap.Coaches) != 1 {
		t.Fatalf("expected 1 coach, got %d", len(snap.Coaches))
	}

	// mutating the snapshot must not leak into the cache
	snap.Pages["about"].Title.Set(content.LanguageEnglish, "tampered")
	page, err := cache.Page("about")
	if err != nil {
		t.Fatalf("Page(about): %v", err)
	}
	if page.Title.Resolve(content.LanguageEnglish) == "tampered" {
		t.Fatal("snapshot mutation leaked into the cache")
	}
}

func TestSnapshotBeforeLoadServesDefaults(t *testing.T) {
	cache := NewStore(memstore.New(), nil)
	snap := cache.Snapshot()

	if snap.General == nil || snap.General.LogoText == "" {
		t.Fatalf("expected default general content, got %v", snap.General)
	}
	if len(snap.Pages) != 0 {
		t.Fatalf("expected no pages before load, got %d", len(snap.Pages))
	}
}
