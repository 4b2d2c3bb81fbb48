package cms

import (
	"context"
	"testing"

	"github.com/kallosgym/cms/content"
	"github.com/kallosgym/cms/internal/blob"
	"github.com/kallosgym/cms/internal/memstore"
)

func newTestModule(t *testing.T) *Module {
	t.Helper()

	cfg := DefaultConfig()
	cfg.Media.Backend = MediaBackendMemory
	cfg.Media.URLPrefix = "mem://media"

	module, err := New(cfg,
		WithStore(memstore.New()),
		WithObjectStore(blob.NewMemory("mem://media")),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = module.Dispose() })

	if err := module.Init(context.Background()); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	return module
}

func TestModuleInitSeedsAndLoads(t *testing.T) {
	module := newTestModule(t)

	published := module.Published()
	if published.General().LogoText != "Kallos" {
		t.Fatalf("published general = %+v", published.General())
	}
	if len(published.Schedule()) != len(content.Weekdays) {
		t.Fatalf("published schedule has %d days", len(published.Schedule()))
	}
}

func TestAdminEditFlowsToPublishedSite(t *testing.T) {
	ctx := context.Background()
	module := newTestModule(t)

	ws := module.NewWorkspace()
	if err := ws.Load(ctx); err != nil {
		t.Fatalf("workspace load: %v", err)
	}

	coach := ws.AddCoach()
	coach.Name = content.NewLocalized("Omar", "عمر")
	if err := ws.UpdateCoach(0, coach); err != nil {
		t.Fatalf("UpdateCoach() error = %v", err)
	}
	if err := ws.SaveCoaches(ctx); err != nil {
		t.Fatalf("SaveCoaches() error = %v", err)
	}

	coaches := module.Published().Coaches()
	if len(coaches) != 1 {
		t.Fatalf("published coaches = %d", len(coaches))
	}
	if coaches[0].IsNew() {
		t.Fatal("published coach has no identity")
	}
	if coaches[0].Name.Resolve(content.LanguageArabic) != "عمر" {
		t.Fatalf("published coach name = %v", coaches[0].Name)
	}
}

func TestMessagesThroughModule(t *testing.T) {
	ctx := context.Background()
	module := newTestModule(t)

	err := module.Messages().Submit(ctx, &content.Message{
		Name:    "Sara",
		Email:   "sara@example.com",
		Message: "What are your opening hours?",
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	stored, err := module.Messages().List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("stored = %d", len(stored))
	}
}
