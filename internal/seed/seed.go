// Package seed populates an empty remote store: built-in defaults for the
// singleton collections plus optional page bodies read from markdown files.
//
// Page files are named <slug>.<lang>.md; the frontmatter carries the title
// and optional media URLs, the body becomes the page content for that
// language.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/kallosgym/cms/content"
	"github.com/kallosgym/cms/internal/logging"
	"github.com/kallosgym/cms/pkg/interfaces"
	"github.com/kallosgym/cms/remote"
)

// pageMeta is the frontmatter schema for page markdown files.
type pageMeta struct {
	Title    string `yaml:"title"`
	ImageURL string `yaml:"image_url"`
	MapURL   string `yaml:"map_url"`
}

// Seeder writes baseline content into a remote store.
type Seeder struct {
	remote remote.Store
	logger interfaces.Logger
}

// New builds a Seeder.
func New(remoteStore remote.Store, provider interfaces.LoggerProvider) *Seeder {
	return &Seeder{
		remote: remoteStore,
		logger: logging.SeedLogger(provider),
	}
}

// Defaults writes the built-in baseline: the settings singleton, the
// well-known pages, and an empty full week. Existing rows are only written
// when absent, so re-running is safe.
func (s *Seeder) Defaults(ctx context.Context) error {
	if _, err := s.remote.FetchGeneral(ctx); err != nil {
		if !errors.Is(err, content.ErrNotFound) {
			return fmt.Errorf("seed: check general content: %w", err)
		}
		if err := s.remote.SaveGeneral(ctx, content.DefaultGeneralContent()); err != nil {
			return fmt.Errorf("seed: general content: %w", err)
		}
		s.logger.Info("seeded general content")
	}

	existing, err := s.remote.FetchPages(ctx)
	if err != nil {
		return fmt.Errorf("seed: fetch pages: %w", err)
	}
	have := make(map[string]bool, len(existing))
	for _, p := range existing {
		have[p.Slug] = true
	}
	var missing []*content.Page
	for _, p := range content.DefaultPages() {
		if !have[p.Slug] {
			missing = append(missing, p)
		}
	}
	if len(missing) > 0 {
		if err := s.remote.UpsertPages(ctx, missing); err != nil {
			return fmt.Errorf("seed: pages: %w", err)
		}
		s.logger.Info("seeded pages", "count", len(missing))
	}

	days, err := s.remote.FetchSchedule(ctx)
	if err != nil {
		return fmt.Errorf("seed: fetch schedule: %w", err)
	}
	if len(days) < len(content.Weekdays) {
		haveDay := make(map[string]bool, len(days))
		for _, d := range days {
			haveDay[d.DayName] = true
		}
		var missingDays []*content.ScheduleDay
		for _, d := range content.DefaultSchedule() {
			if !haveDay[d.DayName] {
				missingDays = append(missingDays, d)
			}
		}
		if err := s.remote.UpsertSchedule(ctx, missingDays); err != nil {
			return fmt.Errorf("seed: schedule: %w", err)
		}
		s.logger.Info("seeded schedule days", "count", len(missingDays))
	}

	return nil
}

// Pages reads every *.md file in fsys and upserts the pages they describe.
// Files for the same slug in different languages merge into one page.
func (s *Seeder) Pages(ctx context.Context, fsys fs.FS) error {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("seed: read pages dir: %w", err)
	}

	pages := make(map[string]*content.Page)
	var order []string

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		slug, lang, ok := splitPageFilename(entry.Name())
		if !ok {
			s.logger.Warn("skipping page file with unexpected name", "file", entry.Name())
			continue
		}

		raw, err := fs.ReadFile(fsys, entry.Name())
		if err != nil {
			return fmt.Errorf("seed: read %s: %w", entry.Name(), err)
		}

		var meta pageMeta
		body, err := frontmatter.Parse(strings.NewReader(string(raw)), &meta)
		if err != nil {
			return fmt.Errorf("seed: parse %s: %w", entry.Name(), err)
		}

		page, ok := pages[slug]
		if !ok {
			page = &content.Page{Slug: slug, Title: content.Localized{}, Content: content.Localized{}}
			pages[slug] = page
			order = append(order, slug)
		}
		page.Title.Set(lang, meta.Title)
		page.Content.Set(lang, strings.TrimSpace(string(body)))
		if meta.ImageURL != "" {
			page.ImageURL = meta.ImageURL
		}
		if meta.MapURL != "" {
			page.MapURL = meta.MapURL
		}
	}

	if len(order) == 0 {
		return nil
	}

	out := make([]*content.Page, 0, len(order))
	for _, slug := range order {
		page := pages[slug]
		if err := page.Validate(); err != nil {
			return fmt.Errorf("seed: page %s: %w", slug, err)
		}
		out = append(out, page)
	}

	if err := s.remote.UpsertPages(ctx, out); err != nil {
		return fmt.Errorf("seed: upsert pages: %w", err)
	}
	s.logger.Info("seeded pages from markdown", "count", len(out))
	return nil
}

// splitPageFilename splits "about.ar.md" into ("about", "ar").
func splitPageFilename(name string) (slug, lang string, ok bool) {
	base := strings.TrimSuffix(path.Base(name), ".md")
	i := strings.LastIndex(base, ".")
	if i <= 0 || i == len(base)-1 {
		return "", "", false
	}
	slug, lang = base[:i], base[i+1:]
	if !content.IsLanguage(lang) {
		return "", "", false
	}
	return slug, lang, true
}
