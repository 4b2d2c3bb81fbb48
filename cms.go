// Package cms wires the bilingual content core behind the Kallos site: a
// SQLite-backed remote store, a published read cache, draft workspaces for
// the embedded admin, media uploads, and contact message intake.
package cms

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/kallosgym/cms/admin"
	"github.com/kallosgym/cms/internal/blob"
	"github.com/kallosgym/cms/internal/bunstore"
	"github.com/kallosgym/cms/internal/httpapi"
	"github.com/kallosgym/cms/internal/logging"
	"github.com/kallosgym/cms/internal/logging/gologger"
	"github.com/kallosgym/cms/internal/seed"
	"github.com/kallosgym/cms/messages"
	"github.com/kallosgym/cms/pkg/interfaces"
	"github.com/kallosgym/cms/remote"
	"github.com/kallosgym/cms/site"
)

// Module owns the content runtime. Construct with New, call Init once, and
// Dispose on shutdown.
type Module struct {
	cfg      Config
	db       *bun.DB
	store    remote.Store
	objects  remote.ObjectStore
	provider interfaces.LoggerProvider
	logger   interfaces.Logger

	published *site.Store
	messages  *messages.Service
	uploads   *admin.Uploads
}

// Option overrides a Module dependency before wiring.
type Option func(*Module)

// WithStore injects a remote store, bypassing the SQLite setup. Used by
// hosts that bring their own persistence and by tests.
func WithStore(s remote.Store) Option {
	return func(m *Module) { m.store = s }
}

// WithObjectStore injects a media object store, bypassing the configured
// backend.
func WithObjectStore(o remote.ObjectStore) Option {
	return func(m *Module) { m.objects = o }
}

// WithLoggerProvider injects the host's logger provider.
func WithLoggerProvider(p interfaces.LoggerProvider) Option {
	return func(m *Module) { m.provider = p }
}

// New validates cfg and wires the module. Nothing touches the network or
// disk until Init.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Module{cfg: cfg}
	for _, opt := range opts {
		opt(m)
	}

	if m.provider == nil {
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
		})
		if err != nil {
			return nil, err
		}
		m.provider = provider
	}
	m.logger = logging.ModuleLogger(m.provider, "")

	if m.store == nil {
		sqldb, err := sql.Open("sqlite3", cfg.Database.DSN)
		if err != nil {
			return nil, fmt.Errorf("cms: open database: %w", err)
		}
		m.db = bun.NewDB(sqldb, sqlitedialect.New())
		m.store = bunstore.New(m.db)
	}

	if m.objects == nil {
		objects, err := newObjectStore(cfg.Media)
		if err != nil {
			return nil, err
		}
		m.objects = objects
	}

	m.published = site.NewStore(m.store, m.provider)
	m.messages = messages.NewService(m.store, m.provider)
	m.uploads = admin.NewUploads(m.objects, m.provider)
	return m, nil
}

func newObjectStore(cfg MediaConfig) (remote.ObjectStore, error) {
	switch cfg.Backend {
	case MediaBackendS3:
		return blob.NewS3(context.Background(), blob.S3Config{
			Region:          cfg.Region,
			Bucket:          cfg.Bucket,
			AccessKeyID:     cfg.AccessKeyID,
			SecretAccessKey: cfg.SecretAccessKey,
			Endpoint:        cfg.Endpoint,
			UsePathStyle:    cfg.UsePathStyle,
			PublicURL:       cfg.PublicURL,
		})
	case MediaBackendMemory, "":
		return blob.NewMemory(cfg.URLPrefix), nil
	default:
		return blob.NewFS(blob.FSConfig{
			BaseDir:   cfg.BaseDir,
			URLPrefix: cfg.URLPrefix,
		})
	}
}

// Init prepares the schema when the module owns the database, seeds the
// baseline content when configured, and loads the published cache. A partial
// published load is not fatal; it logs and serves what settled.
func (m *Module) Init(ctx context.Context) error {
	if m.db != nil {
		if store, ok := m.store.(*bunstore.Store); ok {
			if err := store.CreateTables(ctx); err != nil {
				return err
			}
		}
	}

	if m.cfg.SeedDefaults {
		if err := seed.New(m.store, m.provider).Defaults(ctx); err != nil {
			return err
		}
	}

	if err := m.published.Load(ctx); err != nil {
		m.logger.Warn("published load incomplete", "error", err)
	}
	m.logger.Info("cms initialized")
	return nil
}

// Published returns the read cache the public site serves from.
func (m *Module) Published() *site.Store {
	return m.published
}

// NewWorkspace returns a fresh draft workspace bound to the published cache.
// Call Load on it before editing.
func (m *Module) NewWorkspace() *admin.Workspace {
	return admin.NewWorkspace(m.store, m.published, m.provider)
}

// Messages returns the contact submission service.
func (m *Module) Messages() *messages.Service {
	return m.messages
}

// Uploads returns the media upload service.
func (m *Module) Uploads() *admin.Uploads {
	return m.uploads
}

// Store exposes the underlying remote store for seeding and host wiring.
func (m *Module) Store() remote.Store {
	return m.store
}

// Handler returns the public HTTP API over the published cache.
func (m *Module) Handler() http.Handler {
	return httpapi.New(m.published, m.messages, m.provider).Routes()
}

// Dispose stops the published cache and closes the database when the module
// owns it.
func (m *Module) Dispose() error {
	m.published.Dispose()
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}
