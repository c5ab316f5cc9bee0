package portfolio

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-portfolio/content"
	"github.com/goliatone/go-portfolio/internal/logging"
	"github.com/goliatone/go-portfolio/internal/markdown"
	"github.com/goliatone/go-portfolio/internal/repository"
	"github.com/goliatone/go-portfolio/internal/static"
	"github.com/goliatone/go-portfolio/internal/store"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
)

// ContentRepository exports the repository facade for consumers of the
// portfolio package.
type ContentRepository = repository.Facade

// ContentSource exports the source contract so integrations can supply their
// own backing systems.
type ContentSource = repository.Source

// PathEnumerator exports the static path enumerator.
type PathEnumerator = static.Enumerator

// Module is the top level runtime façade: one content repository over the
// configured sources plus the static path enumerator built on it.
type Module struct {
	config     Config
	provider   interfaces.LoggerProvider
	db         *bun.DB
	ownsDB     bool
	repo       *ContentRepository
	enumerator *PathEnumerator
}

type moduleOptions struct {
	provider interfaces.LoggerProvider
	fsys     fs.FS
	db       *bun.DB
}

// Option overrides module wiring, mainly for embedding and tests.
type Option func(*moduleOptions)

// WithLoggerProvider replaces the default go-logger provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(o *moduleOptions) {
		o.provider = provider
	}
}

// WithFilesystem replaces the OS filesystem rooted at Content.Dir.
func WithFilesystem(fsys fs.FS) Option {
	return func(o *moduleOptions) {
		o.fsys = fsys
	}
}

// WithDB injects an existing database handle instead of opening one from the
// configured driver and DSN.
func WithDB(db *bun.DB) Option {
	return func(o *moduleOptions) {
		o.db = db
	}
}

// New constructs a Module from the provided configuration.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("portfolio config: %w", err)
	}

	options := moduleOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	provider := options.provider
	if provider == nil {
		built, err := logging.NewProvider(logging.ProviderConfig{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
		})
		if err != nil {
			return nil, err
		}
		provider = built
	}

	renderer := markdown.NewRenderer(markdown.Options{
		Extensions:     cfg.Markdown.Extensions,
		HighlightStyle: cfg.Markdown.HighlightStyle,
		HardWraps:      cfg.Markdown.HardWraps,
	})

	fsys := options.fsys
	if fsys == nil {
		fsys = os.DirFS(cfg.Content.Dir)
	}

	fsSource := repository.NewFSSource(
		markdown.NewLoader(fsys),
		renderer,
		cfg.Content.BlogDir,
		cfg.Content.ProjectDir,
		logging.RepositoryLogger(provider),
	)

	module := &Module{
		config:   cfg,
		provider: provider,
	}

	primary, db, err := buildPrimarySource(cfg, options, renderer, provider)
	if err != nil {
		return nil, err
	}
	module.db = db
	module.ownsDB = db != nil && options.db == nil

	module.repo = repository.New(primary, fsSource,
		repository.WithLogger(logging.RepositoryLogger(provider)),
		repository.WithRenderer(renderer),
	)
	module.enumerator = static.NewEnumerator(module.repo, logging.StaticLogger(provider))

	return module, nil
}

func buildPrimarySource(cfg Config, options moduleOptions, renderer *markdown.Renderer, provider interfaces.LoggerProvider) (repository.Source, *bun.DB, error) {
	db := options.db
	if db == nil {
		switch cfg.Database.Driver {
		case "":
			return repository.NewDisabledSource(), nil, nil
		case DriverPostgres:
			opened, err := store.OpenPostgres(cfg.Database.DSN)
			if err != nil {
				return nil, nil, err
			}
			db = opened
		case DriverSQLite:
			opened, err := store.OpenSQLite(cfg.Database.DSN)
			if err != nil {
				return nil, nil, err
			}
			db = opened
		default:
			return nil, nil, fmt.Errorf("portfolio: unknown database driver %q", cfg.Database.Driver)
		}
	}

	st, err := buildStore(cfg, db)
	if err != nil {
		return nil, nil, err
	}
	return repository.NewDBSource(st, renderer, logging.StoreLogger(provider)), db, nil
}

func buildStore(cfg Config, db *bun.DB) (*store.Store, error) {
	if !cfg.Cache.Enabled {
		return store.New(db), nil
	}

	cacheCfg := repocache.DefaultConfig()
	if cfg.Cache.TTL > 0 {
		cacheCfg.TTL = cfg.Cache.TTL
	}
	cacheService, err := repocache.NewCacheService(cacheCfg)
	if err != nil {
		return nil, fmt.Errorf("portfolio cache: %w", err)
	}
	return store.NewWithCache(db, cacheService, repocache.NewDefaultKeySerializer()), nil
}

// Repository returns the content repository facade.
func (m *Module) Repository() *ContentRepository {
	return m.repo
}

// Enumerator returns the static path enumerator.
func (m *Module) Enumerator() *PathEnumerator {
	return m.enumerator
}

// StaticPaths enumerates every route family a static export must pre-render.
func (m *Module) StaticPaths(ctx context.Context) (content.StaticPaths, error) {
	return m.enumerator.Paths(ctx)
}

// DB exposes the underlying database handle for advanced integrations. It is
// nil when no database source is configured.
func (m *Module) DB() *bun.DB {
	return m.db
}

// Close releases the database handle, when the module owns one.
func (m *Module) Close() error {
	if m.db == nil || !m.ownsDB {
		return nil
	}
	return m.db.Close()
}
