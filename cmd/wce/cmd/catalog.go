package cmd

import (
	"context"
	"io"

	"github.com/labstack/gommon/log"

	"github.com/corey/wce/internal/adapters/bbolt"
	"github.com/corey/wce/internal/adapters/restcountries"
	"github.com/corey/wce/internal/app"
	"github.com/corey/wce/internal/ports"
)

// session is the catalog used by one-shot commands.
type session struct {
	catalog *app.Catalog
	client  *restcountries.Client
	store   *bbolt.Store // nil when the cache is locked by a server
	logger  *log.Logger
}

// openSession opens the snapshot cache and the upstream client. A locked
// cache is not fatal: the command runs uncached with a warning.
func openSession(stderr io.Writer) (*session, error) {
	logger := app.NewLogger(cfg.LogLevel, stderr)
	paths := app.NewPaths(cfg.DataDir)
	if err := paths.EnsureDirs(); err != nil {
		return nil, err
	}

	s := &session{
		logger: logger,
		client: restcountries.New(restcountries.Options{BaseURL: cfg.APIURL, Timeout: cfg.Timeout}),
	}

	store, err := bbolt.NewStore(paths.DB)
	switch {
	case err == nil:
		s.store = store
	case isDBLockError(err):
		logger.Warnf("%s", diagnoseDBLock(paths))
	default:
		return nil, err
	}

	var snapshots ports.SnapshotStore
	if s.store != nil {
		snapshots = s.store
	}
	s.catalog = app.NewCatalog(app.CatalogConfig{
		Source: s.client,
		Store:  snapshots,
		TTL:    cfg.CacheTTL,
		Logger: logger,
	})
	return s, nil
}

// load opens a session and loads the collection.
func load(ctx context.Context, stderr io.Writer) (*session, error) {
	s, err := openSession(stderr)
	if err != nil {
		return nil, err
	}
	if err := s.catalog.Load(ctx); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *session) Close() {
	if s.store != nil {
		s.store.Close()
	}
}
