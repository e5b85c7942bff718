// Package app wires together all adapters and domain logic.
// It provides lifecycle management for the explorer server: create, start, stop.
package app

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/labstack/gommon/log"

	"github.com/corey/wce/internal/adapters/bbolt"
	"github.com/corey/wce/internal/adapters/geojson"
	"github.com/corey/wce/internal/adapters/metrics"
	"github.com/corey/wce/internal/adapters/restcountries"
	"github.com/corey/wce/internal/adapters/web"
	"github.com/corey/wce/internal/ports"
)

// RetryInterval is how long Start waits between catalog load attempts while
// the upstream service is unreachable and nothing is cached.
var RetryInterval = 30 * time.Second

// App is the top-level container wiring all components together.
type App struct {
	Config  Config
	Paths   *Paths
	Logger  *log.Logger
	Metrics *metrics.Metrics

	Store   *bbolt.Store
	Source  ports.CountrySource
	Catalog *Catalog
	Watcher ports.Watcher
	Web     *web.Server

	geometry atomic.Pointer[geojson.Set]

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Options overrides collaborators, mainly for tests. Zero values select the
// real adapters.
type Options struct {
	Source    ports.CountrySource
	LogOutput io.Writer
}

// New creates an App from cfg. Nothing is fetched or served until Start.
func New(cfg Config, opts Options) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	paths := NewPaths(cfg.DataDir)
	if err := paths.EnsureDirs(); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	store, err := bbolt.NewStore(paths.DB)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	logger := NewLogger(cfg.LogLevel, opts.LogOutput)
	m := metrics.New()

	source := opts.Source
	if source == nil {
		source = restcountries.New(restcountries.Options{
			BaseURL: cfg.APIURL,
			Timeout: cfg.Timeout,
			Metrics: m,
		})
	}

	a := &App{
		Config:  cfg,
		Paths:   paths,
		Logger:  logger,
		Metrics: m,
		Store:   store,
		Source:  source,
		Catalog: NewCatalog(CatalogConfig{
			Source:  source,
			Store:   store,
			TTL:     cfg.CacheTTL,
			Logger:  logger,
			Metrics: m,
		}),
	}
	a.Web = web.NewServer(web.Config{
		Catalog:  a.Catalog,
		Geometry: a,
		Metrics:  m,
		Logger:   logger,
		PortFile: paths.PortFile,
	})
	return a, nil
}

// Start loads data and begins serving on Config.Addr. A failed first catalog
// load is not fatal: the API answers 503 while a background loop retries.
// A missing or broken geometry file only disables the map.
func (a *App) Start(ctx context.Context) error {
	ctx, a.cancel = context.WithCancel(ctx)

	if err := a.Catalog.Load(ctx); err != nil {
		a.Logger.Warnf("catalog unavailable, retrying every %s: %v", RetryInterval, err)
		a.wg.Add(1)
		go a.retryLoad(ctx)
	}

	if a.Config.GeometryPath != "" {
		a.watchGeometry(a.Config.GeometryPath)
	}

	if err := a.Web.Start(a.Config.Addr); err != nil {
		a.cancel()
		a.wg.Wait()
		return fmt.Errorf("start server: %w", err)
	}
	a.Logger.Infof("serving on %s", a.Web.URL())
	return nil
}

func (a *App) retryLoad(ctx context.Context) {
	defer a.wg.Done()
	ticker := time.NewTicker(RetryInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := a.Catalog.Load(ctx); err != nil {
				a.Logger.Debugf("catalog retry: %v", err)
				continue
			}
			a.Logger.Info("catalog loaded")
			return
		}
	}
}

// Stop shuts down the server, the watcher and the store.
func (a *App) Stop() error {
	if a.cancel != nil {
		a.cancel()
	}
	a.wg.Wait()
	if a.Watcher != nil {
		a.Watcher.Stop()
	}
	a.Web.Stop()
	a.Paths.CleanEphemeral()
	return a.Store.Close()
}
