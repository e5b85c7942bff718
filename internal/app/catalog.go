package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/labstack/gommon/log"

	"github.com/corey/wce/internal/adapters/metrics"
	"github.com/corey/wce/internal/domain/country"
	"github.com/corey/wce/internal/domain/explorer"
	"github.com/corey/wce/internal/ports"
)

// Load origins, also used as metric labels.
const (
	OriginCache    = "cache"
	OriginUpstream = "upstream"
	OriginStale    = "stale"
)

// CatalogConfig wires a Catalog.
type CatalogConfig struct {
	Source  ports.CountrySource
	Store   ports.SnapshotStore // optional
	TTL     time.Duration
	Logger  *log.Logger
	Metrics *metrics.Metrics
	Now     func() time.Time
}

// Catalog owns the read-only country collection and the index built over it.
// Readers get an immutable Dataset; loads swap in a new one.
type Catalog struct {
	source  ports.CountrySource
	store   ports.SnapshotStore
	ttl     time.Duration
	logger  *log.Logger
	metrics *metrics.Metrics
	now     func() time.Time

	loadMu sync.Mutex // serializes Load/Refresh
	mu     sync.RWMutex
	data   *explorer.Dataset
}

// NewCatalog creates an empty Catalog.
func NewCatalog(cfg CatalogConfig) *Catalog {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New("catalog")
		cfg.Logger.SetLevel(log.OFF)
	}
	return &Catalog{
		source:  cfg.Source,
		store:   cfg.Store,
		ttl:     cfg.TTL,
		logger:  cfg.Logger,
		metrics: cfg.Metrics,
		now:     cfg.Now,
	}
}

// Load serves a fresh snapshot from the store when one exists, otherwise
// fetches and saves. If the fetch fails and any snapshot exists, the stale
// snapshot is served instead.
func (c *Catalog) Load(ctx context.Context) error {
	c.loadMu.Lock()
	defer c.loadMu.Unlock()

	cached := c.loadSnapshot()
	if cached != nil && c.ttl > 0 && cached.Age(c.now()) < c.ttl {
		c.logger.Debugf("catalog: %d countries from cache (age %s)", len(cached.Countries), cached.Age(c.now()).Round(time.Second))
		c.set(cached.Countries, cached.FetchedAt, OriginCache)
		return nil
	}

	err := c.fetch(ctx)
	if err == nil {
		return nil
	}
	if cached != nil {
		c.logger.Warnf("catalog: fetch failed, serving stale snapshot from %s: %v", cached.FetchedAt.Format(time.RFC3339), err)
		c.set(cached.Countries, cached.FetchedAt, OriginStale)
		return nil
	}
	return err
}

// Refresh always refetches. On failure the current collection is kept.
func (c *Catalog) Refresh(ctx context.Context) error {
	c.loadMu.Lock()
	defer c.loadMu.Unlock()
	return c.fetch(ctx)
}

func (c *Catalog) fetch(ctx context.Context) error {
	countries, err := c.source.All(ctx)
	if err != nil {
		return fmt.Errorf("fetch countries: %w", err)
	}
	fetchedAt := c.now().UTC()
	if c.store != nil {
		snap := &ports.Snapshot{FetchedAt: fetchedAt, Countries: countries}
		if err := c.store.Save(ports.DatasetIndependent, snap); err != nil {
			c.logger.Warnf("catalog: save snapshot: %v", err)
		}
	}
	c.logger.Infof("catalog: fetched %d countries", len(countries))
	c.set(countries, fetchedAt, OriginUpstream)
	return nil
}

func (c *Catalog) loadSnapshot() *ports.Snapshot {
	if c.store == nil {
		return nil
	}
	snap, err := c.store.Load(ports.DatasetIndependent)
	if err != nil {
		c.logger.Warnf("catalog: load snapshot: %v", err)
		return nil
	}
	return snap
}

func (c *Catalog) set(countries []country.Country, fetchedAt time.Time, origin string) {
	ds := explorer.NewDataset(countries, fetchedAt, origin)
	c.mu.Lock()
	c.data = &ds
	c.mu.Unlock()
	c.metrics.SetCatalogSize(len(countries))
	c.metrics.IncCatalogLoad(origin)
}

// Snapshot returns the current collection. ok is false before the first load.
func (c *Catalog) Snapshot() (explorer.Dataset, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.data == nil {
		return explorer.Dataset{}, false
	}
	return *c.data, true
}

// Detail fetches the full record for code. When the upstream lookup fails
// for any reason other than an unknown code, the list record is used.
// Border names missing from the collection are fetched in one extra call.
func (c *Catalog) Detail(ctx context.Context, code string) (*explorer.Detail, error) {
	ds, loaded := c.Snapshot()

	full, err := c.source.ByCode(ctx, code)
	partial := false
	switch {
	case err == nil && full == nil:
		return nil, ports.ErrNotFound
	case err == nil:
	case errors.Is(err, ports.ErrNotFound):
		return nil, err
	default:
		basic, ok := ds.Index.Lookup(code)
		if !loaded || !ok {
			return nil, fmt.Errorf("fetch %s: %w", code, err)
		}
		c.logger.Warnf("catalog: detail for %s unavailable, using list record: %v", code, err)
		full, partial = &basic, true
	}

	d := explorer.NewDetail(*full, ds.Index, partial)
	if missing := d.UnnamedBorders(); len(missing) > 0 && !partial {
		if extra, err := c.source.ByCodes(ctx, missing); err == nil {
			d.NameBorders(extra)
		} else {
			c.logger.Debugf("catalog: border names for %s: %v", code, err)
		}
	}
	return &d, nil
}
