package app

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/corey/wce/internal/adapters/bbolt"
	"github.com/corey/wce/internal/adapters/metrics"
	"github.com/corey/wce/internal/domain/country"
	"github.com/corey/wce/internal/ports"
	"github.com/corey/wce/internal/ports/mocks"
)

var errUpstream = errors.New("upstream down")

func testCountries() []country.Country {
	return []country.Country{
		{Name: country.Name{Common: "France", Official: "French Republic"}, Capital: []string{"Paris"}, Population: 67_000_000, Region: "Europe", Subregion: "Western Europe", CCA2: "FR", CCA3: "FRA", LatLng: []float64{46, 2}},
		{Name: country.Name{Common: "Spain", Official: "Kingdom of Spain"}, Capital: []string{"Madrid"}, Population: 47_000_000, Region: "Europe", Subregion: "Southern Europe", CCA2: "ES", CCA3: "ESP", LatLng: []float64{40, -4}},
		{Name: country.Name{Common: "Japan", Official: "Japan"}, Capital: []string{"Tokyo"}, Population: 125_000_000, Region: "Asia", Subregion: "Eastern Asia", CCA2: "JP", CCA3: "JPN", LatLng: []float64{36, 138}},
	}
}

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newCatalogFixture(t *testing.T) (*Catalog, *mocks.MockCountrySource, *bbolt.Store, *clock, *metrics.Metrics) {
	t.Helper()
	ctrl := gomock.NewController(t)
	src := mocks.NewMockCountrySource(ctrl)

	store, err := bbolt.NewStore(filepath.Join(t.TempDir(), "wce.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	clk := &clock{t: time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)}
	m := metrics.New()
	cat := NewCatalog(CatalogConfig{
		Source:  src,
		Store:   store,
		TTL:     time.Hour,
		Metrics: m,
		Now:     clk.now,
	})
	return cat, src, store, clk, m
}

func TestCatalog_NotLoaded(t *testing.T) {
	cat, _, _, _, _ := newCatalogFixture(t)
	_, ok := cat.Snapshot()
	assert.False(t, ok)
}

func TestCatalog_LoadFetchesAndSaves(t *testing.T) {
	cat, src, store, clk, m := newCatalogFixture(t)
	src.EXPECT().All(gomock.Any()).Return(testCountries(), nil)

	require.NoError(t, cat.Load(context.Background()))

	ds, ok := cat.Snapshot()
	require.True(t, ok)
	assert.Len(t, ds.Countries, 3)
	assert.Equal(t, OriginUpstream, ds.Origin)
	assert.True(t, clk.t.Equal(ds.FetchedAt))
	_, found := ds.Index.Lookup("jpn")
	assert.True(t, found)

	snap, err := store.Load(ports.DatasetIndependent)
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Len(t, snap.Countries, 3)

	assert.Equal(t, 3.0, testutil.ToFloat64(m.CatalogSize))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CatalogRefresh.WithLabelValues(OriginUpstream)))
}

func TestCatalog_LoadUsesFreshSnapshot(t *testing.T) {
	cat, _, store, clk, _ := newCatalogFixture(t)
	require.NoError(t, store.Save(ports.DatasetIndependent, &ports.Snapshot{
		FetchedAt: clk.t.Add(-30 * time.Minute),
		Countries: testCountries()[:2],
	}))

	require.NoError(t, cat.Load(context.Background()))
	ds, ok := cat.Snapshot()
	require.True(t, ok)
	assert.Equal(t, OriginCache, ds.Origin)
	assert.Len(t, ds.Countries, 2)
}

func TestCatalog_LoadRefetchesExpiredSnapshot(t *testing.T) {
	cat, src, store, clk, _ := newCatalogFixture(t)
	require.NoError(t, store.Save(ports.DatasetIndependent, &ports.Snapshot{
		FetchedAt: clk.t.Add(-2 * time.Hour),
		Countries: testCountries()[:1],
	}))
	src.EXPECT().All(gomock.Any()).Return(testCountries(), nil)

	require.NoError(t, cat.Load(context.Background()))
	ds, _ := cat.Snapshot()
	assert.Equal(t, OriginUpstream, ds.Origin)
	assert.Len(t, ds.Countries, 3)
}

func TestCatalog_LoadServesStaleOnFailure(t *testing.T) {
	cat, src, store, clk, _ := newCatalogFixture(t)
	require.NoError(t, store.Save(ports.DatasetIndependent, &ports.Snapshot{
		FetchedAt: clk.t.Add(-48 * time.Hour),
		Countries: testCountries()[:1],
	}))
	src.EXPECT().All(gomock.Any()).Return(nil, errUpstream)

	require.NoError(t, cat.Load(context.Background()))
	ds, ok := cat.Snapshot()
	require.True(t, ok)
	assert.Equal(t, OriginStale, ds.Origin)
	assert.Len(t, ds.Countries, 1)
}

func TestCatalog_LoadFailsWithoutSnapshot(t *testing.T) {
	cat, src, _, _, _ := newCatalogFixture(t)
	src.EXPECT().All(gomock.Any()).Return(nil, errUpstream)

	err := cat.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errUpstream)
	_, ok := cat.Snapshot()
	assert.False(t, ok)
}

func TestCatalog_RefreshKeepsDataOnFailure(t *testing.T) {
	cat, src, _, _, _ := newCatalogFixture(t)
	gomock.InOrder(
		src.EXPECT().All(gomock.Any()).Return(testCountries(), nil),
		src.EXPECT().All(gomock.Any()).Return(nil, errUpstream),
	)

	require.NoError(t, cat.Load(context.Background()))
	assert.Error(t, cat.Refresh(context.Background()))

	ds, ok := cat.Snapshot()
	require.True(t, ok)
	assert.Len(t, ds.Countries, 3)
}

func TestCatalog_WithoutStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockCountrySource(ctrl)
	src.EXPECT().All(gomock.Any()).Return(testCountries(), nil)

	cat := NewCatalog(CatalogConfig{Source: src, TTL: time.Hour})
	require.NoError(t, cat.Load(context.Background()))
	ds, ok := cat.Snapshot()
	require.True(t, ok)
	assert.Len(t, ds.Countries, 3)
}

func TestCatalog_Detail(t *testing.T) {
	cat, src, _, _, _ := newCatalogFixture(t)
	src.EXPECT().All(gomock.Any()).Return(testCountries(), nil)
	require.NoError(t, cat.Load(context.Background()))

	full := testCountries()[0]
	full.Borders = []string{"ESP", "AND"}
	full.Languages = map[string]string{"fra": "French"}
	src.EXPECT().ByCode(gomock.Any(), "FRA").Return(&full, nil)
	src.EXPECT().ByCodes(gomock.Any(), []string{"AND"}).Return([]country.Country{
		{Name: country.Name{Common: "Andorra"}, CCA3: "AND"},
	}, nil)

	d, err := cat.Detail(context.Background(), "FRA")
	require.NoError(t, err)
	assert.False(t, d.Partial)
	assert.Equal(t, "French", d.Languages)
	require.Len(t, d.Borders, 2)
	assert.Equal(t, "Spain", d.Borders[0].Name)
	assert.Equal(t, "Andorra", d.Borders[1].Name)
}

func TestCatalog_DetailFallsBackToListRecord(t *testing.T) {
	cat, src, _, _, _ := newCatalogFixture(t)
	src.EXPECT().All(gomock.Any()).Return(testCountries(), nil)
	require.NoError(t, cat.Load(context.Background()))
	src.EXPECT().ByCode(gomock.Any(), "jp").Return(nil, errUpstream)

	d, err := cat.Detail(context.Background(), "jp")
	require.NoError(t, err)
	assert.True(t, d.Partial)
	assert.Equal(t, "Japan", d.Country.Name.Common)
}

func TestCatalog_DetailNotFound(t *testing.T) {
	cat, src, _, _, _ := newCatalogFixture(t)
	src.EXPECT().ByCode(gomock.Any(), "ZZZ").Return(nil, ports.ErrNotFound)

	_, err := cat.Detail(context.Background(), "ZZZ")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestCatalog_DetailUnavailableAndUnknownLocally(t *testing.T) {
	cat, src, _, _, _ := newCatalogFixture(t)
	src.EXPECT().ByCode(gomock.Any(), "FRA").Return(nil, errUpstream)

	_, err := cat.Detail(context.Background(), "FRA")
	require.Error(t, err)
	assert.ErrorIs(t, err, errUpstream)
}
