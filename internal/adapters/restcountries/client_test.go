package restcountries

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/wce/internal/adapters/metrics"
	"github.com/corey/wce/internal/ports"
)

const franceJSON = `{"name":{"common":"France","official":"French Republic"},"capital":["Paris"],"population":67391582,"region":"Europe","subregion":"Western Europe","currencies":{"EUR":{"name":"Euro","symbol":"€"}},"languages":{"fra":"French"},"borders":["BEL","DEU"],"area":551695,"latlng":[46,2],"cca2":"FR","cca3":"FRA","cioc":"FRA"}`

type recorded struct {
	mu    sync.Mutex
	paths []string
}

func (r *recorded) add(p string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, p)
}

func (r *recorded) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.paths...)
}

func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, *recorded, *metrics.Metrics) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.add(r.URL.RequestURI())
		h(w, r)
	}))
	t.Cleanup(srv.Close)

	m := metrics.New()
	c := New(Options{BaseURL: srv.URL + "/v3.1/", Timeout: 2 * time.Second, Metrics: m})
	return c, rec, m
}

func TestAll(t *testing.T) {
	c, rec, m := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3.1/independent", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("status"))
		assert.Equal(t, ListFields, r.URL.Query().Get("fields"))
		w.Write([]byte("[" + franceJSON + "]"))
	})

	got, err := c.All(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "France", got[0].Name.Common)
	assert.Len(t, rec.all(), 1)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Upstream.WithLabelValues("independent", "ok")))
}

func TestByCode_ObjectResponse(t *testing.T) {
	c, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3.1/alpha/FRA", r.URL.Path)
		assert.Equal(t, DetailFields, r.URL.Query().Get("fields"))
		w.Write([]byte(franceJSON))
	})

	got, err := c.ByCode(context.Background(), "fra")
	require.NoError(t, err)
	assert.Equal(t, "Euro (€)", got.CurrencySummary())
	assert.Equal(t, []string{"BEL", "DEU"}, got.Borders)
}

func TestByCode_ArrayResponse(t *testing.T) {
	c, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(" [" + franceJSON + "]"))
	})

	got, err := c.ByCode(context.Background(), "FR")
	require.NoError(t, err)
	assert.Equal(t, "FRA", got.CCA3)
}

func TestByCode_Cached(t *testing.T) {
	c, rec, m := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(franceJSON))
	})

	for i := 0; i < 3; i++ {
		_, err := c.ByCode(context.Background(), "FRA")
		require.NoError(t, err)
	}
	assert.Len(t, rec.all(), 1)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.DetailCache.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DetailCache.WithLabelValues("miss")))
}

func TestByCode_NotFound(t *testing.T) {
	c, _, m := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"status":404,"message":"Not Found"}`, http.StatusNotFound)
	})

	_, err := c.ByCode(context.Background(), "ZZZ")
	assert.ErrorIs(t, err, ports.ErrNotFound)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Upstream.WithLabelValues("alpha", "not_found")))

	_, err = c.ByCode(context.Background(), "  ")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestStatusError(t *testing.T) {
	c, _, m := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.All(context.Background())
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusBadGateway, se.Status)
	assert.Contains(t, err.Error(), "502")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Upstream.WithLabelValues("independent", "error")))
}

func TestDecodeError(t *testing.T) {
	c, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>"))
	})

	_, err := c.All(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestByCodes(t *testing.T) {
	c, rec, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3.1/alpha", r.URL.Path)
		assert.Equal(t, "BEL,DEU", r.URL.Query().Get("codes"))
		w.Write([]byte(`[{"name":{"common":"Belgium"},"cca3":"BEL"},{"name":{"common":"Germany"},"cca3":"DEU"}]`))
	})

	got, err := c.ByCodes(context.Background(), []string{"bel", " ", "deu"})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = c.ByCodes(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Len(t, rec.all(), 1)
}

func TestByRegionAndName(t *testing.T) {
	c, rec, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[" + franceJSON + "]"))
	})

	_, err := c.ByRegion(context.Background(), "Europe")
	require.NoError(t, err)
	_, err = c.ByName(context.Background(), "united kingdom")
	require.NoError(t, err)

	paths := rec.all()
	require.Len(t, paths, 2)
	assert.Contains(t, paths[0], "/v3.1/region/europe?")
	assert.Contains(t, paths[1], "/v3.1/name/united%20kingdom?")
}

func TestSingleflight_CollapsesConcurrentRequests(t *testing.T) {
	release := make(chan struct{})
	var hits atomic.Int32
	c, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		<-release
		w.Write([]byte("[" + franceJSON + "]"))
	})

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := c.All(context.Background())
			assert.NoError(t, err)
			assert.Len(t, got, 1)
		}()
	}
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), hits.Load())
}

func TestNew_Defaults(t *testing.T) {
	c := New(Options{})
	assert.Equal(t, DefaultBaseURL, c.BaseURL())
}

func TestByCode_CancelledCallerDoesNotFailSharedRequest(t *testing.T) {
	started := make(chan struct{})
	var once sync.Once
	c, rec, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		once.Do(func() { close(started) })
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(franceJSON))
	})

	ctx, cancel := context.WithCancel(context.Background())
	first := make(chan error, 1)
	go func() {
		_, err := c.ByCode(ctx, "FRA")
		first <- err
	}()
	<-started

	second := make(chan string, 1)
	secondErr := make(chan error, 1)
	go func() {
		got, err := c.ByCode(context.Background(), "FRA")
		if got != nil {
			second <- got.CCA3
		} else {
			second <- ""
		}
		secondErr <- err
	}()
	time.Sleep(20 * time.Millisecond)
	cancel()

	assert.ErrorIs(t, <-first, context.Canceled)
	require.NoError(t, <-secondErr)
	assert.Equal(t, "FRA", <-second)
	assert.Len(t, rec.all(), 1)
}
