package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/corey/wce/internal/domain/country"
	"github.com/corey/wce/internal/domain/explorer"
	"github.com/corey/wce/internal/domain/filter"
	"github.com/corey/wce/internal/domain/geography"
	"github.com/corey/wce/internal/ports"
)

// HealthResult is returned by /api/health.
type HealthResult struct {
	Status     string     `json:"status"`
	Countries  int        `json:"countries"`
	Geometries int        `json:"geometries"`
	Origin     string     `json:"origin,omitempty"`
	FetchedAt  *time.Time `json:"fetched_at,omitempty"`
	Uptime     string     `json:"uptime"`
}

// NearestResult is returned by /api/countries/nearest.
type NearestResult struct {
	Country    country.Country `json:"country"`
	DistanceKm float64         `json:"distance_km"`
	Geohash    string          `json:"geohash,omitempty"`
}

// FiltersResult lists the options for the filter controls.
type FiltersResult struct {
	Regions     []string        `json:"regions"`
	Subregions  []string        `json:"subregions"`
	Populations []string        `json:"populations"`
	Buckets     []filter.Bucket `json:"buckets"`
}

var errNotLoaded = &echo.HTTPError{
	Code:    http.StatusServiceUnavailable,
	Message: "country data is not loaded yet, retry shortly",
}

func (s *Server) dataset() (explorer.Dataset, error) {
	ds, ok := s.catalog.Snapshot()
	if !ok {
		return explorer.Dataset{}, errNotLoaded
	}
	return ds, nil
}

func (s *Server) geometries() []geography.Geometry {
	if s.geometry == nil {
		return nil
	}
	return s.geometry.Geometries()
}

func badRequest(format string, args ...any) *echo.HTTPError {
	return &echo.HTTPError{Code: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

// parseRequest reads q, region, subregion, population and limit.
func parseRequest(c echo.Context) (explorer.Request, error) {
	sel := filter.Selection{
		Region:     c.QueryParam("region"),
		Subregion:  c.QueryParam("subregion"),
		Population: c.QueryParam("population"),
	}.Normalize()

	if !filter.IsRegion(sel.Region) {
		return explorer.Request{}, badRequest("unknown region %q", sel.Region)
	}
	if sel.Population != filter.All {
		if _, ok := filter.LookupBucket(sel.Population); !ok {
			return explorer.Request{}, badRequest("unknown population range %q", sel.Population)
		}
	}

	req := explorer.Request{Query: c.QueryParam("q"), Selection: sel}
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return explorer.Request{}, badRequest("limit must be a non-negative integer")
		}
		req.Limit = n
	}
	return req, nil
}

func (s *Server) handleHealth(c echo.Context) error {
	res := HealthResult{
		Status:     "loading",
		Geometries: len(s.geometries()),
		Uptime:     time.Since(s.started).Round(time.Second).String(),
	}
	if ds, ok := s.catalog.Snapshot(); ok {
		res.Status = "ok"
		res.Countries = len(ds.Countries)
		res.Origin = ds.Origin
		fetched := ds.FetchedAt
		res.FetchedAt = &fetched
	}
	return c.JSON(http.StatusOK, res)
}

func (s *Server) handleCountries(c echo.Context) error {
	ds, err := s.dataset()
	if err != nil {
		return err
	}
	req, err := parseRequest(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, explorer.ListView(ds.Countries, req))
}

func (s *Server) handleNearest(c echo.Context) error {
	ds, err := s.dataset()
	if err != nil {
		return err
	}
	lat, errLat := strconv.ParseFloat(c.QueryParam("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if errLat != nil || errLng != nil || !geography.ValidCoordinates(lat, lng) {
		return badRequest("lat and lng must be valid coordinates")
	}

	nearest, km, ok := geography.Nearest(ds.Countries, lat, lng)
	if !ok {
		return &echo.HTTPError{Code: http.StatusNotFound, Message: "no country has coordinates"}
	}
	return c.JSON(http.StatusOK, NearestResult{
		Country:    nearest,
		DistanceKm: km,
		Geohash:    geography.Geohash(nearest),
	})
}

func (s *Server) handleCountry(c echo.Context) error {
	code := strings.TrimSpace(c.Param("code"))
	if code == "" {
		return badRequest("country code required")
	}

	d, err := s.catalog.Detail(c.Request().Context(), code)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, d)
	case errors.Is(err, ports.ErrNotFound):
		msg := fmt.Sprintf("no country with code %q", code)
		if ds, ok := s.catalog.Snapshot(); ok {
			if sug, _, ok := ds.Index.Suggest(code); ok {
				msg += fmt.Sprintf(", did you mean %s (%s)?", sug.Name.Common, sug.CCA3)
			}
		}
		return &echo.HTTPError{Code: http.StatusNotFound, Message: msg}
	default:
		c.Logger().Errorf("detail %s: %v", code, err)
		return &echo.HTTPError{Code: http.StatusBadGateway, Message: "country service unavailable"}
	}
}

func (s *Server) handleFilters(c echo.Context) error {
	ds, err := s.dataset()
	if err != nil {
		return err
	}
	region := c.QueryParam("region")
	if region == "" {
		region = filter.All
	}
	if !filter.IsRegion(region) {
		return badRequest("unknown region %q", region)
	}
	return c.JSON(http.StatusOK, FiltersResult{
		Regions:     append([]string{filter.All}, filter.Regions...),
		Subregions:  filter.SubregionOptions(ds.Countries, region),
		Populations: filter.BucketLabels(),
		Buckets:     filter.PopulationBuckets,
	})
}

func (s *Server) handleMap(c echo.Context) error {
	ds, err := s.dataset()
	if err != nil {
		return err
	}
	req, err := parseRequest(c)
	if err != nil {
		return err
	}
	filtered := explorer.Filter(ds.Countries, req)
	return c.JSON(http.StatusOK, explorer.MapView(ds.Countries, filtered, ds.Index, s.geometries()))
}

func (s *Server) handleGeometry(c echo.Context) error {
	var raw []byte
	if s.geometry != nil {
		raw = s.geometry.GeometryRaw()
	}
	if len(raw) == 0 {
		return &echo.HTTPError{Code: http.StatusNotFound, Message: "no geometry file loaded"}
	}
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, raw)
}

func (s *Server) handleRefresh(c echo.Context) error {
	if err := s.catalog.Refresh(c.Request().Context()); err != nil {
		c.Logger().Errorf("refresh: %v", err)
		return &echo.HTTPError{Code: http.StatusBadGateway, Message: "refresh failed: country service unavailable"}
	}
	return s.handleHealth(c)
}
