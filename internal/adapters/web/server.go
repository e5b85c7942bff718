package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/corey/wce/internal/adapters/metrics"
	"github.com/corey/wce/internal/domain/explorer"
	"github.com/corey/wce/internal/domain/geography"
)

// Catalog is the country collection the API reads from.
type Catalog interface {
	Snapshot() (explorer.Dataset, bool)
	Detail(ctx context.Context, code string) (*explorer.Detail, error)
	Refresh(ctx context.Context) error
}

// Geometry supplies the loaded map features. Either method may return nil.
type Geometry interface {
	Geometries() []geography.Geometry
	GeometryRaw() []byte
}

// Config wires a Server.
type Config struct {
	Catalog  Catalog
	Geometry Geometry // optional
	Metrics  *metrics.Metrics
	Logger   *log.Logger
	PortFile string // bound port is written here for discovery
}

// Server serves the browser page and JSON API over HTTP.
type Server struct {
	catalog  Catalog
	geometry Geometry
	metrics  *metrics.Metrics
	echo     *echo.Echo
	listener net.Listener
	httpSrv  *http.Server
	port     int
	started  time.Time
	stopOnce sync.Once

	portFilePath string
}

// NewServer creates the HTTP server and registers every route. It does not listen.
func NewServer(cfg Config) *Server {
	s := &Server{
		catalog:      cfg.Catalog,
		geometry:     cfg.Geometry,
		metrics:      cfg.Metrics,
		portFilePath: cfg.PortFile,
		started:      time.Now(),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	if cfg.Logger != nil {
		e.Logger = cfg.Logger
	}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logMsg := func(format string, args ...any) {
				switch {
				case v.Status >= 500:
					e.Logger.Errorf(format, args...)
				case v.Status >= 400:
					e.Logger.Warnf(format, args...)
				default:
					e.Logger.Debugf(format, args...)
				}
			}
			logMsg("%s %s - %d - %.2fms - %s - %s",
				v.Method,
				v.URI,
				v.Status,
				float64(v.Latency.Microseconds())/1000.0,
				v.RemoteIP,
				v.RequestID,
			)
			return nil
		},
	}))
	e.Use(s.observe)

	s.routes(e)
	s.echo = e
	return s
}

func (s *Server) routes(e *echo.Echo) {
	e.FileFS("/", "static/index.html", staticFS)

	api := e.Group("/api")
	api.GET("/health", s.handleHealth)
	api.GET("/countries", s.handleCountries)
	api.GET("/countries/nearest", s.handleNearest)
	api.GET("/countries/:code", s.handleCountry)
	api.GET("/filters", s.handleFilters)
	api.GET("/map", s.handleMap)
	api.GET("/map/geometry", s.handleGeometry)
	api.POST("/refresh", s.handleRefresh)

	if s.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(s.metrics.Handler()))
	}
}

// observe records request latency by route template.
func (s *Server) observe(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		status := c.Response().Status
		if err != nil {
			status = http.StatusInternalServerError
			var he *echo.HTTPError
			if errors.As(err, &he) {
				status = he.Code
			}
		}
		s.metrics.ObserveRequest(c.Path(), strconv.Itoa(status), time.Since(start))
		return err
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start begins listening on addr. Writes the bound port to the port file.
func (s *Server) Start(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	s.listener = ln
	s.port = ln.Addr().(*net.TCPAddr).Port
	s.started = time.Now()

	s.httpSrv = &http.Server{
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if s.portFilePath != "" {
		if err := os.WriteFile(s.portFilePath, []byte(strconv.Itoa(s.port)), 0644); err != nil {
			s.echo.Logger.Warnf("write port file: %v", err)
		}
	}

	go func() {
		if err := s.httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.echo.Logger.Errorf("http server: %v", err)
		}
	}()
	return nil
}

// Stop gracefully shuts down the HTTP server. Idempotent.
func (s *Server) Stop() {
	s.stopOnce.Do(func() {
		if s.httpSrv != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			s.httpSrv.Shutdown(ctx)
		}
		if s.portFilePath != "" {
			os.Remove(s.portFilePath)
		}
	})
}

// Port returns the bound port number.
func (s *Server) Port() int {
	return s.port
}

// URL returns the browser URL.
func (s *Server) URL() string {
	return fmt.Sprintf("http://localhost:%d", s.port)
}
