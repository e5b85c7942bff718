package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/corey/wce/internal/adapters/restcountries"
)

// Environment variables read by LoadConfig.
const (
	EnvAPIURL   = "WCE_API_URL"
	EnvAddr     = "WCE_ADDR"
	EnvDataDir  = "WCE_DATA_DIR"
	EnvGeometry = "WCE_GEOMETRY"
	EnvCacheTTL = "WCE_CACHE_TTL"
	EnvTimeout  = "WCE_TIMEOUT"
	EnvLogLevel = "WCE_LOG_LEVEL"
)

// Config holds initialization parameters for the App.
type Config struct {
	APIURL string `json:"api_url" yaml:"api_url"`
	// HTTP listen address for serve
	Addr string `json:"addr" yaml:"addr"`
	// Holds wce.db, run/ and log/
	DataDir string `json:"data_dir" yaml:"data_dir"`
	// Optional GeoJSON or TopoJSON world file
	GeometryPath string `json:"geometry" yaml:"geometry"`
	// How long a cached snapshot is served without refetching
	CacheTTL time.Duration `json:"cache_ttl" yaml:"cache_ttl"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
	// DEBUG, INFO, WARN, ERROR or OFF
	LogLevel string `json:"log_level" yaml:"log_level"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		APIURL:   restcountries.DefaultBaseURL,
		Addr:     "127.0.0.1:8080",
		DataDir:  defaultDataDir(),
		CacheTTL: 24 * time.Hour,
		Timeout:  restcountries.DefaultTimeout,
		LogLevel: "INFO",
	}
}

func defaultDataDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "wce")
	}
	return ".wce"
}

// LoadConfig starts from the defaults, loads envFile when given, then applies
// any WCE_* variables present in the environment. Variables already set in
// the process environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("load env file: %w", err)
		}
	}
	cfg := DefaultConfig()
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	dur := func(key string, dst *time.Duration) error {
		v, ok := lookup(key)
		if !ok || strings.TrimSpace(v) == "" {
			return nil
		}
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = d
		return nil
	}

	str(EnvAPIURL, &c.APIURL)
	str(EnvAddr, &c.Addr)
	str(EnvDataDir, &c.DataDir)
	str(EnvGeometry, &c.GeometryPath)
	str(EnvLogLevel, &c.LogLevel)
	if err := dur(EnvCacheTTL, &c.CacheTTL); err != nil {
		return err
	}
	return dur(EnvTimeout, &c.Timeout)
}

// Validate rejects settings the App cannot start with.
func (c Config) Validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("api url required")
	}
	if c.DataDir == "" {
		return fmt.Errorf("data dir required")
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("cache ttl must not be negative")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
