package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/corey/wce/internal/app"
)

// cfg is resolved once per invocation by PersistentPreRunE.
var cfg app.Config

var (
	flagAPIURL   string
	flagAddr     string
	flagDataDir  string
	flagGeometry string
	flagCacheTTL time.Duration
	flagTimeout  time.Duration
	flagLogLevel string
	flagEnvFile  string
)

var rootCmd = &cobra.Command{
	Use:               "wce",
	Short:             "wce: world countries explorer",
	Long:              "Search, filter and map the world's independent countries, from the terminal or a local web page.",
	SilenceUsage:      true,
	PersistentPreRunE: resolveConfig,
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return err
}

func init() {
	defaults := app.DefaultConfig()
	f := rootCmd.PersistentFlags()
	f.StringVar(&flagAPIURL, "api-url", defaults.APIURL, "Country service base URL")
	f.StringVar(&flagAddr, "addr", defaults.Addr, "HTTP listen address for serve")
	f.StringVar(&flagDataDir, "data-dir", defaults.DataDir, "Directory for the snapshot cache and runtime files")
	f.StringVar(&flagGeometry, "geometry", "", "GeoJSON or TopoJSON world file for the map")
	f.DurationVar(&flagCacheTTL, "cache-ttl", defaults.CacheTTL, "How long a cached snapshot is used before refetching")
	f.DurationVar(&flagTimeout, "timeout", defaults.Timeout, "Upstream request timeout")
	f.StringVar(&flagLogLevel, "log-level", defaults.LogLevel, "DEBUG, INFO, WARN, ERROR or OFF")
	f.StringVar(&flagEnvFile, "env-file", "", "Load WCE_* settings from a dotenv file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(nearestCmd)
	rootCmd.AddCommand(regionCmd)
	rootCmd.AddCommand(filtersCmd)
	rootCmd.AddCommand(mapCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(configCmd)
}

// resolveConfig layers defaults, the env file, WCE_* variables and finally
// any flag the user set explicitly.
func resolveConfig(cmd *cobra.Command, args []string) error {
	loaded, err := app.LoadConfig(flagEnvFile)
	if err != nil {
		return err
	}

	f := cmd.Flags()
	if f.Changed("api-url") {
		loaded.APIURL = flagAPIURL
	}
	if f.Changed("addr") {
		loaded.Addr = flagAddr
	}
	if f.Changed("data-dir") {
		loaded.DataDir = flagDataDir
	}
	if f.Changed("geometry") {
		loaded.GeometryPath = flagGeometry
	}
	if f.Changed("cache-ttl") {
		loaded.CacheTTL = flagCacheTTL
	}
	if f.Changed("timeout") {
		loaded.Timeout = flagTimeout
	}
	if f.Changed("log-level") {
		loaded.LogLevel = flagLogLevel
	}

	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded
	return nil
}
