package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/corey/wce/internal/app"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long:  "Shows the resolved settings, the cache path, and whether a server is running. Fetches nothing.",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	paths := app.NewPaths(cfg.DataDir)
	if outputFormat != outputText {
		return write(cmd.OutOrStdout(), outputFormat, cfg, nil)
	}

	p := colors()
	server := p.wrap(colorYellow, "✗ not running")
	if data, err := os.ReadFile(paths.PortFile); err == nil {
		server = p.wrap(colorGreen, "✓ http://localhost:"+strings.TrimSpace(string(data)))
	}
	geometry := cfg.GeometryPath
	if geometry == "" {
		geometry = "(none)"
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", p.wrap(colorBold, "⚡ wce config"))
	fmt.Fprintf(out, "  API:        %s\n", cfg.APIURL)
	fmt.Fprintf(out, "  Timeout:    %s\n", cfg.Timeout)
	fmt.Fprintf(out, "  Cache TTL:  %s\n", cfg.CacheTTL)
	fmt.Fprintf(out, "  Data dir:   %s\n", paths.Root)
	fmt.Fprintf(out, "  DB:         %s\n", paths.DB)
	fmt.Fprintf(out, "  Geometry:   %s\n", geometry)
	fmt.Fprintf(out, "  Addr:       %s\n", cfg.Addr)
	fmt.Fprintf(out, "  Log level:  %s\n", cfg.LogLevel)
	fmt.Fprintf(out, "  Server:     %s\n", server)
	return nil
}
