package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/corey/wce/internal/adapters/bbolt"
	"github.com/corey/wce/internal/app"
	"github.com/corey/wce/internal/ports"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the snapshot cache",
}

var cacheInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "List cached snapshots",
	Args:  cobra.NoArgs,
	RunE:  runCacheInfo,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every cached snapshot",
	Args:  cobra.NoArgs,
	RunE:  runCacheClear,
}

func init() {
	cacheCmd.AddCommand(cacheInfoCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}

func openStore() (*bbolt.Store, error) {
	paths := app.NewPaths(cfg.DataDir)
	if err := paths.EnsureDirs(); err != nil {
		return nil, err
	}
	store, err := bbolt.NewStore(paths.DB)
	if err != nil && isDBLockError(err) {
		return nil, fmt.Errorf("%w\n%s", err, diagnoseDBLock(paths))
	}
	return store, err
}

func runCacheInfo(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	info, err := store.Info()
	if err != nil {
		return err
	}
	if info == nil {
		info = []ports.SnapshotInfo{}
	}
	p := colors()
	return write(cmd.OutOrStdout(), outputFormat, info, func() string {
		return formatCacheInfo(store.Path(), info, cfg.CacheTTL, time.Now(), p)
	})
}

func formatCacheInfo(path string, info []ports.SnapshotInfo, ttl time.Duration, now time.Time, p palette) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s\n", p.wrap(colorBold, "⚡ snapshot cache"), p.wrap(colorGray, path))
	if len(info) == 0 {
		sb.WriteString("  (empty)\n")
		return sb.String()
	}
	for _, i := range info {
		age := now.Sub(i.FetchedAt)
		state := p.wrap(colorGreen, "fresh")
		if ttl <= 0 || age >= ttl {
			state = p.wrap(colorYellow, "stale")
		}
		fmt.Fprintf(&sb, "  %-12s %4d countries  %7.1f KB  fetched %s (%s ago, %s)\n",
			i.Dataset, i.Count, float64(i.Bytes)/1024,
			i.FetchedAt.Local().Format(time.DateTime), age.Round(time.Second), state)
	}
	return sb.String()
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Clear(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "⚡ snapshot cache cleared")
	return nil
}
