package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/corey/wce/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the explorer page and JSON API",
	Long:  "Loads the country collection, watches the geometry file if one is set, and serves http://<addr>/ until interrupted.",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	paths := app.NewPaths(cfg.DataDir)
	if err := paths.EnsureDirs(); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	logOut := cmd.ErrOrStderr()
	if f, err := os.OpenFile(paths.ServerLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
		defer f.Close()
		logOut = io.MultiWriter(logOut, f)
	}

	a, err := app.New(cfg, app.Options{LogOutput: logOut})
	if err != nil {
		if isDBLockError(err) {
			return fmt.Errorf("%w\n%s", err, diagnoseDBLock(paths))
		}
		return fmt.Errorf("init: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.Start(ctx); err != nil {
		a.Stop()
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "⚡ wce serving at %s\n", a.Web.URL())

	<-ctx.Done()
	fmt.Fprintln(cmd.OutOrStdout(), "\n⚡ shutting down...")
	return a.Stop()
}
