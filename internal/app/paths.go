package app

import (
	"os"
	"path/filepath"
)

// Paths holds all resolved filesystem paths under the data directory.
type Paths struct {
	Root string // <data>/
	DB   string // <data>/wce.db

	LogDir    string // <data>/log/
	ServerLog string // <data>/log/server.log

	RunDir   string // <data>/run/
	PortFile string // <data>/run/http.port
}

// NewPaths constructs all resolved paths from a data directory.
func NewPaths(dataDir string) *Paths {
	return &Paths{
		Root: dataDir,
		DB:   filepath.Join(dataDir, "wce.db"),

		LogDir:    filepath.Join(dataDir, "log"),
		ServerLog: filepath.Join(dataDir, "log", "server.log"),

		RunDir:   filepath.Join(dataDir, "run"),
		PortFile: filepath.Join(dataDir, "run", "http.port"),
	}
}

// EnsureDirs creates all subdirectories. Idempotent.
func (p *Paths) EnsureDirs() error {
	for _, d := range []string{p.Root, p.LogDir, p.RunDir} {
		if err := os.MkdirAll(d, 0755); err != nil {
			return err
		}
	}
	return nil
}

// CleanEphemeral removes runtime files. Called on clean shutdown.
func (p *Paths) CleanEphemeral() {
	os.Remove(p.PortFile)
}
