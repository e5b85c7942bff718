package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/corey/wce/internal/app"
)

// isDBLockError returns true if the error chain contains a bbolt lock timeout.
// bbolt returns the string "timeout" when it cannot acquire the file lock
// within the configured deadline.
func isDBLockError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "timeout")
}

// diagnoseDBLock explains who probably holds the snapshot cache.
func diagnoseDBLock(paths *app.Paths) string {
	if data, err := os.ReadFile(paths.PortFile); err == nil {
		return fmt.Sprintf("snapshot cache is locked by a running server\n"+
			"  → it is serving http://localhost:%s\n"+
			"  → stop it first, or point --data-dir somewhere else", strings.TrimSpace(string(data)))
	}
	return "snapshot cache is locked by another process\n" +
		"  → find the process:  ps aux | grep 'wce'\n" +
		"  → kill it:           kill <PID>\n" +
		"  → then retry your command"
}
