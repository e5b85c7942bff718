package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/labstack/gommon/log"
)

// LogHeader is shared by the app logger and echo's logger.
const LogHeader = "${time_rfc3339} ${level} ${short_file}:${line} -"

// ParseLevel maps a level name to a gommon level.
func ParseLevel(s string) (log.Lvl, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return log.DEBUG, nil
	case "", "INFO":
		return log.INFO, nil
	case "WARN":
		return log.WARN, nil
	case "ERROR":
		return log.ERROR, nil
	case "OFF":
		return log.OFF, nil
	}
	return log.INFO, fmt.Errorf("unknown log level %q", s)
}

// NewLogger builds the process logger. Unknown levels fall back to INFO.
func NewLogger(level string, out io.Writer) *log.Logger {
	logger := log.New("wce")
	lvl, _ := ParseLevel(level)
	logger.SetLevel(lvl)
	logger.SetHeader(LogHeader)
	if out != nil {
		logger.SetOutput(out)
	}
	return logger
}
