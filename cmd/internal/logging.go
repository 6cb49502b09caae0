package internal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// NewLogger creates a logger writing to w at the named level.
// An empty level means warn.
func NewLogger(w io.Writer, level string) (*log.Logger, error) {
	level = strings.TrimSpace(level)
	if len(level) == 0 {
		level = "warn"
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level '%s': %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:  lvl,
		Prefix: "passgen",
	}), nil
}
