package engine

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// NewLogger builds a text logger at cfg.Level. It writes to cfg.File when
// set, appending, and to fallback otherwise. The returned close function
// releases the file and is safe to call when no file was opened.
func NewLogger(cfg LogConfig, fallback io.Writer) (*slog.Logger, func() error, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("engine: logger: %w", err)
	}

	w := fallback
	closeFn := func() error { return nil }
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec // path comes from configuration
		if err != nil {
			return nil, nil, fmt.Errorf("engine: logger: %w", err)
		}
		w = f
		closeFn = f.Close
	}
	if w == nil {
		w = io.Discard
	}

	log := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	return log, closeFn, nil
}
