package logging

import (
	"log/slog"
	"os"
)

// New creates the CLI logger. It writes to Stderr so that command output on
// Stdout stays machine-readable, and standardizes the "error" key to "err".
func New(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}
