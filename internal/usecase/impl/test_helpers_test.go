package impl

import (
	"io"
	"log/slog"
)

// newDiscardLogger returns a logger whose output goes nowhere. Keeps test
// output free of service log noise.
func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
