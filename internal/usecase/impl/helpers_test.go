package impl

import (
	"io"
	"log/slog"
)

// testLogger returns a logger that discards everything, so test output stays
// readable.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
