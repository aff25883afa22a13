package testutil

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/carcheck/internal/ctxlog"
)

// Context returns a background context carrying a debug-level text logger.
// Logs are discarded unless CARCHECK_TEST_LOGS=true.
func Context() context.Context {
	var w io.Writer = io.Discard
	if os.Getenv("CARCHECK_TEST_LOGS") == "true" {
		w = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return ctxlog.WithLogger(context.Background(), logger)
}
