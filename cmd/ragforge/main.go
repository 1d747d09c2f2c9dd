package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	nanoid "github.com/matoous/go-nanoid/v2"

	"github.com/randalmurphal/ragforge/errors"
	"github.com/randalmurphal/ragforge/prompt"
)

var Version = "dev"

func main() {
	// A local .env is a convenience for development; absence is fine.
	_ = godotenv.Load()

	logger := newLogger()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := newRootCmd(logger).ExecuteContext(ctx)
	stop()
	if err != nil {
		// The terminal prompter hides the cursor while a question is open;
		// make sure it is back before exiting on any path.
		prompt.RestoreTerminal(os.Stdout)
		if !errors.IsAbort(err) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(errors.ExitCode(err))
	}
}

// newLogger builds the process logger. Debug logging is opt-in via
// RAGFORGE_DEBUG; each run carries a short id so interleaved CI output
// stays attributable.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if os.Getenv("RAGFORGE_DEBUG") != "" {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})

	runID, err := nanoid.Generate("0123456789abcdefghijklmnopqrstuvwxyz", 8)
	if err != nil {
		runID = "unknown"
	}
	return slog.New(handler).With(slog.String("run", runID))
}
