// Package cli carries the plumbing shared by the pagetext and pageimage
// commands: exit codes, the interrupt-aware run wrapper, the split-stream
// logger and output filename construction.
package cli

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// Exit codes shared by both commands.
const (
	ExitOK        = 0
	ExitError     = 1
	ExitInterrupt = 130 // 128 + SIGINT
)

// Run executes fn under a context that is cancelled on SIGINT or SIGTERM
// and returns the process exit code. Errors are logged to the diagnostic
// stream; an interrupt maps to ExitInterrupt whether fn noticed the
// cancellation or not.
func Run(logger *slog.Logger, fn func(ctx context.Context) error) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := fn(ctx)
	if ctx.Err() != nil {
		logger.Error("interrupted")
		return ExitInterrupt
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Error("interrupted")
			return ExitInterrupt
		}
		logger.Error(err.Error())
		return ExitError
	}
	return ExitOK
}
