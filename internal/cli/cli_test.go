package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func TestRunExitCodes(t *testing.T) {
	logger := slog.New(NewSplitHandler(io.Discard, io.Discard))

	if code := Run(logger, func(context.Context) error { return nil }); code != ExitOK {
		t.Errorf("success: exit %d, want %d", code, ExitOK)
	}
	if code := Run(logger, func(context.Context) error { return errors.New("boom") }); code != ExitError {
		t.Errorf("failure: exit %d, want %d", code, ExitError)
	}
	if code := Run(logger, func(context.Context) error { return context.Canceled }); code != ExitInterrupt {
		t.Errorf("cancellation: exit %d, want %d", code, ExitInterrupt)
	}
}

func TestRunLogsErrorToStderrStream(t *testing.T) {
	var out, errw strings.Builder
	logger := slog.New(NewSplitHandler(&out, &errw))

	Run(logger, func(context.Context) error { return errors.New("page 7 out of range (1-3)") })

	if !strings.Contains(errw.String(), "page 7 out of range (1-3)") {
		t.Errorf("stderr missing the error: %q", errw.String())
	}
	if out.Len() != 0 {
		t.Errorf("error leaked to stdout: %q", out.String())
	}
}
