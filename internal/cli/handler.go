package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// NewLogger returns the logger both commands use: INFO and WARN records go
// to stdout, ERROR and above to stderr, rendered as "LEVEL: message" with
// any attributes appended as key=value pairs.
func NewLogger() *slog.Logger {
	return slog.New(NewSplitHandler(os.Stdout, os.Stderr))
}

// SplitHandler is a text slog.Handler that routes records below ERROR to
// one writer and ERROR and above to another, mirroring the usual
// progress-to-stdout, diagnostics-to-stderr convention.
type SplitHandler struct {
	mu    *sync.Mutex
	out   io.Writer
	errw  io.Writer
	attrs []slog.Attr
}

// NewSplitHandler builds a SplitHandler writing non-error records to out
// and error records to errw.
func NewSplitHandler(out, errw io.Writer) *SplitHandler {
	return &SplitHandler{mu: &sync.Mutex{}, out: out, errw: errw}
}

func (h *SplitHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelInfo
}

func (h *SplitHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Level.String())
	b.WriteString(": ")
	b.WriteString(r.Message)

	for _, a := range h.attrs {
		writeAttr(&b, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, a)
		return true
	})
	b.WriteByte('\n')

	w := h.out
	if r.Level >= slog.LevelError {
		w = h.errw
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(w, b.String())
	return err
}

func (h *SplitHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &clone
}

// WithGroup is accepted but flattened; neither command logs groups.
func (h *SplitHandler) WithGroup(string) slog.Handler {
	return h
}

func writeAttr(b *strings.Builder, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	fmt.Fprintf(b, " %s=%v", a.Key, a.Value)
}
