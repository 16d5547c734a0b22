package pdfpage

import (
	"context"
	"log/slog"
)

// Pipeline resolves pages to text. It is configured once and is safe to
// reuse across documents; it holds no per-document state.
type Pipeline struct {
	caps       Capabilities
	languages  []string
	logger     *slog.Logger
	extractors map[Engine]Extractor
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithCapabilities overrides the detected backend capabilities. Tests use
// this to simulate a missing dependency deterministically.
func WithCapabilities(caps Capabilities) Option {
	return func(p *Pipeline) {
		p.caps = caps
	}
}

// WithLanguages sets the OCR language set (Tesseract identifiers such as
// "jpn", "eng"). The default is Japanese plus English.
func WithLanguages(languages ...string) Option {
	return func(p *Pipeline) {
		if len(languages) > 0 {
			p.languages = languages
		}
	}
}

// WithLogger sets the logger for progress and fallback diagnostics.
// Without it the pipeline is silent.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithExtractor replaces the backend registered for e.Engine(). Tests use
// this to drive the fallback policy with scripted engines.
func WithExtractor(e Extractor) Option {
	return func(p *Pipeline) {
		p.extractors[e.Engine()] = e
	}
}

// NewPipeline builds a Pipeline with the three standard engines, the
// detected capabilities and the default OCR language set. Options are
// applied in order.
func NewPipeline(opts ...Option) *Pipeline {
	p := &Pipeline{
		caps:   DetectCapabilities(),
		logger: nopLogger,
		extractors: map[Engine]Extractor{
			EngineStructural: structuralEngine{},
			EngineLayout:     layoutEngine{},
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	// The OCR engine carries the language set, so it is built after the
	// options have had their say, unless a test already replaced it.
	if _, ok := p.extractors[EngineOCR]; !ok {
		p.extractors[EngineOCR] = ocrEngine{languages: p.languages}
	}
	return p
}

var nopLogger = slog.New(discardHandler{})

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }
