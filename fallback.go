package pdfpage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

func isUnavailable(err error) bool {
	return errors.Is(err, ErrEngineUnavailable)
}

// Warning is a non-fatal diagnostic produced while resolving a page:
// an empty text layer, a missing OCR dependency, or an OCR escalation
// failure that was deliberately not propagated.
type Warning struct {
	Message string
}

func (w Warning) String() string {
	return w.Message
}

// FormatWarnings joins warnings into a single human-readable string.
func FormatWarnings(warnings []Warning) string {
	msgs := make([]string, len(warnings))
	for i, w := range warnings {
		msgs[i] = w.Message
	}
	return strings.Join(msgs, "; ")
}

// Result is the outcome of resolving one page: the extracted text (NFC,
// possibly empty), the engines that actually ran in order, and any
// non-fatal diagnostics. An empty page and a page whose text layer could
// not be recognized both yield empty Text; the Warnings tell them apart.
type Result struct {
	Text     string
	Engines  []Engine
	Warnings []Warning
}

// attemptStatus classifies one extraction attempt. The escalation policy
// below branches on these rather than on error values, so the
// degrade-instead-of-propagate behavior is explicit.
type attemptStatus int

const (
	attemptSuccess     attemptStatus = iota // non-empty text
	attemptEmpty                            // ran fine, nothing but whitespace
	attemptUnavailable                      // backend not present
	attemptFailed                           // backend ran and errored
)

// attempt is the typed outcome of running one engine on one page.
type attempt struct {
	engine Engine
	status attemptStatus
	text   string
	err    error
}

func (p *Pipeline) run(ctx context.Context, e Extractor, doc *Document, pageIndex int) attempt {
	text, err := e.Extract(ctx, doc, pageIndex)
	switch {
	case err != nil && isUnavailable(err):
		return attempt{engine: e.Engine(), status: attemptUnavailable, err: err}
	case err != nil:
		return attempt{engine: e.Engine(), status: attemptFailed, err: err}
	case strings.TrimSpace(text) == "":
		return attempt{engine: e.Engine(), status: attemptEmpty, text: text}
	}
	return attempt{engine: e.Engine(), status: attemptSuccess, text: text}
}

// Resolve extracts the text of one page (0-based index), escalating to OCR
// when the requested text-layer engine finds nothing.
//
// Policy: OCR requested directly is terminal, errors included. A text-layer
// engine error is terminal. An empty text-layer result triggers one OCR
// attempt when both OCR backends are present; if that attempt errors or is
// also empty, the original empty result is returned with a warning instead
// of the OCR error, so escalation never fails harder than the engine the
// caller asked for. When OCR backends are missing the empty result is
// returned with a warning naming each absent dependency.
func (p *Pipeline) Resolve(ctx context.Context, doc *Document, pageIndex int, requested Engine) (*Result, error) {
	if requested == EngineOCR {
		a := p.run(ctx, p.extractors[EngineOCR], doc, pageIndex)
		if a.err != nil {
			return nil, a.err
		}
		return &Result{Text: a.text, Engines: []Engine{EngineOCR}}, nil
	}

	primary, ok := p.extractors[requested]
	if !ok {
		return nil, &UnknownEngineError{Name: string(requested)}
	}
	if requested == EngineLayout && !p.caps.LayoutAware {
		return nil, fmt.Errorf("%w: %s not found", ErrEngineUnavailable, depPdftotext)
	}

	first := p.run(ctx, primary, doc, pageIndex)
	result := &Result{Text: first.text, Engines: []Engine{first.engine}}

	switch first.status {
	case attemptSuccess:
		return result, nil

	case attemptUnavailable, attemptFailed:
		return nil, first.err

	case attemptEmpty:
		if !p.caps.CanOCR() {
			for _, dep := range p.caps.MissingOCRDeps() {
				result.Warnings = append(result.Warnings, Warning{
					Message: fmt.Sprintf("page %d has no text layer and OCR is unavailable: missing %s", pageIndex+1, dep),
				})
			}
			return result, nil
		}

		p.logger.Info("no text layer found, attempting OCR", "page", pageIndex+1)
		second := p.run(ctx, p.extractors[EngineOCR], doc, pageIndex)
		result.Engines = append(result.Engines, EngineOCR)

		switch second.status {
		case attemptSuccess:
			result.Text = second.text
			return result, nil
		case attemptEmpty:
			result.Warnings = append(result.Warnings, Warning{
				Message: fmt.Sprintf("OCR found no text on page %d", pageIndex+1),
			})
			return result, nil
		default:
			// Escalation was best-effort: keep the empty text-layer result
			// rather than failing an extraction that already succeeded.
			result.Warnings = append(result.Warnings, Warning{
				Message: fmt.Sprintf("OCR fallback failed on page %d: %v", pageIndex+1, second.err),
			})
			return result, nil
		}
	}
	return result, nil
}

// ExtractPage opens the PDF at path, validates the 1-based page number and
// resolves its text through the engine policy above. The document is closed
// on every exit path.
func (p *Pipeline) ExtractPage(ctx context.Context, path string, page int, engine Engine) (*Result, error) {
	doc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	p.logger.Info("document opened", "path", path, "pages", doc.PageCount())

	pageIndex, err := LocatePage(doc.PageCount(), page)
	if err != nil {
		return nil, err
	}

	p.logger.Info("analyzing page", "page", page, "engine", engine)
	result, err := p.Resolve(ctx, doc, pageIndex, engine)
	if err != nil {
		return nil, err
	}
	p.logger.Info("extraction complete", "page", page, "engines", enginesString(result.Engines), "chars", len([]rune(result.Text)))
	return result, nil
}

func enginesString(engines []Engine) string {
	names := make([]string, len(engines))
	for i, e := range engines {
		names[i] = string(e)
	}
	return strings.Join(names, ",")
}
