package pdfpage

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/pagetools/pdfpage/ocr"
	"github.com/pagetools/pdfpage/raster"
	"github.com/pagetools/pdfpage/textnorm"
)

// Engine identifies one of the extraction strategies.
type Engine string

const (
	// EngineStructural walks the page content stream with a pure-Go parser
	// and returns text-showing operators in stream order. Always available.
	EngineStructural Engine = "structural-parser"

	// EngineLayout reconstructs reading order with poppler's pdftotext,
	// which handles multi-column and vertical layouts better than the
	// structural walk. Needs the pdftotext binary on PATH.
	EngineLayout Engine = "layout-aware"

	// EngineOCR renders the page and recognizes text with Tesseract.
	// Needs the mupdf and ocr build tags.
	EngineOCR Engine = "ocr"
)

// DefaultEngine is used when no engine is selected.
const DefaultEngine = EngineStructural

// EngineNames lists the valid engine selectors in declaration order.
func EngineNames() []string {
	return []string{string(EngineStructural), string(EngineLayout), string(EngineOCR)}
}

// ParseEngine validates a user-supplied engine selector. An empty string
// selects DefaultEngine.
func ParseEngine(s string) (Engine, error) {
	switch Engine(s) {
	case "":
		return DefaultEngine, nil
	case EngineStructural, EngineLayout, EngineOCR:
		return Engine(s), nil
	}
	return "", &UnknownEngineError{Name: s}
}

// Extractor is the capability shared by all extraction backends: produce
// the text of one page, identified by its 0-based index, from an open
// document. Implementations return text in NFC form; an empty string is a
// valid result meaning the page shows no text.
type Extractor interface {
	Engine() Engine
	Extract(ctx context.Context, doc *Document, pageIndex int) (string, error)
}

// structuralEngine extracts the text layer with the pure-Go ledongthuc/pdf
// reader already held by the Document.
type structuralEngine struct{}

func (structuralEngine) Engine() Engine { return EngineStructural }

func (structuralEngine) Extract(ctx context.Context, doc *Document, pageIndex int) (text string, err error) {
	// The reader panics on some malformed content streams instead of
	// returning an error; fold those into ErrExtraction like any other
	// decode failure.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: page %d: %v", ErrExtraction, pageIndex+1, r)
		}
	}()

	page := doc.reader.Page(pageIndex + 1)
	if page.V.IsNull() {
		return "", nil
	}
	raw, err := page.GetPlainText(nil)
	if err != nil {
		return "", fmt.Errorf("%w: page %d: %v", ErrExtraction, pageIndex+1, err)
	}
	return textnorm.NFC(raw), nil
}

// layoutEngine extracts the text layer by running pdftotext in layout mode
// on the single requested page. The subprocess is the backend's own handle
// on the file and lives only for the duration of the call.
type layoutEngine struct{}

func (layoutEngine) Engine() Engine { return EngineLayout }

func (layoutEngine) Extract(ctx context.Context, doc *Document, pageIndex int) (string, error) {
	pageNum := strconv.Itoa(pageIndex + 1)
	cmd := exec.CommandContext(ctx, "pdftotext",
		"-layout", "-enc", "UTF-8",
		"-f", pageNum, "-l", pageNum,
		doc.Path(), "-")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("%w: pdftotext page %s: %s", ErrExtraction, pageNum, msg)
	}
	return textnorm.NFC(stdout.String()), nil
}

// OCRRenderDPI is the resolution OCR input pages are rendered at. Tesseract
// accuracy degrades below roughly this density and higher values cost render
// and recognition time without helping.
const OCRRenderDPI = 150.0

// ocrEngine renders the page with MuPDF and recognizes it with Tesseract.
// Both backends are optional; when either is compiled out Extract fails with
// ErrEngineUnavailable before touching the document.
type ocrEngine struct {
	languages []string
}

func (ocrEngine) Engine() Engine { return EngineOCR }

func (e ocrEngine) Extract(ctx context.Context, doc *Document, pageIndex int) (string, error) {
	if !raster.Enabled {
		return "", fmt.Errorf("%w: %v", ErrEngineUnavailable, raster.ErrRasterNotEnabled)
	}
	if !ocr.Enabled {
		return "", fmt.Errorf("%w: %v", ErrEngineUnavailable, ocr.ErrOCRNotEnabled)
	}

	rd, err := raster.Open(doc.Path())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtraction, err)
	}
	defer rd.Close()

	img, err := rd.Render(pageIndex, OCRRenderDPI)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtraction, err)
	}
	encoded, err := raster.EncodePNG(img)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtraction, err)
	}

	client, err := ocr.New(e.languages...)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtraction, err)
	}
	defer client.Close()

	if err := client.SetDPI(int(OCRRenderDPI)); err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtraction, err)
	}
	text, err := client.Recognize(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: page %d: %v", ErrExtraction, pageIndex+1, err)
	}
	return textnorm.NFC(text), nil
}
