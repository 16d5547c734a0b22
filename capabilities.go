package pdfpage

import (
	"os/exec"

	"github.com/pagetools/pdfpage/ocr"
	"github.com/pagetools/pdfpage/raster"
)

// Names of the optional backends, used in diagnostics when one is missing.
const (
	depPdftotext = "pdftotext (poppler)"
	depRaster    = "page rendering (mupdf build tag)"
	depOCR       = "OCR (ocr build tag)"
)

// Capabilities records which optional backends are present in this build
// and environment. It is discovered once at startup and passed into the
// pipeline explicitly, so tests can fabricate any combination.
type Capabilities struct {
	// LayoutAware is true when the pdftotext binary is on PATH.
	LayoutAware bool

	// Raster is true when MuPDF rendering was compiled in (mupdf tag).
	Raster bool

	// OCR is true when Tesseract support was compiled in (ocr tag).
	OCR bool
}

// DetectCapabilities probes the runtime environment for the optional
// backends: pdftotext on PATH for the layout engine, plus the compiled-in
// rendering and OCR support.
func DetectCapabilities() Capabilities {
	_, lookErr := exec.LookPath("pdftotext")
	return Capabilities{
		LayoutAware: lookErr == nil,
		Raster:      raster.Enabled,
		OCR:         ocr.Enabled,
	}
}

// CanOCR reports whether both halves of the OCR path (rendering and
// recognition) are present.
func (c Capabilities) CanOCR() bool {
	return c.Raster && c.OCR
}

// MissingOCRDeps names the OCR dependencies absent from this build, for
// diagnostics when escalation is impossible. Empty when CanOCR is true.
func (c Capabilities) MissingOCRDeps() []string {
	var missing []string
	if !c.Raster {
		missing = append(missing, depRaster)
	}
	if !c.OCR {
		missing = append(missing, depOCR)
	}
	return missing
}
