// Package pdfpage extracts the text of a single PDF page, escalating to OCR
// when the page has no usable text layer, and renders pages to images.
//
// Basic usage:
//
//	pipeline := pdfpage.NewPipeline()
//	result, err := pipeline.ExtractPage(ctx, "document.pdf", 2, pdfpage.EngineStructural)
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(result.Text)
//	if len(result.Warnings) > 0 {
//	    log.Println("warnings:", pdfpage.FormatWarnings(result.Warnings))
//	}
//
// Three extraction engines are available: a pure-Go structural parser that
// walks the content stream, a layout-aware engine backed by poppler's
// pdftotext, and OCR backed by MuPDF rendering plus Tesseract. The layout
// engine needs pdftotext on PATH; rendering and OCR are compiled in with the
// "mupdf" and "ocr" build tags. When the selected text-layer engine comes
// back empty and the OCR backends are present, the pipeline retries the page
// with OCR automatically.
//
// Page rendering and image-to-PDF assembly live in the raster and imagepdf
// subpackages.
package pdfpage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Document is an open PDF. It wraps a pure-Go reader used for page counting
// and structural text extraction; backends that need their own handle on the
// file (poppler, MuPDF) reach it through Path and manage that handle
// themselves.
//
// A Document is opened for the duration of one extraction call and is not
// safe for concurrent use. Close releases the underlying file.
type Document struct {
	path   string
	file   *os.File
	reader *pdf.Reader
	pages  int
}

// Open opens the PDF at path. Failures to stat the path map to ErrNotFound
// or ErrNotRegularFile; failures to parse the file are wrapped in
// ErrExtraction. The caller owns the returned Document and must Close it.
func Open(path string) (*Document, error) {
	if err := ValidatePath(path); err != nil {
		return nil, err
	}
	file, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrExtraction, path, err)
	}
	return &Document{
		path:   path,
		file:   file,
		reader: reader,
		pages:  reader.NumPage(),
	}, nil
}

// Path returns the filesystem path the document was opened from.
func (d *Document) Path() string {
	return d.path
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return d.pages
}

// Close releases the underlying file. Safe to call on a nil document.
func (d *Document) Close() error {
	if d == nil || d.file == nil {
		return nil
	}
	err := d.file.Close()
	d.file = nil
	return err
}

// ValidatePath checks that path exists and is a regular file, returning
// ErrNotFound or ErrNotRegularFile. It does not look at the file contents.
func ValidatePath(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrNotRegularFile, path)
	}
	return nil
}

// HasPDFExtension reports whether path ends in ".pdf" (case-insensitive).
// Files without the extension are still processed; callers warn instead of
// failing.
func HasPDFExtension(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".pdf")
}
