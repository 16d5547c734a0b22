//go:build mupdf

// Package raster renders PDF pages to RGB images.
//
// It wraps MuPDF via go-fitz, which needs cgo, so rendering sits behind the
// "mupdf" build tag:
//
//	go build -tags mupdf
//
// Without the tag the stub implementation is compiled in and Open reports
// that rendering is not available.
package raster

import (
	"context"
	"fmt"

	"github.com/gen2brain/go-fitz"
)

// Enabled reports whether rendering support was compiled in.
const Enabled = true

// Document is an open PDF rendering session. It is not safe for concurrent
// use; each invocation opens its own Document and closes it when done.
type Document struct {
	doc   *fitz.Document
	pages int
}

// Open opens the PDF at path for rendering.
func Open(path string) (*Document, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &Document{doc: doc, pages: doc.NumPage()}, nil
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return d.pages
}

// Close releases the underlying MuPDF handle.
func (d *Document) Close() error {
	return d.doc.Close()
}

// Render renders one page, identified by its 0-based index, at the given
// resolution. The scale factor relative to PDF user space is dpi/72 on both
// axes.
func (d *Document) Render(pageIndex int, dpi float64) (*Image, error) {
	if pageIndex < 0 || pageIndex >= d.pages {
		return nil, fmt.Errorf("%w: page index %d outside document (pages: %d)", ErrRender, pageIndex, d.pages)
	}
	img, err := d.doc.ImageDPI(pageIndex, dpi)
	if err != nil {
		return nil, fmt.Errorf("%w: page %d: %v", ErrRender, pageIndex+1, err)
	}
	return &Image{RGBA: img, Page: pageIndex + 1, DPI: dpi}, nil
}

// RenderRange renders a contiguous page range in ascending order, calling
// fn for each rendered page. The range is clamped to the document bounds
// first; a range that clamps to nothing renders zero pages and returns nil.
// Rendering stops on context cancellation or the first error from fn.
// The method holds no state between calls and may be invoked repeatedly on
// the same Document.
func (d *Document) RenderRange(ctx context.Context, r Range, dpi float64, fn func(*Image) error) error {
	start, end := r.clamp(d.pages)
	for i := start; i < end; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		img, err := d.Render(i, dpi)
		if err != nil {
			return err
		}
		if err := fn(img); err != nil {
			return err
		}
	}
	return nil
}
