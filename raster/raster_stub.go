//go:build !mupdf

// Package raster renders PDF pages to RGB images.
//
// This is the stub implementation used when the "mupdf" build tag is not
// set. Open fails with ErrRasterNotEnabled and no rendering is possible.
//
// To enable rendering, rebuild with the "mupdf" build tag:
//
//	go build -tags mupdf
//
// This compiles MuPDF support via go-fitz and requires cgo.
package raster

import "context"

// Enabled reports whether rendering support was compiled in.
const Enabled = false

// Document is a stub rendering session that fails every operation.
type Document struct{}

// Open returns ErrRasterNotEnabled.
func Open(path string) (*Document, error) {
	return nil, ErrRasterNotEnabled
}

// PageCount returns 0 for the stub document.
func (d *Document) PageCount() int {
	return 0
}

// Close is a no-op for the stub document. Safe to call on a nil document.
func (d *Document) Close() error {
	return nil
}

// Render returns ErrRasterNotEnabled.
func (d *Document) Render(pageIndex int, dpi float64) (*Image, error) {
	return nil, ErrRasterNotEnabled
}

// RenderRange returns ErrRasterNotEnabled.
func (d *Document) RenderRange(ctx context.Context, r Range, dpi float64, fn func(*Image) error) error {
	return ErrRasterNotEnabled
}
