package raster

import (
	"errors"
	"fmt"
	"image"
	"strconv"
	"strings"
)

// PDF user space is defined at 72 units per inch, so the render scale
// factor for a target resolution is dpi/72.
const BasePointDPI = 72.0

// DefaultDPI is the rendering resolution used when none is configured.
const DefaultDPI = 150.0

// Recommended resolution window. Values outside it still render; callers
// are expected to warn instead of failing.
const (
	MinRecommendedDPI = 72.0
	MaxRecommendedDPI = 600.0
)

// ErrRender indicates that the underlying engine failed to render a page.
var ErrRender = errors.New("page render failed")

// ErrRasterNotEnabled is returned when rendering is requested but MuPDF
// support was not compiled in. Rebuild with -tags mupdf to enable it.
var ErrRasterNotEnabled = errors.New("page rendering not enabled; rebuild with -tags mupdf")

// DPIInRecommendedRange reports whether dpi falls inside [72, 600].
func DPIInRecommendedRange(dpi float64) bool {
	return dpi >= MinRecommendedDPI && dpi <= MaxRecommendedDPI
}

// Image is one rendered page: an opaque RGBA pixel buffer tagged with the
// 1-based source page number and the resolution it was rendered at.
type Image struct {
	RGBA *image.RGBA
	Page int
	DPI  float64
}

// Format selects the on-disk encoding of a rendered page. It does not
// affect pixel data.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatJPG  Format = "jpg" // alias for JPEG, kept distinct so filenames match the requested extension
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatPNG:
		return FormatPNG, nil
	case FormatJPEG:
		return FormatJPEG, nil
	case FormatJPG:
		return FormatJPG, nil
	}
	return "", fmt.Errorf("unknown image format %q (valid: png, jpeg, jpg)", s)
}

// Ext returns the filename extension for the format, without the dot.
func (f Format) Ext() string {
	return string(f)
}

// Range is an inclusive page range in 1-based page numbers.
// The zero value selects the full document.
type Range struct {
	Start int
	End   int
}

// IsFull reports whether the range is the zero value, meaning all pages.
func (r Range) IsFull() bool {
	return r.Start == 0 && r.End == 0
}

// Validate checks the range invariant start >= 1 and end >= start.
// A full (zero) range is always valid.
func (r Range) Validate() error {
	if r.IsFull() {
		return nil
	}
	if r.Start < 1 {
		return fmt.Errorf("page range start must be 1 or greater: %d", r.Start)
	}
	if r.End < r.Start {
		return fmt.Errorf("page range end must not be before start: %d-%d", r.Start, r.End)
	}
	return nil
}

// clamp converts the range to 0-based half-open [start, end) bounds within
// a document of totalPages pages. Ranges that fall entirely outside the
// document clamp to an empty interval; rendering nothing is not an error.
func (r Range) clamp(totalPages int) (int, int) {
	if r.IsFull() {
		return 0, totalPages
	}
	start := r.Start - 1
	if start < 0 {
		start = 0
	}
	end := r.End
	if end > totalPages {
		end = totalPages
	}
	if end < start {
		end = start
	}
	return start, end
}

// ParseRange parses a CLI page-range argument: either "start-end" or a
// single page "n", which selects just that page.
func ParseRange(s string) (Range, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Range{}, errors.New("empty page range")
	}

	if start, end, found := strings.Cut(s, "-"); found {
		first, err := strconv.Atoi(strings.TrimSpace(start))
		if err != nil {
			return Range{}, fmt.Errorf("invalid page range %q: %w", s, err)
		}
		last, err := strconv.Atoi(strings.TrimSpace(end))
		if err != nil {
			return Range{}, fmt.Errorf("invalid page range %q: %w", s, err)
		}
		r := Range{Start: first, End: last}
		if err := r.Validate(); err != nil {
			return Range{}, err
		}
		return r, nil
	}

	page, err := strconv.Atoi(s)
	if err != nil {
		return Range{}, fmt.Errorf("invalid page range %q: %w", s, err)
	}
	r := Range{Start: page, End: page}
	if err := r.Validate(); err != nil {
		return Range{}, err
	}
	return r, nil
}
