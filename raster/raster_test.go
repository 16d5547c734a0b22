//go:build mupdf

package raster

import (
	"context"
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/pagetools/pdfpage/internal/pdftest"
)

func fixturePDF(t *testing.T, pageTexts ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.pdf")
	pdftest.Write(t, path, pageTexts...)
	return path
}

func TestOpenAndPageCount(t *testing.T) {
	doc, err := Open(fixturePDF(t, "one", "two", "three"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer doc.Close()

	if got := doc.PageCount(); got != 3 {
		t.Errorf("PageCount = %d, want 3", got)
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "absent.pdf")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestRenderDimensionsFollowDPI(t *testing.T) {
	doc, err := Open(fixturePDF(t, "page"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer doc.Close()

	for _, dpi := range []float64{72, 150, 300} {
		img, err := doc.Render(0, dpi)
		if err != nil {
			t.Fatalf("Render at %v dpi failed: %v", dpi, err)
		}

		scale := dpi / BasePointDPI
		wantW := float64(pdftest.PageWidthPoints) * scale
		wantH := float64(pdftest.PageHeightPoints) * scale
		b := img.RGBA.Bounds()
		if math.Abs(float64(b.Dx())-wantW) > 2 || math.Abs(float64(b.Dy())-wantH) > 2 {
			t.Errorf("at %v dpi got %dx%d, want about %.0fx%.0f", dpi, b.Dx(), b.Dy(), wantW, wantH)
		}
		if img.DPI != dpi {
			t.Errorf("image tagged with dpi %v, want %v", img.DPI, dpi)
		}
		if img.Page != 1 {
			t.Errorf("image tagged with page %d, want 1", img.Page)
		}
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	doc, err := Open(fixturePDF(t, "page"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer doc.Close()

	first, err := doc.Render(0, 150)
	if err != nil {
		t.Fatalf("first render failed: %v", err)
	}
	second, err := doc.Render(0, 150)
	if err != nil {
		t.Fatalf("second render failed: %v", err)
	}
	if first.RGBA.Bounds() != second.RGBA.Bounds() {
		t.Errorf("repeated renders differ in size: %v vs %v",
			first.RGBA.Bounds(), second.RGBA.Bounds())
	}
}

func TestRenderIndexOutOfBounds(t *testing.T) {
	doc, err := Open(fixturePDF(t, "only page"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer doc.Close()

	for _, idx := range []int{-1, 1, 5} {
		if _, err := doc.Render(idx, 150); !errors.Is(err, ErrRender) {
			t.Errorf("Render(%d): expected ErrRender, got: %v", idx, err)
		}
	}
}

func TestRenderRangeOrderAndClamp(t *testing.T) {
	doc, err := Open(fixturePDF(t, "a", "b", "c", "d"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer doc.Close()

	var pages []int
	err = doc.RenderRange(context.Background(), Range{Start: 2, End: 99}, 72, func(img *Image) error {
		pages = append(pages, img.Page)
		return nil
	})
	if err != nil {
		t.Fatalf("RenderRange failed: %v", err)
	}

	want := []int{2, 3, 4}
	if len(pages) != len(want) {
		t.Fatalf("rendered pages %v, want %v", pages, want)
	}
	for i := range want {
		if pages[i] != want[i] {
			t.Fatalf("rendered pages %v, want %v", pages, want)
		}
	}
}

func TestRenderRangeEmptyAfterClamp(t *testing.T) {
	doc, err := Open(fixturePDF(t, "a", "b"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer doc.Close()

	calls := 0
	err = doc.RenderRange(context.Background(), Range{Start: 5, End: 6}, 72, func(*Image) error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("RenderRange failed: %v", err)
	}
	if calls != 0 {
		t.Errorf("expected zero rendered pages, got %d", calls)
	}
}

func TestRenderRangeStopsOnCancel(t *testing.T) {
	doc, err := Open(fixturePDF(t, "a", "b", "c"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer doc.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = doc.RenderRange(ctx, Range{}, 72, func(*Image) error {
		t.Fatal("callback must not run after cancellation")
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got: %v", err)
	}
}
