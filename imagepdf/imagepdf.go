// Package imagepdf assembles ordered raster images into a single
// multi-page, image-only PDF.
//
// Every input image becomes one page, in input order. Images are flattened
// to plain RGB before embedding and pages are sized so the embedded images
// carry a fixed 150 DPI resolution hint, independent of the resolution the
// pages were originally rendered at.
package imagepdf

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// EmbedDPI is the resolution hint written into the assembled PDF: page
// dimensions are pixels * 72 / EmbedDPI points.
const EmbedDPI = 150.0

// ErrEmptyInput is returned when there are no images to assemble.
var ErrEmptyInput = errors.New("no images to assemble")

// Assemble writes an image-only PDF to w with one page per image, in input
// order. It fails with ErrEmptyInput when images is empty.
func Assemble(w io.Writer, images []image.Image) error {
	if len(images) == 0 {
		return ErrEmptyInput
	}

	conf := model.NewDefaultConfiguration()

	// Pages are appended one at a time so each page is sized to its own
	// image; a single import pass would force one page size onto all images.
	var assembled bytes.Buffer
	for i, img := range images {
		rgb := toRGB(img)

		var encoded bytes.Buffer
		if err := png.Encode(&encoded, rgb); err != nil {
			return fmt.Errorf("encode page %d: %w", i+1, err)
		}

		imp, err := api.Import(importSpec(rgb.Bounds().Dx(), rgb.Bounds().Dy()), types.POINTS)
		if err != nil {
			return fmt.Errorf("page %d import config: %w", i+1, err)
		}

		var rs io.ReadSeeker
		if i > 0 {
			rs = bytes.NewReader(assembled.Bytes())
		}
		var next bytes.Buffer
		if err := api.ImportImages(rs, &next, []io.Reader{&encoded}, imp, conf); err != nil {
			return fmt.Errorf("embed page %d: %w", i+1, err)
		}
		assembled = next
	}

	if _, err := w.Write(assembled.Bytes()); err != nil {
		return fmt.Errorf("write assembled pdf: %w", err)
	}
	return nil
}

// AssembleFiles reads the images at paths (PNG, JPEG, TIFF or BMP) and
// assembles them in the given order. Every opened file is closed before
// returning, on error paths included.
func AssembleFiles(w io.Writer, paths []string) error {
	if len(paths) == 0 {
		return ErrEmptyInput
	}

	images := make([]image.Image, 0, len(paths))
	for _, path := range paths {
		img, err := decodeFile(path)
		if err != nil {
			return err
		}
		images = append(images, img)
	}
	return Assemble(w, images)
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return img, nil
}

// importSpec sizes the page for an image of the given pixel dimensions at
// the fixed embed resolution, with the image filling the whole page.
func importSpec(widthPx, heightPx int) string {
	widthPts := float64(widthPx) * 72.0 / EmbedDPI
	heightPts := float64(heightPx) * 72.0 / EmbedDPI
	return fmt.Sprintf("dimensions:%.2f %.2f, position:full", widthPts, heightPts)
}

// toRGB flattens any image to an opaque RGBA buffer, dropping alpha without
// compositing (raw color channels are preserved) and expanding paletted and
// grayscale inputs. The conversion is lossless for 8-bit sources.
func toRGB(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Opaque() && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}

	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			// NRGBAModel keeps raw channel values for non-premultiplied
			// sources instead of round-tripping them through alpha.
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			out.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF})
		}
	}
	return out
}
