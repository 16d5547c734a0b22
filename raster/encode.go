package raster

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"image/png"
	"os"
)

// JPEG encoding quality for rendered pages.
const jpegQuality = 95

// EncodePNG returns the PNG encoding of a rendered page, used to hand pages
// to the OCR engine without touching the filesystem.
func EncodePNG(img *Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img.RGBA); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteImage writes a rendered page to path in the given format.
// PNG is encoded directly from the pixel buffer; JPEG is re-encoded at
// quality 95, which drops the (always opaque) alpha channel.
func WriteImage(path string, img *Image, format Format) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	var encErr error
	switch format {
	case FormatPNG:
		encErr = png.Encode(f, img.RGBA)
	case FormatJPEG, FormatJPG:
		encErr = jpeg.Encode(f, img.RGBA, &jpeg.Options{Quality: jpegQuality})
	default:
		encErr = fmt.Errorf("unknown image format %q", format)
	}

	closeErr := f.Close()
	if encErr != nil {
		return fmt.Errorf("write %s: %w", path, encErr)
	}
	if closeErr != nil {
		return fmt.Errorf("write %s: %w", path, closeErr)
	}
	return nil
}
