//go:build ocr

// Package ocr recognizes text in rendered page images.
//
// It wraps the Tesseract engine via gosseract and requires Tesseract to be
// installed on the system together with the language data for the configured
// languages (tesseract-ocr-jpn for the default Japanese+English set).
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr tesseract-ocr-jpn
//
// On macOS:
//
//	brew install tesseract tesseract-lang
package ocr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Enabled reports whether OCR support was compiled in.
const Enabled = true

// Client wraps a Tesseract session configured for a fixed language set.
type Client struct {
	client *gosseract.Client
}

// New creates an OCR client for the given languages. An empty language list
// falls back to DefaultLanguages. The client must be closed when no longer
// needed to release the underlying Tesseract handle.
func New(languages ...string) (*Client, error) {
	if len(languages) == 0 {
		languages = DefaultLanguages
	}
	client := gosseract.NewClient()
	if err := client.SetLanguage(languages...); err != nil {
		client.Close()
		return nil, fmt.Errorf("set languages %q: %w", strings.Join(languages, "+"), err)
	}
	return &Client{client: client}, nil
}

// Close releases the Tesseract handle. Safe to call on a nil client.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// SetDPI records the resolution of subsequent input images so Tesseract does
// not have to guess it from the image alone.
func (c *Client) SetDPI(dpi int) error {
	return c.client.SetVariable("user_defined_dpi", strconv.Itoa(dpi))
}

// Recognize performs OCR on encoded image data (PNG, JPEG, TIFF).
// Returns the recognized text with surrounding whitespace trimmed; an empty
// result is valid and means no text was found.
func (c *Client) Recognize(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("recognize: %w", err)
	}
	return strings.TrimSpace(text), nil
}
