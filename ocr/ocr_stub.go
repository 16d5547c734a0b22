//go:build !ocr

// Package ocr recognizes text in rendered page images.
//
// This is the stub implementation used when the "ocr" build tag is not set.
// All operations return ErrOCRNotEnabled.
//
// To enable OCR, rebuild with the "ocr" build tag:
//
//	go build -tags ocr
//
// This requires Tesseract (and its language data) to be installed.
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr tesseract-ocr-jpn
//
// On macOS:
//
//	brew install tesseract tesseract-lang
package ocr

// Enabled reports whether OCR support was compiled in.
const Enabled = false

// Client is a stub OCR client that fails every operation.
type Client struct{}

// New returns ErrOCRNotEnabled.
func New(languages ...string) (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op for the stub client. Safe to call on a nil client.
func (c *Client) Close() error {
	return nil
}

// SetDPI returns ErrOCRNotEnabled.
func (c *Client) SetDPI(dpi int) error {
	return ErrOCRNotEnabled
}

// Recognize returns ErrOCRNotEnabled.
func (c *Client) Recognize(imageData []byte) (string, error) {
	return "", ErrOCRNotEnabled
}
