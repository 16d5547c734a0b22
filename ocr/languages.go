package ocr

import "errors"

// ErrOCRNotEnabled is returned when OCR operations are invoked but OCR
// support was not compiled in. Rebuild with -tags ocr to enable it.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// DefaultLanguages is the language set used when none is configured:
// Japanese plus English, matching the documents this tool was built for.
// Tesseract receives it as "jpn+eng".
var DefaultLanguages = []string{"jpn", "eng"}
