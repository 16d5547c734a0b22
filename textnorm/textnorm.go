// Package textnorm normalizes extracted text to canonical Unicode form.
//
// Every extraction backend returns text through NFC so that callers always
// see composed code points, regardless of how the source PDF encoded its
// glyphs (decomposed accents are common in PDFs produced on macOS).
package textnorm

import "golang.org/x/text/unicode/norm"

// NFC returns s in Unicode Normalization Form C (canonical composition).
// The function is idempotent: NFC(NFC(s)) == NFC(s).
func NFC(s string) string {
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}
