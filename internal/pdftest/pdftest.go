// Package pdftest builds tiny synthetic PDFs for tests.
//
// The generated files use a classic cross-reference table, one shared
// Helvetica font with WinAnsi encoding, and one uncompressed content stream
// per page, which keeps them readable by every engine the module drives
// (pure-Go parsing, poppler, MuPDF). Page text is limited to WinAnsi
// characters; parentheses and backslashes are escaped.
package pdftest

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"
)

// Letter-size media box, matching the fixtures the tools were written for.
const (
	PageWidthPoints  = 612
	PageHeightPoints = 792
)

// Bytes builds a PDF with one page per entry in pageTexts. An empty string
// produces a page with no text-showing operators, which extractors must
// report as empty rather than as an error.
func Bytes(pageTexts ...string) []byte {
	if len(pageTexts) == 0 {
		pageTexts = []string{""}
	}

	// Object layout: 1 catalog, 2 page tree, 3 font, then for page i
	// (0-based) object 4+2i is the page and 5+2i its content stream.
	objCount := 3 + 2*len(pageTexts)

	var buf bytes.Buffer
	offsets := make([]int, objCount+1)

	writeObj := func(num int, body string) {
		offsets[num] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", num, body)
	}

	buf.WriteString("%PDF-1.4\n")

	kids := make([]string, len(pageTexts))
	for i := range pageTexts {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}

	writeObj(1, "<< /Type /Catalog /Pages 2 0 R >>")
	writeObj(2, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>",
		strings.Join(kids, " "), len(pageTexts)))
	writeObj(3, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")

	for i, text := range pageTexts {
		pageNum := 4 + 2*i
		contentNum := 5 + 2*i

		writeObj(pageNum, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %d %d] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>",
			PageWidthPoints, PageHeightPoints, contentNum))

		var content string
		if text != "" {
			content = fmt.Sprintf("BT /F1 24 Tf 72 720 Td (%s) Tj ET", escapeString(text))
		}
		writeObj(contentNum, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content))
	}

	xrefPos := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", objCount+1)
	buf.WriteString("0000000000 65535 f \n")
	for num := 1; num <= objCount; num++ {
		fmt.Fprintf(&buf, "%010d %05d n \n", offsets[num], 0)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		objCount+1, xrefPos)

	return buf.Bytes()
}

// Write writes a synthetic PDF to path, failing the test on error.
func Write(t *testing.T, path string, pageTexts ...string) {
	t.Helper()
	if err := os.WriteFile(path, Bytes(pageTexts...), 0o644); err != nil {
		t.Fatalf("write fixture pdf: %v", err)
	}
}

func escapeString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}
