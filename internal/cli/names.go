package cli

import (
	"fmt"
	"path/filepath"
	"strings"
)

// BaseName returns the input filename without directory or extension:
// "docs/sample.pdf" becomes "sample". It is the stem every output artifact
// name is built from.
func BaseName(pdfPath string) string {
	base := filepath.Base(pdfPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// TextOutputName names the extraction output file for a page:
// "sample.pdf" page 2 becomes "sample-2.txt". The file is written to the
// current working directory.
func TextOutputName(pdfPath string, page int) string {
	return fmt.Sprintf("%s-%d.txt", BaseName(pdfPath), page)
}

// PageImageName names one rendered page image: "sample.pdf" page 3 with
// extension "png" becomes "sample-page3.png".
func PageImageName(pdfPath string, page int, ext string) string {
	return fmt.Sprintf("%s-page%d.%s", BaseName(pdfPath), page, ext)
}

// AssembledPDFName is the default path for the PDF assembled from rendered
// page images: "<outputDir>/<base>_images.pdf".
func AssembledPDFName(outputDir, pdfPath string) string {
	return filepath.Join(outputDir, BaseName(pdfPath)+"_images.pdf")
}
