// Command pageimage renders PDF pages to image files and can reassemble
// them into a new, image-only PDF.
//
// Usage:
//
//	pageimage -pdf document.pdf [-output-dir out] [-format png|jpeg] [-dpi 150]
//	          [-pages 2-5] [-create-pdf] [-output-pdf out/merged.pdf] [-config tools.toml]
//
// One image per page is written as <pdfBaseName>-page<N>.<ext>. Rendering
// needs the mupdf build tag; without it the command fails with a message
// naming the missing support.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pagetools/pdfpage"
	"github.com/pagetools/pdfpage/imagepdf"
	"github.com/pagetools/pdfpage/internal/cli"
	"github.com/pagetools/pdfpage/internal/config"
	"github.com/pagetools/pdfpage/raster"
)

type options struct {
	pdfPath    string
	outputDir  string
	format     string
	dpi        float64
	pages      string
	createPDF  bool
	outputPDF  string
	configPath string
}

func main() {
	logger := cli.NewLogger()

	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		logger.Error(err.Error())
		os.Exit(cli.ExitError)
	}

	os.Exit(cli.Run(logger, func(ctx context.Context) error {
		return run(ctx, opts, logger)
	}))
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("pageimage", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: pageimage -pdf <file> [flags]\n")
		fs.PrintDefaults()
	}
	fs.StringVar(&opts.pdfPath, "pdf", "", "Path to the PDF file (required)")
	fs.StringVar(&opts.outputDir, "output-dir", ".", "Directory for rendered images")
	fs.StringVar(&opts.format, "format", "", "Image format: png, jpeg or jpg")
	fs.Float64Var(&opts.dpi, "dpi", 0, "Rendering resolution (recommended 72-600)")
	fs.StringVar(&opts.pages, "pages", "", "Inclusive 1-based page range, e.g. 2-5 or a single page 3 (default: all pages)")
	fs.BoolVar(&opts.createPDF, "create-pdf", false, "Also assemble the rendered images into an image-only PDF")
	fs.StringVar(&opts.outputPDF, "output-pdf", "", "Path for the assembled PDF (default <output-dir>/<base>_images.pdf)")
	fs.StringVar(&opts.configPath, "config", "", "Path to a TOML config file")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if opts.pdfPath == "" {
		fs.Usage()
		return options{}, fmt.Errorf("missing required flag -pdf")
	}
	return opts, nil
}

func run(ctx context.Context, opts options, logger *slog.Logger) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	formatName := opts.format
	if formatName == "" {
		formatName = cfg.Format
	}
	format, err := raster.ParseFormat(formatName)
	if err != nil {
		return err
	}

	dpi := opts.dpi
	if dpi == 0 {
		dpi = cfg.DPI
	}
	if dpi <= 0 {
		return fmt.Errorf("dpi must be positive: %v", dpi)
	}
	if !raster.DPIInRecommendedRange(dpi) {
		logger.Warn("dpi outside the recommended range, rendering anyway",
			"dpi", dpi, "recommended", fmt.Sprintf("%v-%v", raster.MinRecommendedDPI, raster.MaxRecommendedDPI))
	}

	var pageRange raster.Range
	if opts.pages != "" {
		pageRange, err = raster.ParseRange(opts.pages)
		if err != nil {
			return err
		}
	}

	if err := pdfpage.ValidatePath(opts.pdfPath); err != nil {
		return err
	}
	if !pdfpage.HasPDFExtension(opts.pdfPath) {
		logger.Warn("input file does not have a .pdf extension", "path", opts.pdfPath)
	}
	if err := os.MkdirAll(opts.outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %w", opts.outputDir, err)
	}

	doc, err := raster.Open(opts.pdfPath)
	if err != nil {
		return err
	}
	defer doc.Close()

	logger.Info("document opened", "path", opts.pdfPath, "pages", doc.PageCount())

	var written []string
	err = doc.RenderRange(ctx, pageRange, dpi, func(img *raster.Image) error {
		path := filepath.Join(opts.outputDir, cli.PageImageName(opts.pdfPath, img.Page, format.Ext()))
		if err := raster.WriteImage(path, img, format); err != nil {
			return err
		}
		logger.Info("page rendered", "page", img.Page, "path", path)
		written = append(written, path)
		return nil
	})
	if err != nil {
		return err
	}
	logger.Info("rendering complete", "pages", len(written), "dpi", dpi)

	if !opts.createPDF {
		return nil
	}
	return assemble(opts, written, logger)
}

func assemble(opts options, imagePaths []string, logger *slog.Logger) error {
	outPath := opts.outputPDF
	if outPath == "" {
		outPath = cli.AssembledPDFName(opts.outputDir, opts.pdfPath)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}

	assembleErr := imagepdf.AssembleFiles(f, imagePaths)
	closeErr := f.Close()
	if assembleErr != nil {
		return fmt.Errorf("assemble %s: %w", outPath, assembleErr)
	}
	if closeErr != nil {
		return fmt.Errorf("write %s: %w", outPath, closeErr)
	}

	logger.Info("image pdf assembled", "path", outPath, "pages", len(imagePaths))
	return nil
}
