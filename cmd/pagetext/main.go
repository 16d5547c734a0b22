// Command pagetext extracts the text of a single PDF page to a file.
//
// Usage:
//
//	pagetext -pdf document.pdf -page 2 [-engine structural-parser|layout-aware|ocr] [-config tools.toml]
//
// The extracted text is written to <pdfBaseName>-<page>.txt in the current
// working directory, NFC-normalized and otherwise untouched. When the
// selected text-layer engine finds nothing and the OCR backends are
// available, the page is retried with OCR automatically.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/pagetools/pdfpage"
	"github.com/pagetools/pdfpage/internal/cli"
	"github.com/pagetools/pdfpage/internal/config"
)

type options struct {
	pdfPath    string
	page       int
	engine     string
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
	fs := flag.NewFlagSet("pagetext", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: pagetext -pdf <file> -page <n> [flags]\n")
		fs.PrintDefaults()
	}
	fs.StringVar(&opts.pdfPath, "pdf", "", "Path to the PDF file (required)")
	fs.IntVar(&opts.page, "page", 0, "1-based page number to extract (required)")
	fs.StringVar(&opts.engine, "engine", "", "Extraction engine: structural-parser, layout-aware or ocr")
	fs.StringVar(&opts.configPath, "config", "", "Path to a TOML config file")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if opts.pdfPath == "" {
		fs.Usage()
		return options{}, fmt.Errorf("missing required flag -pdf")
	}
	if opts.page == 0 {
		fs.Usage()
		return options{}, fmt.Errorf("missing required flag -page")
	}
	if opts.page < 1 {
		return options{}, fmt.Errorf("page number must be 1 or greater: %d", opts.page)
	}
	return opts, nil
}

func run(ctx context.Context, opts options, logger *slog.Logger) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	engineName := opts.engine
	if engineName == "" {
		engineName = cfg.Engine
	}
	engine, err := pdfpage.ParseEngine(engineName)
	if err != nil {
		return err
	}

	caps := pdfpage.DetectCapabilities()
	if err := pdfpage.ValidatePath(opts.pdfPath); err != nil {
		return err
	}
	if !pdfpage.HasPDFExtension(opts.pdfPath) {
		logger.Warn("input file does not have a .pdf extension", "path", opts.pdfPath)
	}

	pipeline := pdfpage.NewPipeline(
		pdfpage.WithCapabilities(caps),
		pdfpage.WithLanguages(cfg.Languages...),
		pdfpage.WithLogger(logger),
	)

	result, err := pipeline.ExtractPage(ctx, opts.pdfPath, opts.page, engine)
	if err != nil {
		return err
	}
	for _, w := range result.Warnings {
		logger.Warn(w.Message)
	}

	outPath := cli.TextOutputName(opts.pdfPath, opts.page)
	if err := os.WriteFile(outPath, []byte(result.Text), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	logger.Info("text written", "path", outPath)
	return nil
}
