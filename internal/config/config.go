// Package config loads the optional TOML configuration file shared by the
// pagetext and pageimage commands. Every key has a compiled-in default;
// the file only overrides what it names.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"

	"github.com/pagetools/pdfpage"
	"github.com/pagetools/pdfpage/ocr"
	"github.com/pagetools/pdfpage/raster"
)

// Config holds the defaults the commands start from. Flags override
// config values, which override the compiled-in defaults.
type Config struct {
	// Engine is the default extraction engine.
	Engine string `toml:"engine"`

	// Languages is the OCR language set (Tesseract identifiers).
	Languages []string `toml:"languages"`

	// DPI is the default rasterization resolution.
	DPI float64 `toml:"dpi"`

	// Format is the default page image format.
	Format string `toml:"format"`
}

// Default returns the compiled-in configuration.
func Default() Config {
	return Config{
		Engine:    string(pdfpage.DefaultEngine),
		Languages: ocr.DefaultLanguages,
		DPI:       raster.DefaultDPI,
		Format:    string(raster.FormatPNG),
	}
}

// Load reads the TOML file at path over the defaults. An empty path keeps
// the defaults. A path that does not exist, does not parse, names unknown
// keys, or carries an invalid engine/format/dpi value is an error; a config
// file is only read when the user asked for one, so silence would hide a
// typo.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config file not found: %s", path)
		}
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}

	if _, err := pdfpage.ParseEngine(cfg.Engine); err != nil {
		return Config{}, fmt.Errorf("config %s: engine: %w", path, err)
	}
	if _, err := raster.ParseFormat(cfg.Format); err != nil {
		return Config{}, fmt.Errorf("config %s: format: %w", path, err)
	}
	if cfg.DPI <= 0 {
		return Config{}, fmt.Errorf("config %s: dpi must be positive: %v", path, cfg.DPI)
	}
	if len(cfg.Languages) == 0 {
		return Config{}, fmt.Errorf("config %s: languages must not be empty", path)
	}
	return cfg, nil
}
