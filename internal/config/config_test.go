package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tools.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadEmptyPathKeepsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	def := Default()
	if cfg.Engine != def.Engine || cfg.Format != def.Format || cfg.DPI != def.DPI {
		t.Errorf("Load(\"\") = %+v, want defaults %+v", cfg, def)
	}
	if len(cfg.Languages) != 2 || cfg.Languages[0] != "jpn" || cfg.Languages[1] != "eng" {
		t.Errorf("default languages = %v, want [jpn eng]", cfg.Languages)
	}
}

func TestLoadOverridesOnlyNamedKeys(t *testing.T) {
	path := writeConfig(t, "engine = \"layout-aware\"\ndpi = 300\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Engine != "layout-aware" {
		t.Errorf("Engine = %q", cfg.Engine)
	}
	if cfg.DPI != 300 {
		t.Errorf("DPI = %v", cfg.DPI)
	}
	if cfg.Format != Default().Format {
		t.Errorf("Format = %q, want the default", cfg.Format)
	}
	if len(cfg.Languages) != 2 {
		t.Errorf("Languages = %v, want the default", cfg.Languages)
	}
}

func TestLoadLanguages(t *testing.T) {
	path := writeConfig(t, "languages = [\"deu\", \"eng\"]\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Languages) != 2 || cfg.Languages[0] != "deu" {
		t.Errorf("Languages = %v, want [deu eng]", cfg.Languages)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("expected error for an explicitly named missing config")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("error = %v, want a not-found message", err)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantIn  string
	}{
		{"bad engine", "engine = \"pypdf\"\n", "engine"},
		{"bad format", "format = \"gif\"\n", "format"},
		{"bad dpi", "dpi = -10\n", "dpi"},
		{"empty languages", "languages = []\n", "languages"},
		{"unknown key", "resolution = 300\n", "resolution"},
		{"syntax error", "engine = \n", "parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := Load(path)
			if err == nil {
				t.Fatalf("Load accepted %q", tt.content)
			}
			if !strings.Contains(err.Error(), tt.wantIn) {
				t.Errorf("error %q does not mention %q", err, tt.wantIn)
			}
		})
	}
}
