package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "crvc.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadValidFile(t *testing.T) {
	path := writeConfig(t, `
lexer:
  tolerant: true
  emit_newlines: true

output:
  format: "json"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.Lexer.Tolerant {
		t.Error("Lexer.Tolerant = false, want true")
	}
	if !cfg.Lexer.EmitNewlines {
		t.Error("Lexer.EmitNewlines = false, want true")
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Output.Format = %q, want json", cfg.Output.Format)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "lexer:\n  tolerant: true\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("Output.Format = %q, want the text default", cfg.Output.Format)
	}
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	path := writeConfig(t, "output:\n  format: \"xml\"\n")

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() should fail for an unknown format")
	}
	if !strings.Contains(err.Error(), "xml") {
		t.Errorf("error = %v, want mention of the offending format", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "no-such.yaml"))
	if err == nil {
		t.Fatal("Load() should fail for a missing file")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "lexer: [llaves: sin cerrar")

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() should fail for malformed YAML")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := Validate(cfg); err != nil {
		t.Errorf("Validate(Default()) error = %v", err)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("Output.Format = %q, want text", cfg.Output.Format)
	}
}
