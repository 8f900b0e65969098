package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}
	if cfg.Viewport.Width != 800 || cfg.Viewport.Height != 600 {
		t.Errorf("Default viewport = %dx%d, want 800x600", cfg.Viewport.Width, cfg.Viewport.Height)
	}
	if !cfg.UserAgent {
		t.Errorf("Default config should apply the user-agent stylesheet")
	}
	if cfg.Lenient {
		t.Errorf("Default config should parse CSS strictly")
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	configContent := `viewport:
  width: 320
lenient: true
stylesheets: ["a.css", "b.css"]
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if cfg.Viewport.Width != 320 {
		t.Errorf("Viewport.Width = %d, want 320", cfg.Viewport.Width)
	}
	if cfg.Viewport.Height != 600 {
		t.Errorf("Viewport.Height = %d, want default 600", cfg.Viewport.Height)
	}
	if !cfg.Lenient || len(cfg.Stylesheets) != 2 {
		t.Errorf("values from file not applied: %+v", cfg)
	}
}

func TestLoadConfiguration_Errors(t *testing.T) {
	dir := t.TempDir()
	for name, content := range map[string]string{
		"unknown.yaml":  "colour: blue\n",
		"viewport.yaml": "viewport:\n  width: 0\n",
		"broken.yaml":   "viewport: [\n",
	} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfiguration(path); err == nil {
			t.Errorf("expected %s to be rejected", name)
		}
	}
	if _, err := LoadConfiguration(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Errorf("expected missing file to be an error")
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatal(err)
	}
	data, err := Dump(cfg)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	for _, want := range []string{"viewport:", "width: 800", "user_agent: true"} {
		if !strings.Contains(out, want) {
			t.Errorf("Dump() output missing %q:\n%s", want, out)
		}
	}
}
