// internal/appconfig/load_integration_test.go
package appconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	oldCwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldCwd) })
	return tempDir
}

func TestLoadDefaultPath(t *testing.T) {
	tempDir := chdirTemp(t)
	configDir := filepath.Join(tempDir, "config")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("mkdir config: %v", err)
	}
	payload := `{"output": "reports/panel.html", "defaultConfidenceScores": [50, 75]}`
	if err := os.WriteFile(filepath.Join(configDir, "config.json"), []byte(payload), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.ConfigPath != DefaultConfigPath {
		t.Fatalf("expected ConfigPath %q, got %q", DefaultConfigPath, cfg.ConfigPath)
	}
	if cfg.OutputFilePath() != "reports/panel.html" {
		t.Fatalf("unexpected output path %q", cfg.OutputFilePath())
	}
	if len(cfg.FallbackScores()) != 2 {
		t.Fatalf("expected 2 fallback scores, got %v", cfg.FallbackScores())
	}
}

func TestLoadMissingDefaultFileUsesDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("expected defaults without a config file, got %v", err)
	}
	if cfg.ConfigPath != "" {
		t.Fatalf("expected no config path, got %q", cfg.ConfigPath)
	}
	if cfg.OutputFilePath() != "-" {
		t.Fatalf("expected stdout output, got %q", cfg.OutputFilePath())
	}
}

func TestLoadRejectsNonNumericScores(t *testing.T) {
	tempDir := chdirTemp(t)
	path := filepath.Join(tempDir, "panel.json")
	if err := os.WriteFile(path, []byte(`{"defaultConfidenceScores": ["high", "low"]}`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path, nil); err == nil {
		t.Fatal("expected error for non-numeric fallback scores")
	}
}
