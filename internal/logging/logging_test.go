package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitAndLoggingToFile(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "nested", "metricspanel.log")

	if err := Init(logPath); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	t.Cleanup(func() {
		_ = Close()
	})

	LogEvent("hello %s", "world")
	LogRender("metrics.json", "panel.html", 6, 4096)
	_ = Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "hello world") {
		t.Fatalf("expected LogEvent content, got: %s", content)
	}
	if !strings.Contains(content, "[RENDER] source=metrics.json output=panel.html steps=6 bytes=4096") {
		t.Fatalf("expected LogRender content, got: %s", content)
	}
}

func TestBuildRenderMessageDefaults(t *testing.T) {
	msg := buildRenderMessage(" ", "-", 3, 10)
	if !strings.Contains(msg, "source=flags") {
		t.Fatalf("expected default source, got: %s", msg)
	}
	if !strings.Contains(msg, "output=stdout") {
		t.Fatalf("expected stdout destination, got: %s", msg)
	}
	if !strings.Contains(msg, "steps=3") || !strings.Contains(msg, "bytes=10") {
		t.Fatalf("expected counts, got: %s", msg)
	}
}

func TestCloseWithoutFile(t *testing.T) {
	if err := Init(""); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	if err := Close(); err != nil {
		t.Fatalf("Close without a log file should be a no-op, got %v", err)
	}
}
