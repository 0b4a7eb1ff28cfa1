// internal/logging/logging.go
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	mu      sync.Mutex
	logFile *os.File
)

// Init routes the standard logger to stderr and, when logPath is set, to an
// append-only log file. Stdout is left to rendered output.
func Init(logPath string) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	var writers []io.Writer
	writers = append(writers, os.Stderr)

	if logPath != "" {
		if dir := filepath.Dir(logPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		logFile = file
		writers = append(writers, logFile)
	}

	log.SetOutput(io.MultiWriter(writers...))
	return nil
}

func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	log.SetOutput(os.Stderr)
	err := logFile.Close()
	logFile = nil
	return err
}

func LogEvent(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Println(msg)
}

// LogRender records one rendered panel.
func LogRender(source, destination string, steps, size int) {
	log.Println(buildRenderMessage(source, destination, steps, size))
}

func buildRenderMessage(source, destination string, steps, size int) string {
	src := strings.TrimSpace(source)
	if src == "" {
		src = "flags"
	}
	dest := strings.TrimSpace(destination)
	if dest == "" || dest == "-" {
		dest = "stdout"
	}
	parts := []string{"[RENDER]"}
	parts = append(parts, fmt.Sprintf("source=%s", src))
	parts = append(parts, fmt.Sprintf("output=%s", dest))
	parts = append(parts, fmt.Sprintf("steps=%d", steps))
	parts = append(parts, fmt.Sprintf("bytes=%d", size))
	return strings.Join(parts, " ")
}
