// internal/appconfig/show.go
package appconfig

import (
	"fmt"
	"io"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, cfg Config) {
	if cfg.ConfigPath == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", cfg.ConfigPath)
	}

	logFile := cfg.LogFilePath()
	if logFile == "" {
		logFile = "(console only)"
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Debug:           %v\n", cfg.Debug)
	fmt.Fprintf(out, "  Log File:        %s\n", logFile)
	fmt.Fprintf(out, "  Output:          %s\n", cfg.OutputFilePath())
	if cfg.DocumentTitle != "" {
		fmt.Fprintf(out, "  Document Title:  %s\n", cfg.DocumentTitle)
	}
	fmt.Fprintf(out, "  Fallback Scores: %v\n", cfg.FallbackScores())
}
