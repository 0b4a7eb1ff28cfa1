// internal/cli/render_entry.go
package metricspanel

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mwiater/metricspanel/internal/logging"
	"github.com/mwiater/metricspanel/internal/panel"
	"github.com/spf13/cobra"
)

func runRender(cmd *cobra.Command, opts renderOptions) error {
	cfg := GetConfig()

	in, source, err := resolveInput(cmd, opts)
	if err != nil {
		return err
	}

	renderer := panel.NewRenderer(panel.WithDefaultScores(cfg.FallbackScores()))
	var html string
	if opts.document {
		title := opts.title
		if title == "" {
			title = cfg.DocumentTitle
		}
		html, err = renderer.RenderDocument(in, title)
	} else {
		html, err = renderer.Render(in)
	}
	if err != nil {
		return fmt.Errorf("failed rendering panel: %w", err)
	}

	dest := cfg.OutputFilePath()
	if err := writeOutput(cmd.OutOrStdout(), dest, html); err != nil {
		return err
	}
	scores := renderer.Scores(in)
	logging.LogRender(source, dest, len(scores), len(html))

	if dest != "-" {
		cmd.Printf("%s %s\n", successText("Panel written to"), dest)
	}
	if opts.summary {
		w := cmd.OutOrStdout()
		if dest == "-" {
			w = cmd.ErrOrStderr()
		}
		fmt.Fprintln(w, renderSummary(in, scores))
	}
	return nil
}

// resolveInput merges the --input document with flags. Without a document
// the scalar flags (and their defaults) apply; with one, only flags that were
// set explicitly override it.
func resolveInput(cmd *cobra.Command, opts renderOptions) (panel.MetricsInput, string, error) {
	var in panel.MetricsInput
	source := "flags"

	switch opts.inputPath {
	case "":
	case "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return panel.MetricsInput{}, "", fmt.Errorf("unable to read metrics from stdin: %w", err)
		}
		in, err = panel.DecodeInput(data)
		if err != nil {
			return panel.MetricsInput{}, "", fmt.Errorf("stdin: %w", err)
		}
		source = "stdin"
	default:
		loaded, err := panel.LoadInput(opts.inputPath)
		if err != nil {
			return panel.MetricsInput{}, "", err
		}
		in = loaded
		source = opts.inputPath
	}

	flags := cmd.Flags()
	fromDocument := opts.inputPath != ""
	override := func(name string) bool {
		return !fromDocument || flags.Changed(name)
	}

	if override("inference") {
		in.InferenceTimeMs = opts.inferenceMs
	}
	if override("accuracy") {
		in.AccuracyPercent = opts.accuracy
	}
	if override("generation") {
		in.GenerationTimeMs = opts.generationMs
	}
	if flags.Changed("scores") {
		in.ConfidenceScores = opts.scores
	}
	if flags.Changed("labels") {
		in.StepLabels = opts.labels
	}
	if flags.Changed("image") {
		in.ImageURL = opts.imageURL
	}
	if flags.Changed("prompt") {
		in.Prompt = opts.prompt
	}
	return in, source, nil
}

func writeOutput(stdout io.Writer, path, content string) error {
	if path == "-" {
		if _, err := io.WriteString(stdout, content); err != nil {
			return fmt.Errorf("unable to write panel to stdout: %w", err)
		}
		return nil
	}

	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("unable to create directory for %s: %w", path, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("unable to write panel %s: %w", path, err)
	}
	return nil
}
