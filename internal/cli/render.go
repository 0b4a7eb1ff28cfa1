// internal/cli/render.go
package metricspanel

import (
	"github.com/spf13/cobra"
)

type renderOptions struct {
	inputPath    string
	inferenceMs  float64
	accuracy     float64
	generationMs float64
	scores       []float64
	labels       []string
	imageURL     string
	prompt       string
	document     bool
	title        string
	summary      bool
}

// newRenderCmd implements 'render', which turns metrics into the panel fragment.
func newRenderCmd() *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a metrics panel as an HTML fragment",
		Long: `Render latency, accuracy and confidence metrics as a self-contained HTML/SVG
fragment for embedding in a host page. Metrics come from a JSON document
(--input, "-" for stdin) and/or flags; flags override fields from the document.
Use --document to wrap the fragment in a standalone page with its stylesheet.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.inputPath, "input", "i", "", "metrics JSON document (- for stdin)")
	flags.Float64Var(&opts.inferenceMs, "inference", 2450, "inference time in milliseconds")
	flags.Float64Var(&opts.accuracy, "accuracy", 94.5, "accuracy percentage")
	flags.Float64Var(&opts.generationMs, "generation", 3200, "generation time in milliseconds")
	flags.Float64SliceVar(&opts.scores, "scores", nil, "confidence scores per step, comma separated")
	flags.StringSliceVar(&opts.labels, "labels", nil, "step labels, comma separated (default Step N)")
	flags.StringVar(&opts.imageURL, "image", "", "URL of the generated image")
	flags.StringVar(&opts.prompt, "prompt", "", "prompt shown under the generated image")
	flags.StringP("output", "o", "", "output file, - for stdout (overrides config)")
	flags.BoolVar(&opts.document, "document", false, "wrap the fragment in a standalone HTML page")
	flags.StringVar(&opts.title, "title", "", "page title for --document")
	flags.BoolVar(&opts.summary, "summary", false, "print a terminal summary of the rendered metrics")
	return cmd
}
