// internal/panel/panel.go
// Package panel renders the metrics insights panel: an embeddable HTML/SVG
// fragment summarizing latency, accuracy and confidence for one AI generation.
package panel

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"math"
	"regexp"
	"strings"
)

// ErrInvalidInput is returned (wrapped) for every input the renderer refuses.
var ErrInvalidInput = errors.New("invalid metrics input")

// DefaultConfidenceScores is the fallback series used when a caller supplies no
// confidence scores.
var DefaultConfidenceScores = []float64{85.2, 89.7, 92.3, 88.5, 94.1, 91.8}

// MetricsInput holds everything a single panel is rendered from.
type MetricsInput struct {
	InferenceTimeMs  float64   `json:"inferenceTimeMs"`
	AccuracyPercent  float64   `json:"accuracyPercent"`
	GenerationTimeMs float64   `json:"generationTimeMs"`
	ConfidenceScores []float64 `json:"confidenceScores,omitempty"`
	StepLabels       []string  `json:"stepLabels,omitempty"`
	ImageURL         string    `json:"imageUrl,omitempty"`
	Prompt           string    `json:"prompt,omitempty"`
}

// Validate reports non-finite numbers. Finite values outside their nominal
// range (negative times, accuracy above 100) are rendered as given.
func (in MetricsInput) Validate() error {
	scalars := []struct {
		name  string
		value float64
	}{
		{"inference time", in.InferenceTimeMs},
		{"accuracy", in.AccuracyPercent},
		{"generation time", in.GenerationTimeMs},
	}
	for _, s := range scalars {
		if !isFinite(s.value) {
			return fmt.Errorf("%s is not a finite number: %w", s.name, ErrInvalidInput)
		}
	}
	for i, score := range in.ConfidenceScores {
		if !isFinite(score) {
			return fmt.Errorf("confidence score %d is not a finite number: %w", i+1, ErrInvalidInput)
		}
	}
	return nil
}

// Renderer renders panels. The zero value is not usable; use NewRenderer.
type Renderer struct {
	defaultScores []float64
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithDefaultScores replaces the fallback confidence series. Passing an empty
// series makes Render reject inputs that carry no scores of their own.
func WithDefaultScores(scores []float64) Option {
	return func(r *Renderer) {
		r.defaultScores = append([]float64(nil), scores...)
	}
}

// NewRenderer returns a Renderer using DefaultConfidenceScores unless overridden.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{defaultScores: append([]float64(nil), DefaultConfidenceScores...)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render renders in with the package defaults.
func Render(in MetricsInput) (string, error) {
	return NewRenderer().Render(in)
}

// Render produces the panel fragment. On error nothing is returned.
func (r *Renderer) Render(in MetricsInput) (string, error) {
	view, err := r.buildView(in)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := panelTemplates.ExecuteTemplate(&buf, "panel", view); err != nil {
		return "", fmt.Errorf("render panel: %w", err)
	}
	return buf.String(), nil
}

// Scores returns the confidence series Render would plot for in.
func (r *Renderer) Scores(in MetricsInput) []float64 {
	if len(in.ConfidenceScores) > 0 {
		return in.ConfidenceScores
	}
	return r.defaultScores
}

// KPICard is one labeled scalar metric in the panel's top row.
type KPICard struct {
	Label      string
	Value      string
	Color      string
	Background string
}

// Cards returns the three KPI cards for in, always in the order inference
// time, accuracy, generation time.
func Cards(in MetricsInput) []KPICard {
	return []KPICard{
		{Label: "Inference Time", Value: formatSeconds(in.InferenceTimeMs), Color: "text-blue-400", Background: "bg-blue-500/10"},
		{Label: "Accuracy", Value: formatPercent(in.AccuracyPercent, 1), Color: "text-green-400", Background: "bg-green-500/10"},
		{Label: "Generation Time", Value: formatSeconds(in.GenerationTimeMs), Color: "text-yellow-400", Background: "bg-yellow-500/10"},
	}
}

type panelView struct {
	Cards []cardView
	Rows  []rowView
	Chart chartView
	Hero  *heroView
}

type cardView struct {
	KPICard
	Icon template.HTML
}

type rowView struct {
	Label string
	Value string
	Width string
}

type heroView struct {
	// ImageURL is a string, filtered by the template's URL sanitizer, or a
	// template.URL for inline image data.
	ImageURL any
	Prompt   string
}

func (r *Renderer) buildView(in MetricsInput) (panelView, error) {
	if err := in.Validate(); err != nil {
		return panelView{}, err
	}
	scores := r.Scores(in)
	if len(scores) == 0 {
		return panelView{}, fmt.Errorf("confidence scores are empty: %w", ErrInvalidInput)
	}
	for i, score := range scores {
		if !isFinite(score) {
			return panelView{}, fmt.Errorf("default confidence score %d is not a finite number: %w", i+1, ErrInvalidInput)
		}
	}

	cards := Cards(in)
	view := panelView{Cards: make([]cardView, len(cards))}
	for i, card := range cards {
		view.Cards[i] = cardView{KPICard: card, Icon: cardIcons[i]}
	}

	points := BuildChartPoints(scores, in.StepLabels)
	view.Rows = make([]rowView, len(points))
	for i, p := range points {
		view.Rows[i] = rowView{
			Label: p.Label,
			Value: formatPercent(p.Raw, 2),
			Width: formatCoord(p.Normalized),
		}
	}
	view.Chart = newChartView(points)

	if image := strings.TrimSpace(in.ImageURL); image != "" {
		view.Hero = &heroView{ImageURL: imageSource(image), Prompt: strings.TrimSpace(in.Prompt)}
	}
	return view, nil
}

// inlineImagePattern matches data URLs carrying an image payload, such as
// base64 PNGs or generated SVG placeholders.
var inlineImagePattern = regexp.MustCompile(`^data:image/[a-z0-9.+-]+(;base64)?,`)

// imageSource marks inline image data as a trusted URL. Anything else is left
// as a plain string so html/template keeps rejecting unsafe schemes.
func imageSource(url string) any {
	if inlineImagePattern.MatchString(strings.ToLower(url)) {
		return template.URL(url)
	}
	return url
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
