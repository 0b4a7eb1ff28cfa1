// internal/cli/summary.go
package metricspanel

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/metricspanel/internal/panel"
)

// summaryBarWidth is the length of a full-scale confidence bar in cells.
const summaryBarWidth = 20

var (
	cardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).MarginTop(1)
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#A855F7"))

	// cardColors maps the panel's color tokens to terminal colors.
	cardColors = map[string]lipgloss.Color{
		"text-blue-400":   lipgloss.Color("#60A5FA"),
		"text-green-400":  lipgloss.Color("#4ADE80"),
		"text-yellow-400": lipgloss.Color("#FACC15"),
	}
)

// renderSummary draws the KPI row and confidence bars for the terminal.
func renderSummary(in panel.MetricsInput, scores []float64) string {
	cards := panel.Cards(in)
	boxes := make([]string, 0, len(cards))
	for _, card := range cards {
		value := lipgloss.NewStyle().Bold(true).Foreground(cardColors[card.Color]).Render(card.Value)
		boxes = append(boxes, cardStyle.Render(labelStyle.Render(card.Label)+"\n"+value))
	}

	points := panel.BuildChartPoints(scores, in.StepLabels)
	labelWidth := 0
	for _, p := range points {
		labelWidth = max(labelWidth, lipgloss.Width(p.Label))
	}

	lines := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, boxes...),
		titleStyle.Render("Confidence Score Analysis"),
	}
	for _, p := range points {
		cells := int(math.Round(math.Max(p.Normalized, 0) / 100 * summaryBarWidth))
		lines = append(lines, fmt.Sprintf("%s  %7.2f%%  %s",
			labelStyle.Render(p.Label+strings.Repeat(" ", labelWidth-lipgloss.Width(p.Label))),
			p.Raw,
			barStyle.Render(strings.Repeat("█", cells)),
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
