// internal/panel/chart.go
package panel

import (
	"strconv"
	"strings"
)

const (
	// chartWidth and chartHeight define the SVG viewBox of the line chart.
	chartWidth  = 400.0
	chartHeight = 100.0
)

// gridlines are the y positions of the horizontal chart guides.
var gridlines = []int{0, 25, 50, 75, 100}

// ChartPoint is one step of the confidence series, as drawn in both the bar
// list and the line chart.
type ChartPoint struct {
	Label      string
	Raw        float64
	Normalized float64 // Raw relative to the series maximum, 0..100
	X          float64
	Y          float64
}

// BuildChartPoints normalizes scores against their maximum and lays them out
// across the chart viewBox. A series whose maximum is not positive normalizes
// to all zeros. A single point sits at the horizontal midpoint.
func BuildChartPoints(scores []float64, labels []string) []ChartPoint {
	peak := maxScore(scores)
	points := make([]ChartPoint, len(scores))
	for i, raw := range scores {
		var normalized float64
		if peak > 0 {
			normalized = raw / peak * 100
		}
		points[i] = ChartPoint{
			Label:      stepLabel(i, labels),
			Raw:        raw,
			Normalized: normalized,
			X:          stepX(i, len(scores)),
			Y:          chartHeight - normalized,
		}
	}
	return points
}

func maxScore(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	peak := scores[0]
	for _, s := range scores[1:] {
		if s > peak {
			peak = s
		}
	}
	return peak
}

func stepX(i, n int) float64 {
	if n <= 1 {
		return chartWidth / 2
	}
	return float64(i) / float64(n-1) * chartWidth
}

func stepLabel(i int, labels []string) string {
	if i < len(labels) {
		if label := strings.TrimSpace(labels[i]); label != "" {
			return label
		}
	}
	return "Step " + strconv.Itoa(i+1)
}

type chartView struct {
	Width     int
	Height    int
	Gridlines []int
	Line      string
	Area      string
	Markers   []markerView
}

type markerView struct {
	X string
	Y string
}

func newChartView(points []ChartPoint) chartView {
	coords := make([]string, len(points))
	markers := make([]markerView, len(points))
	for i, p := range points {
		x, y := formatCoord(p.X), formatCoord(p.Y)
		coords[i] = x + "," + y
		markers[i] = markerView{X: x, Y: y}
	}
	line := strings.Join(coords, " ")
	baseline := formatCoord(chartHeight)
	return chartView{
		Width:     int(chartWidth),
		Height:    int(chartHeight),
		Gridlines: gridlines,
		Line:      line,
		Area:      "0," + baseline + " " + line + " " + formatCoord(chartWidth) + "," + baseline,
		Markers:   markers,
	}
}
