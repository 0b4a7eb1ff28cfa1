// internal/panel/format.go
package panel

import (
	"strconv"
	"strings"
)

// formatSeconds renders a millisecond duration as seconds with two decimals.
func formatSeconds(ms float64) string {
	return strconv.FormatFloat(ms/1000, 'f', 2, 64) + "s"
}

func formatPercent(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64) + "%"
}

// formatCoord renders a chart coordinate or width with at most two decimals
// and no trailing zeros.
func formatCoord(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}
