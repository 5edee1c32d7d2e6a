package uihelpers

import (
	"strconv"
	"strings"
)

// SidebarWidth is the width reserved for the sidebar column.
const SidebarWidth = 260

// ComputeCardChartSize returns the chart image size for one card in a row of cols cards.
// Input: window width. Width never drops below 360; height follows a ~5:3 aspect clamped to [240,520].
func ComputeCardChartSize(winW float32, cols int) (int, int) {
	if cols < 1 {
		cols = 1
	}
	avail := int(winW) - SidebarWidth - 24*cols
	w := avail / cols
	if w < 360 {
		w = 360
	}
	h := int(float32(w) * 0.62)
	if h < 240 {
		h = 240
	}
	if h > 520 {
		h = 520
	}
	return w, h
}

// ComputeFullscreenChartSize sizes a chart to fill a dedicated window, leaving room for the
// window chrome. Never smaller than 640x400.
func ComputeFullscreenChartSize(winW, winH float32) (int, int) {
	w := int(winW) - 40
	h := int(winH) - 80
	if w < 640 {
		w = 640
	}
	if h < 400 {
		h = 400
	}
	return w, h
}

// Relative column weights and minimum widths for the eight penguin columns.
// Order: species, island, bill length, bill depth, flipper length, body mass, sex, year
var (
	columnWeights   = [8]float32{1.1, 1.1, 1.2, 1.2, 1.4, 1.2, 0.8, 0.7}
	columnMinWidths = [8]int{70, 80, 100, 95, 115, 95, 55, 50}
)

// ComputeTableColumnWidths spreads a table width over the eight columns by weight, never going
// below a column's minimum.
func ComputeTableColumnWidths(tableW float32) [8]int {
	var sum float32
	for _, w := range columnWeights {
		sum += w
	}
	var out [8]int
	for i, w := range columnWeights {
		out[i] = int(tableW * w / sum)
		if out[i] < columnMinWidths[i] {
			out[i] = columnMinWidths[i]
		}
	}
	return out
}

// ParseBinCount interprets the text of a numeric entry. Empty text means 0 (automatic);
// anything that is not a whole number is rejected so the previous value stays in effect.
func ParseBinCount(text string) (int, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, true
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, false
	}
	return n, true
}
