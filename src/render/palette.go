package render

import (
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Palette is a dark chart palette. It satisfies chart.ColorPalette.
type Palette struct {
	Background drawing.Color
	Canvas     drawing.Color
	Axis       drawing.Color
	Grid       drawing.Color
	Text       drawing.Color
	Series     []drawing.Color
}

var _ chart.ColorPalette = Palette{}

// Cyborg backgrounds shared by both palettes.
var (
	cyborgBackground = drawing.ColorFromHex("121212")
	cyborgCanvas     = drawing.ColorFromHex("1a1a1a")
	cyborgAxis       = drawing.ColorFromHex("888888")
	cyborgGrid       = drawing.ColorFromHex("333333")
	cyborgText       = drawing.ColorFromHex("adafae")
)

// PlotlyPalette uses the plotly default qualitative colors.
var PlotlyPalette = Palette{
	Background: cyborgBackground,
	Canvas:     cyborgCanvas,
	Axis:       cyborgAxis,
	Grid:       cyborgGrid,
	Text:       cyborgText,
	Series: []drawing.Color{
		drawing.ColorFromHex("636efa"),
		drawing.ColorFromHex("ef553b"),
		drawing.ColorFromHex("00cc96"),
		drawing.ColorFromHex("ab63fa"),
	},
}

// SeabornPalette uses the matplotlib tab10 colors.
var SeabornPalette = Palette{
	Background: cyborgBackground,
	Canvas:     cyborgCanvas,
	Axis:       cyborgAxis,
	Grid:       cyborgGrid,
	Text:       cyborgText,
	Series: []drawing.Color{
		drawing.ColorFromHex("1f77b4"),
		drawing.ColorFromHex("ff7f0e"),
		drawing.ColorFromHex("2ca02c"),
		drawing.ColorFromHex("d62728"),
	},
}

func (p Palette) BackgroundColor() drawing.Color       { return p.Background }
func (p Palette) BackgroundStrokeColor() drawing.Color { return p.Background }
func (p Palette) CanvasColor() drawing.Color           { return p.Canvas }
func (p Palette) CanvasStrokeColor() drawing.Color     { return p.Canvas }
func (p Palette) AxisStrokeColor() drawing.Color       { return p.Axis }
func (p Palette) TextColor() drawing.Color             { return p.Text }

// GetSeriesColor cycles through the series colors.
func (p Palette) GetSeriesColor(index int) drawing.Color {
	if len(p.Series) == 0 {
		return p.Text
	}
	return p.Series[index%len(p.Series)]
}

// pointStyle renders points only, no connecting line.
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    4,
		DotColor:    col.WithAlpha(210),
	}
}
