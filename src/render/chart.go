// Package render turns view artifacts into images and text.
package render

import (
	"bytes"
	"image"
	"image/png"
	"io"

	"github.com/pkg/errors"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/jfrummel/cintel-02-data/src/views"
)

// ErrNotChart is returned for artifacts that have no chart rendering.
var ErrNotChart = errors.New("artifact is not a chart")

// Minimum image size; smaller requests are raised to it.
const (
	MinWidth  = 320
	MinHeight = 200
)

// Image renders a chart artifact at w x h pixels.
func Image(a views.Artifact, w, h int) (image.Image, error) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, a, w, h); err != nil {
		return nil, err
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, errors.Wrap(err, "decode chart png")
	}
	return img, nil
}

// WritePNG renders a chart artifact as PNG.
func WritePNG(out io.Writer, a views.Artifact, w, h int) error {
	ch, err := buildChart(a)
	if err != nil {
		return err
	}
	ch.Width, ch.Height = clampSize(w, h)
	if err := ch.Render(chart.PNG, out); err != nil {
		return errors.Wrapf(err, "render %q", a.Title())
	}
	return nil
}

func buildChart(a views.Artifact) (*chart.Chart, error) {
	switch v := a.(type) {
	case *views.Histogram:
		return histogramChart(v)
	case *views.Scatter:
		return scatterChart(v)
	case nil:
		return nil, errors.Wrap(ErrNotChart, "nil artifact")
	}
	return nil, errors.Wrapf(ErrNotChart, "%s %q", a.Kind(), a.Title())
}

func clampSize(w, h int) (int, int) {
	if w < MinWidth {
		w = MinWidth
	}
	if h < MinHeight {
		h = MinHeight
	}
	return w, h
}

// baseChart sets up the dark background, axis labels and title shared by every chart.
func baseChart(p Palette, title string, centered bool, xName, yName string) *chart.Chart {
	axisText := chart.Style{FontColor: p.Text, StrokeColor: p.Axis}
	grid := chart.Style{StrokeColor: p.Grid, StrokeWidth: 1}
	ch := &chart.Chart{
		Title:        title,
		TitleStyle:   chart.Style{FontColor: p.Text, FontSize: 13},
		ColorPalette: p,
		Background: chart.Style{
			FillColor: p.Background,
			Padding:   chart.Box{Top: 44, Left: 16, Right: 16, Bottom: 16},
		},
		Canvas: chart.Style{FillColor: p.Canvas},
		XAxis: chart.XAxis{
			Name:           xName,
			NameStyle:      chart.Style{FontColor: p.Text},
			Style:          axisText,
			GridMajorStyle: grid,
		},
		YAxis: chart.YAxis{
			Name:           yName,
			NameStyle:      chart.Style{FontColor: p.Text},
			Style:          axisText,
			GridMajorStyle: grid,
		},
	}
	if !centered {
		ch.TitleStyle.Hidden = true
		ch.Elements = append(ch.Elements, leftTitle(title, p))
	}
	return ch
}

// leftTitle draws the title flush with the left edge of the canvas.
func leftTitle(title string, p Palette) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, defaults chart.Style) {
		st := chart.Style{FontColor: p.Text, FontSize: 13}.InheritFrom(defaults)
		tb := chart.Draw.MeasureText(r, title, st)
		chart.Draw.Text(r, title, cb.Left, chart.DefaultTitleTop+tb.Height(), st)
	}
}

type legendEntry struct {
	Name  string
	Color drawing.Color
}

// legend draws one colored swatch per entry in the top right corner of the canvas.
func legend(entries []legendEntry, p Palette) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, defaults chart.Style) {
		if len(entries) == 0 {
			return
		}
		text := chart.Style{FontColor: p.Text, FontSize: 9}.InheritFrom(defaults)
		const pad, swatch, gap = 6, 10, 4
		width, lineH := 0, 0
		for _, e := range entries {
			tb := chart.Draw.MeasureText(r, e.Name, text)
			if tb.Width() > width {
				width = tb.Width()
			}
			if tb.Height() > lineH {
				lineH = tb.Height()
			}
		}
		if lineH < swatch {
			lineH = swatch
		}
		box := chart.Box{
			Top:    cb.Top + pad,
			Right:  cb.Right - pad,
			Left:   cb.Right - pad - (2*pad + swatch + gap + width),
			Bottom: cb.Top + pad + 2*pad + len(entries)*(lineH+gap) - gap,
		}
		chart.Draw.Box(r, box, chart.Style{FillColor: p.Canvas.WithAlpha(220), StrokeColor: p.Axis, StrokeWidth: 1})
		y := box.Top + pad
		for _, e := range entries {
			sw := chart.Box{Top: y, Left: box.Left + pad, Right: box.Left + pad + swatch, Bottom: y + swatch}
			chart.Draw.Box(r, sw, chart.Style{FillColor: e.Color, StrokeColor: e.Color, StrokeWidth: 1})
			chart.Draw.Text(r, e.Name, sw.Right+gap, y+swatch, text)
			y += lineH + gap
		}
	}
}
