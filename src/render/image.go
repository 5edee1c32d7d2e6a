package render

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var blankColor = color.RGBA{R: 18, G: 18, B: 18, A: 255}

// Blank returns a w x h image filled with the chart background.
func Blank(w, h int) image.Image {
	w, h = clampSize(w, h)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(blankColor), image.Point{}, draw.Src)
	return img
}

// ErrorImage is the placeholder a card shows when its output failed: a blank image with the
// message written across it, wrapped to fit.
func ErrorImage(w, h int, msg string) image.Image {
	img := Blank(w, h)
	lines := wrap("Error: "+msg, (img.Bounds().Dx()-32)/basicfont.Face7x13.Advance)
	y := img.Bounds().Dy()/2 - len(lines)*basicfont.Face7x13.Height/2
	out := img
	for _, l := range lines {
		out = Caption(out, l, 16, y, color.RGBA{R: 255, G: 120, B: 110, A: 255})
		y += basicfont.Face7x13.Height
	}
	return out
}

// Caption draws text at (x, y) with a drop shadow on a dark band, y being the baseline.
func Caption(img image.Image, text string, x, y int, col color.Color) image.Image {
	if img == nil || strings.TrimSpace(text) == "" {
		return img
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)
	pad := 4
	face := basicfont.Face7x13
	dr := &font.Drawer{Dst: rgba, Src: image.NewUniform(col), Face: face}
	tw := dr.MeasureString(text).Ceil()
	x += b.Min.X
	y += b.Min.Y
	bg := image.NewUniform(color.RGBA{A: 200})
	rect := image.Rect(x-pad, y-face.Metrics().Ascent.Ceil()-pad, x+tw+pad, y+pad)
	draw.Draw(rgba, rect, bg, image.Point{}, draw.Over)
	shadow := &font.Drawer{Dst: rgba, Src: image.NewUniform(color.RGBA{A: 180}), Face: face, Dot: fixed.P(x+1, y+1)}
	shadow.DrawString(text)
	dr.Dot = fixed.P(x, y)
	dr.DrawString(text)
	return rgba
}

// wrap splits text into lines of at most width runes, breaking on spaces where it can.
func wrap(text string, width int) []string {
	if width < 8 {
		width = 8
	}
	var lines []string
	var cur []rune
	for _, word := range strings.Fields(text) {
		w := []rune(word)
		for len(w) > width {
			if len(cur) > 0 {
				lines = append(lines, string(cur))
				cur = nil
			}
			lines = append(lines, string(w[:width]))
			w = w[width:]
		}
		switch {
		case len(cur) == 0:
			cur = w
		case len(cur)+1+len(w) <= width:
			cur = append(append(cur, ' '), w...)
		default:
			lines = append(lines, string(cur))
			cur = w
		}
	}
	if len(cur) > 0 {
		lines = append(lines, string(cur))
	}
	return lines
}
