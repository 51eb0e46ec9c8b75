package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/up-zero/gotool/imageutil"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/ironsheep/ocr-annotate/internal/engine"
)

// Style controls how results are drawn.
type Style struct {
	// Color is used for both box outlines and labels.
	Color color.RGBA

	// StrokeWidth is the outline thickness in pixels.
	StrokeWidth int

	// FontSize is the label size in pixels. The label's top edge sits
	// FontSize+LabelGap pixels above the box.
	FontSize int

	// LabelGap is the extra vertical space between label and box.
	LabelGap int
}

// DefaultStyle returns the standard highlight: #E1A105, 3px outline, 20px labels.
func DefaultStyle() Style {
	return Style{
		Color:       color.RGBA{R: 225, G: 161, B: 5, A: 255},
		StrokeWidth: 3,
		FontSize:    DefaultFontSize,
		LabelGap:    6,
	}
}

// Annotator draws recognition results onto images.
type Annotator struct {
	face  font.Face
	style Style
}

// NewAnnotator creates an Annotator drawing labels with face.
func NewAnnotator(face font.Face, style Style) *Annotator {
	return &Annotator{face: face, style: style}
}

// Label formats the overlay text for a result: "<text> (<confidence>)" with
// the confidence at two decimals.
func Label(r engine.Result) string {
	return fmt.Sprintf("%s (%.2f)", r.Text, r.Confidence)
}

// Annotate returns an RGB copy of src with every result drawn on it, in order.
// src itself is never modified.
func (a *Annotator) Annotate(src image.Image, results []engine.Result) *image.RGBA {
	bounds := src.Bounds()
	out := image.NewRGBA(bounds)
	draw.Draw(out, bounds, src, bounds.Min, draw.Src)

	for _, r := range results {
		a.drawResult(out, r)
	}
	return out
}

func (a *Annotator) drawResult(dst *image.RGBA, r engine.Result) {
	tl := r.Box.TopLeft()
	br := r.Box.BottomRight()

	// Both corners are inside the outline.
	rect := image.Rectangle{
		Min: image.Point{X: tl.X, Y: tl.Y},
		Max: image.Point{X: br.X + 1, Y: br.Y + 1},
	}
	imageutil.DrawThickRectOutline(dst, rect, a.style.Color, a.style.StrokeWidth)

	a.drawLabel(dst, tl.X, tl.Y-(a.style.FontSize+a.style.LabelGap), Label(r))
}

// drawLabel draws text whose top edge is at y. Parts outside dst are clipped.
func (a *Annotator) drawLabel(dst *image.RGBA, x, y int, text string) {
	ascent := a.face.Metrics().Ascent
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(a.style.Color),
		Face: a.face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y) + ascent},
	}
	d.DrawString(text)
}
