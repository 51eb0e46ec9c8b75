package engine

import (
	"fmt"
	"image"
)

// Point is a pixel coordinate with the origin at the top-left corner.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String renders the point as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Box is the quadrilateral around a detected text region, ordered
// top-left, top-right, bottom-right, bottom-left.
type Box [4]Point

// BoxFromRect builds an axis-aligned Box from a rectangle.
func BoxFromRect(r image.Rectangle) Box {
	return Box{
		{X: r.Min.X, Y: r.Min.Y},
		{X: r.Max.X, Y: r.Min.Y},
		{X: r.Max.X, Y: r.Max.Y},
		{X: r.Min.X, Y: r.Max.Y},
	}
}

// TopLeft returns the first corner.
func (b Box) TopLeft() Point { return b[0] }

// BottomRight returns the third corner.
func (b Box) BottomRight() Point { return b[2] }

// Rect returns the rectangle spanned by TopLeft and BottomRight.
func (b Box) Rect() image.Rectangle {
	return image.Rect(b[0].X, b[0].Y, b[2].X, b[2].Y)
}

// Result is one detected text region.
type Result struct {
	// Box locates the region in the image that was read.
	Box Box `json:"box"`

	// Text is the recognized content. Empty when recognition is disabled.
	Text string `json:"text"`

	// Confidence is the engine's certainty, from 0.0 to 1.0.
	Confidence float64 `json:"confidence"`
}

// Engine reads text from an image.
type Engine interface {
	// Read returns the text regions found in img, in engine order.
	Read(img image.Image) ([]Result, error)

	// Close releases the engine's resources.
	Close() error
}

// clampConfidence keeps a confidence inside [0, 1].
func clampConfidence(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
