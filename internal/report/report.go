// Package report renders recognition results as the pipe-delimited text
// report written next to each annotated image.
package report

import (
	"math"
	"strconv"
	"strings"

	"github.com/ironsheep/ocr-annotate/internal/engine"
)

// Header is the first line of every report:
// top-left | bottom-right | text | confidence.
const Header = "左上坐标|右下坐标|结果|置信度"

// FormatConfidence renders c in its shortest round-trip form, always with a
// decimal point or exponent (0.87, 1.0, 1e-05).
func FormatConfidence(c float64) string {
	if math.IsNaN(c) || math.IsInf(c, 0) {
		return strconv.FormatFloat(c, 'g', -1, 64)
	}
	s := strconv.FormatFloat(c, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// Line renders one result without a trailing newline.
func Line(r engine.Result) string {
	return strings.Join([]string{
		r.Box.TopLeft().String(),
		r.Box.BottomRight().String(),
		r.Text,
		FormatConfidence(r.Confidence),
	}, "|")
}

// Builder accumulates report lines in the order they are added.
type Builder struct {
	sb    strings.Builder
	lines int
}

// NewBuilder returns a Builder that already holds the header line.
func NewBuilder() *Builder {
	b := &Builder{}
	b.writeLine(Header)
	return b
}

// Add appends a line for r.
func (b *Builder) Add(r engine.Result) {
	b.writeLine(Line(r))
}

func (b *Builder) writeLine(s string) {
	b.sb.WriteString(s)
	b.sb.WriteByte('\n')
	b.lines++
}

// Lines returns the number of lines written, header included.
func (b *Builder) Lines() int { return b.lines }

// String returns the report text. Every line ends with "\n".
func (b *Builder) String() string { return b.sb.String() }

// Build renders a complete report for results.
func Build(results []engine.Result) string {
	b := NewBuilder()
	for _, r := range results {
		b.Add(r)
	}
	return b.String()
}
