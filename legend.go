package ggchart

import "unicode/utf8"

// LegendAlign selects the surface corner the legend list grows from.
type LegendAlign uint8

const (
	// LegendTopLeft stacks labels downwards from the top-left corner.
	LegendTopLeft LegendAlign = iota
	// LegendTopRight stacks labels downwards from the top-right corner,
	// right-aligning each label.
	LegendTopRight
)

// LegendLayout places legend labels as a stacked list on the surface.
type LegendLayout struct {
	Align LegendAlign

	// Margin is the distance in pixels from the surface edges.
	Margin float64

	// LineHeight is the vertical distance in pixels between labels.
	LineHeight float64

	// FontSize is the label size in pixels, passed to Measurer.
	FontSize float64

	// Measurer measures labels for right alignment. When nil, labels are
	// estimated at 0.6 em per rune.
	Measurer TextMeasurer
}

// DefaultLegendLayout returns a top-left layout with 12px labels.
func DefaultLegendLayout() LegendLayout {
	return LegendLayout{
		Align:      LegendTopLeft,
		Margin:     8,
		LineHeight: 16,
		FontSize:   12,
	}
}

// Anchor returns the top-left pixel position of the label in the given slot.
func (l LegendLayout) Anchor(slot int, text string, vp Viewport) Point {
	y := l.Margin + float64(slot)*l.LineHeight
	if l.Align == LegendTopRight {
		return Pt(float64(vp.Width)-l.Margin-l.advance(text), y)
	}
	return Pt(l.Margin, y)
}

func (l LegendLayout) advance(text string) float64 {
	if l.Measurer != nil {
		return l.Measurer.Advance(text, l.FontSize)
	}
	return 0.6 * l.FontSize * float64(utf8.RuneCountInString(text))
}
