package ggchart

// PrimitiveKind identifies the type of a draw primitive.
type PrimitiveKind uint8

const (
	KindLineSegment   PrimitiveKind = iota // Line between two samples
	KindMarker                             // Marker at one sample
	KindCursorOverlay                      // Cursor crosshair at one sample
	KindLegendGlyph                        // Legend label
)

// primitiveKindNames maps PrimitiveKind values to their string representation.
var primitiveKindNames = [...]string{
	KindLineSegment:   "LineSegment",
	KindMarker:        "Marker",
	KindCursorOverlay: "CursorOverlay",
	KindLegendGlyph:   "LegendGlyph",
}

// String returns the string representation of a PrimitiveKind.
func (k PrimitiveKind) String() string {
	if int(k) < len(primitiveKindNames) {
		return primitiveKindNames[k]
	}
	return "Unknown"
}

// Primitive is one atomic drawable unit produced during a render pass.
// Primitives are rebuilt every frame and never outlive it.
type Primitive interface {
	// Kind returns the PrimitiveKind for this primitive.
	Kind() PrimitiveKind
}

// LineSegment connects two consecutive samples. Endpoints are in data space.
type LineSegment struct {
	P0, P1 Point
	Color  RGBA
}

// Kind implements Primitive.
func (LineSegment) Kind() PrimitiveKind { return KindLineSegment }

// Marker is a shape centered on a sample. Center is in data space, Size is
// in surface pixels.
type Marker struct {
	Center Point
	Shape  MarkerShape
	Size   float64
	Color  RGBA
}

// Kind implements Primitive.
func (Marker) Kind() PrimitiveKind { return KindMarker }

// CursorOverlay is a crosshair at the current cursor sample, in data space.
type CursorOverlay struct {
	Center Point
	Color  RGBA
}

// Kind implements Primitive.
func (CursorOverlay) Kind() PrimitiveKind { return KindCursorOverlay }

// LegendGlyph is a legend label. Anchor is the top-left corner of the text
// in surface pixels; legends are laid out on the surface, not in data space.
type LegendGlyph struct {
	Anchor Point
	Text   string
	Color  RGBA
}

// Kind implements Primitive.
func (LegendGlyph) Kind() PrimitiveKind { return KindLegendGlyph }

// Submit sends each primitive to the matching surface sink, in order.
func Submit(s Surface, prims []Primitive) {
	for _, p := range prims {
		switch p := p.(type) {
		case LineSegment:
			s.DrawLineSegment(p.P0, p.P1, p.Color)
		case Marker:
			s.DrawMarker(p.Center, p.Shape, p.Size, p.Color)
		case CursorOverlay:
			s.DrawCursorOverlay(p.Center, p.Color)
		case LegendGlyph:
			s.DrawText(p.Anchor, p.Text, p.Color)
		}
	}
}
