package ggchart

import "fmt"

// BuildPrimitives appends the draw primitives for s to dst and returns the
// extended slice.
//
// Line segments, markers and the cursor overlay are emitted in data space
// without clamping to the viewport; the projection stage culls whatever
// falls outside. legendAt is the surface position of the series' legend
// label and is ignored when the series has no legend entry.
//
// Emission rules, in order:
//   - A cursor series emits one CursorOverlay at its clamped CursorIndex and
//     nothing else (no line, no markers, no legend entry).
//   - Otherwise one LineSegment per consecutive sample pair, colored LineColor.
//   - If IsPlot, one Marker per sample after all segments.
//   - If Legend is non-empty, one LegendGlyph at legendAt, colored LineColor.
//
// When the X and Y lengths differ, dst is returned unchanged together with
// an error wrapping ErrMalformedSeries.
func BuildPrimitives(dst []Primitive, s *Series, legendAt Point) ([]Primitive, error) {
	xs, ys := s.xData, s.yData
	if len(xs) != len(ys) {
		return dst, fmt.Errorf("%w: len(x)=%d, len(y)=%d", ErrMalformedSeries, len(xs), len(ys))
	}
	n := len(xs)

	if s.isGraphCursor {
		if n == 0 {
			return dst, nil
		}
		i := clampIndex(s.cursorIndex, n)
		return append(dst, CursorOverlay{
			Center: Pt(xs[i], ys[i]),
			Color:  s.graphCursorColor,
		}), nil
	}

	for i := 0; i+1 < n; i++ {
		dst = append(dst, LineSegment{
			P0:    Pt(xs[i], ys[i]),
			P1:    Pt(xs[i+1], ys[i+1]),
			Color: s.lineColor,
		})
	}

	if s.isPlot {
		for i := 0; i < n; i++ {
			dst = append(dst, Marker{
				Center: Pt(xs[i], ys[i]),
				Shape:  s.plotType,
				Size:   s.plotSize,
				Color:  s.plotColor,
			})
		}
	}

	if s.hasLegendEntry() {
		dst = append(dst, LegendGlyph{
			Anchor: legendAt,
			Text:   s.legend,
			Color:  s.lineColor,
		})
	}
	return dst, nil
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
