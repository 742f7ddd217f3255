// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import "github.com/gogpu/ggchart"

// rect is an axis-aligned rectangle in pixel space.
type rect struct {
	minX, minY, maxX, maxY float64
}

func contains(r rect, p ggchart.Point) bool {
	return p.X >= r.minX && p.X <= r.maxX && p.Y >= r.minY && p.Y <= r.maxY
}

// clipSegment clips the segment a-b to r using the Liang-Barsky algorithm.
// It reports false when the segment lies entirely outside r or has a
// non-finite endpoint.
func clipSegment(a, b ggchart.Point, r rect) (ggchart.Point, ggchart.Point, bool) {
	if !a.IsFinite() || !b.IsFinite() {
		return a, b, false
	}
	dx, dy := b.X-a.X, b.Y-a.Y
	t0, t1 := 0.0, 1.0

	edges := [4]struct{ p, q float64 }{
		{-dx, a.X - r.minX},
		{dx, r.maxX - a.X},
		{-dy, a.Y - r.minY},
		{dy, r.maxY - a.Y},
	}
	for _, e := range edges {
		if e.p == 0 {
			if e.q < 0 {
				return a, b, false
			}
			continue
		}
		t := e.q / e.p
		if e.p < 0 {
			if t > t1 {
				return a, b, false
			}
			t0 = max(t0, t)
		} else {
			if t < t0 {
				return a, b, false
			}
			t1 = min(t1, t)
		}
	}
	return ggchart.Pt(a.X+t0*dx, a.Y+t0*dy), ggchart.Pt(a.X+t1*dx, a.Y+t1*dy), true
}
