package ggchart

import "fmt"

// PointerHandler receives the data-space coordinate under the pointer.
type PointerHandler func(x, y float64)

// PointerMapper converts raw pointer positions into data coordinates.
//
// When the surface has no area the mapping is undefined; the mapper then
// returns the last coordinate it mapped successfully (the zero Point before
// the first one). It never allocates and never blocks.
type PointerMapper struct {
	handler PointerHandler
	last    Point
	valid   bool
}

// SetHandler replaces the host callback. Nil disables forwarding.
func (m *PointerMapper) SetHandler(h PointerHandler) {
	m.handler = h
}

// Map returns the data coordinate for a pixel position in vp.
func (m *PointerMapper) Map(px, py float64, vp Viewport) Point {
	if p, ok := vp.ToData(Pt(px, py)); ok {
		m.last = p
		m.valid = true
	}
	return m.last
}

// TryMap is Map without the fallback. It returns an error wrapping
// ErrPointerMappingUndefined when vp has no area and leaves the last
// known-good coordinate untouched.
func (m *PointerMapper) TryMap(px, py float64, vp Viewport) (Point, error) {
	p, ok := vp.ToData(Pt(px, py))
	if !ok {
		return m.last, fmt.Errorf("%w: surface %dx%d", ErrPointerMappingUndefined, vp.Width, vp.Height)
	}
	m.last = p
	m.valid = true
	return p, nil
}

// OnPointerMove maps the position and forwards the result to the handler.
func (m *PointerMapper) OnPointerMove(px, py float64, vp Viewport) Point {
	p := m.Map(px, py, vp)
	if m.handler != nil {
		m.handler(p.X, p.Y)
	}
	return p
}

// Last returns the last known-good coordinate and whether one exists.
func (m *PointerMapper) Last() (Point, bool) {
	return m.last, m.valid
}
