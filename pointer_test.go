package ggchart

import (
	"errors"
	"testing"
)

func TestPointerMapperForwards(t *testing.T) {
	var gotX, gotY float64
	calls := 0

	var m PointerMapper
	m.SetHandler(func(x, y float64) {
		gotX, gotY = x, y
		calls++
	})

	p := m.OnPointerMove(50, 50, squareViewport())
	if calls != 1 {
		t.Fatalf("handler called %d times, want 1", calls)
	}
	if !closeTo(gotX, 5) || !closeTo(gotY, 0) || p != Pt(gotX, gotY) {
		t.Errorf("handler got (%g, %g), returned %v; want (5, 0)", gotX, gotY, p)
	}
}

func TestPointerMapperLastGood(t *testing.T) {
	var m PointerMapper
	if p, ok := m.Last(); ok || p != (Point{}) {
		t.Errorf("Last() before first map = %v, %v", p, ok)
	}

	vp := squareViewport()
	good := m.Map(100, 0, vp)

	vp.Width = 0
	if got := m.Map(10, 10, vp); got != good {
		t.Errorf("Map on zero-width surface = %v, want last good %v", got, good)
	}
	if last, ok := m.Last(); !ok || last != good {
		t.Errorf("Last() = %v, %v; want %v, true", last, ok, good)
	}

	if _, err := m.TryMap(10, 10, vp); !errors.Is(err, ErrPointerMappingUndefined) {
		t.Errorf("TryMap() error = %v, want ErrPointerMappingUndefined", err)
	}
}

func TestPointerMapperZeroBeforeFirstMap(t *testing.T) {
	var m PointerMapper
	calls := 0
	m.SetHandler(func(x, y float64) {
		calls++
		if x != 0 || y != 0 {
			t.Errorf("handler got (%g, %g), want zero point", x, y)
		}
	})
	m.OnPointerMove(3, 4, Viewport{XMax: 1, YRange: 1})
	if calls != 1 {
		t.Errorf("handler called %d times, want 1", calls)
	}
}

func TestPointerMapperNilHandler(t *testing.T) {
	var m PointerMapper
	if got := m.OnPointerMove(0, 0, squareViewport()); got != Pt(0, 5) {
		t.Errorf("OnPointerMove() = %v, want (0, 5)", got)
	}
}

func TestPointerMapperNoAllocs(t *testing.T) {
	var m PointerMapper
	var sink float64
	m.SetHandler(func(x, y float64) { sink = x + y })
	vp := squareViewport()

	allocs := testing.AllocsPerRun(100, func() {
		m.OnPointerMove(12, 34, vp)
	})
	if allocs != 0 {
		t.Errorf("OnPointerMove allocates %.0f times per call", allocs)
	}
	_ = sink
}
