package ggchart

import (
	"errors"
	"fmt"
)

// Errors reported by a Chart. All of them are recoverable: the chart keeps
// working and retries on the next frame tick or pointer event.
var (
	// ErrMalformedSeries is reported when a series has X and Y sequences of
	// different lengths. The series is skipped for the frame.
	ErrMalformedSeries = errors.New("ggchart: malformed series")

	// ErrDegenerateViewport is reported when XRange, YRange, width or height
	// is not positive. The whole render pass is skipped and the chart stays dirty.
	ErrDegenerateViewport = errors.New("ggchart: degenerate viewport")

	// ErrPointerMappingUndefined is reported when a pointer position cannot be
	// mapped because the surface has no area.
	ErrPointerMappingUndefined = errors.New("ggchart: pointer mapping undefined")

	// ErrNilSurface is returned when a render pass is requested before a
	// drawing surface has been attached.
	ErrNilSurface = errors.New("ggchart: no drawing surface")
)

// SeriesError describes a drawable that was skipped during a render pass.
type SeriesError struct {
	// Index is the position of the drawable in declaration order.
	Index int
	// Label is the legend label of the series, if any.
	Label string
	// Err is the underlying error, usually wrapping ErrMalformedSeries.
	Err error
}

func (e *SeriesError) Error() string {
	if e.Label != "" {
		return fmt.Sprintf("ggchart: series %d (%q): %v", e.Index, e.Label, e.Err)
	}
	return fmt.Sprintf("ggchart: series %d: %v", e.Index, e.Err)
}

func (e *SeriesError) Unwrap() error { return e.Err }
