// Package text measures and draws chart labels.
//
// Labels are short single-line strings: legend entries and axis captions.
// The package provides three pieces:
//
//   - Font: a parsed TrueType/OpenType font. DefaultFont returns the
//     embedded Go Regular font.
//   - Measurer: HarfBuzz-level shaping via go-text/typesetting, used to
//     right-align legend labels. It implements ggchart.TextMeasurer.
//   - Visual and Direction: Unicode bidirectional ordering, so labels that
//     mix Latin and Hebrew or Arabic read correctly when drawn left to right.
//
// # Example
//
//	f, _ := text.DefaultFont()
//	m := text.NewMeasurer(f)
//	layout := ggchart.DefaultLegendLayout()
//	layout.Align = ggchart.LegendTopRight
//	layout.Measurer = m
//
//	text.DrawLabel(img, "Temperature", f, 12, 8, 8, color.White)
//
// Font, Measurer and DrawLabel are safe for concurrent use.
package text
