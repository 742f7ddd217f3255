package text

import (
	"slices"
	"strings"

	"golang.org/x/text/unicode/bidi"
)

// Direction is the writing direction of a run of text.
type Direction uint8

const (
	// LeftToRight is used for Latin, Cyrillic, digits and most scripts.
	LeftToRight Direction = iota
	// RightToLeft is used for Hebrew, Arabic and similar scripts.
	RightToLeft
)

// String returns "LTR" or "RTL".
func (d Direction) String() string {
	if d == RightToLeft {
		return "RTL"
	}
	return "LTR"
}

// Run is a maximal substring with a single direction, in logical order.
type Run struct {
	Text      string
	Direction Direction
}

// Runs splits label into directional runs in logical order.
// A label without strong right-to-left characters is a single LTR run.
func Runs(label string) []Run {
	if label == "" {
		return nil
	}
	var p bidi.Paragraph
	if _, err := p.SetString(label, bidi.DefaultDirection(bidi.LeftToRight)); err != nil {
		return []Run{{Text: label}}
	}
	order, err := p.Order()
	if err != nil || order.NumRuns() == 0 {
		return []Run{{Text: label}}
	}

	runs := make([]Run, 0, order.NumRuns())
	for i := 0; i < order.NumRuns(); i++ {
		r := order.Run(i)
		d := LeftToRight
		if r.Direction() == bidi.RightToLeft {
			d = RightToLeft
		}
		runs = append(runs, Run{Text: r.String(), Direction: d})
	}
	return runs
}

// ParagraphDirection returns RightToLeft when the first strong character of
// label is right-to-left.
func ParagraphDirection(label string) Direction {
	for _, r := range Runs(label) {
		if strings.TrimSpace(r.Text) == "" {
			continue
		}
		return r.Direction
	}
	return LeftToRight
}

// Visual returns label in display order for a left-to-right drawer:
// right-to-left runs have their characters reversed, and in a right-to-left
// paragraph the runs themselves are reversed. Mirrored glyphs such as
// brackets are not substituted.
func Visual(label string) string {
	runs := Runs(label)
	hasRTL := slices.ContainsFunc(runs, func(r Run) bool { return r.Direction == RightToLeft })
	if !hasRTL {
		return label
	}

	if ParagraphDirection(label) == RightToLeft {
		slices.Reverse(runs)
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range runs {
		if r.Direction == RightToLeft {
			b.WriteString(bidi.ReverseString(r.Text))
		} else {
			b.WriteString(r.Text)
		}
	}
	return b.String()
}
