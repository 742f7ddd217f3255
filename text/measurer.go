package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/ggchart/internal/cache"
)

// Measurer reports shaped label widths. It implements ggchart.TextMeasurer.
//
// HarfbuzzShaper keeps internal buffers and is not safe for concurrent use,
// so shapers are pooled. A go-text font.Face is created per call; it is a
// thin wrapper around the shared, read-only font.Font. Results are cached
// because a legend measures the same labels every frame.
type Measurer struct {
	font     *Font
	pool     sync.Pool
	advances *cache.Cache[labelKey, float64]
}

type labelKey struct {
	label string
	size  float64
}

// maxAdvances bounds the number of cached label widths.
const maxAdvances = 256

// NewMeasurer creates a measurer for f.
func NewMeasurer(f *Font) *Measurer {
	return &Measurer{
		font: f,
		pool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
		advances: cache.New[labelKey, float64](maxAdvances, nil),
	}
}

// Advance returns the horizontal advance of label at size pixels.
// Each bidi run is shaped in its own direction.
func (m *Measurer) Advance(label string, size float64) float64 {
	if label == "" || size <= 0 || m.font == nil {
		return 0
	}
	adv, _ := m.advances.GetOrCreate(labelKey{label, size}, func() (float64, error) {
		return m.shape(label, size), nil
	})
	return adv
}

// shape sums the shaped advances of every run of label.
func (m *Measurer) shape(label string, size float64) float64 {
	face := gtfont.NewFace(m.font.gt)
	hb := m.pool.Get().(*shaping.HarfbuzzShaper)
	defer m.pool.Put(hb)

	var total fixed.Int26_6
	for _, r := range Runs(label) {
		runes := []rune(r.Text)
		if len(runes) == 0 {
			continue
		}
		dir := di.DirectionLTR
		if r.Direction == RightToLeft {
			dir = di.DirectionRTL
		}
		out := hb.Shape(shaping.Input{
			Text:      runes,
			RunStart:  0,
			RunEnd:    len(runes),
			Direction: dir,
			Face:      face,
			Size:      fixed.Int26_6(size * 64),
			Script:    detectScript(runes),
			Language:  language.NewLanguage("en"),
		})
		total += out.Advance
	}
	if total < 0 {
		total = -total
	}
	return float64(total) / 64
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
