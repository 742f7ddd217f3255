package text

import (
	"errors"
	"image"
	"image/color"
	"math"
	"sync"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func mustDefaultFont(t *testing.T) *Font {
	t.Helper()
	f, err := DefaultFont()
	if err != nil {
		t.Fatalf("DefaultFont() error = %v", err)
	}
	return f
}

func TestDefaultFontIsShared(t *testing.T) {
	a := mustDefaultFont(t)
	b := mustDefaultFont(t)
	if a != b {
		t.Error("DefaultFont() returned different fonts")
	}
	if a.Name() != "Go Regular" {
		t.Errorf("Name() = %q", a.Name())
	}
}

func TestParseFontInvalid(t *testing.T) {
	for _, data := range [][]byte{nil, []byte("not a font")} {
		if _, err := ParseFont("bad", data); !errors.Is(err, ErrInvalidFont) {
			t.Errorf("ParseFont(%q) error = %v, want ErrInvalidFont", data, err)
		}
	}
}

func TestMeasurerAdvance(t *testing.T) {
	m := NewMeasurer(mustDefaultFont(t))

	if got := m.Advance("", 12); got != 0 {
		t.Errorf("Advance(\"\") = %g, want 0", got)
	}
	if got := m.Advance("abc", 0); got != 0 {
		t.Errorf("Advance(size 0) = %g, want 0", got)
	}

	short := m.Advance("ab", 12)
	long := m.Advance("abcd", 12)
	if short <= 0 || long <= short {
		t.Errorf("Advance(ab)=%g Advance(abcd)=%g, want 0 < ab < abcd", short, long)
	}

	double := m.Advance("ab", 24)
	if math.Abs(double-2*short) > 0.5 {
		t.Errorf("Advance at 24px = %g, want about %g", double, 2*short)
	}
}

func TestMeasurerMatchesRasterWidth(t *testing.T) {
	f := mustDefaultFont(t)
	m := NewMeasurer(f)
	const label = "Temperature"

	shaped := m.Advance(label, 16)
	raster, height, err := LabelBounds(label, f, 16)
	if err != nil {
		t.Fatal(err)
	}
	if height <= 0 {
		t.Errorf("line height = %g", height)
	}
	if math.Abs(shaped-raster) > 0.1*raster {
		t.Errorf("shaped width %g and raster width %g differ by more than 10%%", shaped, raster)
	}
}

func TestMeasurerConcurrent(t *testing.T) {
	m := NewMeasurer(mustDefaultFont(t))
	want := m.Advance("legend", 12)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 20 {
				if got := m.Advance("legend", 12); got != want {
					t.Errorf("Advance() = %g, want %g", got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestVisualLatinUnchanged(t *testing.T) {
	for _, s := range []string{"", "abc", "Series 1 (°C)"} {
		if got := Visual(s); got != s {
			t.Errorf("Visual(%q) = %q", s, got)
		}
		if d := ParagraphDirection(s); d != LeftToRight {
			t.Errorf("ParagraphDirection(%q) = %v", s, d)
		}
	}
}

func TestVisualHebrew(t *testing.T) {
	const label = "שלום"
	if got, want := Visual(label), "םולש"; got != want {
		t.Errorf("Visual(%q) = %q, want %q", label, got, want)
	}
	if d := ParagraphDirection(label); d != RightToLeft {
		t.Errorf("ParagraphDirection(%q) = %v, want RTL", label, d)
	}
}

func TestDirectionString(t *testing.T) {
	if LeftToRight.String() != "LTR" || RightToLeft.String() != "RTL" {
		t.Error("unexpected Direction strings")
	}
}

func TestDrawLabel(t *testing.T) {
	f := mustDefaultFont(t)
	img := image.NewRGBA(image.Rect(0, 0, 80, 24))

	if err := DrawLabel(img, "Hi", f, 16, 2, 2, color.White); err != nil {
		t.Fatal(err)
	}

	painted := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			painted++
		}
	}
	if painted == 0 {
		t.Error("DrawLabel painted no pixels")
	}

	// Nothing may be drawn above the anchor.
	for x := 0; x < 80; x++ {
		if img.RGBAAt(x, 0).A != 0 {
			t.Fatalf("pixel (%d, 0) painted above the anchor", x)
		}
	}

	if err := DrawLabel(img, "", f, 16, 0, 0, color.White); err != nil {
		t.Errorf("DrawLabel(\"\") error = %v", err)
	}
}

func TestFaceCacheBounded(t *testing.T) {
	f, err := ParseFont("Go Regular", goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	for size := 1.0; size <= 3*maxFaces; size++ {
		if _, _, err := LabelBounds("x", f, size); err != nil {
			t.Fatal(err)
		}
	}
	if n := f.faces.Len(); n != maxFaces {
		t.Errorf("cached faces = %d, want %d", n, maxFaces)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	if n := f.faces.Len(); n != 0 {
		t.Errorf("cached faces after Close = %d", n)
	}
	// The font stays usable after Close.
	if w, _, err := LabelBounds("x", f, 12); err != nil || w <= 0 {
		t.Errorf("LabelBounds after Close = %v, %v", w, err)
	}
}

func TestAdvanceCached(t *testing.T) {
	m := NewMeasurer(mustDefaultFont(t))
	first := m.Advance("Legend", 12)
	if second := m.Advance("Legend", 12); second != first {
		t.Errorf("cached Advance = %v, want %v", second, first)
	}
	if s := m.advances.Stats(); s.Hits != 1 || s.Misses != 1 {
		t.Errorf("advance cache stats = %+v", s)
	}
}
