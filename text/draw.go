package text

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// DrawLabel draws label with its top-left corner at (x, y) in dst pixels.
// The label is reordered with Visual before drawing.
func DrawLabel(dst draw.Image, label string, f *Font, size, x, y float64, col color.Color) error {
	if label == "" || f == nil || size <= 0 {
		return nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	face, err := f.face(size)
	if err != nil {
		return err
	}

	ascent := face.Metrics().Ascent
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y*64) + ascent},
	}
	d.DrawString(Visual(label))
	return nil
}

// LabelBounds returns the pixel width and line height of label at size,
// measured with the rasterization face.
func LabelBounds(label string, f *Font, size float64) (width, height float64, err error) {
	if f == nil || size <= 0 {
		return 0, 0, nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	face, err := f.face(size)
	if err != nil {
		return 0, 0, err
	}
	adv := font.MeasureString(face, label)
	m := face.Metrics()
	return float64(adv) / 64, float64(m.Height) / 64, nil
}
