// Package viewer shows a chart in a desktop window.
package viewer

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/config"
	"github.com/gogpu/ggchart/internal/app"
	"github.com/gogpu/ggchart/surface"
)

// Options configures the window.
type Options struct {
	Title string

	// Reloads, when set, delivers new descriptions to apply.
	Reloads <-chan config.Reload

	// ChartOptions are passed to the chart.
	ChartOptions []ggchart.ChartOption
}

// Run opens a window showing f and blocks until it is closed.
func Run(f config.File, opts Options) error {
	sopts, err := f.SurfaceOptions()
	if err != nil {
		return err
	}
	s, err := surface.NewImageSurfaceWithOptions(sopts)
	if err != nil {
		return err
	}
	defer s.Close()

	c, err := app.NewChart(f, s, opts.ChartOptions...)
	if err != nil {
		return err
	}

	g := &game{chart: c, surface: s, reloads: opts.Reloads, last: time.Now()}
	title := opts.Title
	if title == "" {
		title = "ggchart"
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(s.Width(), s.Height())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type game struct {
	chart   *ggchart.Chart
	surface *surface.ImageSurface
	reloads <-chan config.Reload

	img     *ebiten.Image
	upload  bool
	last    time.Time
	cx, cy  int
	pointer ggchart.Point
}

func (g *game) Update() error {
	select {
	case r, ok := <-g.reloads:
		if !ok {
			g.reloads = nil
			break
		}
		if r.Err != nil {
			ggchart.Logger().Warn("viewer: reload rejected", "err", r.Err)
			break
		}
		// The window keeps its own size.
		r.File.Surface.Width, r.File.Surface.Height = g.surface.Width(), g.surface.Height()
		if err := r.File.Apply(g.chart); err != nil {
			ggchart.Logger().Warn("viewer: reload rejected", "err", err)
		}
	default:
	}

	if x, y := ebiten.CursorPosition(); x != g.cx || y != g.cy {
		g.cx, g.cy = x, y
		g.pointer = g.chart.OnPointerMoved(float64(x), float64(y))
	}

	now := time.Now()
	rendered, err := g.chart.OnFrameTick(now.Sub(g.last))
	g.last = now
	if err != nil {
		// Degenerate viewports retry on the next tick.
		ggchart.Logger().Debug("viewer: frame skipped", "err", err)
	}
	if rendered {
		g.upload = true
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	w, h := g.surface.Width(), g.surface.Height()
	if g.img == nil || g.img.Bounds().Dx() != w || g.img.Bounds().Dy() != h {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(w, h)
		g.upload = true
	}
	if g.upload {
		g.img.WritePixels(g.surface.Image().Pix)
		g.upload = false
	}
	screen.DrawImage(g.img, nil)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("x=%.4g y=%.4g", g.pointer.X, g.pointer.Y), 4, h-20)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.surface.Width() || outsideHeight != g.surface.Height() {
		if err := g.surface.Resize(outsideWidth, outsideHeight); err != nil {
			ggchart.Logger().Warn("viewer: resize failed", "err", err)
			return g.surface.Width(), g.surface.Height()
		}
		g.chart.OnSurfaceResized(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
