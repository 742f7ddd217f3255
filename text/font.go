package text

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	gtfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/gogpu/ggchart/internal/cache"
)

// ErrInvalidFont is returned when font data cannot be parsed.
var ErrInvalidFont = errors.New("text: invalid font data")

// Font is a parsed font usable for both shaping and rasterization.
//
// The font data is parsed twice: once by go-text/typesetting for shaping and
// once by golang.org/x/image/font/opentype for drawing glyphs. Both parsed
// forms are read-only. The most recently used x/image faces are cached per
// size; drawing holds mu because font.Face is not safe for concurrent use.
type Font struct {
	name string
	gt   *gtfont.Font
	ot   *opentype.Font

	mu    sync.Mutex
	faces *cache.Cache[float64, font.Face]
}

// maxFaces bounds the number of cached rasterization faces per font.
const maxFaces = 8

// ParseFont parses TrueType or OpenType font data. The name is informational.
func ParseFont(name string, data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s: empty", ErrInvalidFont, name)
	}

	gtFace, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidFont, name, err)
	}

	ot, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidFont, name, err)
	}

	return &Font{
		name:  name,
		gt:    gtFace.Font,
		ot:    ot,
		faces: cache.New(maxFaces, func(_ float64, face font.Face) { _ = face.Close() }),
	}, nil
}

var defaultFont = sync.OnceValues(func() (*Font, error) {
	return ParseFont("Go Regular", goregular.TTF)
})

// DefaultFont returns the embedded Go Regular font. The font is parsed once.
func DefaultFont() (*Font, error) {
	return defaultFont()
}

// Name returns the name the font was parsed with.
func (f *Font) Name() string { return f.name }

// face returns the cached rasterization face for size. Must be called with
// f.mu held.
func (f *Font) face(size float64) (font.Face, error) {
	return f.faces.GetOrCreate(size, func() (font.Face, error) {
		face, err := opentype.NewFace(f.ot, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingNone,
		})
		if err != nil {
			return nil, fmt.Errorf("text: %s at %gpx: %w", f.name, size, err)
		}
		return face, nil
	})
}

// Close releases the cached rasterization faces. The font stays usable.
func (f *Font) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.faces.Purge()
	return nil
}
