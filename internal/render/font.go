package render

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// ErrNoFont is returned when none of the font candidates could be used.
var ErrNoFont = errors.New("no usable font found")

// FontSource is one font candidate. Data, when set, is used instead of
// reading Path.
type FontSource struct {
	Name string
	Path string
	Data []byte
}

// DefaultFontSources lists the fonts tried at startup, in order.
func DefaultFontSources() []FontSource {
	return []FontSource{
		{Name: "DejaVuSans.ttf", Path: "DejaVuSans.ttf"},
		{Name: "DejaVu Sans (system)", Path: "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"},
		{Name: "Helvetica", Path: "/System/Library/Fonts/Helvetica.ttc"},
		{Name: "Arial", Path: `C:\Windows\Fonts\arial.ttf`},
		{Name: "Go Regular (embedded)", Data: goregular.TTF},
	}
}

// LoadFont returns the first candidate that parses. Failed candidates are
// logged and skipped.
func LoadFont(sources []FontSource) (*truetype.Font, FontSource, error) {
	for _, src := range sources {
		f, err := parseFont(src)
		if err != nil {
			log.Printf("[font] %s: %v", src.Name, err)
			continue
		}
		log.Printf("[font] using %s", src.Name)
		return f, src, nil
	}
	return nil, FontSource{}, fmt.Errorf("tried %d font candidates: %w", len(sources), ErrNoFont)
}

func parseFont(src FontSource) (*truetype.Font, error) {
	data := src.Data
	if data == nil {
		b, err := os.ReadFile(src.Path)
		if err != nil {
			return nil, err
		}
		data = b
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return f, nil
}

// NewFace returns a face of the given point size at 72 DPI, so points
// equal pixels.
func NewFace(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
