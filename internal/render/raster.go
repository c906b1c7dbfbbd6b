package render

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// Style holds the colors a Raster paints with.
type Style struct {
	Background color.RGBA
	Text       color.RGBA

	// Backdrop.A is the backdrop opacity at full line alpha.
	Backdrop      color.RGBA
	Button        color.RGBA
	ButtonHover   color.RGBA
	ButtonPressed color.RGBA
	ButtonText    color.RGBA
	CornerRadius  float64
}

var DefaultStyle = Style{
	Background:    color.RGBA{0, 255, 0, 255},
	Text:          color.RGBA{255, 255, 255, 255},
	Backdrop:      color.RGBA{0, 0, 0, 160},
	Button:        color.RGBA{40, 40, 40, 255},
	ButtonHover:   color.RGBA{70, 70, 70, 255},
	ButtonPressed: color.RGBA{20, 20, 20, 255},
	ButtonText:    color.RGBA{255, 255, 255, 255},
	CornerRadius:  8,
}

// ButtonView is what the rasterizer needs to draw the toggle control.
type ButtonView struct {
	Rect    Rect
	Label   string
	Hovered bool
	Pressed bool
}

// Raster paints scenes into a fixed-size RGBA frame.
type Raster struct {
	dc         *gg.Context
	keyFace    font.Face
	buttonFace font.Face
	keyAscent  float64
	keyHeight  int
	style      Style
}

func NewRaster(width, height int, f *truetype.Font, keySize, buttonSize float64, style Style) *Raster {
	keyFace := NewFace(f, keySize)
	m := keyFace.Metrics()
	return &Raster{
		dc:         gg.NewContext(width, height),
		keyFace:    keyFace,
		buttonFace: NewFace(f, buttonSize),
		keyAscent:  float64(m.Ascent.Ceil()),
		keyHeight:  (m.Ascent + m.Descent).Ceil(),
		style:      style,
	}
}

// Measure returns the rendered size of a key label in pixels.
func (r *Raster) Measure(text string) (int, int) {
	r.dc.SetFontFace(r.keyFace)
	w, _ := r.dc.MeasureString(text)
	return int(math.Ceil(w)), r.keyHeight
}

// Paint draws one frame: chroma background, the faded key line and the
// toggle button. The returned image is reused by the next call.
func (r *Raster) Paint(scene Scene, button ButtonView) *image.RGBA {
	dc := r.dc
	dc.SetColor(r.style.Background)
	dc.Clear()

	if !scene.Empty() {
		r.paintLine(scene)
	}
	r.paintButton(button)

	return dc.Image().(*image.RGBA)
}

func (r *Raster) paintLine(scene Scene) {
	dc := r.dc
	alpha := int(scene.Alpha)

	if b := scene.Backdrop; b.W > 0 && b.H > 0 {
		bd := r.style.Backdrop
		dc.DrawRoundedRectangle(float64(b.X), float64(b.Y), float64(b.W), float64(b.H), r.style.CornerRadius)
		dc.SetRGBA255(int(bd.R), int(bd.G), int(bd.B), int(bd.A)*alpha/255)
		dc.Fill()
	}

	dc.SetFontFace(r.keyFace)
	txt := r.style.Text
	dc.SetRGBA255(int(txt.R), int(txt.G), int(txt.B), int(txt.A)*alpha/255)
	for _, g := range scene.Glyphs {
		// A label that rasterizes to nothing is skipped for this frame
		// only; the token itself stays on the line.
		if g.Text == "" || g.W <= 0 {
			continue
		}
		dc.DrawString(g.Text, float64(g.X), float64(g.Y)+r.keyAscent)
	}
}

func (r *Raster) paintButton(b ButtonView) {
	if b.Rect.W <= 0 || b.Rect.H <= 0 {
		return
	}
	dc := r.dc

	fill := r.style.Button
	switch {
	case b.Pressed:
		fill = r.style.ButtonPressed
	case b.Hovered:
		fill = r.style.ButtonHover
	}
	rect := b.Rect
	dc.DrawRoundedRectangle(float64(rect.X), float64(rect.Y), float64(rect.W), float64(rect.H), r.style.CornerRadius/2)
	dc.SetColor(fill)
	dc.Fill()

	dc.SetFontFace(r.buttonFace)
	dc.SetColor(r.style.ButtonText)
	dc.DrawStringAnchored(b.Label, float64(rect.X)+float64(rect.W)/2, float64(rect.Y)+float64(rect.H)/2, 0.5, 0.5)
}

// Close releases the font faces.
func (r *Raster) Close() error {
	if err := r.keyFace.Close(); err != nil {
		return err
	}
	return r.buttonFace.Close()
}
