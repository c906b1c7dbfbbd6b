// Package render lays out the key line and paints frames.
//
// Layout is a pure function from the active tokens to a Scene in the
// caller's units. Raster paints a Scene into an RGBA frame with gg.
package render

import "keycapper/internal/keycap"

type Rect struct {
	X, Y int
	W, H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Glyph is one token placed on screen. X, Y is the top-left corner.
type Glyph struct {
	Text string
	X, Y int
	W, H int
}

// Scene is the draw list for one frame. Every element shares Alpha.
type Scene struct {
	Backdrop Rect
	Glyphs   []Glyph
	Alpha    uint8
}

func (s Scene) Empty() bool {
	return len(s.Glyphs) == 0
}

// Metrics describes the surface the line is laid out on.
type Metrics struct {
	WindowWidth  int
	WindowHeight int
	MarginLeft   int
	MarginRight  int
	Gap          int
	Padding      int
}

// RowWidth is the widest line that fits between the margins.
func (m Metrics) RowWidth() int {
	return m.WindowWidth - m.MarginLeft - m.MarginRight
}

// Layout positions the frame's tokens. Left-aligned lines grow rightwards
// from the left margin in insertion order; right-aligned lines grow
// leftwards from the right margin starting with the newest token.
func Layout(frame keycap.Frame, alignRight bool, m Metrics) Scene {
	if frame.Empty() {
		return Scene{}
	}

	maxHeight := 0
	totalWidth := 0
	for i, tok := range frame.Tokens {
		if tok.Height > maxHeight {
			maxHeight = tok.Height
		}
		if i > 0 {
			totalWidth += m.Gap
		}
		totalWidth += tok.Width
	}
	top := m.WindowHeight/2 - maxHeight/2

	left := m.MarginLeft
	if alignRight {
		left = m.WindowWidth - m.MarginRight - totalWidth
	}

	scene := Scene{
		Backdrop: Rect{
			X: left - m.Padding,
			Y: top - m.Padding,
			W: totalWidth + 2*m.Padding,
			H: maxHeight + 2*m.Padding,
		},
		Glyphs: make([]Glyph, len(frame.Tokens)),
		Alpha:  frame.Alpha,
	}

	if alignRight {
		cursor := m.WindowWidth - m.MarginRight
		for i := len(frame.Tokens) - 1; i >= 0; i-- {
			tok := frame.Tokens[i]
			cursor -= tok.Width
			scene.Glyphs[i] = glyph(tok, cursor, top)
			cursor -= m.Gap
		}
		return scene
	}

	cursor := m.MarginLeft
	for i, tok := range frame.Tokens {
		scene.Glyphs[i] = glyph(tok, cursor, top)
		cursor += tok.Width + m.Gap
	}
	return scene
}

func glyph(tok keycap.Token, x, y int) Glyph {
	return Glyph{Text: tok.Text, X: x, Y: y, W: tok.Width, H: tok.Height}
}
