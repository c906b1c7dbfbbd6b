package term

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"keycapper/internal/render"
)

// Terminals have no alpha channel. Fading is drawn by blending each color
// towards whatever lies beneath it.
type palette struct {
	background    colorful.Color
	text          colorful.Color
	backdrop      colorful.Color
	backdropAlpha float64
	button        colorful.Color
	buttonHover   colorful.Color
	buttonPressed colorful.Color
	buttonText    colorful.Color
}

func defaultPalette() palette {
	return palette{
		background:    colorful.Color{R: 0, G: 1, B: 0},
		text:          colorful.Color{R: 1, G: 1, B: 1},
		backdrop:      colorful.Color{R: 0, G: 0, B: 0},
		backdropAlpha: 160.0 / 255.0,
		button:        colorful.Color{R: 40.0 / 255, G: 40.0 / 255, B: 40.0 / 255},
		buttonHover:   colorful.Color{R: 70.0 / 255, G: 70.0 / 255, B: 70.0 / 255},
		buttonPressed: colorful.Color{R: 20.0 / 255, G: 20.0 / 255, B: 20.0 / 255},
		buttonText:    colorful.Color{R: 1, G: 1, B: 1},
	}
}

// continuation marks the cell covered by the right half of a wide rune.
const continuation rune = 0

type cell struct {
	r  rune
	fg colorful.Color
	bg colorful.Color
}

func (m model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	grid := make([][]cell, m.height)
	for y := range grid {
		grid[y] = make([]cell, m.width)
		for x := range grid[y] {
			grid[y][x] = cell{r: ' ', fg: m.palette.text, bg: m.palette.background}
		}
	}

	if !m.scene.Empty() {
		m.paintLine(grid)
	}
	m.paintButton(grid, m.o.ButtonView())

	var b strings.Builder
	for y, row := range grid {
		writeRow(&b, row)
		if y < len(grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m model) paintLine(grid [][]cell) {
	alpha := float64(m.scene.Alpha) / 255
	p := m.palette

	backdrop := p.background.BlendRgb(p.backdrop, p.backdropAlpha*alpha)
	fill(grid, m.scene.Backdrop, func(c *cell) {
		c.bg = backdrop
	})

	for _, g := range m.scene.Glyphs {
		if g.Text == "" || g.W <= 0 {
			continue
		}
		put(grid, g.X, g.Y, g.Text, func(c *cell) {
			c.fg = c.bg.BlendRgb(p.text, alpha)
		})
	}
}

func (m model) paintButton(grid [][]cell, b render.ButtonView) {
	p := m.palette
	bg := p.button
	switch {
	case b.Pressed:
		bg = p.buttonPressed
	case b.Hovered:
		bg = p.buttonHover
	}
	fill(grid, b.Rect, func(c *cell) {
		c.bg = bg
		c.fg = p.buttonText
	})

	label := b.Label
	x := b.Rect.X + (b.Rect.W-cellWidth(label))/2
	put(grid, x, b.Rect.Y+b.Rect.H/2, label, func(*cell) {})
}

func fill(grid [][]cell, r render.Rect, apply func(*cell)) {
	for y := r.Y; y < r.Y+r.H; y++ {
		if y < 0 || y >= len(grid) {
			continue
		}
		for x := r.X; x < r.X+r.W; x++ {
			if x < 0 || x >= len(grid[y]) {
				continue
			}
			apply(&grid[y][x])
		}
	}
}

// put writes text from column x, advancing by each rune's display width.
// Zero-width runes are dropped and wide runes that would cross the row end
// are skipped, so a row never grows past the grid width.
func put(grid [][]cell, x, y int, text string, apply func(*cell)) {
	if y < 0 || y >= len(grid) {
		return
	}
	row := grid[y]
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x >= 0 && x+w <= len(row) {
			splitWide(row, x, w)
			row[x].r = r
			apply(&row[x])
			for i := 1; i < w; i++ {
				row[x+i].r = continuation
				apply(&row[x+i])
			}
		}
		x += w
	}
}

// cellWidth is the number of columns put advances over text.
func cellWidth(text string) int {
	n := 0
	for _, r := range text {
		n += runewidth.RuneWidth(r)
	}
	return n
}

// splitWide blanks the halves of any wide rune cut by writing w cells at x.
func splitWide(row []cell, x, w int) {
	if row[x].r == continuation && x > 0 {
		row[x-1].r = ' '
	}
	if end := x + w; end < len(row) && row[end].r == continuation {
		row[end].r = ' '
	}
}

// writeRow renders runs of equally colored cells with one style each.
func writeRow(b *strings.Builder, row []cell) {
	start := 0
	for i := 1; i <= len(row); i++ {
		if i < len(row) && row[i].fg == row[start].fg && row[i].bg == row[start].bg {
			continue
		}
		var run strings.Builder
		for _, c := range row[start:i] {
			if c.r != continuation {
				run.WriteRune(c.r)
			}
		}
		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color(row[start].fg.Clamped().Hex())).
			Background(lipgloss.Color(row[start].bg.Clamped().Hex()))
		if run.Len() > 0 {
			b.WriteString(style.Render(run.String()))
		}
		start = i
	}
}
