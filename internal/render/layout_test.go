package render

import (
	"testing"

	"keycapper/internal/keycap"
)

var testMetrics = Metrics{
	WindowWidth:  1280,
	WindowHeight: 720,
	MarginLeft:   50,
	MarginRight:  50,
	Gap:          4,
	Padding:      10,
}

func frameOf(alpha uint8, toks ...keycap.Token) keycap.Frame {
	for i := range toks {
		toks[i].Active = true
	}
	return keycap.Frame{Tokens: toks, Alpha: alpha}
}

func TestLayoutEmpty(t *testing.T) {
	scene := Layout(keycap.Frame{}, false, testMetrics)
	if !scene.Empty() {
		t.Fatalf("empty frame produced %d glyphs", len(scene.Glyphs))
	}
	if scene.Backdrop != (Rect{}) {
		t.Fatalf("empty frame produced backdrop %+v", scene.Backdrop)
	}
}

func TestLayoutLeftAligned(t *testing.T) {
	frame := frameOf(200,
		keycap.Token{Text: "A", Width: 24, Height: 42},
		keycap.Token{Text: "B", Width: 22, Height: 40},
	)
	scene := Layout(frame, false, testMetrics)

	if len(scene.Glyphs) != 2 {
		t.Fatalf("got %d glyphs, want 2", len(scene.Glyphs))
	}
	a, b := scene.Glyphs[0], scene.Glyphs[1]
	if a.Text != "A" || a.X != 50 {
		t.Errorf("A at x=%d (%q), want 50", a.X, a.Text)
	}
	if b.Text != "B" || b.X != 50+24+4 {
		t.Errorf("B at x=%d (%q), want %d", b.X, b.Text, 50+24+4)
	}

	wantTop := 720/2 - 42/2
	if a.Y != wantTop || b.Y != wantTop {
		t.Errorf("glyph tops %d,%d, want %d", a.Y, b.Y, wantTop)
	}

	want := Rect{X: 40, Y: wantTop - 10, W: 24 + 4 + 22 + 20, H: 42 + 20}
	if scene.Backdrop != want {
		t.Errorf("backdrop = %+v, want %+v", scene.Backdrop, want)
	}
	if scene.Alpha != 200 {
		t.Errorf("alpha = %d, want 200", scene.Alpha)
	}
}

func TestLayoutRightAligned(t *testing.T) {
	frame := frameOf(255,
		keycap.Token{Text: "A", Width: 24, Height: 42},
		keycap.Token{Text: "B", Width: 22, Height: 42},
	)
	scene := Layout(frame, true, testMetrics)

	a, b := scene.Glyphs[0], scene.Glyphs[1]
	rightEdge := 1280 - 50
	if b.X+b.W != rightEdge {
		t.Errorf("B ends at %d, want flush with %d", b.X+b.W, rightEdge)
	}
	if a.X+a.W+4 != b.X {
		t.Errorf("A ends at %d, want gap before B at %d", a.X+a.W, b.X)
	}
	if a.X >= b.X {
		t.Errorf("A (x=%d) should be left of B (x=%d)", a.X, b.X)
	}

	total := 24 + 4 + 22
	want := Rect{X: rightEdge - total - 10, Y: 720/2 - 21 - 10, W: total + 20, H: 42 + 20}
	if scene.Backdrop != want {
		t.Errorf("backdrop = %+v, want %+v", scene.Backdrop, want)
	}
}

func TestLayoutSingleToken(t *testing.T) {
	for _, right := range []bool{false, true} {
		scene := Layout(frameOf(255, keycap.Token{Text: "Return", Width: 100, Height: 40}), right, testMetrics)
		if scene.Backdrop.W != 100+20 {
			t.Errorf("right=%v: backdrop width %d, want 120 (no gap)", right, scene.Backdrop.W)
		}
	}
}

func TestLayoutMirrorsWidth(t *testing.T) {
	frame := frameOf(255,
		keycap.Token{Text: "Ctrl", Width: 60, Height: 40},
		keycap.Token{Text: "Shift", Width: 80, Height: 40},
		keycap.Token{Text: "T", Width: 20, Height: 40},
	)
	left := Layout(frame, false, testMetrics)
	right := Layout(frame, true, testMetrics)

	span := func(s Scene) int {
		first, last := s.Glyphs[0], s.Glyphs[len(s.Glyphs)-1]
		return last.X + last.W - first.X
	}
	if span(left) != span(right) {
		t.Fatalf("left span %d != right span %d", span(left), span(right))
	}
	for i := range left.Glyphs {
		if left.Glyphs[i].Text != right.Glyphs[i].Text {
			t.Fatalf("glyph %d order differs", i)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 5, H: 5}
	tests := []struct {
		x, y int
		want bool
	}{
		{10, 10, true},
		{14, 14, true},
		{15, 10, false},
		{9, 12, false},
		{12, 15, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRowWidth(t *testing.T) {
	if got := testMetrics.RowWidth(); got != 1180 {
		t.Fatalf("RowWidth() = %d, want 1180", got)
	}
}
