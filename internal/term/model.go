// Package term runs the key overlay inside a terminal with bubbletea. The
// terminal background is painted chroma green, so a terminal window can
// be captured and keyed out like the graphical window. Layout units are
// character cells.
package term

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"keycapper/internal/keycap"
	"keycapper/internal/overlay"
	"keycapper/internal/render"
)

const (
	frameInterval = 16 * time.Millisecond

	cellGap     = 1
	cellMargin  = 2
	cellPadding = 1

	buttonX     = 2
	buttonY     = 1
	buttonWidth = 16
)

// LabelMsg carries a key label posted by a global capture hook.
type LabelMsg string

type frameMsg time.Time

type cellMeasurer struct{}

func (cellMeasurer) Measure(text string) (int, int) {
	return cellWidth(text), 1
}

type model struct {
	o         *overlay.Overlay
	scene     render.Scene
	width     int
	height    int
	localKeys bool
	palette   palette
}

type Option func(*model)

// WithLocalKeys controls whether keys typed into the terminal itself are
// shown. Turn it off when a global hook already reports them.
func WithLocalKeys(on bool) Option {
	return func(m *model) {
		m.localKeys = on
	}
}

// WithOverlayOptions passes options through to the overlay.
func WithOverlayOptions(opts ...overlay.Option) Option {
	return func(m *model) {
		m.o = newOverlay(opts...)
	}
}

func New(opts ...Option) tea.Model {
	m := model{
		o:         newOverlay(),
		localKeys: true,
		palette:   defaultPalette(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func newOverlay(opts ...overlay.Option) *overlay.Overlay {
	cfg := overlay.Config{
		Metrics: render.Metrics{
			MarginLeft:  cellMargin,
			MarginRight: cellMargin,
			Gap:         cellGap,
			Padding:     cellPadding,
		},
		Fade:   keycap.DefaultFade,
		Button: render.Rect{X: buttonX, Y: buttonY, W: buttonWidth, H: 1},
	}
	return overlay.New(cfg, cellMeasurer{}, opts...)
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m model) Init() tea.Cmd {
	return tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.o.Resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		// Ctrl+C is the window-close signal here and is never shown.
		if msg.Type == tea.KeyCtrlC {
			m.o.Handle(overlay.Close{})
			return m, tea.Quit
		}
		if m.localKeys {
			m.o.Handle(overlay.KeyDown{Text: KeyLabel(msg)})
		}
		return m, nil

	case LabelMsg:
		m.o.Handle(overlay.KeyDown{Text: string(msg)})
		return m, nil

	case tea.MouseMsg:
		switch msg.Type {
		case tea.MouseMotion:
			m.o.Handle(overlay.PointerMove{X: msg.X, Y: msg.Y})
		case tea.MouseLeft:
			m.o.Handle(overlay.PointerDown{X: msg.X, Y: msg.Y})
		case tea.MouseRelease:
			m.o.Handle(overlay.PointerUp{X: msg.X, Y: msg.Y})
		}
		return m, nil

	case frameMsg:
		m.scene = m.o.Frame(time.Time(msg))
		return m, tick()
	}

	return m, nil
}

// Sender is the part of tea.Program Forward needs.
type Sender interface {
	Send(msg tea.Msg)
}

// Forward posts every label from a capture hook into the program until
// the channel closes. Program.Send is safe to call from any goroutine.
func Forward(p Sender, labels <-chan string) {
	for label := range labels {
		p.Send(LabelMsg(label))
	}
}
