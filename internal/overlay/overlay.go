// Package overlay owns the display and button state of the key overlay
// and turns input events into queue updates and frames. It knows nothing
// about windows or terminals; frontends translate their native events
// into Events and paint the Scenes it returns.
package overlay

import (
	"time"

	"keycapper/internal/keycap"
	"keycapper/internal/render"
)

// Event is an input event fed to Handle.
type Event interface {
	event()
}

// KeyDown carries an already resolved key label.
type KeyDown struct {
	Text string
}

type PointerMove struct{ X, Y int }

type PointerDown struct{ X, Y int }

type PointerUp struct{ X, Y int }

// Close asks the loop to terminate.
type Close struct{}

func (KeyDown) event()     {}
func (PointerMove) event() {}
func (PointerDown) event() {}
func (PointerUp) event()   {}
func (Close) event()       {}

// Measurer reports the rendered size of a label in layout units.
type Measurer interface {
	Measure(text string) (w, h int)
}

// Button is the alignment toggle.
type Button struct {
	Rect    render.Rect
	Hovered bool
	Pressed bool
}

// UIState is everything the toggle control owns.
type UIState struct {
	AlignRight bool
	Button     Button
}

type Config struct {
	Metrics render.Metrics
	Fade    time.Duration
	Button  render.Rect
}

// Overlay is the single owner of the display state. It must only be used
// from the frame loop goroutine.
type Overlay struct {
	queue   *keycap.Queue
	ui      UIState
	metrics render.Metrics
	measure Measurer
	now     func() time.Time
	done    bool
}

type Option func(*Overlay)

// WithClock replaces time.Now as the source of key press timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *Overlay) {
		o.now = now
	}
}

func New(cfg Config, m Measurer, opts ...Option) *Overlay {
	o := &Overlay{
		queue: keycap.New(keycap.Limits{
			MaxRowWidth: cfg.Metrics.RowWidth(),
			Gap:         cfg.Metrics.Gap,
			Fade:        cfg.Fade,
		}),
		ui:      UIState{Button: Button{Rect: cfg.Button}},
		metrics: cfg.Metrics,
		measure: m,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Handle applies one input event.
func (o *Overlay) Handle(ev Event) {
	switch ev := ev.(type) {
	case KeyDown:
		o.press(ev.Text)
	case PointerMove:
		o.ui.Button.Hovered = o.ui.Button.Rect.Contains(ev.X, ev.Y)
	case PointerDown:
		if o.ui.Button.Rect.Contains(ev.X, ev.Y) {
			o.ui.Button.Pressed = true
		}
	case PointerUp:
		inside := o.ui.Button.Rect.Contains(ev.X, ev.Y)
		if o.ui.Button.Pressed && inside {
			o.ToggleAlign()
		}
		o.ui.Button.Pressed = false
		o.ui.Button.Hovered = inside
	case Close:
		o.done = true
	}
}

func (o *Overlay) press(text string) {
	if text == "" {
		return
	}
	w, h := o.measure.Measure(text)
	o.queue.Push(text, w, h, o.now())
}

// Drain handles every label waiting on ch without blocking and returns
// how many were taken. A nil channel is never ready.
func (o *Overlay) Drain(ch <-chan string) int {
	n := 0
	for {
		select {
		case text, ok := <-ch:
			if !ok {
				return n
			}
			o.Handle(KeyDown{Text: text})
			n++
		default:
			return n
		}
	}
}

// ToggleAlign flips the alignment and clears the line.
func (o *Overlay) ToggleAlign() {
	o.ui.AlignRight = !o.ui.AlignRight
	o.queue.Reset()
}

// Frame advances the fade clock and lays out what is still visible.
func (o *Overlay) Frame(now time.Time) render.Scene {
	frame, _ := o.queue.Update(now)
	return render.Layout(frame, o.ui.AlignRight, o.metrics)
}

// Resize adapts the layout to a new surface size. The wrap width follows
// the new margins.
func (o *Overlay) Resize(width, height int) {
	o.metrics.WindowWidth = width
	o.metrics.WindowHeight = height
	o.queue.SetMaxRowWidth(o.metrics.RowWidth())
}

// MoveButton places the toggle control.
func (o *Overlay) MoveButton(r render.Rect) {
	o.ui.Button.Rect = r
}

func (o *Overlay) ButtonView() render.ButtonView {
	label := "Align: Left"
	if o.ui.AlignRight {
		label = "Align: Right"
	}
	return render.ButtonView{
		Rect:    o.ui.Button.Rect,
		Label:   label,
		Hovered: o.ui.Button.Hovered,
		Pressed: o.ui.Button.Pressed,
	}
}

func (o *Overlay) UI() UIState {
	return o.ui
}

func (o *Overlay) AlignRight() bool {
	return o.ui.AlignRight
}

func (o *Overlay) Metrics() render.Metrics {
	return o.metrics
}

// Queue exposes the display queue for inspection.
func (o *Overlay) Queue() *keycap.Queue {
	return o.queue
}

// Done reports whether a Close event was handled.
func (o *Overlay) Done() bool {
	return o.done
}
