// Package keycap tracks the keys pressed most recently and decides when
// they fade away. All active tokens share one fade clock: every press
// restarts the fade for the whole line.
package keycap

import (
	"time"
	"unicode/utf8"
)

const (
	// Capacity is the number of token slots.
	Capacity = 64

	// MaxLabel is the longest label kept, in bytes.
	MaxLabel = 31

	DefaultFade = 2000 * time.Millisecond
)

// Token is one displayed key label with its measured size.
type Token struct {
	Text   string
	Width  int
	Height int
	Active bool
}

// Limits configures the row width, spacing and fade of a Queue. Widths
// are in whatever unit the caller measures with (pixels or cells).
type Limits struct {
	MaxRowWidth int
	Gap         int
	Fade        time.Duration
}

// Frame is what the renderer needs for one frame: the active tokens in
// insertion order and the alpha they all share.
type Frame struct {
	Tokens []Token
	Alpha  uint8
}

func (f Frame) Empty() bool {
	return len(f.Tokens) == 0
}

// Queue is a fixed-capacity ring of key tokens. It is not safe for
// concurrent use; the frame loop owns it.
type Queue struct {
	limits Limits

	slots     [Capacity]Token
	head      int // slot of the oldest active token
	count     int
	lineWidth int
	lastPress time.Time

	scratch []Token
}

func New(limits Limits) *Queue {
	if limits.Fade <= 0 {
		limits.Fade = DefaultFade
	}
	return &Queue{
		limits:  limits,
		scratch: make([]Token, 0, Capacity),
	}
}

func (q *Queue) Limits() Limits {
	return q.limits
}

// SetMaxRowWidth changes the wrap width. Tokens already shown stay until
// the next wrap or fade.
func (q *Queue) SetMaxRowWidth(width int) {
	q.limits.MaxRowWidth = width
}

// Len returns the number of active tokens.
func (q *Queue) Len() int {
	return q.count
}

func (q *Queue) Cap() int {
	return Capacity
}

// LineWidth returns the summed width of the active tokens plus the gaps
// between them.
func (q *Queue) LineWidth() int {
	return q.lineWidth
}

// LastPress returns the time of the most recent Add.
func (q *Queue) LastPress() time.Time {
	return q.lastPress
}

// Fits reports whether a token of the given width can join the current
// line without exceeding the row width.
func (q *Queue) Fits(width int) bool {
	need := width
	if q.count > 0 {
		need += q.limits.Gap
	}
	return q.lineWidth+need <= q.limits.MaxRowWidth
}

// Push applies the wrap policy and adds the token. A token that does not
// fit clears the line first instead of starting a second row. It reports
// whether the line was cleared.
func (q *Queue) Push(text string, width, height int, now time.Time) bool {
	wrapped := false
	if q.count > 0 && !q.Fits(width) {
		q.Reset()
		wrapped = true
	}
	q.Add(text, width, height, now)
	return wrapped
}

// Add places a token in the next free slot and restarts the shared fade
// clock. When every slot is active the oldest token is evicted.
func (q *Queue) Add(text string, width, height int, now time.Time) {
	if q.count == Capacity {
		q.evictOldest()
	}

	slot := (q.head + q.count) % Capacity
	q.slots[slot] = Token{
		Text:   truncate(text),
		Width:  width,
		Height: height,
		Active: true,
	}
	if q.count > 0 {
		q.lineWidth += q.limits.Gap
	}
	q.lineWidth += width
	q.count++
	q.lastPress = now
}

func (q *Queue) evictOldest() {
	oldest := &q.slots[q.head]
	q.lineWidth -= oldest.Width
	if q.count > 1 {
		q.lineWidth -= q.limits.Gap
	}
	*oldest = Token{}
	q.head = (q.head + 1) % Capacity
	q.count--
}

// Update expires the whole line once the fade window has passed and
// otherwise returns the active tokens with their shared alpha. The
// returned slice is reused by the next call. expired is true when this
// call cleared the line.
func (q *Queue) Update(now time.Time) (frame Frame, expired bool) {
	if q.count == 0 {
		return Frame{}, false
	}

	elapsed := now.Sub(q.lastPress)
	if elapsed > q.limits.Fade {
		q.Reset()
		return Frame{}, true
	}

	return Frame{
		Tokens: q.Tokens(),
		Alpha:  Alpha(elapsed, q.limits.Fade),
	}, false
}

// Tokens returns the active tokens, oldest first. The slice is reused by
// the next call.
func (q *Queue) Tokens() []Token {
	q.scratch = q.scratch[:0]
	for i := 0; i < q.count; i++ {
		q.scratch = append(q.scratch, q.slots[(q.head+i)%Capacity])
	}
	return q.scratch
}

// Reset deactivates every token and zeroes the counters.
func (q *Queue) Reset() {
	for i := range q.slots {
		q.slots[i] = Token{}
	}
	q.head = 0
	q.count = 0
	q.lineWidth = 0
}

// Alpha is the opacity of a line pressed elapsed ago: 255 at zero, 0 at
// fade, linear in between with integer truncation.
func Alpha(elapsed, fade time.Duration) uint8 {
	if elapsed <= 0 {
		return 255
	}
	if elapsed >= fade {
		return 0
	}
	return uint8(int64(255) * int64(fade-elapsed) / int64(fade))
}

func truncate(text string) string {
	if len(text) <= MaxLabel {
		return text
	}
	cut := MaxLabel
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}
