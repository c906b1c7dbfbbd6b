// Package keyname turns platform key codes into the short labels shown on
// screen. Each capture source has its own table; they share only the
// fallback used for codes the table does not know.
package keyname

import "fmt"

// Code is an opaque platform key identifier: a symbolic keycode or a raw
// scan code, depending on where the key event came from.
type Code int64

// Resolver maps a key code to a display label. Implementations must be
// pure: the same code always yields the same non-empty label.
type Resolver interface {
	Resolve(code Code) string
}

// Table resolves codes through a static label table.
type Table struct {
	labels map[Code]string
	// printable makes unmapped printable ASCII codes render as the
	// character itself. Only meaningful for symbolic keycodes.
	printable bool
}

func (t Table) Resolve(code Code) string {
	if label, ok := t.labels[code]; ok {
		return label
	}
	return Fallback(code, t.printable)
}

// Len reports how many codes the table maps explicitly.
func (t Table) Len() int {
	return len(t.labels)
}

// Fallback labels a code no table knows about.
func Fallback(code Code, printable bool) string {
	if printable && code >= 32 && code <= 126 {
		return string(rune(code))
	}
	return fmt.Sprintf("Key_%d", code)
}

var (
	// SDL resolves SDL2 symbolic keycodes (SDL_Keycode).
	SDL Resolver = Table{labels: sdlLabels, printable: true}

	// Evdev resolves Linux input event codes (KEY_* in input-event-codes.h).
	Evdev Resolver = Table{labels: merge(pcLabels, evdevExtra)}

	// UIOHook resolves libuiohook virtual codes (VC_*), as reported by
	// the gohook global hook.
	UIOHook Resolver = Table{labels: merge(pcLabels, uiohookExtra)}
)

func merge(tables ...map[Code]string) map[Code]string {
	out := make(map[Code]string)
	for _, t := range tables {
		for code, label := range t {
			out[code] = label
		}
	}
	return out
}
