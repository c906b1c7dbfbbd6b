package capture

import (
	"fmt"
	"sync"
	"time"

	hook "github.com/robotn/gohook"

	"keycapper/internal/keyname"
)

// How long libuiohook gets to report that its hook is installed.
const hookReadyTimeout = 2 * time.Second

// GoHook captures keys through libuiohook (X11, macOS event taps,
// Windows low-level hooks).
type GoHook struct {
	mu      sync.Mutex
	running bool
	stop    chan struct{}

	start func() chan hook.Event
	end   func()
	ready time.Duration
}

func NewGoHook() *GoHook {
	return &GoHook{
		start: hook.Start,
		end:   hook.End,
		ready: hookReadyTimeout,
	}
}

func (h *GoHook) Name() string {
	return "uiohook"
}

// Start installs the hook and returns once libuiohook confirms it is
// running. hook.Start hands back a channel even when the hook cannot be
// installed (no X display, Wayland), so a missing HookEnabled event is
// treated as failure.
func (h *GoHook) Start() (<-chan string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	events := h.start()
	if err := awaitEnabled(events, h.ready); err != nil {
		h.end()
		return nil, err
	}

	out := make(chan string, Buffer)
	h.stop = make(chan struct{})
	h.running = true

	go func(stop <-chan struct{}) {
		defer close(out)
		for {
			select {
			case <-stop:
				return
			case ev, ok := <-events:
				if !ok {
					return
				}
				if label, ok := uiohookLabel(ev); ok {
					post(out, label)
				}
			}
		}
	}(h.stop)

	return out, nil
}

func awaitEnabled(events <-chan hook.Event, timeout time.Duration) error {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return fmt.Errorf("uiohook stopped before it was enabled: %w", ErrNoDevice)
			}
			if ev.Kind == hook.HookEnabled {
				return nil
			}
		case <-timer.C:
			return fmt.Errorf("uiohook not enabled after %v: %w", timeout, ErrNoDevice)
		}
	}
}

// uiohook reports a physical press (with its virtual code) as KeyHold and
// the resulting character as KeyDown; only the former is wanted here.
func uiohookLabel(ev hook.Event) (string, bool) {
	if ev.Kind != hook.KeyHold {
		return "", false
	}
	return keyname.UIOHook.Resolve(keyname.Code(ev.Keycode)), true
}

func (h *GoHook) Stop() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.running {
		return nil
	}
	h.running = false
	close(h.stop)
	h.end()
	return nil
}
