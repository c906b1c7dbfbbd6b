//go:build linux

package capture

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	evdev "github.com/holoplot/go-evdev"

	"keycapper/internal/keyname"
)

// evdev key values
const (
	keyReleased = 0
	keyPressed  = 1
	keyRepeat   = 2
)

// keyA is KEY_A; any device that can emit it is treated as a keyboard.
const keyA = 30

// EvdevHook reads every keyboard under /dev/input directly. It works
// without a display server but needs read access to the devices (root or
// the input group).
type EvdevHook struct {
	dir string

	mu      sync.Mutex
	devices []*evdev.InputDevice
	out     chan string
	wg      sync.WaitGroup
}

func NewEvdevHook() *EvdevHook {
	return &EvdevHook{dir: "/dev/input"}
}

func (h *EvdevHook) Name() string {
	return "evdev"
}

func (h *EvdevHook) Start() (<-chan string, error) {
	devices, err := openKeyboards(h.dir)
	if err != nil {
		return nil, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.devices = devices
	h.out = make(chan string, Buffer)
	for _, dev := range devices {
		h.wg.Add(1)
		go h.listen(dev)
	}
	go func() {
		h.wg.Wait()
		close(h.out)
	}()

	return h.out, nil
}

func (h *EvdevHook) listen(dev *evdev.InputDevice) {
	defer h.wg.Done()
	for {
		ev, err := dev.ReadOne()
		if err != nil {
			// Closed by Stop or the device went away.
			return
		}
		if label, ok := evdevLabel(ev); ok {
			post(h.out, label)
		}
	}
}

// Repeats count as presses, like window key-down events do.
func evdevLabel(ev *evdev.InputEvent) (string, bool) {
	if ev.Type != evdev.EV_KEY {
		return "", false
	}
	if ev.Value != keyPressed && ev.Value != keyRepeat {
		return "", false
	}
	return keyname.Evdev.Resolve(keyname.Code(ev.Code)), true
}

func (h *EvdevHook) Stop() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	var firstErr error
	for _, dev := range h.devices {
		if err := dev.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	h.devices = nil
	return firstErr
}

func openKeyboards(dir string) ([]*evdev.InputDevice, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var keyboards []*evdev.InputDevice
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		dev, err := evdev.OpenWithFlags(filepath.Join(dir, entry.Name()), os.O_RDONLY)
		if err != nil {
			continue
		}
		if isKeyboard(dev) {
			keyboards = append(keyboards, dev)
		} else {
			dev.Close()
		}
	}

	if len(keyboards) == 0 {
		return nil, fmt.Errorf("%w in %s (try running as root or join the input group)", ErrNoDevice, dir)
	}
	return keyboards, nil
}

func isKeyboard(dev *evdev.InputDevice) bool {
	for _, code := range dev.CapableEvents(evdev.EV_KEY) {
		if code == keyA {
			return true
		}
	}
	return false
}
