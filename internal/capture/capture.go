// Package capture listens for key presses system-wide, independent of
// window focus. Hooks run on their own goroutines, resolve each press to
// a label and post it to a bounded channel; they never touch display
// state. The frame loop drains the channel.
package capture

import (
	"errors"
	"log"
)

// Buffer is the capacity of the label channel.
const Buffer = 64

// ErrNoDevice is returned when a hook finds nothing to listen to.
var ErrNoDevice = errors.New("no keyboard device found")

// Hook is a platform key capture mechanism.
type Hook interface {
	// Name identifies the hook in logs.
	Name() string

	// Start begins capturing and returns the channel labels arrive on.
	// The channel is closed after Stop once every reader has exited.
	Start() (<-chan string, error)

	// Stop terminates the capture.
	Stop() error
}

// Open starts the first hook that works, trying them in order.
func Open(hooks ...Hook) (Hook, <-chan string, error) {
	var errs []error
	for _, h := range hooks {
		ch, err := h.Start()
		if err != nil {
			log.Printf("[capture] %s: %v", h.Name(), err)
			errs = append(errs, err)
			continue
		}
		log.Printf("[capture] using %s", h.Name())
		return h, ch, nil
	}
	if len(errs) == 0 {
		return nil, nil, ErrNoDevice
	}
	return nil, nil, errors.Join(errs...)
}

// post hands a label to the frame loop without blocking. A full channel
// means the loop is stalled; the label is dropped.
func post(ch chan<- string, label string) bool {
	select {
	case ch <- label:
		return true
	default:
		log.Printf("[capture] dropped %q: queue full", label)
		return false
	}
}
