package main

import (
	"log"
	"runtime"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"keycapper/internal/capture"
	"keycapper/internal/keyname"
	"keycapper/internal/overlay"
	"keycapper/internal/render"
)

func init() {
	// SDL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(loadConfig()); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *Config) error {
	var res releaser
	defer res.releaseAll()

	win, err := openWindow(cfg, &res)
	if err != nil {
		return err
	}

	f, src, err := render.LoadFont(cfg.FontSources)
	if err != nil {
		return err
	}
	raster := render.NewRaster(cfg.Width, cfg.Height, f, cfg.KeyFontSize, cfg.ButtonFontSize, render.DefaultStyle)
	res.push(func() { raster.Close() })
	log.Printf("[font] %s loaded at %gpt", src.Name, cfg.KeyFontSize)

	// Keys from the global hook replace window key events; taking both
	// would show every key twice while the window has focus.
	hk, labels, err := capture.Open(capture.Default()...)
	if err != nil {
		log.Printf("[capture] global capture unavailable, showing window keys only: %v", err)
	} else {
		res.push(func() {
			if err := hk.Stop(); err != nil {
				log.Printf("[capture] stop: %v", err)
			}
		})
	}

	o := overlay.New(cfg.overlayConfig(), raster)
	for !o.Done() {
		pollEvents(o, labels == nil)
		o.Drain(labels)

		scene := o.Frame(time.Now())
		img := raster.Paint(scene, o.ButtonView())
		if err := win.present(img); err != nil {
			log.Printf("[window] present: %v", err)
		}

		sdl.Delay(frameDelay)
	}

	return nil
}

// pollEvents drains every pending SDL event without blocking.
func pollEvents(o *overlay.Overlay, windowKeys bool) {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch e := ev.(type) {
		case *sdl.QuitEvent:
			o.Handle(overlay.Close{})
		case *sdl.KeyboardEvent:
			if windowKeys && e.Type == sdl.KEYDOWN {
				o.Handle(overlay.KeyDown{Text: keyname.SDL.Resolve(keyname.Code(e.Keysym.Sym))})
			}
		case *sdl.MouseMotionEvent:
			o.Handle(overlay.PointerMove{X: int(e.X), Y: int(e.Y)})
		case *sdl.MouseButtonEvent:
			if e.Button != sdl.BUTTON_LEFT {
				continue
			}
			if e.Type == sdl.MOUSEBUTTONDOWN {
				o.Handle(overlay.PointerDown{X: int(e.X), Y: int(e.Y)})
			} else {
				o.Handle(overlay.PointerUp{X: int(e.X), Y: int(e.Y)})
			}
		}
	}
}
