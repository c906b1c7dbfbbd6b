package main

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
)

type window struct {
	win      *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
}

// openWindow acquires SDL, the window, its renderer and the streaming
// frame texture, registering each release with res as it goes so a
// failure part way releases only what was acquired.
func openWindow(cfg *Config, res *releaser) (*window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("SDL could not initialize: %w", err)
	}
	res.push(sdl.Quit)

	win, err := sdl.CreateWindow(cfg.Title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.Width), int32(cfg.Height), sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, fmt.Errorf("window could not be created: %w", err)
	}
	res.push(func() { win.Destroy() })

	renderer, err := sdl.CreateRenderer(win, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return nil, fmt.Errorf("renderer could not be created: %w", err)
	}
	res.push(func() { renderer.Destroy() })

	// image.RGBA stores R,G,B,A bytes, which is ABGR8888 on little-endian.
	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING,
		int32(cfg.Width), int32(cfg.Height))
	if err != nil {
		return nil, fmt.Errorf("frame texture could not be created: %w", err)
	}
	res.push(func() { texture.Destroy() })

	return &window{win: win, renderer: renderer, texture: texture}, nil
}

// present uploads a painted frame and flips it to the screen.
func (w *window) present(img *image.RGBA) error {
	if len(img.Pix) == 0 {
		return nil
	}
	if err := w.texture.Update(nil, unsafe.Pointer(&img.Pix[0]), img.Stride); err != nil {
		return fmt.Errorf("texture update: %w", err)
	}
	if err := w.renderer.Copy(w.texture, nil, nil); err != nil {
		return fmt.Errorf("texture copy: %w", err)
	}
	w.renderer.Present()
	return nil
}

// releaser runs cleanup functions in reverse acquisition order.
type releaser struct {
	fns []func()
}

func (r *releaser) push(fn func()) {
	r.fns = append(r.fns, fn)
}

func (r *releaser) releaseAll() {
	for i := len(r.fns) - 1; i >= 0; i-- {
		r.fns[i]()
	}
	r.fns = nil
}
