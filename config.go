package main

import (
	"time"

	"keycapper/internal/overlay"
	"keycapper/internal/render"
)

// Config is assembled from compile-time constants; nothing is read from
// disk or the command line.
type Config struct {
	Title          string
	Width          int
	Height         int
	Fade           time.Duration
	KeyFontSize    float64
	ButtonFontSize float64
	FontSources    []render.FontSource
	Metrics        render.Metrics
	Button         render.Rect
}

func loadConfig() *Config {
	return &Config{
		Title:          windowTitle,
		Width:          windowWidth,
		Height:         windowHeight,
		Fade:           fadeDuration,
		KeyFontSize:    keyFontSize,
		ButtonFontSize: buttonFontSize,
		FontSources:    render.DefaultFontSources(),
		Metrics: render.Metrics{
			WindowWidth:  windowWidth,
			WindowHeight: windowHeight,
			MarginLeft:   marginLeft,
			MarginRight:  marginRight,
			Gap:          keyGap,
			Padding:      backdropPadding,
		},
		Button: render.Rect{X: buttonX, Y: buttonY, W: buttonWidth, H: buttonHeight},
	}
}

func (c *Config) overlayConfig() overlay.Config {
	return overlay.Config{
		Metrics: c.Metrics,
		Fade:    c.Fade,
		Button:  c.Button,
	}
}
