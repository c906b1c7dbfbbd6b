package main

import "time"

const (
	windowTitle  = "KeyCapper"
	windowWidth  = 1280
	windowHeight = 720

	fadeDuration    = 2000 * time.Millisecond
	keyGap          = 4
	keyFontSize     = 36
	buttonFontSize  = 18
	marginLeft      = 50
	marginRight     = 50
	backdropPadding = 10

	// ~60 Hz
	frameDelay = 16 // milliseconds
)

// Toggle button placement, top-left corner of the window.
const (
	buttonX      = 20
	buttonY      = 20
	buttonWidth  = 170
	buttonHeight = 40
)
