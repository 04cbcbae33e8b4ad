package ui

import "fyne.io/fyne/v2"

// Demo window dimensions
const (
	DemoWindowWidth  = 900
	DemoWindowHeight = 600
)

// Design values the demo scales, in baseline pixels
const (
	DemoCardWidth    = 320
	DemoCardHeight   = 180
	DemoCardRadius   = 16
	DemoTitleSize    = 24
	DemoBodySize     = 14
	DemoCardMinWidth = 200
)

// NewDemoWindowSize returns the default demo window size.
func NewDemoWindowSize() fyne.Size {
	return fyne.NewSize(DemoWindowWidth, DemoWindowHeight)
}
