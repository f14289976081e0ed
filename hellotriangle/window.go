//go:build darwin || linux || windows

package main

import (
	"image"

	"golang.org/x/mobile/event/size"
)

// window is the triangle.Surface of an x/mobile app. The system owns the
// framebuffer, so the backing size is just the size last drawn at.
type window struct {
	display image.Point
	backing image.Point
}

func (win *window) resize(e size.Event) {
	win.display = image.Pt(e.WidthPx, e.HeightPx)
}

func (win *window) empty() bool {
	return win.display.X <= 0 || win.display.Y <= 0
}

func (win *window) DisplaySize() image.Point { return win.display }
func (win *window) Size() image.Point        { return win.backing }
func (win *window) SetSize(size image.Point) { win.backing = size }
