//go:build js && wasm

package webgl

import (
	"errors"
	"fmt"
	"image"
	"syscall/js"

	"github.com/bmatsuo/webgl2-triangle/triangle"
)

// Canvas is a <canvas> element. Its displayed size is the element's
// client size and its backing store is the width and height attributes.
type Canvas struct {
	el js.Value
}

// NewCanvas wraps el, which must be a <canvas> element.
func NewCanvas(el js.Value) (*Canvas, error) {
	if !el.Truthy() {
		return nil, errors.New("no <canvas> element given")
	}
	return &Canvas{el: el}, nil
}

// DisplaySize returns the size the browser lays the canvas out at.
func (can *Canvas) DisplaySize() image.Point {
	return image.Pt(can.el.Get("clientWidth").Int(), can.el.Get("clientHeight").Int())
}

// Size returns the size of the canvas drawing buffer.
func (can *Canvas) Size() image.Point {
	return image.Pt(can.el.Get("width").Int(), can.el.Get("height").Int())
}

// SetSize resizes the canvas drawing buffer.
func (can *Canvas) SetSize(size image.Point) {
	can.el.Set("width", size.X)
	can.el.Set("height", size.Y)
}

// Context returns a webgl2 context for the canvas. If the browser cannot
// provide one the error matches triangle.ErrContextUnavailable.
func (can *Canvas) Context() (*Context, error) {
	ctx := can.el.Call("getContext", "webgl2")
	if !ctx.Truthy() {
		return nil, fmt.Errorf("%w: WebGL2 is not supported on this device", triangle.ErrContextUnavailable)
	}
	return &Context{
		gl:      ctx,
		objects: make(map[uint32]js.Value),
	}, nil
}
