//go:build js && wasm

// Command hellotriangle draws a single triangle into a <canvas> through
// WebGL2.
//
// The canvas is found with the CSS selector in $canvas, defaulting to
// #canvas. Setting $verbose logs every GL setup and draw step to the
// console.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"syscall/js"

	"github.com/bmatsuo/webgl2-triangle/triangle"
	"github.com/bmatsuo/webgl2-triangle/webgl"
)

var document = js.Global().Get("document")

func main() {
	if os.Getenv("verbose") != "" {
		triangle.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	el, err := getEnvSelector("canvas", "#canvas")
	if err != nil {
		log.Fatalf("%v", err)
	}
	can, err := webgl.NewCanvas(el)
	if err != nil {
		log.Fatalf("%v", err)
	}
	glctx, err := can.Context()
	if err != nil {
		log.Fatalf("%v", err)
	}
	if err := triangle.Render(glctx, can); err != nil {
		log.Fatalf("%v", err)
	}
}

func getEnvSelector(name, def string) (js.Value, error) {
	selector := os.Getenv(name)
	if selector == "" {
		selector = def
	}
	el := document.Call("querySelector", selector)
	if !el.Truthy() {
		return js.Value{}, fmt.Errorf("no element selected by $%s=%q", name, selector)
	}
	return el, nil
}
