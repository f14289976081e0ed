//go:build darwin || linux || windows

// Command hellotriangle draws a single triangle in a GL ES 3 window.
//
// On the desktop it runs directly:
//
//	$ go install github.com/bmatsuo/webgl2-triangle/hellotriangle && hellotriangle -v
//
// and it can be packaged for a device with gomobile:
//
//	$ gomobile build github.com/bmatsuo/webgl2-triangle/hellotriangle
//
// Built for js/wasm it draws into a <canvas> instead; see main_js.go.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/bmatsuo/webgl2-triangle/mobgl"
	"github.com/bmatsuo/webgl2-triangle/triangle"
	"golang.org/x/mobile/app"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
)

var verbose = flag.Bool("v", false, "log every GL setup and draw step")

func main() {
	flag.Parse()
	if *verbose {
		triangle.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	app.Main(func(a app.App) {
		var (
			glctx triangle.Context
			scene *triangle.Scene
			win   window
			drawn bool
		)
		for e := range a.Events() {
			switch e := a.Filter(e).(type) {
			case lifecycle.Event:
				switch e.Crosses(lifecycle.StageVisible) {
				case lifecycle.CrossOn:
					glctx, scene = onStart(e.DrawContext)
					drawn = false
					a.Send(paint.Event{})
				case lifecycle.CrossOff:
					if scene != nil {
						scene.Release(glctx)
					}
					glctx, scene = nil, nil
				}
			case size.Event:
				win.resize(e)
				if !drawn {
					a.Send(paint.Event{})
				}
			case paint.Event:
				// The triangle is drawn exactly once per visible stage;
				// there is no frame loop.
				if glctx == nil || drawn || win.empty() {
					continue
				}
				if err := scene.Draw(glctx, &win); err != nil {
					log.Fatalf("error drawing: %v", err)
				}
				a.Publish()
				drawn = true
			}
		}
	})
}

func onStart(drawContext interface{}) (triangle.Context, *triangle.Scene) {
	glctx, err := mobgl.Acquire(drawContext)
	if err != nil {
		log.Fatalf("error acquiring GL context: %v", err)
	}
	scene, err := triangle.NewScene()
	if err != nil {
		log.Fatalf("error creating scene: %v", err)
	}
	if err := scene.Setup(glctx); err != nil {
		log.Fatalf("error creating GL program: %v", err)
	}
	return glctx, scene
}
