package triangle

import "image/color"

// Option configures a Scene. The zero set of options draws the fixed
// triangle.
type Option func(*options)

type options struct {
	vertexSource   string
	fragmentSource string
	positions      []float32
	clearColor     color.Color
}

func defaultOptions() options {
	return options{
		vertexSource:   VertexShaderSource,
		fragmentSource: FragmentShaderSource,
		positions:      Positions,
		clearColor:     ClearColor,
	}
}

// WithShaders replaces the vertex and fragment shader sources. The vertex
// shader must still declare PositionAttrib.
func WithShaders(vs, fs string) Option {
	return func(o *options) {
		o.vertexSource = vs
		o.fragmentSource = fs
	}
}

// WithPositions replaces the vertex positions, given as x,y pairs.
func WithPositions(positions ...float32) Option {
	return func(o *options) {
		o.positions = positions
	}
}

// WithClearColor sets the color the surface is cleared to before drawing.
// A nil color keeps ClearColor.
func WithClearColor(c color.Color) Option {
	return func(o *options) {
		if c == nil {
			c = ClearColor
		}
		o.clearColor = c
	}
}
