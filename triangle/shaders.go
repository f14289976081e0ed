package triangle

import "image/color"

// Positions are three 2D points in clip space.
var Positions = []float32{
	0, 0,
	0, 0.5,
	0.7, 0,
}

// PositionLayout describes how Positions are laid out in the vertex
// buffer: tightly packed pairs of 32-bit floats.
var PositionLayout = Layout{
	Size: 2,
	Type: Float,
}

// PositionAttrib is the vertex shader input fed from the vertex buffer.
const PositionAttrib = "a_position"

// FragColor is the constant written by FragmentShaderSource.
var FragColor = color.NRGBA{R: 0xff, G: 0x00, B: 0x80, A: 0xff}

// ClearColor is transparent black.
var ClearColor = color.NRGBA{}

const VertexShaderSource = `#version 300 es

in vec4 a_position;

void main() {
	gl_Position = a_position;
}`

const FragmentShaderSource = `#version 300 es
precision mediump float;

out vec4 outColor;

void main() {
	outColor = vec4(1, 0, 0.5, 1);
}`
