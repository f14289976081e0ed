package triangle

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image/color"

	"golang.org/x/mobile/exp/f32"
)

var (
	errNotSetUp     = errors.New("scene has not been set up")
	errAlreadySetUp = errors.New("scene is already set up")
)

// Scene is the GPU state needed to draw: one program, one vertex buffer,
// and one vertex array object describing it.
type Scene struct {
	opts   options
	layout Layout
	count  int

	vs, fs   Shader
	program  Program
	position Attrib
	buf      Buffer
	vao      VertexArray
}

// NewScene validates opts and returns a Scene ready for Setup. No GL calls
// are made.
func NewScene(opts ...Option) (*Scene, error) {
	scene := &Scene{
		opts:   defaultOptions(),
		layout: PositionLayout,
	}
	for _, opt := range opts {
		opt(&scene.opts)
	}
	count, err := scene.layout.VertexCount(len(scene.opts.positions))
	if err != nil {
		return nil, err
	}
	scene.count = count
	return scene, nil
}

// Setup compiles and links the shaders, uploads the positions and records
// their layout in a vertex array object. Anything created before a
// failure is deleted again. A scene that is already set up must be
// released first.
func (scene *Scene) Setup(glctx Context) (err error) {
	if scene.program.Init {
		return errAlreadySetUp
	}
	defer func() {
		if err != nil {
			scene.Release(glctx)
		}
	}()

	scene.vs, err = CompileShader(glctx, VertexShader, scene.opts.vertexSource)
	if err != nil {
		return err
	}
	scene.fs, err = CompileShader(glctx, FragmentShader, scene.opts.fragmentSource)
	if err != nil {
		return err
	}
	scene.program, err = LinkProgram(glctx, scene.vs, scene.fs)
	if err != nil {
		return err
	}

	scene.position = glctx.GetAttribLocation(scene.program, PositionAttrib)
	if int(scene.position.Value) < 0 {
		return fmt.Errorf("no attrib location %q", PositionAttrib)
	}

	data := f32.Bytes(binary.LittleEndian, scene.opts.positions...)
	scene.buf = glctx.CreateBuffer()
	glctx.BindBuffer(ArrayBuffer, scene.buf)
	glctx.BufferData(ArrayBuffer, data, StaticDraw)
	Logger().Debug("uploaded vertex buffer", "buffer", scene.buf.Value, "bytes", len(data))

	scene.vao = glctx.CreateVertexArray()
	glctx.BindVertexArray(scene.vao)
	glctx.EnableVertexAttribArray(scene.position)
	l := scene.layout
	glctx.VertexAttribPointer(scene.position, l.Size, l.Type, l.Normalized, l.Stride, l.Offset)
	return nil
}

// Draw sizes the surface, clears it and draws the triangle once.
func (scene *Scene) Draw(glctx Context, surface Surface) error {
	if !scene.program.Init {
		return errNotSetUp
	}

	Resize(surface)
	size := surface.Size()
	glctx.Viewport(0, 0, size.X, size.Y)

	glctx.ClearColor(rgba(scene.opts.clearColor))
	glctx.Clear(ColorBufferBit)

	glctx.UseProgram(scene.program)
	glctx.BindVertexArray(scene.vao)
	glctx.DrawArrays(Triangles, 0, scene.count)
	Logger().Debug("drew triangles", "count", scene.count, "width", size.X, "height", size.Y)
	return nil
}

// Release deletes every GL object the scene created.
func (scene *Scene) Release(glctx Context) {
	if scene.vao.Value != 0 {
		glctx.DeleteVertexArray(scene.vao)
		scene.vao = VertexArray{}
	}
	if scene.buf.Value != 0 {
		glctx.DeleteBuffer(scene.buf)
		scene.buf = Buffer{}
	}
	if scene.program.Init {
		glctx.DeleteProgram(scene.program)
		scene.program = Program{}
	}
	for _, shader := range []*Shader{&scene.vs, &scene.fs} {
		if shader.Value != 0 {
			glctx.DeleteShader(*shader)
			*shader = Shader{}
		}
	}
}

// Render is the whole program: build a scene, set it up on glctx and draw
// it to surface, returning the first error.
func Render(glctx Context, surface Surface, opts ...Option) error {
	scene, err := NewScene(opts...)
	if err != nil {
		return err
	}
	if err := scene.Setup(glctx); err != nil {
		return err
	}
	return scene.Draw(glctx, surface)
}

func rgba(c color.Color) (r, g, b, a float32) {
	const max = 0xffff
	cr, cg, cb, ca := c.RGBA()
	return float32(cr) / max, float32(cg) / max, float32(cb) / max, float32(ca) / max
}
