//go:build darwin || linux || windows

package mobgl

import (
	"fmt"

	"github.com/bmatsuo/webgl2-triangle/triangle"
	"golang.org/x/mobile/gl"
)

var _ triangle.Context = Context{}

// Acquire returns the GL context carried by a lifecycle.Event's
// DrawContext. The shaders are GLSL ES 3.00 and the attribute state lives
// in a vertex array object, so only a gl.Context3 is accepted.
func Acquire(drawContext interface{}) (Context, error) {
	if drawContext == nil {
		return Context{}, fmt.Errorf("%w: no draw context", triangle.ErrContextUnavailable)
	}
	glctx, ok := drawContext.(gl.Context3)
	if !ok {
		return Context{}, fmt.Errorf("%w: %T is not a GL ES 3 context", triangle.ErrContextUnavailable, drawContext)
	}
	return Context{glctx}, nil
}

// Context converts between triangle and x/mobile handle types. The two
// share layout, so each call is a direct translation.
type Context struct {
	GL gl.Context
}

func (ctx Context) CreateShader(ty triangle.Enum) triangle.Shader {
	return triangle.Shader{Value: ctx.GL.CreateShader(gl.Enum(ty)).Value}
}

func (ctx Context) ShaderSource(s triangle.Shader, src string) {
	ctx.GL.ShaderSource(gl.Shader{Value: s.Value}, src)
}

func (ctx Context) CompileShader(s triangle.Shader) {
	ctx.GL.CompileShader(gl.Shader{Value: s.Value})
}

func (ctx Context) GetShaderi(s triangle.Shader, pname triangle.Enum) int {
	return ctx.GL.GetShaderi(gl.Shader{Value: s.Value}, gl.Enum(pname))
}

func (ctx Context) GetShaderInfoLog(s triangle.Shader) string {
	return ctx.GL.GetShaderInfoLog(gl.Shader{Value: s.Value})
}

func (ctx Context) DeleteShader(s triangle.Shader) {
	ctx.GL.DeleteShader(gl.Shader{Value: s.Value})
}

func (ctx Context) CreateProgram() triangle.Program {
	p := ctx.GL.CreateProgram()
	return triangle.Program{Init: p.Init, Value: p.Value}
}

func (ctx Context) AttachShader(p triangle.Program, s triangle.Shader) {
	ctx.GL.AttachShader(program(p), gl.Shader{Value: s.Value})
}

func (ctx Context) LinkProgram(p triangle.Program) {
	ctx.GL.LinkProgram(program(p))
}

func (ctx Context) GetProgrami(p triangle.Program, pname triangle.Enum) int {
	return ctx.GL.GetProgrami(program(p), gl.Enum(pname))
}

func (ctx Context) GetProgramInfoLog(p triangle.Program) string {
	return ctx.GL.GetProgramInfoLog(program(p))
}

func (ctx Context) DeleteProgram(p triangle.Program) {
	ctx.GL.DeleteProgram(program(p))
}

func (ctx Context) UseProgram(p triangle.Program) {
	ctx.GL.UseProgram(program(p))
}

func (ctx Context) GetAttribLocation(p triangle.Program, name string) triangle.Attrib {
	return triangle.Attrib{Value: ctx.GL.GetAttribLocation(program(p), name).Value}
}

func (ctx Context) CreateBuffer() triangle.Buffer {
	return triangle.Buffer{Value: ctx.GL.CreateBuffer().Value}
}

func (ctx Context) BindBuffer(target triangle.Enum, b triangle.Buffer) {
	ctx.GL.BindBuffer(gl.Enum(target), gl.Buffer{Value: b.Value})
}

func (ctx Context) BufferData(target triangle.Enum, src []byte, usage triangle.Enum) {
	ctx.GL.BufferData(gl.Enum(target), src, gl.Enum(usage))
}

func (ctx Context) DeleteBuffer(b triangle.Buffer) {
	ctx.GL.DeleteBuffer(gl.Buffer{Value: b.Value})
}

func (ctx Context) CreateVertexArray() triangle.VertexArray {
	return triangle.VertexArray{Value: ctx.GL.CreateVertexArray().Value}
}

func (ctx Context) BindVertexArray(v triangle.VertexArray) {
	ctx.GL.BindVertexArray(gl.VertexArray{Value: v.Value})
}

func (ctx Context) DeleteVertexArray(v triangle.VertexArray) {
	ctx.GL.DeleteVertexArray(gl.VertexArray{Value: v.Value})
}

func (ctx Context) EnableVertexAttribArray(a triangle.Attrib) {
	ctx.GL.EnableVertexAttribArray(gl.Attrib{Value: a.Value})
}

func (ctx Context) VertexAttribPointer(dst triangle.Attrib, size int, ty triangle.Enum, normalized bool, stride, offset int) {
	ctx.GL.VertexAttribPointer(gl.Attrib{Value: dst.Value}, size, gl.Enum(ty), normalized, stride, offset)
}

func (ctx Context) Viewport(x, y, width, height int) {
	ctx.GL.Viewport(x, y, width, height)
}

func (ctx Context) ClearColor(red, green, blue, alpha float32) {
	ctx.GL.ClearColor(red, green, blue, alpha)
}

func (ctx Context) Clear(mask triangle.Enum) {
	ctx.GL.Clear(gl.Enum(mask))
}

func (ctx Context) DrawArrays(mode triangle.Enum, first, count int) {
	ctx.GL.DrawArrays(gl.Enum(mode), first, count)
}

func program(p triangle.Program) gl.Program {
	return gl.Program{Init: p.Init, Value: p.Value}
}
