//go:build js && wasm

package webgl

import (
	"syscall/js"

	"github.com/bmatsuo/webgl2-triangle/triangle"
)

var _ triangle.Context = (*Context)(nil)

// Context implements triangle.Context over a WebGL2RenderingContext.
type Context struct {
	gl      js.Value
	objects map[uint32]js.Value
	next    uint32
}

func (ctx *Context) put(v js.Value) uint32 {
	if !v.Truthy() {
		return 0
	}
	ctx.next++
	ctx.objects[ctx.next] = v
	return ctx.next
}

func (ctx *Context) get(h uint32) js.Value {
	if v, ok := ctx.objects[h]; ok {
		return v
	}
	return js.Null()
}

func (ctx *Context) drop(h uint32) js.Value {
	v := ctx.get(h)
	delete(ctx.objects, h)
	return v
}

func (ctx *Context) CreateShader(ty triangle.Enum) triangle.Shader {
	return triangle.Shader{Value: ctx.put(ctx.gl.Call("createShader", int(ty)))}
}

func (ctx *Context) ShaderSource(s triangle.Shader, src string) {
	ctx.gl.Call("shaderSource", ctx.get(s.Value), src)
}

func (ctx *Context) CompileShader(s triangle.Shader) {
	ctx.gl.Call("compileShader", ctx.get(s.Value))
}

func (ctx *Context) GetShaderi(s triangle.Shader, pname triangle.Enum) int {
	return param(ctx.gl.Call("getShaderParameter", ctx.get(s.Value), int(pname)))
}

func (ctx *Context) GetShaderInfoLog(s triangle.Shader) string {
	return ctx.gl.Call("getShaderInfoLog", ctx.get(s.Value)).String()
}

func (ctx *Context) DeleteShader(s triangle.Shader) {
	ctx.gl.Call("deleteShader", ctx.drop(s.Value))
}

func (ctx *Context) CreateProgram() triangle.Program {
	h := ctx.put(ctx.gl.Call("createProgram"))
	return triangle.Program{Init: h != 0, Value: h}
}

func (ctx *Context) AttachShader(p triangle.Program, s triangle.Shader) {
	ctx.gl.Call("attachShader", ctx.get(p.Value), ctx.get(s.Value))
}

func (ctx *Context) LinkProgram(p triangle.Program) {
	ctx.gl.Call("linkProgram", ctx.get(p.Value))
}

func (ctx *Context) GetProgrami(p triangle.Program, pname triangle.Enum) int {
	return param(ctx.gl.Call("getProgramParameter", ctx.get(p.Value), int(pname)))
}

func (ctx *Context) GetProgramInfoLog(p triangle.Program) string {
	return ctx.gl.Call("getProgramInfoLog", ctx.get(p.Value)).String()
}

func (ctx *Context) DeleteProgram(p triangle.Program) {
	ctx.gl.Call("deleteProgram", ctx.drop(p.Value))
}

func (ctx *Context) UseProgram(p triangle.Program) {
	ctx.gl.Call("useProgram", ctx.get(p.Value))
}

// GetAttribLocation returns the attribute's location. A missing attribute
// is -1, wrapped to uint as x/mobile does.
func (ctx *Context) GetAttribLocation(p triangle.Program, name string) triangle.Attrib {
	loc := ctx.gl.Call("getAttribLocation", ctx.get(p.Value), name).Int()
	return triangle.Attrib{Value: uint(loc)}
}

func (ctx *Context) CreateBuffer() triangle.Buffer {
	return triangle.Buffer{Value: ctx.put(ctx.gl.Call("createBuffer"))}
}

func (ctx *Context) BindBuffer(target triangle.Enum, b triangle.Buffer) {
	ctx.gl.Call("bindBuffer", int(target), ctx.get(b.Value))
}

func (ctx *Context) BufferData(target triangle.Enum, src []byte, usage triangle.Enum) {
	data := js.Global().Get("Uint8Array").New(len(src))
	js.CopyBytesToJS(data, src)
	ctx.gl.Call("bufferData", int(target), data, int(usage))
}

func (ctx *Context) DeleteBuffer(b triangle.Buffer) {
	ctx.gl.Call("deleteBuffer", ctx.drop(b.Value))
}

func (ctx *Context) CreateVertexArray() triangle.VertexArray {
	return triangle.VertexArray{Value: ctx.put(ctx.gl.Call("createVertexArray"))}
}

func (ctx *Context) BindVertexArray(v triangle.VertexArray) {
	ctx.gl.Call("bindVertexArray", ctx.get(v.Value))
}

func (ctx *Context) DeleteVertexArray(v triangle.VertexArray) {
	ctx.gl.Call("deleteVertexArray", ctx.drop(v.Value))
}

func (ctx *Context) EnableVertexAttribArray(a triangle.Attrib) {
	ctx.gl.Call("enableVertexAttribArray", int(a.Value))
}

func (ctx *Context) VertexAttribPointer(dst triangle.Attrib, size int, ty triangle.Enum, normalized bool, stride, offset int) {
	ctx.gl.Call("vertexAttribPointer", int(dst.Value), size, int(ty), normalized, stride, offset)
}

func (ctx *Context) Viewport(x, y, width, height int) {
	ctx.gl.Call("viewport", x, y, width, height)
}

func (ctx *Context) ClearColor(red, green, blue, alpha float32) {
	ctx.gl.Call("clearColor", red, green, blue, alpha)
}

func (ctx *Context) Clear(mask triangle.Enum) {
	ctx.gl.Call("clear", int(mask))
}

func (ctx *Context) DrawArrays(mode triangle.Enum, first, count int) {
	ctx.gl.Call("drawArrays", int(mode), first, count)
}

// param converts a get*Parameter result, which is a boolean for status
// queries and a number otherwise.
func param(v js.Value) int {
	switch v.Type() {
	case js.TypeBoolean:
		if v.Bool() {
			return 1
		}
		return 0
	case js.TypeNumber:
		return v.Int()
	}
	return 0
}
