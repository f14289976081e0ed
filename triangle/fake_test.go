package triangle

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// fakeGL is a recording Context with just enough of a driver behind it to
// compile, link and rasterize the triangle program. The framebuffer is
// addressed in GL window coordinates: (0, 0) is the bottom-left pixel.
type fakeGL struct {
	calls []string

	next     uint32
	shaders  map[uint32]*fakeShader
	programs map[uint32]*fakeProgram
	buffers  map[uint32][]byte
	vaos     map[uint32]map[uint]*fakePointer

	arrayBuffer uint32
	vao         uint32
	program     uint32

	viewport   image.Rectangle
	clearColor [4]float32
	fb         *image.NRGBA
	draws      int
}

type fakeShader struct {
	kind     Enum
	src      string
	compiled bool
	log      string
}

type fakeProgram struct {
	shaders []uint32
	linked  bool
	log     string
	attribs map[string]uint
	color   color.NRGBA
}

type fakePointer struct {
	enabled    bool
	buffer     uint32
	size       int
	ty         Enum
	normalized bool
	stride     int
	offset     int
}

func newFakeGL() *fakeGL {
	return &fakeGL{
		shaders:  make(map[uint32]*fakeShader),
		programs: make(map[uint32]*fakeProgram),
		buffers:  make(map[uint32][]byte),
		vaos:     make(map[uint32]map[uint]*fakePointer),
	}
}

func (f *fakeGL) record(name string) { f.calls = append(f.calls, name) }

func (f *fakeGL) handle() uint32 {
	f.next++
	return f.next
}

func (f *fakeGL) called(name string) int {
	n := 0
	for _, call := range f.calls {
		if call == name {
			n++
		}
	}
	return n
}

// at returns the pixel at window coordinate (x, y).
func (f *fakeGL) at(x, y int) color.NRGBA {
	return f.fb.NRGBAAt(x, y)
}

func (f *fakeGL) CreateShader(ty Enum) Shader {
	f.record("CreateShader")
	h := f.handle()
	f.shaders[h] = &fakeShader{kind: ty}
	return Shader{Value: h}
}

func (f *fakeGL) ShaderSource(s Shader, src string) {
	f.record("ShaderSource")
	f.shaders[s.Value].src = src
}

func (f *fakeGL) CompileShader(s Shader) {
	f.record("CompileShader")
	sh := f.shaders[s.Value]
	sh.log = checkGLSL(sh.src)
	sh.compiled = sh.log == ""
}

func (f *fakeGL) GetShaderi(s Shader, pname Enum) int {
	f.record("GetShaderi")
	if pname == CompileStatus && f.shaders[s.Value].compiled {
		return 1
	}
	return 0
}

func (f *fakeGL) GetShaderInfoLog(s Shader) string {
	f.record("GetShaderInfoLog")
	return f.shaders[s.Value].log
}

func (f *fakeGL) DeleteShader(s Shader) {
	f.record("DeleteShader")
	delete(f.shaders, s.Value)
}

func (f *fakeGL) CreateProgram() Program {
	f.record("CreateProgram")
	h := f.handle()
	f.programs[h] = &fakeProgram{}
	return Program{Init: true, Value: h}
}

func (f *fakeGL) AttachShader(p Program, s Shader) {
	f.record("AttachShader")
	prog := f.programs[p.Value]
	prog.shaders = append(prog.shaders, s.Value)
}

func (f *fakeGL) LinkProgram(p Program) {
	f.record("LinkProgram")
	prog := f.programs[p.Value]
	var vs, fs *fakeShader
	for _, h := range prog.shaders {
		sh, ok := f.shaders[h]
		if !ok || !sh.compiled {
			prog.log = fmt.Sprintf("ERROR: shader %d is not compiled", h)
			return
		}
		switch sh.kind {
		case Enum(VertexShader):
			vs = sh
		case Enum(FragmentShader):
			fs = sh
		}
	}
	switch {
	case vs == nil:
		prog.log = "ERROR: missing vertex shader"
		return
	case fs == nil:
		prog.log = "ERROR: missing fragment shader"
		return
	}
	prog.attribs = vertexInputs(vs.src)
	prog.color = fragmentOutput(fs.src)
	prog.linked = true
}

func (f *fakeGL) GetProgrami(p Program, pname Enum) int {
	f.record("GetProgrami")
	if pname == LinkStatus && f.programs[p.Value].linked {
		return 1
	}
	return 0
}

func (f *fakeGL) GetProgramInfoLog(p Program) string {
	f.record("GetProgramInfoLog")
	return f.programs[p.Value].log
}

func (f *fakeGL) DeleteProgram(p Program) {
	f.record("DeleteProgram")
	delete(f.programs, p.Value)
}

func (f *fakeGL) UseProgram(p Program) {
	f.record("UseProgram")
	f.program = p.Value
}

func (f *fakeGL) GetAttribLocation(p Program, name string) Attrib {
	f.record("GetAttribLocation")
	prog := f.programs[p.Value]
	if loc, ok := prog.attribs[name]; ok && prog.linked {
		return Attrib{Value: loc}
	}
	return Attrib{Value: ^uint(0)}
}

func (f *fakeGL) CreateBuffer() Buffer {
	f.record("CreateBuffer")
	h := f.handle()
	f.buffers[h] = nil
	return Buffer{Value: h}
}

func (f *fakeGL) BindBuffer(target Enum, b Buffer) {
	f.record("BindBuffer")
	if target == ArrayBuffer {
		f.arrayBuffer = b.Value
	}
}

func (f *fakeGL) BufferData(target Enum, src []byte, usage Enum) {
	f.record("BufferData")
	if target == ArrayBuffer {
		f.buffers[f.arrayBuffer] = append([]byte(nil), src...)
	}
}

func (f *fakeGL) DeleteBuffer(b Buffer) {
	f.record("DeleteBuffer")
	delete(f.buffers, b.Value)
}

func (f *fakeGL) CreateVertexArray() VertexArray {
	f.record("CreateVertexArray")
	h := f.handle()
	f.vaos[h] = make(map[uint]*fakePointer)
	return VertexArray{Value: h}
}

func (f *fakeGL) BindVertexArray(v VertexArray) {
	f.record("BindVertexArray")
	f.vao = v.Value
}

func (f *fakeGL) DeleteVertexArray(v VertexArray) {
	f.record("DeleteVertexArray")
	delete(f.vaos, v.Value)
}

func (f *fakeGL) pointer(a Attrib) *fakePointer {
	vao := f.vaos[f.vao]
	ptr, ok := vao[a.Value]
	if !ok {
		ptr = &fakePointer{}
		vao[a.Value] = ptr
	}
	return ptr
}

func (f *fakeGL) EnableVertexAttribArray(a Attrib) {
	f.record("EnableVertexAttribArray")
	f.pointer(a).enabled = true
}

func (f *fakeGL) VertexAttribPointer(dst Attrib, size int, ty Enum, normalized bool, stride, offset int) {
	f.record("VertexAttribPointer")
	ptr := f.pointer(dst)
	ptr.buffer = f.arrayBuffer
	ptr.size = size
	ptr.ty = ty
	ptr.normalized = normalized
	ptr.stride = stride
	ptr.offset = offset
}

func (f *fakeGL) Viewport(x, y, width, height int) {
	f.record("Viewport")
	f.viewport = image.Rect(x, y, x+width, y+height)
	if f.fb == nil || f.fb.Rect.Max != f.viewport.Max {
		f.fb = image.NewNRGBA(image.Rect(0, 0, f.viewport.Max.X, f.viewport.Max.Y))
	}
}

func (f *fakeGL) ClearColor(red, green, blue, alpha float32) {
	f.record("ClearColor")
	f.clearColor = [4]float32{red, green, blue, alpha}
}

func (f *fakeGL) Clear(mask Enum) {
	f.record("Clear")
	if mask&ColorBufferBit == 0 || f.fb == nil {
		return
	}
	c := color.NRGBA{
		R: clampByte(f.clearColor[0]),
		G: clampByte(f.clearColor[1]),
		B: clampByte(f.clearColor[2]),
		A: clampByte(f.clearColor[3]),
	}
	b := f.fb.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			f.fb.SetNRGBA(x, y, c)
		}
	}
}

// DrawArrays rasterizes TRIANGLES using the first enabled attribute of the
// bound vertex array as clip-space positions.
func (f *fakeGL) DrawArrays(mode Enum, first, count int) {
	f.record("DrawArrays")
	f.draws++
	prog, ok := f.programs[f.program]
	if !ok || !prog.linked || mode != Triangles || f.fb == nil {
		return
	}
	var ptr *fakePointer
	for _, p := range f.vaos[f.vao] {
		if p.enabled {
			ptr = p
		}
	}
	if ptr == nil || ptr.ty != Float {
		return
	}
	data := f.buffers[ptr.buffer]
	stride := ptr.stride
	if stride == 0 {
		stride = ptr.size * 4
	}

	verts := make([][2]float64, 0, count)
	for i := first; i < first+count; i++ {
		at := ptr.offset + i*stride
		if at+ptr.size*4 > len(data) {
			return
		}
		x := math.Float32frombits(binary.LittleEndian.Uint32(data[at:]))
		var y float32
		if ptr.size > 1 {
			y = math.Float32frombits(binary.LittleEndian.Uint32(data[at+4:]))
		}
		vp := f.viewport
		verts = append(verts, [2]float64{
			float64(vp.Min.X) + (float64(x)+1)/2*float64(vp.Dx()),
			float64(vp.Min.Y) + (float64(y)+1)/2*float64(vp.Dy()),
		})
	}

	for i := 0; i+2 < len(verts); i += 3 {
		f.fill(verts[i], verts[i+1], verts[i+2], prog.color)
	}
}

func (f *fakeGL) fill(a, b, c [2]float64, col color.NRGBA) {
	edge := func(p, q [2]float64, x, y float64) float64 {
		return (q[0]-p[0])*(y-p[1]) - (q[1]-p[1])*(x-p[0])
	}
	area := edge(a, b, c[0], c[1])
	if area == 0 {
		return
	}
	r := f.viewport.Intersect(f.fb.Bounds())
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			x, y := float64(px)+0.5, float64(py)+0.5
			w0, w1, w2 := edge(b, c, x, y), edge(c, a, x, y), edge(a, b, x, y)
			if area < 0 {
				w0, w1, w2 = -w0, -w1, -w2
			}
			if w0 >= 0 && w1 >= 0 && w2 >= 0 {
				f.fb.SetNRGBA(px, py, col)
			}
		}
	}
}

func clampByte(v float32) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, float64(v))) * 255))
}

// checkGLSL stands in for a shader compiler. It requires a GLSL ES 3.00
// version directive and a terminator on every statement line inside a
// block, which is enough to reject a missing semicolon.
func checkGLSL(src string) string {
	lines := strings.Split(src, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "#version 300 es" {
		return "ERROR: 0:1: '' : unsupported or missing #version directive"
	}
	depth := 0
	for i, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if j := strings.Index(line, "//"); j >= 0 {
			line = strings.TrimSpace(line[:j])
		}
		if line == "" {
			continue
		}
		depth += strings.Count(line, "{") - strings.Count(line, "}")
		if depth < 0 {
			return fmt.Sprintf("ERROR: 0:%d: '}' : syntax error", i+2)
		}
		last := line[len(line)-1]
		if last != ';' && last != '{' && last != '}' && !strings.HasPrefix(line, "void ") {
			return fmt.Sprintf("ERROR: 0:%d: '' : syntax error, missing ';'", i+2)
		}
	}
	if depth != 0 {
		return "ERROR: 0:0: '' : unexpected end of file"
	}
	return ""
}

var (
	inDecl   = regexp.MustCompile(`(?m)^\s*in\s+\w+\s+(\w+)\s*;`)
	outColor = regexp.MustCompile(`\w+\s*=\s*vec4\(([^)]*)\)\s*;`)
)

func vertexInputs(src string) map[string]uint {
	attribs := make(map[string]uint)
	for i, m := range inDecl.FindAllStringSubmatch(src, -1) {
		attribs[m[1]] = uint(i)
	}
	return attribs
}

func fragmentOutput(src string) color.NRGBA {
	m := outColor.FindStringSubmatch(src)
	if m == nil {
		return color.NRGBA{}
	}
	var v [4]float32
	for i, part := range strings.Split(m[1], ",") {
		if i >= len(v) {
			break
		}
		f, _ := strconv.ParseFloat(strings.TrimSpace(part), 32)
		v[i] = float32(f)
	}
	return color.NRGBA{R: clampByte(v[0]), G: clampByte(v[1]), B: clampByte(v[2]), A: clampByte(v[3])}
}

// fakeSurface is a <canvas> stand-in.
type fakeSurface struct {
	display image.Point
	backing image.Point
	resizes int
}

func (s *fakeSurface) DisplaySize() image.Point { return s.display }
func (s *fakeSurface) Size() image.Point        { return s.backing }
func (s *fakeSurface) SetSize(size image.Point) {
	s.resizes++
	s.backing = size
}
