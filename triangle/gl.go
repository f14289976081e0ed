package triangle

// Enum is an OpenGL ES / WebGL2 enumerated value. WebGL2 and OpenGL ES 3
// share numbering, so these pass through to either API untouched.
type Enum uint32

const (
	Triangles      Enum = 0x0004
	UnsignedByte   Enum = 0x1401
	Float          Enum = 0x1406
	ColorBufferBit Enum = 0x4000
	ArrayBuffer    Enum = 0x8892
	StaticDraw     Enum = 0x88E4
	CompileStatus  Enum = 0x8B81
	LinkStatus     Enum = 0x8B82
)

// Handle types have the same shape as their golang.org/x/mobile/gl
// counterparts. A zero Value is never a live object.
type (
	Shader      struct{ Value uint32 }
	Buffer      struct{ Value uint32 }
	VertexArray struct{ Value uint32 }

	// Attrib is an attribute location; a missing attribute is -1 wrapped
	// to uint, as returned by glGetAttribLocation.
	Attrib struct{ Value uint }

	Program struct {
		Init  bool
		Value uint32
	}
)
