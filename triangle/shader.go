package triangle

import "fmt"

// ShaderKind is a programmable pipeline stage, valued as the GL enum that
// names it.
type ShaderKind Enum

const (
	FragmentShader ShaderKind = 0x8B30
	VertexShader   ShaderKind = 0x8B31
)

func (kind ShaderKind) String() string {
	switch kind {
	case VertexShader:
		return "VERTEX_SHADER"
	case FragmentShader:
		return "FRAGMENT_SHADER"
	default:
		return fmt.Sprintf("INVALID_SHADER_KIND(%04x)", uint32(kind))
	}
}

// CompileShader creates a shader of the given kind and compiles src into
// it. When the driver reports failure the shader is deleted and a
// *ShaderCompileError holding the info log is returned.
func CompileShader(glctx Context, kind ShaderKind, src string) (Shader, error) {
	shader := glctx.CreateShader(Enum(kind))
	if shader.Value == 0 {
		return Shader{}, fmt.Errorf("could not create %v", kind)
	}
	glctx.ShaderSource(shader, src)
	glctx.CompileShader(shader)
	if glctx.GetShaderi(shader, CompileStatus) == 0 {
		infoLog := glctx.GetShaderInfoLog(shader)
		glctx.DeleteShader(shader)
		return Shader{}, &ShaderCompileError{Kind: kind, Log: infoLog}
	}
	Logger().Debug("compiled shader", "kind", kind, "shader", shader.Value)
	return shader, nil
}

// LinkProgram attaches vs and fs to a new program and links it. When the
// driver reports failure the program is deleted and a *ProgramLinkError
// holding the info log is returned. The shaders are left to the caller.
func LinkProgram(glctx Context, vs, fs Shader) (Program, error) {
	program := glctx.CreateProgram()
	if program.Value == 0 {
		return Program{}, fmt.Errorf("could not create program")
	}
	glctx.AttachShader(program, vs)
	glctx.AttachShader(program, fs)
	glctx.LinkProgram(program)
	if glctx.GetProgrami(program, LinkStatus) == 0 {
		infoLog := glctx.GetProgramInfoLog(program)
		glctx.DeleteProgram(program)
		return Program{}, &ProgramLinkError{Log: infoLog}
	}
	Logger().Debug("linked program", "program", program.Value)
	return program, nil
}
