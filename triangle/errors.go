package triangle

import (
	"errors"
	"fmt"
)

// ErrContextUnavailable is returned when the drawing surface cannot
// provide the requested context type.
var ErrContextUnavailable = errors.New("unable to get GL ES 3 / WebGL2 context")

// ShaderCompileError carries the driver's diagnostic log for a shader
// that failed to compile. The shader handle has already been deleted.
type ShaderCompileError struct {
	Kind ShaderKind
	Log  string
}

func (err *ShaderCompileError) Error() string {
	return fmt.Sprintf("could not compile %v: %v", err.Kind, err.Log)
}

// ProgramLinkError carries the driver's diagnostic log for a program that
// failed to link. The program handle has already been deleted.
type ProgramLinkError struct {
	Log string
}

func (err *ProgramLinkError) Error() string {
	return fmt.Sprintf("could not link program: %v", err.Log)
}
