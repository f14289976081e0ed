package triangle

import "fmt"

// Layout is the recipe VertexAttribPointer is given for reading an
// attribute out of the bound array buffer.
type Layout struct {
	Size       int // components per vertex, 1-4
	Type       Enum
	Normalized bool
	Stride     int // 0 means tightly packed
	Offset     int
}

// VertexCount returns how many vertices n components of float data hold
// under the layout, or an error if they do not divide evenly.
func (l Layout) VertexCount(n int) (int, error) {
	if l.Size < 1 || l.Size > 4 {
		return 0, fmt.Errorf("invalid attribute size %d", l.Size)
	}
	if l.Type != Float {
		return 0, fmt.Errorf("unsupported attribute type 0x%04x", uint32(l.Type))
	}
	if l.Stride != 0 || l.Offset != 0 {
		return 0, fmt.Errorf("attribute layout must be tightly packed from offset 0")
	}
	if n == 0 || n%l.Size != 0 {
		return 0, fmt.Errorf("%d components do not form whole %d-component vertices", n, l.Size)
	}
	return n / l.Size, nil
}
