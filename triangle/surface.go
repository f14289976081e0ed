package triangle

import "image"

// Surface is something drawn to whose backing store may disagree with the
// size at which it is displayed, such as a <canvas> on a high-DPI screen.
type Surface interface {
	// DisplaySize is the size the surface is laid out at.
	DisplaySize() image.Point

	// Size is the size of the backing store.
	Size() image.Point

	// SetSize resizes the backing store.
	SetSize(size image.Point)
}

// Resize makes the backing store of s match its displayed size, reporting
// whether anything changed. Calling it again without an intervening change
// of display size is a no-op.
func Resize(s Surface) bool {
	display := s.DisplaySize()
	if s.Size() == display {
		return false
	}
	s.SetSize(display)
	Logger().Debug("resized surface", "width", display.X, "height", display.Y)
	return true
}
