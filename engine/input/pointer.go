package input

import "github.com/go-gl/mathgl/mgl32"

// NormalizePointer maps a cursor position in pixels to [0, 1]^2 relative to the viewport,
// (0, 0) at the top left. Positions outside the viewport are clamped, and an empty
// viewport yields the centre.
//
// Parameters:
//   - x, y: cursor position in pixels
//   - width, height: viewport size in pixels
//
// Returns:
//   - mgl32.Vec2: the normalized pointer offset
func NormalizePointer(x, y float64, width, height int) mgl32.Vec2 {
	if width <= 0 || height <= 0 {
		return mgl32.Vec2{0.5, 0.5}
	}
	return mgl32.Vec2{
		mgl32.Clamp(float32(x/float64(width)), 0, 1),
		mgl32.Clamp(float32(y/float64(height)), 0, 1),
	}
}
