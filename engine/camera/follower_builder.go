package camera

import "github.com/go-gl/mathgl/mgl32"

// FollowerBuilderOption is a functional option for configuring a Follower.
type FollowerBuilderOption func(*follower)

// WithBasePosition sets the fixed position the camera tilts around.
//
// Parameters:
//   - x: X coordinate of the base position
//   - y: Y coordinate of the base position
//   - z: Z coordinate of the base position
//
// Returns:
//   - FollowerBuilderOption: functional option to set the base position
func WithBasePosition(x, y, z float32) FollowerBuilderOption {
	return func(f *follower) {
		f.base = mgl32.Vec3{x, y, z}
	}
}

// WithLookAt sets the world point the camera always faces.
//
// Parameters:
//   - x: X coordinate of the look-at point
//   - y: Y coordinate of the look-at point
//   - z: Z coordinate of the look-at point
//
// Returns:
//   - FollowerBuilderOption: functional option to set the look-at point
func WithLookAt(x, y, z float32) FollowerBuilderOption {
	return func(f *follower) {
		f.lookAt = mgl32.Vec3{x, y, z}
	}
}

// WithSensitivity sets how far the camera tilts per unit of pointer offset.
//
// Parameters:
//   - sensitivity: tilt magnitude
//
// Returns:
//   - FollowerBuilderOption: functional option to set the sensitivity
func WithSensitivity(sensitivity float32) FollowerBuilderOption {
	return func(f *follower) {
		f.sensitivity = sensitivity
	}
}

// WithDamping sets the per-update interpolation factor, clamped to [0, 1].
//
// Parameters:
//   - damping: fraction of the remaining distance covered per update
//
// Returns:
//   - FollowerBuilderOption: functional option to set the damping factor
func WithDamping(damping float32) FollowerBuilderOption {
	return func(f *follower) {
		f.damping = mgl32.Clamp(damping, 0, 1)
	}
}

// WithInitialPosition sets where the held position starts instead of the base position.
//
// Parameters:
//   - x: X coordinate of the initial position
//   - y: Y coordinate of the initial position
//   - z: Z coordinate of the initial position
//
// Returns:
//   - FollowerBuilderOption: functional option to set the initial held position
func WithInitialPosition(x, y, z float32) FollowerBuilderOption {
	return func(f *follower) {
		v := mgl32.Vec3{x, y, z}
		f.initial = &v
	}
}
