// package camera maps a normalized pointer offset to a gently tilting camera pose.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Pose is a camera placement: where it sits and the world point it faces.
type Pose struct {
	Position mgl32.Vec3
	LookAt   mgl32.Vec3
	Up       mgl32.Vec3
}

// View returns the right-handed view matrix for the pose.
//
// Returns:
//   - mgl32.Mat4: the view matrix
func (p Pose) View() mgl32.Mat4 {
	return mgl32.LookAtV(p.Position, p.LookAt, p.Up)
}

// Follower is a per-frame controller that eases the camera toward a pointer-driven
// offset from a fixed base position. The follower is not safe for concurrent use.
type Follower interface {
	// Update computes the pose for this frame.
	// With reducedMotion the base pose is returned and no state changes.
	// Otherwise the target is base + ((x-0.5)*sensitivity, -(y-0.5)*sensitivity, 0) and
	// the held position moves toward it by the damping factor:
	// held = held + (target - held) * damping.
	//
	// Parameters:
	//   - pointer: normalized pointer offset in [0, 1]^2, (0, 0) at the top left
	//   - reducedMotion: whether motion should be suppressed
	//
	// Returns:
	//   - Pose: the pose for this frame
	Update(pointer mgl32.Vec2, reducedMotion bool) Pose

	// Base returns the fixed, motionless pose.
	//
	// Returns:
	//   - Pose: base position facing the look-at point
	Base() Pose

	// Held returns the current damped camera position.
	//
	// Returns:
	//   - mgl32.Vec3: the held position
	Held() mgl32.Vec3
}

type follower struct {
	base        mgl32.Vec3
	lookAt      mgl32.Vec3
	up          mgl32.Vec3
	sensitivity float32
	damping     float32

	held    mgl32.Vec3
	initial *mgl32.Vec3
}

var _ Follower = &follower{}

// NewFollower creates a Follower based at (0, 0, 4) facing the origin, with a tilt
// sensitivity of 0.3 and a damping factor of 0.1. The held position starts at the base.
//
// Parameters:
//   - options: functional options to configure the follower
//
// Returns:
//   - Follower: the newly created follower
func NewFollower(options ...FollowerBuilderOption) Follower {
	f := &follower{
		base:        mgl32.Vec3{0, 0, 4},
		lookAt:      mgl32.Vec3{0, 0, 0},
		up:          mgl32.Vec3{0, 1, 0},
		sensitivity: 0.3,
		damping:     0.1,
	}
	for _, option := range options {
		option(f)
	}
	f.held = f.base
	if f.initial != nil {
		f.held = *f.initial
	}
	return f
}

func (f *follower) Update(pointer mgl32.Vec2, reducedMotion bool) Pose {
	if reducedMotion {
		return f.Base()
	}

	target := f.base.Add(mgl32.Vec3{
		(pointer.X() - 0.5) * f.sensitivity,
		-(pointer.Y() - 0.5) * f.sensitivity,
		0,
	})
	f.held = f.held.Add(target.Sub(f.held).Mul(f.damping))
	return Pose{Position: f.held, LookAt: f.lookAt, Up: f.up}
}

func (f *follower) Base() Pose {
	return Pose{Position: f.base, LookAt: f.lookAt, Up: f.up}
}

func (f *follower) Held() mgl32.Vec3 {
	return f.held
}
