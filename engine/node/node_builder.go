package node

import "github.com/go-gl/mathgl/mgl32"

// NodeBuilderOption is a functional option for configuring a Node during construction.
type NodeBuilderOption func(*node)

// WithID sets the ID of the Node.
//
// Parameters:
//   - id: unique identifier for the Node
//
// Returns:
//   - NodeBuilderOption: functional option to set the ID
func WithID(id uint64) NodeBuilderOption {
	return func(n *node) {
		n.id = id
	}
}

// WithName sets the label of the Node. Labels are how logical layouts refer to nodes.
//
// Parameters:
//   - name: the node label
//
// Returns:
//   - NodeBuilderOption: functional option to set the label
func WithName(name string) NodeBuilderOption {
	return func(n *node) {
		n.name = name
	}
}

// WithPosition sets the initial position of the Node.
//
// Parameters:
//   - x: the x position
//   - y: the y position
//   - z: the z position
//
// Returns:
//   - NodeBuilderOption: functional option to set the initial position
func WithPosition(x, y, z float32) NodeBuilderOption {
	return func(n *node) {
		n.position = mgl32.Vec3{x, y, z}
	}
}

// WithRotation sets the initial rotation of the Node.
//
// Parameters:
//   - rx: the x rotation angle
//   - ry: the y rotation angle
//   - rz: the z rotation angle
//
// Returns:
//   - NodeBuilderOption: functional option to set the initial rotation
func WithRotation(rx, ry, rz float32) NodeBuilderOption {
	return func(n *node) {
		n.rotation = mgl32.Vec3{rx, ry, rz}
	}
}

// WithScale sets the initial scale of the Node.
//
// Parameters:
//   - sx: the x scale factor
//   - sy: the y scale factor
//   - sz: the z scale factor
//
// Returns:
//   - NodeBuilderOption: functional option to set the initial scale
func WithScale(sx, sy, sz float32) NodeBuilderOption {
	return func(n *node) {
		n.scale = mgl32.Vec3{sx, sy, sz}
	}
}
