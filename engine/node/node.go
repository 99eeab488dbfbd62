package node

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Property names one of the three transform vectors of a Node.
type Property int

const (
	// PropertyPosition is the node's translation.
	PropertyPosition Property = iota
	// PropertyRotation is the node's Euler rotation in radians.
	PropertyRotation
	// PropertyScale is the node's per-axis scale.
	PropertyScale
)

// String returns the lowercase property name used in scene files and logs.
func (p Property) String() string {
	switch p {
	case PropertyPosition:
		return "position"
	case PropertyRotation:
		return "rotation"
	case PropertyScale:
		return "scale"
	default:
		return fmt.Sprintf("property(%d)", int(p))
	}
}

// ParseProperty converts a property name back to a Property.
//
// Parameters:
//   - s: one of "position", "rotation" or "scale" (case-insensitive)
//
// Returns:
//   - Property: the parsed property
//   - error: error if the name is not recognized
func ParseProperty(s string) (Property, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "position":
		return PropertyPosition, nil
	case "rotation":
		return PropertyRotation, nil
	case "scale":
		return PropertyScale, nil
	}
	return 0, fmt.Errorf("unknown transform property %q", s)
}

// Axes is a bitmask selecting components of a transform vector.
// The zero value selects all three axes.
type Axes uint8

const (
	// AxisX selects the x component.
	AxisX Axes = 1 << iota
	// AxisY selects the y component.
	AxisY
	// AxisZ selects the z component.
	AxisZ

	// AllAxes selects x, y and z.
	AllAxes = AxisX | AxisY | AxisZ
)

// Merge returns base with the components selected by a replaced by the matching
// components of v. A zero mask replaces every component.
//
// Parameters:
//   - base: the vector supplying unselected components
//   - v: the vector supplying selected components
//
// Returns:
//   - mgl32.Vec3: the merged vector
func (a Axes) Merge(base, v mgl32.Vec3) mgl32.Vec3 {
	if a == 0 {
		a = AllAxes
	}
	out := base
	for i := 0; i < 3; i++ {
		if a&(1<<i) != 0 {
			out[i] = v[i]
		}
	}
	return out
}

// Mask zeroes the components of v not selected by a. A zero mask keeps every component.
//
// Parameters:
//   - v: the vector to mask
//
// Returns:
//   - mgl32.Vec3: the masked vector
func (a Axes) Mask(v mgl32.Vec3) mgl32.Vec3 {
	return a.Merge(mgl32.Vec3{}, v)
}

type node struct {
	id       uint64
	name     string
	position mgl32.Vec3
	rotation mgl32.Vec3
	scale    mgl32.Vec3
}

// Node is a non-owning handle to a transformable scene entity.
// The rendering layer owns the underlying object; animation code only reads and
// writes the three transform vectors through this interface.
type Node interface {
	// ID returns the node's identifier.
	//
	// Returns:
	//   - uint64: the node ID
	ID() uint64

	// Name returns the node's label, or an empty string when unlabeled.
	//
	// Returns:
	//   - string: the node label
	Name() string

	// Position returns the node's current translation.
	//
	// Returns:
	//   - mgl32.Vec3: position (x, y, z)
	Position() mgl32.Vec3

	// Rotation returns the node's current Euler rotation.
	//
	// Returns:
	//   - mgl32.Vec3: rotation angles in radians (x, y, z)
	Rotation() mgl32.Vec3

	// Scale returns the node's current scale.
	//
	// Returns:
	//   - mgl32.Vec3: scale factors (x, y, z)
	Scale() mgl32.Vec3

	// SetPosition replaces the node's translation.
	//
	// Parameters:
	//   - v: new position
	SetPosition(v mgl32.Vec3)

	// SetRotation replaces the node's Euler rotation.
	//
	// Parameters:
	//   - v: new rotation angles in radians
	SetRotation(v mgl32.Vec3)

	// SetScale replaces the node's scale.
	//
	// Parameters:
	//   - v: new scale factors
	SetScale(v mgl32.Vec3)

	// Get reads the vector addressed by p.
	//
	// Parameters:
	//   - p: the property to read
	//
	// Returns:
	//   - mgl32.Vec3: the current value
	Get(p Property) mgl32.Vec3

	// Set writes the vector addressed by p.
	//
	// Parameters:
	//   - p: the property to write
	//   - v: the new value
	Set(p Property, v mgl32.Vec3)
}

var _ Node = &node{}

// NewNode creates a standalone Node with unit scale, configured with the given options.
//
// Parameters:
//   - options: functional options to configure the node
//
// Returns:
//   - Node: the newly created node
func NewNode(options ...NodeBuilderOption) Node {
	n := &node{
		scale: mgl32.Vec3{1, 1, 1},
	}
	for _, option := range options {
		option(n)
	}
	return n
}

func (n *node) ID() uint64 {
	return n.id
}

func (n *node) Name() string {
	return n.name
}

func (n *node) Position() mgl32.Vec3 {
	return n.position
}

func (n *node) Rotation() mgl32.Vec3 {
	return n.rotation
}

func (n *node) Scale() mgl32.Vec3 {
	return n.scale
}

func (n *node) SetPosition(v mgl32.Vec3) {
	n.position = v
}

func (n *node) SetRotation(v mgl32.Vec3) {
	n.rotation = v
}

func (n *node) SetScale(v mgl32.Vec3) {
	n.scale = v
}

func (n *node) Get(p Property) mgl32.Vec3 {
	switch p {
	case PropertyRotation:
		return n.rotation
	case PropertyScale:
		return n.scale
	default:
		return n.position
	}
}

func (n *node) Set(p Property, v mgl32.Vec3) {
	switch p {
	case PropertyRotation:
		n.rotation = v
	case PropertyScale:
		n.scale = v
	default:
		n.position = v
	}
}
