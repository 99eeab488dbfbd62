// package scene assembles the hero scene: the keyboard hierarchy, the floating keycaps and the
// declarations the choreographer animates them with.
package scene

import (
	"fmt"
	"sort"

	"github.com/Carmen-Shannon/oxy-hero/engine/choreographer"
	"github.com/Carmen-Shannon/oxy-hero/engine/config"
	"github.com/Carmen-Shannon/oxy-hero/engine/loader"
	"github.com/Carmen-Shannon/oxy-hero/engine/node"
)

// Scene is an assembled hero scene. Node handles are created once and never replaced.
type Scene interface {
	// Name returns the scene name used in logs.
	//
	// Returns:
	//   - string: the scene name
	Name() string

	// Root returns the label of the keyboard node.
	//
	// Returns:
	//   - string: the keyboard label
	Root() string

	// Keyboard returns the keyboard group node.
	//
	// Returns:
	//   - node.Node: the keyboard node
	Keyboard() node.Node

	// Keycaps returns the group node holding the floating keycaps.
	//
	// Returns:
	//   - node.Node: the keycap group
	Keycaps() node.Node

	// Showcase returns the group of the colour-changer keyboard, moved only by the colour hop.
	//
	// Returns:
	//   - node.Node: the showcase group
	Showcase() node.Node

	// FloatingKeycaps returns the floating keycaps in declaration order. Their transforms are
	// relative to the Keycaps group.
	//
	// Returns:
	//   - []node.Node: the floating keycaps
	FloatingKeycaps() []node.Node

	// Objects returns the keycaps and switches of the keyboard keyed by label.
	//
	// Returns:
	//   - map[string]node.Node: the keyboard leaves
	Objects() map[string]node.Node

	// Get retrieves a keyboard leaf by label.
	//
	// Parameters:
	//   - label: the node label
	//
	// Returns:
	//   - node.Node: the node, or nil if not found
	Get(label string) node.Node

	// Labels returns the keyboard leaf labels, sorted.
	//
	// Returns:
	//   - []string: the labels
	Labels() []string

	// Count returns the number of keyboard leaves.
	//
	// Returns:
	//   - int: leaf count
	Count() int

	// Variants returns the selectable colourways.
	//
	// Returns:
	//   - []config.Variant: the variants, in key order
	Variants() []config.Variant

	// Choreography returns the handles and declarations for choreographer.NewChoreographer.
	//
	// Returns:
	//   - choreographer.Scene: the choreographer input
	Choreography() choreographer.Scene
}

type scene struct {
	name string
	root string
	decl config.Scene

	keyboard node.Node
	keycaps  node.Node
	showcase node.Node
	floating []node.Node
	objects  map[string]node.Node
}

var _ Scene = &scene{}

// NewScene assembles a scene from a declaration and a keyboard hierarchy.
// The keyboard is the node labeled loader.KeyboardLabel, or the first root when no node has
// that label, unless WithRoot names another.
//
// Parameters:
//   - name: the scene name
//   - decl: the scene declaration
//   - h: the keyboard hierarchy
//   - options: functional options to configure the scene
//
// Returns:
//   - Scene: the assembled scene
//   - error: error if the hierarchy has no keyboard node
func NewScene(name string, decl config.Scene, h loader.Hierarchy, options ...SceneBuilderOption) (Scene, error) {
	s := &scene{
		name:     name,
		decl:     decl,
		root:     loader.KeyboardLabel,
		showcase: node.NewNode(node.WithName("showcase")),
	}
	for _, opt := range options {
		opt(s)
	}
	if _, ok := h.Nodes[s.root]; !ok && len(h.Roots) > 0 && s.root == loader.KeyboardLabel {
		s.root = h.Roots[0]
	}

	kb, ok := h.Nodes[s.root]
	if !ok {
		return nil, fmt.Errorf("scene %q: no keyboard node %q", name, s.root)
	}
	s.keyboard = kb
	s.objects = h.Leaves(s.root)

	s.keycaps = node.NewNode(node.WithName("keycaps"))
	s.floating = make([]node.Node, len(decl.Keycaps))
	for i, p := range decl.Keycaps {
		s.floating[i] = node.NewNode(
			node.WithID(uint64(i)),
			node.WithName(fmt.Sprintf("keycap%d", i)),
			node.WithPosition(p[0], p[1], p[2]),
		)
	}
	return s, nil
}

func (s *scene) Name() string {
	return s.name
}

func (s *scene) Root() string {
	return s.root
}

func (s *scene) Keyboard() node.Node {
	return s.keyboard
}

func (s *scene) Keycaps() node.Node {
	return s.keycaps
}

func (s *scene) Showcase() node.Node {
	return s.showcase
}

func (s *scene) FloatingKeycaps() []node.Node {
	return append([]node.Node(nil), s.floating...)
}

func (s *scene) Objects() map[string]node.Node {
	cp := make(map[string]node.Node, len(s.objects))
	for k, v := range s.objects {
		cp[k] = v
	}
	return cp
}

func (s *scene) Get(label string) node.Node {
	return s.objects[label]
}

func (s *scene) Labels() []string {
	labels := make([]string, 0, len(s.objects))
	for label := range s.objects {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

func (s *scene) Count() int {
	return len(s.objects)
}

func (s *scene) Variants() []config.Variant {
	return append([]config.Variant(nil), s.decl.Variants...)
}

func (s *scene) Choreography() choreographer.Scene {
	return choreographer.Scene{
		Keyboard: s.keyboard,
		Keycaps:  s.keycaps,
		Objects:  s.Objects(),
		Layout:   s.decl.Layout,
		Wave:     s.decl.Wave,
	}
}
