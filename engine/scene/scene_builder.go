package scene

import (
	"github.com/Carmen-Shannon/oxy-hero/engine/loader"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithRoot names the keyboard node explicitly, for models whose keyboard is not labeled
// "keyboard".
//
// Parameters:
//   - label: the keyboard node label
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithRoot(label string) SceneBuilderOption {
	return func(s *scene) {
		s.root = label
	}
}

// WithShowcase uses a model for the colour-changer keyboard instead of an empty group.
// The first root of the hierarchy becomes the showcase node; an empty hierarchy is ignored.
//
// Parameters:
//   - h: the showcase model hierarchy
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithShowcase(h loader.Hierarchy) SceneBuilderOption {
	return func(s *scene) {
		if len(h.Roots) == 0 {
			return
		}
		if n, ok := h.Nodes[h.Roots[0]]; ok {
			s.showcase = n
		}
	}
}
