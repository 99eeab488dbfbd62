package loader

import (
	"github.com/Carmen-Shannon/oxy-hero/engine/layout"
	"github.com/Carmen-Shannon/oxy-hero/engine/node"
)

// Labels of the groups in a procedural keyboard.
const (
	KeyboardLabel = "keyboard"
	KeysLabel     = "keys"
	SwitchesLabel = "switches"
)

// Procedural builds a stand-in keyboard hierarchy from a layout for scenes without a model
// file. The "keyboard" root holds a "keys" group with one keycap per label and a "switches"
// group with one switch per keycap, labeled "switch/<label>" so that no layout names it.
// Column i sits at x = (i - (columns-1)/2) * pitch and the j-th label of a column at
// z = j * pitch; switches sit a fifth of a pitch below their keycap.
//
// Parameters:
//   - l: the keyboard layout
//   - pitch: distance between neighbouring keys
//
// Returns:
//   - Hierarchy: the generated hierarchy, rooted at KeyboardLabel
func Procedural(l layout.Layout, pitch float32) Hierarchy {
	h := Hierarchy{
		Nodes:    make(map[string]node.Node),
		Children: make(map[string][]string),
		Roots:    []string{KeyboardLabel},
	}
	var id uint64
	add := func(label, parent string, x, y, z float32) {
		h.Nodes[label] = node.NewNode(node.WithID(id), node.WithName(label), node.WithPosition(x, y, z))
		id++
		if parent != "" {
			h.Children[parent] = append(h.Children[parent], label)
		}
	}

	add(KeyboardLabel, "", 0, 0, 0)
	add(KeysLabel, KeyboardLabel, 0, 0, 0)
	add(SwitchesLabel, KeyboardLabel, 0, 0, 0)

	center := float32(len(l)-1) / 2
	for i, column := range l {
		x := (float32(i) - center) * pitch
		for j, label := range column {
			z := float32(j) * pitch
			add(label, KeysLabel, x, 0, z)
			add("switch/"+label, SwitchesLabel, x, -pitch/5, z)
		}
	}
	return h
}
