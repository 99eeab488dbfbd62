// package layout groups labeled scene nodes into ordered columns using a declared
// logical layout table, with a positional fallback for nodes the table never names.
package layout

import (
	"fmt"
	"sort"

	"github.com/Carmen-Shannon/oxy-hero/engine/node"
)

// Layout is an ordered list of columns, each an ordered list of node labels.
// A label may appear at most once across all columns. Empty columns are placeholders.
type Layout [][]string

// Partition holds index-aligned column groups produced by a ColumnPartitioner.
type Partition struct {
	// Labeled holds, per layout column, the nodes named by that column in column order.
	Labeled [][]node.Node
	// Unlabeled holds, per layout column, the positional fallback group for that column.
	Unlabeled [][]node.Node
}

// Columns returns the number of columns in the partition.
//
// Returns:
//   - int: column count
func (p Partition) Columns() int {
	return len(p.Labeled)
}

// InvalidLayoutError is returned for a layout that cannot be partitioned.
type InvalidLayoutError struct {
	Reason string
}

func (e InvalidLayoutError) Error() string {
	return "invalid layout: " + e.Reason
}

// Validate checks that the layout has at least one column and no repeated labels.
//
// Returns:
//   - error: InvalidLayoutError describing the first violation, or nil
func (l Layout) Validate() error {
	if len(l) == 0 {
		return InvalidLayoutError{Reason: "layout has no columns"}
	}
	seen := make(map[string]int)
	for ci, column := range l {
		for _, label := range column {
			if prev, ok := seen[label]; ok {
				return InvalidLayoutError{Reason: fmt.Sprintf("label %q appears in columns %d and %d", label, prev, ci)}
			}
			seen[label] = ci
		}
	}
	return nil
}

// Labels returns the set of labels the layout declares.
//
// Returns:
//   - map[string]struct{}: declared labels
func (l Layout) Labels() map[string]struct{} {
	out := make(map[string]struct{})
	for _, column := range l {
		for _, label := range column {
			out[label] = struct{}{}
		}
	}
	return out
}

// ColumnPartitioner splits a flat, labeled node collection into layout columns.
type ColumnPartitioner interface {
	// Partition groups objects by the layout. For each column, labels present in objects
	// are taken in column order; absent labels are skipped. Objects whose label appears
	// nowhere in the layout are sorted by the fallback axis of their current position
	// (ties broken by label) and split into len(layout) contiguous groups whose sizes
	// differ by at most one, the first count mod len(layout) groups taking the extra node.
	// The output is fully determined by objects and layout.
	//
	// Parameters:
	//   - objects: nodes keyed by label
	//   - layout: the logical column layout
	//
	// Returns:
	//   - Partition: labeled and fallback groups, index-aligned to layout
	//   - error: InvalidLayoutError for an empty layout or repeated labels
	Partition(objects map[string]node.Node, layout Layout) (Partition, error)
}

type columnPartitioner struct {
	axis int
}

var _ ColumnPartitioner = &columnPartitioner{}

// NewColumnPartitioner creates a ColumnPartitioner. The fallback sort axis defaults to x.
//
// Parameters:
//   - options: functional options to configure the partitioner
//
// Returns:
//   - ColumnPartitioner: the newly created partitioner
func NewColumnPartitioner(options ...PartitionerBuilderOption) ColumnPartitioner {
	cp := &columnPartitioner{axis: 0}
	for _, option := range options {
		option(cp)
	}
	return cp
}

func (cp *columnPartitioner) Partition(objects map[string]node.Node, layout Layout) (Partition, error) {
	if err := layout.Validate(); err != nil {
		return Partition{}, err
	}

	result := Partition{
		Labeled:   make([][]node.Node, len(layout)),
		Unlabeled: make([][]node.Node, len(layout)),
	}
	for ci, column := range layout {
		group := make([]node.Node, 0, len(column))
		for _, label := range column {
			if n, ok := objects[label]; ok && n != nil {
				group = append(group, n)
			}
		}
		result.Labeled[ci] = group
	}

	declared := layout.Labels()
	type leftover struct {
		label string
		n     node.Node
		key   float32
	}
	rest := make([]leftover, 0)
	for label, n := range objects {
		if n == nil {
			continue
		}
		if _, ok := declared[label]; ok {
			continue
		}
		rest = append(rest, leftover{label: label, n: n, key: n.Position()[cp.axis]})
	}
	sort.Slice(rest, func(i, j int) bool {
		if rest[i].key != rest[j].key {
			return rest[i].key < rest[j].key
		}
		return rest[i].label < rest[j].label
	})

	sizes := GroupSizes(len(rest), len(layout))
	offset := 0
	for ci, size := range sizes {
		group := make([]node.Node, size)
		for i := range group {
			group[i] = rest[offset+i].n
		}
		result.Unlabeled[ci] = group
		offset += size
	}
	return result, nil
}

// GroupSizes splits count items into that many contiguous groups whose sizes differ by at
// most one; the first count mod groups groups get the extra item.
// Returns nil when groups is not positive.
//
// Parameters:
//   - count: number of items
//   - groups: number of groups
//
// Returns:
//   - []int: size of each group
func GroupSizes(count, groups int) []int {
	if groups <= 0 {
		return nil
	}
	if count < 0 {
		count = 0
	}
	base, remainder := count/groups, count%groups
	sizes := make([]int, groups)
	for i := range sizes {
		sizes[i] = base
		if i < remainder {
			sizes[i]++
		}
	}
	return sizes
}
