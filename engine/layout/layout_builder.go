package layout

// PartitionerBuilderOption is a functional option for configuring a ColumnPartitioner.
type PartitionerBuilderOption func(*columnPartitioner)

// WithFallbackAxis sets the position component used to order fallback nodes.
// Values outside 0..2 (x, y, z) are ignored.
//
// Parameters:
//   - axis: 0 for x, 1 for y, 2 for z
//
// Returns:
//   - PartitionerBuilderOption: functional option to set the fallback axis
func WithFallbackAxis(axis int) PartitionerBuilderOption {
	return func(cp *columnPartitioner) {
		if axis >= 0 && axis < 3 {
			cp.axis = axis
		}
	}
}
