package node

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNodeDefaults(t *testing.T) {
	n := NewNode()
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, n.Scale())
	assert.Equal(t, mgl32.Vec3{}, n.Position())
	assert.Equal(t, mgl32.Vec3{}, n.Rotation())
	assert.Empty(t, n.Name())
}

func TestNodeOptions(t *testing.T) {
	n := NewNode(
		WithID(7),
		WithName("esc"),
		WithPosition(1, 2, 3),
		WithRotation(0.1, 0.2, 0.3),
		WithScale(2, 2, 2),
	)
	assert.Equal(t, uint64(7), n.ID())
	assert.Equal(t, "esc", n.Name())
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, n.Get(PropertyPosition))
	assert.Equal(t, mgl32.Vec3{0.1, 0.2, 0.3}, n.Get(PropertyRotation))
	assert.Equal(t, mgl32.Vec3{2, 2, 2}, n.Get(PropertyScale))
}

func TestNodeSetAddressesProperty(t *testing.T) {
	n := NewNode()
	n.Set(PropertyRotation, mgl32.Vec3{1, 0, 0})
	n.Set(PropertyScale, mgl32.Vec3{5, 5, 5})
	n.Set(PropertyPosition, mgl32.Vec3{0, -0.5, 2.2})

	assert.Equal(t, mgl32.Vec3{1, 0, 0}, n.Rotation())
	assert.Equal(t, mgl32.Vec3{5, 5, 5}, n.Scale())
	assert.Equal(t, mgl32.Vec3{0, -0.5, 2.2}, n.Position())
}

func TestParseProperty(t *testing.T) {
	tests := []struct {
		in   string
		want Property
	}{
		{"position", PropertyPosition},
		{" Rotation ", PropertyRotation},
		{"SCALE", PropertyScale},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseProperty(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParse(t, got.String()))
		})
	}

	_, err := ParseProperty("opacity")
	assert.Error(t, err)
}

func mustParse(t *testing.T, s string) Property {
	t.Helper()
	p, err := ParseProperty(s)
	require.NoError(t, err)
	return p
}

func TestAxesMergeAndMask(t *testing.T) {
	base := mgl32.Vec3{1, 2, 3}
	v := mgl32.Vec3{7, 8, 9}

	assert.Equal(t, mgl32.Vec3{1, 8, 3}, AxisY.Merge(base, v))
	assert.Equal(t, mgl32.Vec3{7, 2, 9}, (AxisX | AxisZ).Merge(base, v))
	assert.Equal(t, v, Axes(0).Merge(base, v))
	assert.Equal(t, v, AllAxes.Merge(base, v))
	assert.Equal(t, mgl32.Vec3{0, 8, 0}, AxisY.Mask(v))
	assert.Equal(t, v, Axes(0).Mask(v))
}
