package loader

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/Carmen-Shannon/oxy-hero/engine/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const keyboardGLTF = `{
  "asset": {"version": "2.0", "generator": "test"},
  "scene": 0,
  "scenes": [{"nodes": [0]}],
  "nodes": [
    {"name": "keyboard", "children": [1, 2]},
    {"name": "keys", "children": [3, 4]},
    {"name": "switches", "children": [5, 6]},
    {"name": "esc", "translation": [-1, 0, 0], "rotation": [0.70710677, 0, 0, 0.70710677]},
    {"name": "q", "matrix": [2,0,0,0, 0,2,0,0, 0,0,2,0, 1,2,3,1]},
    {"translation": [0.5, 0, 0]},
    {"name": "esc", "scale": [1, 3, 1]}
  ]
}`

func glb(t *testing.T, doc string) []byte {
	t.Helper()
	payload := []byte(doc)
	for len(payload)%4 != 0 {
		payload = append(payload, ' ')
	}
	var buf bytes.Buffer
	total := uint32(12 + 8 + len(payload))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, gltfGLBHeader{Magic: gltfGLBMagic, Version: gltfGLBVersion, Length: total}))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, gltfGLBChunkHeader{ChunkLength: uint32(len(payload)), ChunkType: gltfGLBChunkJSON}))
	buf.Write(payload)
	return buf.Bytes()
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func TestLoadReaderBuildsHierarchy(t *testing.T) {
	l := NewLoader()
	h, err := l.LoadReader("keyboard", strings.NewReader(keyboardGLTF), false)
	require.NoError(t, err)

	assert.Equal(t, []string{"keyboard"}, h.Roots)
	assert.Equal(t, []string{"esc", "esc.6", "keyboard", "keys", "node5", "q", "switches"}, sortedKeys(h.Nodes))
	assert.Equal(t, []string{"keys", "switches"}, h.Children["keyboard"])
	assert.Equal(t, []string{"node5", "esc.6"}, h.Children["switches"])

	esc := h.Nodes["esc"]
	assert.Equal(t, "esc", esc.Name())
	assert.Equal(t, uint64(3), esc.ID())
	assert.InDelta(t, -1, esc.Position().X(), 1e-6)
	assert.InDelta(t, math.Pi/2, esc.Rotation().X(), 1e-5)
	assert.InDelta(t, 0, esc.Rotation().Y(), 1e-5)
	assert.InDelta(t, 0, esc.Rotation().Z(), 1e-5)

	q := h.Nodes["q"]
	assert.InDelta(t, 1, q.Position().X(), 1e-6)
	assert.InDelta(t, 2, q.Position().Y(), 1e-6)
	assert.InDelta(t, 3, q.Position().Z(), 1e-6)
	assert.InDelta(t, 2, q.Scale().Y(), 1e-6)
	assert.InDelta(t, 0, q.Rotation().Len(), 1e-6)

	assert.InDelta(t, 3, h.Nodes["esc.6"].Scale().Y(), 1e-6)
	assert.InDelta(t, 1, h.Nodes["node5"].Scale().X(), 1e-6)

	cached, ok := l.Get("keyboard")
	require.True(t, ok)
	assert.Same(t, h.Nodes["esc"], cached.Nodes["esc"])
}

func TestLeaves(t *testing.T) {
	h, err := NewLoader().LoadReader("keyboard", strings.NewReader(keyboardGLTF), false)
	require.NoError(t, err)

	assert.Equal(t, []string{"esc", "esc.6", "node5", "q"}, sortedKeys(h.Leaves("keyboard")))
	assert.Equal(t, []string{"esc.6", "node5"}, sortedKeys(h.Leaves("switches")))
	assert.Empty(t, h.Leaves("esc"))
	assert.Empty(t, h.Leaves("missing"))
}

func TestLoadGLB(t *testing.T) {
	data := glb(t, keyboardGLTF)

	h, err := NewLoader().LoadReader("glb", bytes.NewReader(data), true)
	require.NoError(t, err)
	assert.Len(t, h.Nodes, 7)

	// The magic number is enough to recognise a GLB container.
	h, err = NewLoader().LoadReader("sniffed", bytes.NewReader(data), false)
	require.NoError(t, err)
	assert.Len(t, h.Nodes, 7)
}

func TestLoadFileIsCached(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keyboard.gltf")
	require.NoError(t, os.WriteFile(path, []byte(keyboardGLTF), 0o644))

	l := NewLoader()
	first, err := l.Load(path)
	require.NoError(t, err)
	second, err := l.Load(path)
	require.NoError(t, err)
	assert.Same(t, first.Nodes["q"], second.Nodes["q"])

	_, err = l.Load(filepath.Join(t.TempDir(), "missing.glb"))
	assert.Error(t, err)
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	paths := make([]string, 3)
	for i := range paths {
		paths[i] = filepath.Join(dir, fmt.Sprintf("keyboard%d.gltf", i))
		require.NoError(t, os.WriteFile(paths[i], []byte(keyboardGLTF), 0o644))
	}
	missing := filepath.Join(dir, "missing.glb")

	l := NewLoader(WithWorkers(2), WithWorkers(0))
	got, err := l.LoadAll(append(paths, missing)...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.glb")
	require.Len(t, got, 3)

	for _, path := range paths {
		cached, ok := l.Get(path)
		require.True(t, ok)
		assert.Same(t, cached.Nodes["q"], got[path].Nodes["q"])
	}
	_, ok := got[missing]
	assert.False(t, ok)

	none, err := l.LoadAll()
	assert.NoError(t, err)
	assert.Empty(t, none)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		data  []byte
		isGLB bool
		want  error
	}{
		{"bad version", []byte(`{"asset": {"version": "1.0"}}`), false, errInvalidGLTFVersion},
		{"bad magic", append([]byte("nope"), make([]byte, 12)...), true, errInvalidGLBMagic},
		{"no json chunk", func() []byte {
			var buf bytes.Buffer
			_ = binary.Write(&buf, binary.LittleEndian, gltfGLBHeader{Magic: gltfGLBMagic, Version: gltfGLBVersion, Length: 12})
			return buf.Bytes()
		}(), true, errMissingJSONChunk},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoader().LoadReader(tt.name, bytes.NewReader(tt.data), tt.isGLB)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := NewLoader().LoadReader("cycle", strings.NewReader(`{"asset":{"version":"2.0"},"nodes":[{"children":[0]}]}`), false)
	assert.Error(t, err)
	_, err = NewLoader().LoadReader("json", strings.NewReader(`{`), false)
	assert.Error(t, err)
}

func TestRootsWithoutScene(t *testing.T) {
	doc := `{"asset":{"version":"2.0"},"nodes":[{"name":"b"},{"name":"a","children":[0]},{"name":"c"}]}`
	h, err := NewLoader().LoadReader("roots", strings.NewReader(doc), false)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, h.Roots)
}

func TestDuplicateNamesNeverClash(t *testing.T) {
	doc := `{"asset":{"version":"2.0"},"nodes":[{"name":"x"},{"name":"x.2"},{"name":"x"},{"name":"x.2.1"}]}`
	h, err := NewLoader().LoadReader("dupes", strings.NewReader(doc), false)
	require.NoError(t, err)

	assert.Equal(t, []string{"x", "x.2", "x.2.1", "x.2.1.3"}, h.Roots)
	require.Len(t, h.Nodes, 4)
	for i, label := range h.Roots {
		assert.Equal(t, uint64(i), h.Nodes[label].ID(), label)
		assert.Equal(t, label, h.Nodes[label].Name())
	}
}

func TestProcedural(t *testing.T) {
	l := layout.Layout{{"esc", "tab"}, {}, {"f1"}}
	h := Procedural(l, 0.1)

	assert.Equal(t, []string{KeyboardLabel}, h.Roots)
	assert.Len(t, h.Leaves(KeysLabel), 3)
	assert.Equal(t, []string{"switch/esc", "switch/f1", "switch/tab"}, sortedKeys(h.Leaves(SwitchesLabel)))
	assert.Len(t, h.Leaves(KeyboardLabel), 6)

	assert.InDelta(t, -0.1, h.Nodes["esc"].Position().X(), 1e-6)
	assert.InDelta(t, 0.1, h.Nodes["tab"].Position().Z(), 1e-6)
	assert.InDelta(t, 0.1, h.Nodes["f1"].Position().X(), 1e-6)
	assert.InDelta(t, -0.02, h.Nodes["switch/f1"].Position().Y(), 1e-6)
}
