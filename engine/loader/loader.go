// package loader imports the node hierarchy of glTF/GLB models as flat, labeled node handles.
package loader

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-hero/engine/node"
	"github.com/go-gl/mathgl/mgl32"
)

// Hierarchy is a model's scene graph resolved into labeled node handles.
// Every node is present in Nodes; unnamed nodes are labeled "node<index>" and repeated
// names get a ".<index>" suffix. Transforms are local to the parent node.
type Hierarchy struct {
	// Nodes holds every node keyed by label.
	Nodes map[string]node.Node
	// Children holds the child labels of each node in document order.
	Children map[string][]string
	// Roots holds the labels of the default scene's root nodes.
	Roots []string
}

// Leaves returns every descendant of root that has no children, keyed by label.
// Root itself is never included. An unknown root yields an empty map.
//
// Parameters:
//   - root: label of the subtree root
//
// Returns:
//   - map[string]node.Node: the leaf nodes of the subtree
func (h Hierarchy) Leaves(root string) map[string]node.Node {
	out := make(map[string]node.Node)
	if _, ok := h.Nodes[root]; !ok {
		return out
	}
	visited := map[string]bool{root: true}
	stack := append([]string(nil), h.Children[root]...)
	for len(stack) > 0 {
		label := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[label] {
			continue
		}
		visited[label] = true
		children := h.Children[label]
		if len(children) == 0 {
			out[label] = h.Nodes[label]
			continue
		}
		stack = append(stack, children...)
	}
	return out
}

// Loader imports and caches model hierarchies.
type Loader interface {
	// Load imports a .gltf or .glb file and caches the result by path.
	// If the path is already cached, the cached hierarchy is returned.
	//
	// Parameters:
	//   - path: the file path to the model file
	//
	// Returns:
	//   - Hierarchy: the imported node hierarchy
	//   - error: error if reading or parsing fails
	Load(path string) (Hierarchy, error)

	// LoadReader imports a model from a reader stream and caches it by the given name.
	//
	// Parameters:
	//   - name: the cache key for the loaded hierarchy
	//   - r: the reader providing model data
	//   - isGLB: true if the reader provides GLB binary data
	//
	// Returns:
	//   - Hierarchy: the imported node hierarchy
	//   - error: error if reading or parsing fails
	LoadReader(name string, r io.Reader, isGLB bool) (Hierarchy, error)

	// LoadAll imports several model files concurrently on the loader's worker pool.
	// Every path is attempted; hierarchies are returned for the ones that loaded.
	//
	// Parameters:
	//   - paths: the model files to load
	//
	// Returns:
	//   - map[string]Hierarchy: the loaded hierarchies keyed by path
	//   - error: the joined errors of the paths that failed, or nil
	LoadAll(paths ...string) (map[string]Hierarchy, error)

	// Get retrieves a cached hierarchy by name.
	//
	// Parameters:
	//   - name: the cache key to look up
	//
	// Returns:
	//   - Hierarchy: the cached hierarchy
	//   - bool: false if nothing is cached under name
	Get(name string) (Hierarchy, bool)
}

type loader struct {
	mu sync.RWMutex

	cache   map[string]Hierarchy
	workers int
	pool    worker.DynamicWorkerPool
}

var _ Loader = &loader{}

// NewLoader creates a new Loader with an empty cache and the given options applied.
//
// Parameters:
//   - options: a variadic list of LoaderBuilderOption functions to configure the Loader
//
// Returns:
//   - Loader: the newly created loader
func NewLoader(options ...LoaderBuilderOption) Loader {
	l := &loader{
		cache:   make(map[string]Hierarchy),
		workers: max(runtime.NumCPU()-1, 1),
	}
	for _, option := range options {
		option(l)
	}
	l.pool = worker.NewDynamicWorkerPool(l.workers, 64, 1*time.Second)
	return l
}

func (l *loader) Load(path string) (Hierarchy, error) {
	if h, ok := l.Get(path); ok {
		return h, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Hierarchy{}, fmt.Errorf("failed to read file: %w", err)
	}
	isGLB := strings.ToLower(filepath.Ext(path)) == ".glb"
	h, err := l.build(data, isGLB)
	if err != nil {
		return Hierarchy{}, fmt.Errorf("failed to load %s: %w", path, err)
	}

	l.mu.Lock()
	l.cache[path] = h
	l.mu.Unlock()
	return h, nil
}

func (l *loader) LoadReader(name string, r io.Reader, isGLB bool) (Hierarchy, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Hierarchy{}, fmt.Errorf("failed to read data: %w", err)
	}
	h, err := l.build(data, isGLB)
	if err != nil {
		return Hierarchy{}, fmt.Errorf("failed to load %s: %w", name, err)
	}

	l.mu.Lock()
	l.cache[name] = h
	l.mu.Unlock()
	return h, nil
}

func (l *loader) LoadAll(paths ...string) (map[string]Hierarchy, error) {
	results := make([]Hierarchy, len(paths))
	errs := make([]error, len(paths))

	// The pool only waits for idle workers to exit, so a WaitGroup marks the batch done.
	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		l.pool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				results[i], errs[i] = l.Load(path)
				return nil, nil
			},
		})
	}
	wg.Wait()

	out := make(map[string]Hierarchy, len(paths))
	for i, path := range paths {
		if errs[i] == nil {
			out[path] = results[i]
		}
	}
	return out, errors.Join(errs...)
}

func (l *loader) Get(name string) (Hierarchy, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	h, ok := l.cache[name]
	return h, ok
}

func (l *loader) build(data []byte, isGLB bool) (Hierarchy, error) {
	doc, err := parseDocument(data, isGLB)
	if err != nil {
		return Hierarchy{}, err
	}

	labels := nodeLabels(doc.Nodes)
	h := Hierarchy{
		Nodes:    make(map[string]node.Node, len(doc.Nodes)),
		Children: make(map[string][]string),
	}
	for i, gn := range doc.Nodes {
		position, rotation, scale := decompose(gn)
		h.Nodes[labels[i]] = node.NewNode(
			node.WithID(uint64(i)),
			node.WithName(labels[i]),
			node.WithPosition(position[0], position[1], position[2]),
			node.WithRotation(rotation[0], rotation[1], rotation[2]),
			node.WithScale(scale[0], scale[1], scale[2]),
		)
		for _, c := range gn.Children {
			h.Children[labels[i]] = append(h.Children[labels[i]], labels[c])
		}
	}

	for _, idx := range rootIndices(doc) {
		h.Roots = append(h.Roots, labels[idx])
	}
	return h, nil
}

// nodeLabels assigns every node a unique label. A repeated name becomes "<name>.<index>",
// extended with ".<n>" until it no longer clashes.
func nodeLabels(nodes []gltfNode) []string {
	labels := make([]string, len(nodes))
	seen := make(map[string]bool, len(nodes))
	for i, n := range nodes {
		label := n.Name
		if label == "" {
			label = "node" + strconv.Itoa(i)
		}
		if seen[label] {
			base := label + "." + strconv.Itoa(i)
			label = base
			for k := 1; seen[label]; k++ {
				label = base + "." + strconv.Itoa(k)
			}
		}
		seen[label] = true
		labels[i] = label
	}
	return labels
}

// rootIndices returns the default scene's root nodes, or every parentless node when the
// document declares no usable scene.
func rootIndices(doc *gltfDocument) []int {
	sceneIdx := 0
	if doc.Scene != nil {
		sceneIdx = *doc.Scene
	}
	if sceneIdx >= 0 && sceneIdx < len(doc.Scenes) {
		roots := make([]int, 0, len(doc.Scenes[sceneIdx].Nodes))
		for _, idx := range doc.Scenes[sceneIdx].Nodes {
			if idx >= 0 && idx < len(doc.Nodes) {
				roots = append(roots, idx)
			}
		}
		return roots
	}

	hasParent := make(map[int]bool)
	for _, n := range doc.Nodes {
		for _, c := range n.Children {
			hasParent[c] = true
		}
	}
	roots := make([]int, 0)
	for i := range doc.Nodes {
		if !hasParent[i] {
			roots = append(roots, i)
		}
	}
	sort.Ints(roots)
	return roots
}

// decompose returns a node's local position, XYZ Euler rotation in radians and scale.
func decompose(n gltfNode) (position, rotation, scale mgl32.Vec3) {
	if n.Matrix != nil {
		m := mgl32.Mat4(*n.Matrix)
		position = m.Col(3).Vec3()
		scale = mgl32.Vec3{m.Col(0).Vec3().Len(), m.Col(1).Vec3().Len(), m.Col(2).Vec3().Len()}
		var r mgl32.Mat3
		for c := 0; c < 3; c++ {
			col := m.Col(c).Vec3()
			if scale[c] != 0 {
				col = col.Mul(1 / scale[c])
			}
			r.SetCol(c, col)
		}
		return position, eulerXYZ(r), scale
	}

	scale = mgl32.Vec3{1, 1, 1}
	if n.Translation != nil {
		position = mgl32.Vec3(*n.Translation)
	}
	if n.Scale != nil {
		scale = mgl32.Vec3(*n.Scale)
	}
	if n.Rotation != nil {
		q := mgl32.Quat{W: n.Rotation[3], V: mgl32.Vec3{n.Rotation[0], n.Rotation[1], n.Rotation[2]}}.Normalize()
		rotation = eulerXYZ(q.Mat4().Mat3())
	}
	return position, rotation, scale
}

// eulerXYZ extracts intrinsic XYZ Euler angles from a pure rotation matrix.
func eulerXYZ(m mgl32.Mat3) mgl32.Vec3 {
	m13 := mgl32.Clamp(m.At(0, 2), -1, 1)
	y := float32(math.Asin(float64(m13)))
	if math.Abs(float64(m13)) < 0.9999999 {
		x := float32(math.Atan2(float64(-m.At(1, 2)), float64(m.At(2, 2))))
		z := float32(math.Atan2(float64(-m.At(0, 1)), float64(m.At(0, 0))))
		return mgl32.Vec3{x, y, z}
	}
	x := float32(math.Atan2(float64(m.At(2, 1)), float64(m.At(1, 1))))
	return mgl32.Vec3{x, y, 0}
}
