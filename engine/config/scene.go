package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Carmen-Shannon/oxy-hero/engine/camera"
	"github.com/Carmen-Shannon/oxy-hero/engine/layout"
	"github.com/Carmen-Shannon/oxy-hero/engine/wave"
	"gopkg.in/yaml.v3"
)

// Scene is the declarative part of the hero scene. Fields missing from a scene file keep
// their DefaultScene values.
type Scene struct {
	Layout   layout.Layout `yaml:"layout"`
	Wave     wave.Config   `yaml:"wave"`
	Camera   Camera        `yaml:"camera"`
	Scroll   Scroll        `yaml:"scroll"`
	Keycaps  [][3]float32  `yaml:"keycaps"`
	Variants []Variant     `yaml:"variants"`
}

// Camera configures the pointer-following camera.
type Camera struct {
	Base        [3]float32 `yaml:"base"`
	LookAt      [3]float32 `yaml:"lookAt"`
	Sensitivity float32    `yaml:"sensitivity"`
	Damping     float32    `yaml:"damping"`
}

// Scroll configures how the scroll timeline follows the page.
type Scroll struct {
	// Lag is the catch-up time constant in seconds; 0 scrubs directly.
	Lag float32 `yaml:"lag"`
}

// Variant is a selectable keycap colourway and the clear colour shown with it.
type Variant struct {
	ID    string     `yaml:"id"`
	Color [3]float64 `yaml:"color"`
}

// DefaultScene returns the stock hero scene: the 15-column keyboard
// layout, the default wave, a camera four units back from the origin and ten floating keycaps.
//
// Returns:
//   - Scene: the default scene
func DefaultScene() Scene {
	return Scene{
		Layout: layout.KeyboardColumns(),
		Wave:   wave.DefaultConfig(),
		Camera: Camera{
			Base:        [3]float32{0, 0, 4},
			Sensitivity: 0.3,
			Damping:     0.1,
		},
		Scroll: Scroll{Lag: 1},
		Keycaps: [][3]float32{
			{0, -0.4, 2.6},
			{-1.4, 0, 2.3},
			{-1.8, 1, 1.5},
			{0, 1, 1},
			{0.7, 0.9, 1.4},
			{1.3, -0.3, 2.3},
			{0, 1, 2},
			{-0.7, 0.6, 2},
			{-0.77, 0.1, 2.8},
			{2, 0, 1},
		},
		Variants: []Variant{
			{ID: "midnight", Color: [3]float64{0.03, 0.04, 0.08}},
			{ID: "sand", Color: [3]float64{0.18, 0.15, 0.11}},
			{ID: "mint", Color: [3]float64{0.06, 0.14, 0.11}},
			{ID: "coral", Color: [3]float64{0.17, 0.07, 0.06}},
		},
	}
}

// LoadScene reads a scene file. An empty path returns DefaultScene.
//
// Parameters:
//   - path: the scene YAML file, or ""
//
// Returns:
//   - Scene: the loaded scene
//   - error: error if the file cannot be read, decoded or validated
func LoadScene(path string) (Scene, error) {
	if path == "" {
		return DefaultScene(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("failed to read scene: %w", err)
	}
	s, err := ParseScene(data)
	if err != nil {
		return Scene{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseScene decodes scene YAML over DefaultScene and validates the result.
// Unknown keys are rejected.
//
// Parameters:
//   - data: the scene YAML
//
// Returns:
//   - Scene: the decoded scene
//   - error: error if decoding or validation fails
func ParseScene(data []byte) (Scene, error) {
	s := DefaultScene()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Scene{}, fmt.Errorf("failed to decode scene: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Scene{}, err
	}
	return s, nil
}

// Validate checks the layout, the wave and the camera and scroll settings.
//
// Returns:
//   - error: the first violation, or nil
func (s Scene) Validate() error {
	if err := s.Layout.Validate(); err != nil {
		return err
	}
	if err := s.Wave.Validate(); err != nil {
		return err
	}
	if s.Camera.Damping < 0 || s.Camera.Damping > 1 {
		return fmt.Errorf("camera damping %v must be within [0, 1]", s.Camera.Damping)
	}
	if s.Scroll.Lag < 0 {
		return fmt.Errorf("scroll lag %v must not be negative", s.Scroll.Lag)
	}
	seen := make(map[string]bool, len(s.Variants))
	for _, v := range s.Variants {
		if v.ID == "" || seen[v.ID] {
			return fmt.Errorf("variant id %q must be unique and non-empty", v.ID)
		}
		seen[v.ID] = true
	}
	return nil
}

// FollowerOptions converts the camera settings into follower options.
//
// Returns:
//   - []camera.FollowerBuilderOption: options for camera.NewFollower
func (s Scene) FollowerOptions() []camera.FollowerBuilderOption {
	c := s.Camera
	return []camera.FollowerBuilderOption{
		camera.WithBasePosition(c.Base[0], c.Base[1], c.Base[2]),
		camera.WithLookAt(c.LookAt[0], c.LookAt[1], c.LookAt[2]),
		camera.WithSensitivity(c.Sensitivity),
		camera.WithDamping(c.Damping),
	}
}

// Variant returns the variant with the given id.
//
// Parameters:
//   - id: the variant identifier
//
// Returns:
//   - Variant: the matching variant
//   - bool: false if no variant has that id
func (s Scene) Variant(id string) (Variant, bool) {
	for _, v := range s.Variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}
