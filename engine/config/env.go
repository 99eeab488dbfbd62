// package config loads process settings from the environment and scene declarations from YAML.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds the settings read from environment variables once at startup.
type Env struct {
	// ScenePath is an optional scene YAML file. Empty means DefaultScene.
	ScenePath string `env:"OXY_HERO_SCENE"`
	// ModelPath is an optional glTF/GLB keyboard model. Empty means a procedural keyboard.
	ModelPath string `env:"OXY_HERO_MODEL"`
	// ShowcasePath is an optional model for the colour-changer keyboard.
	ShowcasePath string `env:"OXY_HERO_SHOWCASE_MODEL"`
	// ReducedMotion keeps the scene static, the equivalent of prefers-reduced-motion.
	ReducedMotion bool `env:"OXY_HERO_REDUCED_MOTION"`
	// Width and Height are the initial window size in pixels.
	Width  int `env:"OXY_HERO_WIDTH" envDefault:"1280"`
	Height int `env:"OXY_HERO_HEIGHT" envDefault:"720"`
	// Profiling enables the periodic profiler log line.
	Profiling bool `env:"OXY_HERO_PROFILING"`
	// ScrollSteps is how many wheel notches scroll the whole page.
	ScrollSteps int `env:"OXY_HERO_SCROLL_STEPS" envDefault:"20"`
}

// LoadEnv parses Env from the process environment.
//
// Returns:
//   - Env: the parsed settings
//   - error: error if a variable cannot be parsed or a size is not positive
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	if e.Width <= 0 || e.Height <= 0 {
		return Env{}, fmt.Errorf("parse env: window size %dx%d must be positive", e.Width, e.Height)
	}
	if e.ScrollSteps <= 0 {
		return Env{}, fmt.Errorf("parse env: scroll steps %d must be positive", e.ScrollSteps)
	}
	return e, nil
}
