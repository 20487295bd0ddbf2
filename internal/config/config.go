// Package config handles application configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"math"
)

// Config holds all application settings.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Camera     CameraConfig     `yaml:"camera"`
	Projection ProjectionConfig `yaml:"projection"`
	Scene      SceneConfig      `yaml:"scene"`
	Assets     AssetsConfig     `yaml:"assets"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	Backend    string `yaml:"backend"` // sdl, glfw or headless
	Frames     int    `yaml:"frames"`  // headless only, frames before closing
}

// CameraConfig holds free-fly camera settings.
type CameraConfig struct {
	Position    [3]float32 `yaml:"position"`
	Sensitivity float32    `yaml:"sensitivity"` // radians per cursor unit
	PitchLimit  float32    `yaml:"pitch_limit"` // radians
	MoveSpeed   float32    `yaml:"move_speed"`  // world units per second
}

// ProjectionConfig holds perspective projection settings.
type ProjectionConfig struct {
	FovY float32 `yaml:"fov_y"` // radians
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`
}

// SceneConfig holds instance layout settings.
type SceneConfig struct {
	Instances    int        `yaml:"instances"`
	Seed         uint64     `yaml:"seed"` // 0 seeds from the clock
	RotationStep float32    `yaml:"rotation_step"`
	RotationAxis [3]float32 `yaml:"rotation_axis"`
	BoundsMin    [3]float32 `yaml:"bounds_min"`
	BoundsMax    [3]float32 `yaml:"bounds_max"`
}

// AssetsConfig holds shader and texture paths.
// Empty shader paths use the built-in shaders.
type AssetsConfig struct {
	VertexShader   string          `yaml:"vertex_shader"`
	FragmentShader string          `yaml:"fragment_shader"`
	Textures       []TextureConfig `yaml:"textures"`
}

// TextureConfig describes one texture bound to unit N (its list position).
type TextureConfig struct {
	Path  string `yaml:"path"`
	FlipY bool   `yaml:"flip_y"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "flycubes",
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
			Backend:    "sdl",
			Frames:     600,
		},
		Camera: CameraConfig{
			Position:    [3]float32{0, 0, 3},
			Sensitivity: 0.001,
			PitchLimit:  1.55,
			MoveSpeed:   2.5,
		},
		Projection: ProjectionConfig{
			FovY: math.Pi / 4,
			Near: 0.1,
			Far:  100,
		},
		Scene: SceneConfig{
			Instances:    10,
			Seed:         0,
			RotationStep: 0.35,
			RotationAxis: [3]float32{1, 0.3, 0.5},
			BoundsMin:    [3]float32{-2, -2, -5},
			BoundsMax:    [3]float32{2, 2, 0},
		},
		Assets: AssetsConfig{
			Textures: []TextureConfig{
				{Path: "tex/container.jpg"},
				{Path: "tex/awesomeface.png", FlipY: true},
			},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Backends lists the accepted window backends.
var Backends = []string{"sdl", "glfw", "headless"}

// Validate checks that the settings describe a renderable scene.
func (c *Config) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if !validBackend(c.Window.Backend) {
		errs = append(errs, fmt.Errorf("unknown window backend %q (want one of %v)", c.Window.Backend, Backends))
	}
	if c.Window.Backend == "headless" && c.Window.Frames <= 0 {
		errs = append(errs, fmt.Errorf("headless frames %d must be positive", c.Window.Frames))
	}

	if c.Camera.Sensitivity <= 0 {
		errs = append(errs, fmt.Errorf("camera sensitivity %v must be positive", c.Camera.Sensitivity))
	}
	if c.Camera.PitchLimit <= 0 || c.Camera.PitchLimit >= math.Pi/2 {
		errs = append(errs, fmt.Errorf("camera pitch limit %v must be in (0, pi/2)", c.Camera.PitchLimit))
	}

	p := c.Projection
	if p.FovY <= 0 || p.FovY >= math.Pi {
		errs = append(errs, fmt.Errorf("projection fov_y %v must be in (0, pi)", p.FovY))
	}
	if p.Near <= 0 || p.Far <= p.Near {
		errs = append(errs, fmt.Errorf("projection range near=%v far=%v must satisfy 0 < near < far", p.Near, p.Far))
	}

	s := c.Scene
	if s.Instances <= 0 {
		errs = append(errs, fmt.Errorf("scene instances %d must be positive", s.Instances))
	}
	if s.RotationAxis == [3]float32{} {
		errs = append(errs, errors.New("scene rotation axis must be non-zero"))
	}
	for i := range s.BoundsMin {
		if s.BoundsMin[i] > s.BoundsMax[i] {
			errs = append(errs, fmt.Errorf("scene bounds axis %d: min %v > max %v", i, s.BoundsMin[i], s.BoundsMax[i]))
		}
	}

	return errors.Join(errs...)
}

func validBackend(name string) bool {
	for _, b := range Backends {
		if b == name {
			return true
		}
	}
	return false
}
