// Package config provides YAML-based renderer configuration: frame size,
// pacing, marching limits, scene constants, camera, and shading.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config contains all tunables for a render run.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Tracer  TracerConfig  `yaml:"tracer"`
	Scene   SceneConfig   `yaml:"scene"`
	Camera  CameraConfig  `yaml:"camera"`
	Shading ShadingConfig `yaml:"shading"`
}

// DisplayConfig defines the output grid and frame pacing.
type DisplayConfig struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	FrameMS int `yaml:"frame_ms"` // Clock step and sleep per frame
	Workers int `yaml:"workers"`  // Goroutines rendering rows; 1 = sequential
}

// TracerConfig defines the sphere-tracing limits.
type TracerConfig struct {
	MaxDistance float32 `yaml:"max_distance"`
	Epsilon     float32 `yaml:"epsilon"`
	MaxSteps    int     `yaml:"max_steps"`
	NormalStep  float32 `yaml:"normal_step"`
}

// SceneConfig defines the implicit surface.
type SceneConfig struct {
	Shape            string  `yaml:"shape"`
	SphereRadius     float32 `yaml:"sphere_radius"`
	TorusMajorRadius float32 `yaml:"torus_major_radius"`
	TorusTubeWidth   float32 `yaml:"torus_tube_width"`
	SpinRate         float32 `yaml:"spin_rate"` // Degrees per second about Y
	Tilt             float32 `yaml:"tilt"`      // Fixed degrees about X
}

// CameraConfig defines the fixed camera.
type CameraConfig struct {
	Origin  [3]float32 `yaml:"origin"`
	TargetZ float32    `yaml:"target_z"`
	AspectX float32    `yaml:"aspect_x"` // Horizontal stretch of device coordinates
}

// ShadingConfig defines the point light and glyph ramp.
type ShadingConfig struct {
	Light [3]float32 `yaml:"light"`
	Ramp  string     `yaml:"ramp"`
}

// FrameInterval returns the per-frame clock step and sleep.
func (c Config) FrameInterval() time.Duration {
	return time.Duration(c.Display.FrameMS) * time.Millisecond
}

// Validate checks that the configuration can drive a renderer.
func (c Config) Validate() error {
	var errs []error

	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		errs = append(errs, fmt.Errorf("display size must be positive, got %dx%d", c.Display.Width, c.Display.Height))
	}
	if c.Display.FrameMS <= 0 {
		errs = append(errs, fmt.Errorf("frame_ms must be positive, got %d", c.Display.FrameMS))
	}
	if c.Display.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must not be negative, got %d", c.Display.Workers))
	}
	if c.Tracer.MaxDistance <= 0 {
		errs = append(errs, fmt.Errorf("max_distance must be positive, got %v", c.Tracer.MaxDistance))
	}
	if c.Tracer.Epsilon <= 0 {
		errs = append(errs, fmt.Errorf("epsilon must be positive, got %v", c.Tracer.Epsilon))
	}
	if c.Tracer.MaxSteps <= 0 {
		errs = append(errs, fmt.Errorf("max_steps must be positive, got %d", c.Tracer.MaxSteps))
	}
	if c.Tracer.NormalStep <= 0 {
		errs = append(errs, fmt.Errorf("normal_step must be positive, got %v", c.Tracer.NormalStep))
	}
	if c.Scene.Shape == "" {
		errs = append(errs, errors.New("scene shape must be set"))
	}
	// The camera looks from origin.z toward target_z; equal values would
	// yield a zero ray direction at the center pixel.
	if c.Camera.TargetZ == c.Camera.Origin[2] {
		errs = append(errs, errors.New("camera target_z must differ from origin z"))
	}
	if len(c.Shading.Ramp) == 0 {
		errs = append(errs, errors.New("shading ramp must not be empty"))
	}
	// Glyphs are written one byte per cell.
	for i := 0; i < len(c.Shading.Ramp); i++ {
		if b := c.Shading.Ramp[i]; b < ' ' || b > '~' {
			errs = append(errs, fmt.Errorf("shading ramp must be printable ASCII, got byte 0x%02x at %d", b, i))
			break
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
