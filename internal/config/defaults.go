package config

import (
	_ "embed"
)

//go:embed defaults/render.yaml
var defaultRenderYAML []byte

// Default returns the stock configuration: a 64x32 grid of the spinning
// torus at 33 ms per frame.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			Width:   64,
			Height:  32,
			FrameMS: 33,
			Workers: 1,
		},
		Tracer: TracerConfig{
			MaxDistance: 20.0,
			Epsilon:     0.01,
			MaxSteps:    100,
			NormalStep:  0.01,
		},
		Scene: SceneConfig{
			Shape:            "torus",
			SphereRadius:     1.0,
			TorusMajorRadius: 1.5,
			TorusTubeWidth:   0.5,
			SpinRate:         90,
			Tilt:             90,
		},
		Camera: CameraConfig{
			Origin:  [3]float32{0, 0, 6},
			TargetZ: 4,
			AspectX: 1.5,
		},
		Shading: ShadingConfig{
			Light: [3]float32{-1, 4, -2},
			Ramp:  ".:+*=#%@",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRenderYAML
}
