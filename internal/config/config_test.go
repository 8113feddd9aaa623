package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded YAML = %+v\nexpected %+v", cfg, Default())
	}
}

func TestDefaultValues(t *testing.T) {
	cfg := Default()

	if cfg.Display.Width != 64 || cfg.Display.Height != 32 {
		t.Errorf("display = %dx%d, expected 64x32", cfg.Display.Width, cfg.Display.Height)
	}
	if cfg.FrameInterval() != 33*time.Millisecond {
		t.Errorf("FrameInterval() = %v, expected 33ms", cfg.FrameInterval())
	}
	if cfg.Tracer.MaxDistance != 20 || cfg.Tracer.MaxSteps != 100 {
		t.Errorf("tracer = %+v", cfg.Tracer)
	}
	if len(cfg.Shading.Ramp) != 8 {
		t.Errorf("ramp %q should have 8 glyphs", cfg.Shading.Ramp)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() failed on defaults: %v", err)
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("scene:\n  shape: sphere\n  sphere_radius: 1.25\ndisplay:\n  workers: 4\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Scene.Shape != "sphere" || cfg.Scene.SphereRadius != 1.25 {
		t.Errorf("scene = %+v, expected overrides applied", cfg.Scene)
	}
	if cfg.Display.Workers != 4 {
		t.Errorf("workers = %d, expected 4", cfg.Display.Workers)
	}
	// Untouched fields keep their defaults.
	if cfg.Display.Width != 64 || cfg.Tracer.Epsilon != 0.01 {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("display: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"zero width", func(c *Config) { c.Display.Width = 0 }, "display size"},
		{"zero frame", func(c *Config) { c.Display.FrameMS = 0 }, "frame_ms"},
		{"negative workers", func(c *Config) { c.Display.Workers = -1 }, "workers"},
		{"zero max distance", func(c *Config) { c.Tracer.MaxDistance = 0 }, "max_distance"},
		{"zero epsilon", func(c *Config) { c.Tracer.Epsilon = 0 }, "epsilon"},
		{"zero steps", func(c *Config) { c.Tracer.MaxSteps = 0 }, "max_steps"},
		{"zero normal step", func(c *Config) { c.Tracer.NormalStep = 0 }, "normal_step"},
		{"empty shape", func(c *Config) { c.Scene.Shape = "" }, "shape"},
		{"flat camera", func(c *Config) { c.Camera.TargetZ = c.Camera.Origin[2] }, "target_z"},
		{"empty ramp", func(c *Config) { c.Shading.Ramp = "" }, "ramp"},
		{"multibyte ramp", func(c *Config) { c.Shading.Ramp = "░▒▓█" }, "printable ASCII"},
		{"control byte ramp", func(c *Config) { c.Shading.Ramp = ".:\t#" }, "printable ASCII"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("error %q should mention %q", err, tc.field)
			}
		})
	}
}

func TestParseRejectsMultibyteRamp(t *testing.T) {
	_, err := Parse([]byte("shading:\n  ramp: \"░▒▓█\"\n"))
	if err == nil {
		t.Fatal("Parse() should reject a ramp of multi-byte glyphs")
	}

	cfg, err := Parse([]byte("shading:\n  ramp: \" .oO@\"\n"))
	if err != nil {
		t.Fatalf("Parse() of an ASCII ramp failed: %v", err)
	}
	if cfg.Shading.Ramp != " .oO@" {
		t.Errorf("Ramp = %q, want %q", cfg.Shading.Ramp, " .oO@")
	}
}
