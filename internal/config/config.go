// Package config handles loading the transform pipeline description.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Config describes a model-view-projection pipeline and the points to project.
type Config struct {
	Projection ProjectionConfig `yaml:"projection"`
	Camera     CameraConfig     `yaml:"camera"`
	Model      ModelConfig      `yaml:"model"`
	Points     [][3]float64     `yaml:"points"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ProjectionConfig holds projection matrix settings.
type ProjectionConfig struct {
	FovYDeg      float64 `yaml:"fovy_deg"`
	Aspect       float64 `yaml:"aspect"`
	ZNear        float64 `yaml:"z_near"`
	ZFar         float64 `yaml:"z_far"`
	Orthographic bool    `yaml:"orthographic"`
	OrthoHeight  float64 `yaml:"ortho_height"` // Visible height for orthographic projection
}

// CameraConfig holds the view matrix settings.
type CameraConfig struct {
	Eye    [3]float64 `yaml:"eye"`
	Target [3]float64 `yaml:"target"`
	Up     [3]float64 `yaml:"up"`
}

// ModelConfig holds the model transform.
type ModelConfig struct {
	Position [3]float64     `yaml:"position"`
	Rotation RotationConfig `yaml:"rotation"`
}

// RotationConfig is an axis-angle rotation.
type RotationConfig struct {
	Axis     [3]float64 `yaml:"axis"`
	AngleDeg float64    `yaml:"angle_deg"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Projection: ProjectionConfig{
			FovYDeg:     60,
			Aspect:      16.0 / 9.0,
			ZNear:       0.1,
			ZFar:        100,
			OrthoHeight: 10,
		},
		Camera: CameraConfig{
			Eye:    [3]float64{0, 0, 5},
			Target: [3]float64{0, 0, 0},
			Up:     [3]float64{0, 1, 0},
		},
		Model: ModelConfig{
			Rotation: RotationConfig{Axis: [3]float64{0, 1, 0}},
		},
		Points: [][3]float64{{0, 0, 0}},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate rejects settings that would produce a degenerate pipeline.
// The math package itself never validates; this guards the command line.
func (c *Config) Validate() error {
	p := c.Projection
	if p.ZNear == p.ZFar {
		return fmt.Errorf("%w: z_near and z_far are both %g", ErrInvalid, p.ZNear)
	}
	if p.Aspect == 0 {
		return fmt.Errorf("%w: aspect must be non-zero", ErrInvalid)
	}
	if p.Orthographic {
		if p.OrthoHeight <= 0 {
			return fmt.Errorf("%w: ortho_height must be positive, got %g", ErrInvalid, p.OrthoHeight)
		}
	} else if p.FovYDeg <= 0 || p.FovYDeg >= 180 {
		return fmt.Errorf("%w: fovy_deg must be in (0, 180), got %g", ErrInvalid, p.FovYDeg)
	}
	if c.Camera.Eye == c.Camera.Target {
		return fmt.Errorf("%w: camera eye and target coincide", ErrInvalid)
	}
	if c.Camera.Up == [3]float64{} {
		return fmt.Errorf("%w: camera up is zero", ErrInvalid)
	}
	if c.Model.Rotation.AngleDeg != 0 && c.Model.Rotation.Axis == [3]float64{} {
		return fmt.Errorf("%w: rotation axis is zero", ErrInvalid)
	}
	return nil
}
