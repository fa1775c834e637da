package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/transformation/engine/core"
	"github.com/spaghettifunk/transformation/engine/math"
)

var ErrInvalidConfig = errors.New("invalid config")

const (
	OutputFormatText = "text"
	OutputFormatLog  = "log"
	OutputFormatNone = "none"
)

const maxTargetFPS = 1000.0

type ApplicationConfig struct {
	// The application name used in log output.
	Name string `toml:"name"`
	// Number of frames to run, 0 runs until cancelled.
	Frames uint64 `toml:"frames"`
	// Frame pacing target, 0 disables pacing.
	TargetFPS float64 `toml:"target_fps"`
	LogLevel  string  `toml:"log_level"`
}

type AnimationConfig struct {
	// Radius of the circle the quad centre follows.
	OrbitRadius float32 `toml:"orbit_radius"`
	// Angular speed of the orbit, in radians per second.
	OrbitSpeed float32 `toml:"orbit_speed"`
	// Spin per second, interpreted in AngleUnit.
	SpinRate      float32    `toml:"spin_rate"`
	AngleUnit     string     `toml:"angle_unit"`
	Axis          [3]float32 `toml:"axis"`
	Scale         [3]float32 `toml:"scale"`
	NormalizeAxis bool       `toml:"normalize_axis"`
}

type OutputConfig struct {
	Format string `toml:"format"`
	// Emit every Nth frame; 0 and 1 both emit every frame.
	Every   uint64 `toml:"every"`
	Uniform string `toml:"uniform"`
}

type Config struct {
	Application ApplicationConfig `toml:"application"`
	Animation   AnimationConfig   `toml:"animation"`
	Output      OutputConfig      `toml:"output"`
}

// Default returns the parameters of the classic orbiting quad: a 0.35 scaled
// quad spinning 250 units per second around z while orbiting at radius 0.75.
func Default() *Config {
	return &Config{
		Application: ApplicationConfig{
			Name:      "Transformation",
			Frames:    0,
			TargetFPS: 60,
			LogLevel:  "info",
		},
		Animation: AnimationConfig{
			OrbitRadius: 0.75,
			OrbitSpeed:  2.5,
			SpinRate:    250,
			AngleUnit:   math.AngleUnitRadians.String(),
			Axis:        [3]float32{0, 0, 1},
			Scale:       [3]float32{0.35, 0.35, 0.35},
		},
		Output: OutputConfig{
			Format:  OutputFormatText,
			Every:   1,
			Uniform: "modelmat",
		},
	}
}

// Parse decodes a TOML document on top of Default. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, strict.String())
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Marshal renders cfg back to TOML.
func (c *Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}

// Validate checks enumerated fields and clamps the frame pacing target.
func (c *Config) Validate() error {
	if _, err := c.ParsedAngleUnit(); err != nil {
		return fmt.Errorf("%w: animation.angle_unit: %v", ErrInvalidConfig, err)
	}
	if _, err := c.ParsedLogLevel(); err != nil {
		return fmt.Errorf("%w: application.log_level: %v", ErrInvalidConfig, err)
	}
	switch c.Output.Format {
	case OutputFormatText, OutputFormatLog, OutputFormatNone:
	default:
		return fmt.Errorf("%w: output.format %q", ErrInvalidConfig, c.Output.Format)
	}
	if c.Output.Uniform == "" {
		return fmt.Errorf("%w: output.uniform is empty", ErrInvalidConfig)
	}
	if c.Application.TargetFPS < 0 {
		return fmt.Errorf("%w: application.target_fps %v is negative", ErrInvalidConfig, c.Application.TargetFPS)
	}
	if c.Application.TargetFPS > 0 {
		c.Application.TargetFPS = math.Clamp(c.Application.TargetFPS, 1, maxTargetFPS)
	}
	if c.Output.Every == 0 {
		c.Output.Every = 1
	}
	return nil
}

func (c *Config) ParsedAngleUnit() (math.AngleUnit, error) {
	return math.ParseAngleUnit(c.Animation.AngleUnit)
}

func (c *Config) ParsedLogLevel() (core.LogLevel, error) {
	return core.ParseLogLevel(c.Application.LogLevel)
}
