// Package config loads the showroom settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"showroom/internal/movement"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "configs/showroom.yaml"

var (
	ErrInvalid       = errors.New("invalid config")
	ErrInvalidPreset = movement.ErrInvalidPreset
)

type Config struct {
	Window   WindowConfig            `yaml:"window"`
	Logging  LoggingConfig           `yaml:"logging"`
	Movement MovementConfig          `yaml:"movement"`
	Presets  map[string]PresetConfig `yaml:"presets"`
	Audio    AudioConfig             `yaml:"audio"`
	Catalog  CatalogConfig           `yaml:"catalog"`
}

type WindowConfig struct {
	Width        int32   `yaml:"width"`
	Height       int32   `yaml:"height"`
	Title        string  `yaml:"title"`
	TargetFPS    int32   `yaml:"target_fps"`
	FOV          float32 `yaml:"fov"`
	ShowControls bool    `yaml:"show_controls"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type MovementConfig struct {
	Preset string `yaml:"preset"`
}

type BoundsConfig struct {
	MinX float32 `yaml:"min_x"`
	MaxX float32 `yaml:"max_x"`
	MinZ float32 `yaml:"min_z"`
	MaxZ float32 `yaml:"max_z"`
}

type ObstacleConfig struct {
	X      float32 `yaml:"x"`
	Z      float32 `yaml:"z"`
	Radius float32 `yaml:"radius"`
}

// PresetConfig is one scene layout plus its movement and look tunables.
type PresetConfig struct {
	Layout       string           `yaml:"layout"` // "hall" or "field"
	Acceleration float32          `yaml:"acceleration"`
	Friction     float32          `yaml:"friction"`
	MaxSpeed     float32          `yaml:"max_speed"`
	EyeHeight    float32          `yaml:"eye_height"`
	Bounce       float32          `yaml:"bounce"`
	Clearance    float32          `yaml:"clearance"`
	MaxDelta     float32          `yaml:"max_delta"`
	Bounds       BoundsConfig     `yaml:"bounds"`
	Obstacles    []ObstacleConfig `yaml:"obstacles"`
	Spawn        [3]float32       `yaml:"spawn"`

	KeyLookRate      float32 `yaml:"key_look_rate"`
	KeyPitchLimit    float32 `yaml:"key_pitch_limit"`
	MouseSensitivity float32 `yaml:"mouse_sensitivity"`
	MousePitchLimit  float32 `yaml:"mouse_pitch_limit"`
	SettleDelay      float32 `yaml:"settle_delay"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float32 `yaml:"volume"`
}

// CatalogConfig points at an optional product file. An empty path uses the
// built-in catalog.
type CatalogConfig struct {
	Path string `yaml:"path"`
}

// LookConfig is the subset of a preset the input package needs.
type LookConfig struct {
	KeyRate          float32
	KeyPitchLimit    float32
	MouseSensitivity float32
	MousePitchLimit  float32
	SettleDelay      float32
}

const (
	LayoutHall  = "hall"
	LayoutField = "field"
)

func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:        1280,
			Height:       720,
			Title:        "Virtual Showroom",
			TargetFPS:    60,
			FOV:          75,
			ShowControls: true,
		},
		Logging:  LoggingConfig{Level: "info", Format: "console"},
		Movement: MovementConfig{Preset: "showroom"},
		Presets: map[string]PresetConfig{
			"showroom": fromMovement(LayoutHall, movement.Showroom(), math32.Pi/3),
			"sandbox":  fromMovement(LayoutField, movement.Sandbox(), math32.Pi/2),
		},
		Audio: AudioConfig{Enabled: true, Volume: 0.5},
	}
}

func fromMovement(layout string, p movement.Preset, mousePitch float32) PresetConfig {
	pc := PresetConfig{
		Layout:       layout,
		Acceleration: p.Acceleration,
		Friction:     p.Friction,
		MaxSpeed:     p.MaxSpeed,
		EyeHeight:    p.EyeHeight,
		Bounce:       p.Bounce,
		Clearance:    p.Clearance,
		MaxDelta:     p.MaxDelta,
		Bounds: BoundsConfig{
			MinX: p.Bounds.MinX, MaxX: p.Bounds.MaxX,
			MinZ: p.Bounds.MinZ, MaxZ: p.Bounds.MaxZ,
		},
		Spawn: [3]float32{p.Spawn.X, p.Spawn.Y, p.Spawn.Z},

		KeyLookRate:      3,
		KeyPitchLimit:    math32.Pi / 2,
		MouseSensitivity: 0.002,
		MousePitchLimit:  mousePitch,
		SettleDelay:      0.1,
	}
	for _, o := range p.Obstacles {
		pc.Obstacles = append(pc.Obstacles, ObstacleConfig{X: o.X, Z: o.Z, Radius: o.Radius})
	}
	return pc
}

// Load reads path over the defaults. Keys missing from the file keep their
// default values, including individual fields of a built-in preset.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := Default()
	builtin := Default().Presets

	var raw struct {
		Presets map[string]yaml.Node `yaml:"presets"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// The plain decode above replaces whole preset entries; decode each one
	// again over its built-in values instead.
	for name, node := range raw.Presets {
		base := builtin[name]
		if err := node.Decode(&base); err != nil {
			return nil, fmt.Errorf("parse preset %q: %w", name, err)
		}
		cfg.Presets[name] = base
	}
	return cfg, nil
}

// Validate checks every section and every preset.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.FOV <= 0 || c.Window.FOV >= 180:
		return fmt.Errorf("%w: fov %.1f outside (0,180)", ErrInvalid, c.Window.FOV)
	case c.Window.TargetFPS < 0:
		return fmt.Errorf("%w: negative target fps", ErrInvalid)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio volume %.2f outside [0,1]", ErrInvalid, c.Audio.Volume)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "console", "text", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalid, c.Logging.Format)
	}
	if _, err := c.ActivePreset(); err != nil {
		return err
	}
	for _, name := range c.PresetNames() {
		pc := c.Presets[name]
		if err := pc.Movement(name).Validate(); err != nil {
			return err
		}
		if err := pc.validateLook(name); err != nil {
			return err
		}
		if pc.Layout != LayoutHall && pc.Layout != LayoutField {
			return fmt.Errorf("%w %q: unknown layout %q", ErrInvalidPreset, name, pc.Layout)
		}
	}
	return nil
}

func (p PresetConfig) validateLook(name string) error {
	switch {
	case p.KeyLookRate <= 0 || p.MouseSensitivity <= 0:
		return fmt.Errorf("%w %q: look rates must be positive", ErrInvalidPreset, name)
	case p.KeyPitchLimit <= 0 || p.KeyPitchLimit > math32.Pi/2:
		return fmt.Errorf("%w %q: key pitch limit must be within (0, pi/2]", ErrInvalidPreset, name)
	case p.MousePitchLimit <= 0 || p.MousePitchLimit > math32.Pi/2:
		return fmt.Errorf("%w %q: mouse pitch limit must be within (0, pi/2]", ErrInvalidPreset, name)
	case p.SettleDelay < 0:
		return fmt.Errorf("%w %q: negative settle delay", ErrInvalidPreset, name)
	}
	return nil
}

// ActivePreset returns the preset named by movement.preset.
func (c *Config) ActivePreset() (PresetConfig, error) {
	p, ok := c.Presets[c.Movement.Preset]
	if !ok {
		return PresetConfig{}, fmt.Errorf("%w: unknown preset %q (have %s)",
			ErrInvalidPreset, c.Movement.Preset, strings.Join(c.PresetNames(), ", "))
	}
	return p, nil
}

func (c *Config) PresetNames() []string {
	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Movement converts the preset into the integrator's form.
func (p PresetConfig) Movement(name string) movement.Preset {
	mp := movement.Preset{
		Name:         name,
		Acceleration: p.Acceleration,
		Friction:     p.Friction,
		MaxSpeed:     p.MaxSpeed,
		EyeHeight:    p.EyeHeight,
		Bounce:       p.Bounce,
		Clearance:    p.Clearance,
		MaxDelta:     p.MaxDelta,
		Bounds: movement.Bounds{
			MinX: p.Bounds.MinX, MaxX: p.Bounds.MaxX,
			MinZ: p.Bounds.MinZ, MaxZ: p.Bounds.MaxZ,
		},
		Spawn: rl.Vector3{X: p.Spawn[0], Y: p.Spawn[1], Z: p.Spawn[2]},
	}
	for _, o := range p.Obstacles {
		mp.Obstacles = append(mp.Obstacles, movement.Obstacle{X: o.X, Z: o.Z, Radius: o.Radius})
	}
	return mp
}

func (p PresetConfig) Look() LookConfig {
	return LookConfig{
		KeyRate:          p.KeyLookRate,
		KeyPitchLimit:    p.KeyPitchLimit,
		MouseSensitivity: p.MouseSensitivity,
		MousePitchLimit:  p.MousePitchLimit,
		SettleDelay:      p.SettleDelay,
	}
}
