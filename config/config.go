package config

import (
	"errors"
	"fmt"
	"math"
)

// JointStyle selects how turns are drawn
type JointStyle string

const (
	StyleElbow JointStyle = "elbow"
	StyleBall  JointStyle = "ball"
)

// Toggle returns the other style
func (s JointStyle) Toggle() JointStyle {
	if s == StyleElbow {
		return StyleBall
	}
	return StyleElbow
}

func (s JointStyle) Valid() bool {
	return s == StyleElbow || s == StyleBall
}

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Config holds every tunable of the simulation and renderer
// The driver reads it at each sub-step; UI toggles are plain field writes between ticks
type Config struct {
	// Grid
	GridSize int     `toml:"grid_size"`
	CellSize float64 `toml:"cell_size"`

	// Pipes
	PipeRadius     float64 `toml:"pipe_radius"`
	MaxPipes       int     `toml:"max_pipes"`
	StraightChance float64 `toml:"straight_chance"`
	MinSegments    int     `toml:"min_segments"`
	MaxSegments    int     `toml:"max_segments"`

	// Joint appearance
	JointStyle JointStyle `toml:"joint_style"`
	CapScale   float64    `toml:"cap_scale"`
	JointScale float64    `toml:"joint_scale"`
	SeamScale  float64    `toml:"seam_scale"`

	// Simulation
	SpeedMultiplier  float64 `toml:"speed_multiplier"`
	FillThreshold    float64 `toml:"fill_threshold"`
	ExtraSpawnChance float64 `toml:"extra_spawn_chance"`
	TargetFPS        int     `toml:"target_fps"`
	Seed             uint64  `toml:"seed,omitempty"`

	// Camera
	OrbitCamera  bool    `toml:"orbit_camera"`
	CameraRadius float64 `toml:"camera_radius"`
	OrbitSpeed   float64 `toml:"orbit_speed"`

	Audio AudioConfig `toml:"audio"`
}

// AudioConfig controls the optional spawn/reset cues
type AudioConfig struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"`
	SampleRate   int     `toml:"sample_rate"`
}

// Default returns the stock screensaver settings
func Default() *Config {
	return &Config{
		GridSize: 16,
		CellSize: 2.0,

		PipeRadius:     0.30,
		MaxPipes:       10,
		StraightChance: 0.70,
		MinSegments:    50,
		MaxSegments:    210,

		JointStyle: StyleElbow,
		CapScale:   1.15,
		JointScale: 1.35,
		SeamScale:  1.01,

		SpeedMultiplier:  1,
		FillThreshold:    0.42,
		ExtraSpawnChance: 0.012,
		TargetFPS:        60,

		OrbitCamera:  true,
		CameraRadius: 38,
		OrbitSpeed:   0.0015,

		Audio: AudioConfig{
			Enabled:      false,
			MasterVolume: 0.5,
			SampleRate:   44100,
		},
	}
}

// Clone returns an independent copy
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

// SubSteps is the number of simulation steps per rendered frame, at least 1
func (c *Config) SubSteps() int {
	return max(1, int(math.Round(c.SpeedMultiplier)))
}

// Validate checks ranges; the first violation is returned wrapping ErrInvalid
func (c *Config) Validate() error {
	switch {
	case c.GridSize < 1 || c.GridSize > MaxGridSize:
		return fmt.Errorf("%w: grid_size must be in [1, %d], got %d", ErrInvalid, MaxGridSize, c.GridSize)
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell_size must be positive, got %g", ErrInvalid, c.CellSize)
	case c.PipeRadius <= 0 || c.PipeRadius > c.CellSize/2:
		return fmt.Errorf("%w: pipe_radius must be in (0, cell_size/2], got %g", ErrInvalid, c.PipeRadius)
	case c.MaxPipes < 1:
		return fmt.Errorf("%w: max_pipes must be >= 1, got %d", ErrInvalid, c.MaxPipes)
	case c.StraightChance < 0 || c.StraightChance > 1:
		return fmt.Errorf("%w: straight_chance must be in [0, 1], got %g", ErrInvalid, c.StraightChance)
	case c.MinSegments < 0:
		return fmt.Errorf("%w: min_segments must be >= 0, got %d", ErrInvalid, c.MinSegments)
	case c.MaxSegments < c.MinSegments:
		return fmt.Errorf("%w: max_segments %d below min_segments %d", ErrInvalid, c.MaxSegments, c.MinSegments)
	case !c.JointStyle.Valid():
		return fmt.Errorf("%w: joint_style must be %q or %q, got %q", ErrInvalid, StyleElbow, StyleBall, c.JointStyle)
	case c.CapScale <= 0 || c.JointScale <= 0 || c.SeamScale <= 0:
		return fmt.Errorf("%w: cap/joint/seam scales must be positive", ErrInvalid)
	case c.SpeedMultiplier <= 0:
		return fmt.Errorf("%w: speed_multiplier must be positive, got %g", ErrInvalid, c.SpeedMultiplier)
	case c.FillThreshold <= 0 || c.FillThreshold > 1:
		return fmt.Errorf("%w: fill_threshold must be in (0, 1], got %g", ErrInvalid, c.FillThreshold)
	case c.ExtraSpawnChance < 0 || c.ExtraSpawnChance > 1:
		return fmt.Errorf("%w: extra_spawn_chance must be in [0, 1], got %g", ErrInvalid, c.ExtraSpawnChance)
	case c.TargetFPS < 1 || c.TargetFPS > MaxFPS:
		return fmt.Errorf("%w: target_fps must be in [1, %d], got %d", ErrInvalid, MaxFPS, c.TargetFPS)
	case c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1:
		return fmt.Errorf("%w: audio.master_volume must be in [0, 1], got %g", ErrInvalid, c.Audio.MasterVolume)
	case c.Audio.SampleRate <= 0:
		return fmt.Errorf("%w: audio.sample_rate must be positive, got %d", ErrInvalid, c.Audio.SampleRate)
	}
	return nil
}

const (
	MaxGridSize = 128
	MaxFPS      = 240
)
