package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// Environment overrides, applied after the file
const (
	EnvSeed         = "PIPES_SEED"
	EnvStyle        = "PIPES_STYLE"
	EnvSpeed        = "PIPES_SPEED"
	EnvAudioEnabled = "PIPES_AUDIO_ENABLED"
)

// Load reads a TOML file over the defaults and validates the result
// Keys missing from the file keep their default value; unknown keys are rejected
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML bytes over the defaults and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("%w: %s", ErrInvalid, strict.String())
		}
		return nil, fmt.Errorf("decode: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg as TOML
func Save(path string, cfg *Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays PIPES_* variables; malformed values are ignored
func ApplyEnv(cfg *Config) {
	if s := os.Getenv(EnvSeed); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			cfg.Seed = v
		}
	}

	if s := os.Getenv(EnvStyle); s != "" {
		if style := JointStyle(s); style.Valid() {
			cfg.JointStyle = style
		}
	}

	if s := os.Getenv(EnvSpeed); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil && v > 0 {
			cfg.SpeedMultiplier = v
		}
	}

	if s := os.Getenv(EnvAudioEnabled); s != "" {
		if v, err := strconv.ParseBool(s); err == nil {
			cfg.Audio.Enabled = v
		}
	}
}

func formatMultiplier(mult float64) string {
	return "x" + strconv.FormatFloat(mult, 'g', 3, 64)
}
