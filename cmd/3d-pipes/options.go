package main

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/Garyljackson/3d-pipes/config"
)

// options holds parsed command line flags
// Zero values mean "not set" so the file and environment keep their say
type options struct {
	configPath string
	seed       uint64
	style      string
	speed      float64
	grid       int
	headless   bool
	ticks      int
	debug      bool
	mute       bool
	color      string
	watch      bool
	dump       bool
}

func parseOptions(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("3d-pipes", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&o.configPath, "config", "", "TOML config file")
	fs.Uint64Var(&o.seed, "seed", 0, "random seed, 0 picks one from the clock")
	fs.StringVar(&o.style, "style", "", "joint style: elbow or ball")
	fs.Float64Var(&o.speed, "speed", 0, "speed multiplier (Slow 0.3, Normal 1, Fast 3, Ludicrous 8)")
	fs.IntVar(&o.grid, "grid", 0, "grid edge length in cells")
	fs.BoolVar(&o.headless, "headless", false, "run without a terminal and print statistics")
	fs.IntVar(&o.ticks, "ticks", 600, "ticks to simulate in headless mode")
	fs.BoolVar(&o.debug, "debug", false, "write logs to "+logDir+"/"+logFileName)
	fs.BoolVar(&o.mute, "mute", false, "start with sound muted")
	fs.StringVar(&o.color, "color", "auto", "color mode: auto, truecolor, 256")
	fs.BoolVar(&o.watch, "watch", false, "reload the config file when it changes")
	fs.BoolVar(&o.dump, "dump", false, "headless: also list the occupied cells of the final grid")

	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	switch o.color {
	case "auto", "truecolor", "256":
	default:
		return o, fmt.Errorf("unknown color mode %q", o.color)
	}
	if o.watch && o.configPath == "" {
		return o, fmt.Errorf("-watch requires -config")
	}
	return o, nil
}

// resolveConfig layers defaults, the config file, PIPES_* variables and flags
func resolveConfig(o options) (*config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	o.overlay(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// overlay applies the PIPES_* variables and then the flags over a loaded file
// Reloads of a watched file go through it too
func (o options) overlay(cfg *config.Config) {
	config.ApplyEnv(cfg)

	if o.seed != 0 {
		cfg.Seed = o.seed
	}
	if o.style != "" {
		cfg.JointStyle = config.JointStyle(o.style)
	}
	if o.speed != 0 {
		cfg.SpeedMultiplier = o.speed
	}
	if o.grid != 0 {
		cfg.GridSize = o.grid
	}
}

// seedFor returns the configured seed or one from the clock
func seedFor(cfg *config.Config) uint64 {
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	return uint64(time.Now().UnixNano())
}
