package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/Garyljackson/3d-pipes/audio"
	"github.com/Garyljackson/3d-pipes/config"
	"github.com/Garyljackson/3d-pipes/service"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseOptions(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "3d-pipes: %v\n", err)
		return 2
	}

	if logFile := setupLogging(opts.debug); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := resolveConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "3d-pipes: %v\n", err)
		return 2
	}
	seed := seedFor(cfg)
	log.Printf("seed %d grid %d style %s speed %s", seed, cfg.GridSize, cfg.JointStyle, config.SpeedLabel(cfg.SpeedMultiplier))

	if opts.headless || !term.IsTerminal(int(os.Stdout.Fd())) {
		if err := runHeadless(cfg, seed, opts.ticks, opts.dump, stdout); err != nil {
			fmt.Fprintf(stderr, "3d-pipes: %v\n", err)
			return 1
		}
		return 0
	}

	if err := runInteractive(cfg, seed, opts, stderr); err != nil {
		fmt.Fprintf(stderr, "3d-pipes: %v\n", err)
		return 1
	}
	return 0
}

func runInteractive(cfg *config.Config, seed uint64, opts options, stderr io.Writer) error {
	switch opts.color {
	case "256":
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case "truecolor":
		os.Setenv("COLORTERM", "truecolor")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}

	// Crashes must restore the terminal before printing the trace
	crash := func(r any) {
		screen.Fini()
		fmt.Fprintf(stderr, "\r\n\x1b[31m3D-PIPES CRASHED: %v\x1b[0m\r\n", r)
		fmt.Fprintf(stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	}
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()
	defer screen.Fini()

	screen.HideCursor()
	screen.Clear()

	hub := service.NewHub()
	player := audio.NewPlayer()
	var watcher *config.Watcher
	if err := hub.Register(player); err != nil {
		return err
	}
	if opts.watch {
		watcher = config.NewWatcher(opts.configPath, opts.overlay)
		if err := hub.Register(watcher); err != nil {
			return err
		}
	}
	if err := hub.InitAll(map[string][]any{
		player.Name(): {cfg.Audio, opts.mute},
	}); err != nil {
		// Services are optional; run bare
		log.Printf("services disabled: %v", err)
		player, watcher = nil, nil
	} else if err := hub.StartAll(); err != nil {
		log.Printf("services disabled: %v", err)
		player, watcher = nil, nil
	}
	defer hub.StopAll()

	app := NewApp(cfg, seed, screen, player)
	if watcher != nil {
		app.updates = watcher.Updates()
	}
	go app.pollEvents(crash)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = app.clock.Run(ctx, app.Frame)
	app.stopInput()
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	st := app.sim.Stats()
	log.Printf("exit after %d frames, epoch %d, pipes %d", app.clock.Frames(), st.Epoch, st.Pipes)
	return err
}
