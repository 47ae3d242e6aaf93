package main

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/Garyljackson/3d-pipes/audio"
	"github.com/Garyljackson/3d-pipes/config"
	"github.com/Garyljackson/3d-pipes/engine"
	"github.com/Garyljackson/3d-pipes/pipe"
	"github.com/Garyljackson/3d-pipes/render"
	"github.com/Garyljackson/3d-pipes/status"
	"github.com/Garyljackson/3d-pipes/vmath"
)

// App wires the simulation to the terminal, audio and config reloads
// Everything runs on the clock goroutine except event polling
type App struct {
	cfg      *config.Config
	sim      *engine.Simulation
	scene    *render.Scene
	camera   *render.Camera
	renderer *render.Renderer
	status   *status.Registry
	screen   tcell.Screen
	clock    *engine.Clock

	player  *audio.Player         // nil without audio
	updates <-chan *config.Config // nil without -watch
	events  chan tcell.Event

	done     chan struct{} // closed once the clock stops consuming events
	doneOnce sync.Once
}

func NewApp(cfg *config.Config, seed uint64, screen tcell.Screen, player *audio.Player) *App {
	a := &App{
		cfg:    cfg,
		scene:  render.NewScene(),
		camera: render.NewCamera(),
		status: status.NewRegistry(),
		screen: screen,
		clock:  engine.NewClock(cfg.TargetFPS),
		player: player,
		events: make(chan tcell.Event, 256),
		done:   make(chan struct{}),
	}
	a.renderer = render.NewRenderer(a.scene, a.camera)
	a.sim = engine.NewSimulation(cfg, vmath.NewFastRand(seed), a.scene,
		engine.WithStatus(a.status),
		engine.OnSpawn(a.onSpawn),
		engine.OnReset(a.onReset),
	)
	return a
}

func (a *App) onSpawn(w *pipe.Walker) {
	if a.player != nil {
		a.player.Play(audio.CueSpawn, w.Material().Hue)
	}
}

func (a *App) onReset(engine.EpochStats) {
	a.scene.Clear()
	if a.player != nil {
		a.player.Play(audio.CueReset, 0)
	}
}

// HandleEvent applies one input event and reports whether to keep running
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return false
	case 'r':
		a.sim.Restart()
	case 's':
		a.cfg.JointStyle = a.cfg.JointStyle.Toggle()
	case 'f':
		a.cfg.SpeedMultiplier = config.NextSpeed(a.cfg.SpeedMultiplier).Multiplier
	case 'o':
		a.cfg.OrbitCamera = !a.cfg.OrbitCamera
	case 'm':
		if a.player != nil {
			a.player.ToggleMute()
		}
	case ' ':
		a.sim.SetPaused(!a.sim.Paused())
	}
	return true
}

// applyUpdates takes the newest reloaded config, if any
func (a *App) applyUpdates() {
	if a.updates == nil {
		return
	}
	select {
	case next := <-a.updates:
		a.sim.ApplyConfig(next)
		a.clock.SetFPS(next.TargetFPS)
		if a.player != nil {
			a.player.SetVolume(next.Audio.MasterVolume)
		}
	default:
	}
}

// Frame drains input, advances the simulation and draws; false means quit
func (a *App) Frame() bool {
drainInput:
	for {
		select {
		case ev, ok := <-a.events:
			if !ok || !a.HandleEvent(ev) {
				return false
			}
		default:
			break drainInput
		}
	}

	a.applyUpdates()
	a.sim.Tick()
	if !a.sim.Paused() {
		a.camera.Advance(a.cfg)
	}

	a.renderer.Draw(a.screen, render.HUD{
		Status: a.status,
		Paused: a.sim.Paused(),
		Orbit:  a.cfg.OrbitCamera,
		Muted:  a.player == nil || a.player.IsMuted() || a.player.IsDisabled(),
	})
	a.screen.Show()
	return true
}

// stopInput releases the poller once frames no longer drain events
func (a *App) stopInput() {
	a.doneOnce.Do(func() { close(a.done) })
}

// pollEvents forwards terminal events until the screen is finalized or input stops
func (a *App) pollEvents(onPanic func(any)) {
	defer func() {
		if r := recover(); r != nil {
			onPanic(r)
		}
	}()
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			close(a.events)
			return
		}
		select {
		case a.events <- ev:
		case <-a.done:
			return
		}
	}
}
