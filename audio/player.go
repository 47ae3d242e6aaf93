package audio

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/Garyljackson/3d-pipes/config"
)

// ErrNotInitialized is returned when queueing sound before a successful Start
var ErrNotInitialized = errors.New("audio not initialized")

// speakerBuffer is the device latency
const speakerBuffer = 100 * time.Millisecond

// Player plays cues through the system speaker
// Device failures disable it quietly; the screensaver runs without sound
type Player struct {
	mu      sync.Mutex
	cfg     config.AudioConfig
	mixer   *beep.Mixer
	running bool

	muted    atomic.Bool
	disabled atomic.Bool
	played   atomic.Uint64
}

func NewPlayer() *Player {
	return &Player{
		cfg:   config.Default().Audio,
		mixer: &beep.Mixer{},
	}
}

// Name implements service.Service
func (p *Player) Name() string { return "audio" }

// Dependencies implements service.Service
func (p *Player) Dependencies() []string { return nil }

// Init implements service.Service
// args[0]: config.AudioConfig, args[1]: bool muted
// A disabled config skips the device entirely
func (p *Player) Init(args ...any) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(args) > 0 {
		cfg, ok := args[0].(config.AudioConfig)
		if !ok {
			return fmt.Errorf("audio init: want config.AudioConfig, got %T", args[0])
		}
		p.cfg = cfg
	}
	if len(args) > 1 {
		if muted, ok := args[1].(bool); ok {
			p.muted.Store(muted)
		}
	}
	if !p.cfg.Enabled || p.cfg.SampleRate <= 0 {
		p.disabled.Store(true)
	}
	return nil
}

// Start implements service.Service
// A missing device is logged and leaves the player disabled
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running || p.disabled.Load() {
		return nil
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(speakerBuffer)); err != nil {
		log.Printf("audio disabled: %v", err)
		p.disabled.Store(true)
		return nil
	}
	speaker.Play(p.mixer)
	p.running = true
	return nil
}

// Stop implements service.Service
func (p *Player) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running {
		return nil
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.running = false
	log.Printf("audio stopped after %d cues", p.played.Load())
	return nil
}

// Enqueue adds s to the live mix
func (p *Player) Enqueue(s beep.Streamer) error {
	p.mu.Lock()
	running := p.running
	p.mu.Unlock()
	if !running {
		return ErrNotInitialized
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	return nil
}

// Play queues cue c and reports whether it will be heard
func (p *Player) Play(c Cue, hue float64) bool {
	if p.muted.Load() || p.disabled.Load() {
		return false
	}
	p.mu.Lock()
	cfg := p.cfg
	p.mu.Unlock()

	s := NewCue(c, hue, cfg)
	if s == nil {
		return false
	}
	if err := p.Enqueue(s); err != nil {
		return false
	}
	p.played.Add(1)
	return true
}

// SetVolume applies a new master volume to cues queued from now on
func (p *Player) SetVolume(vol float64) {
	p.mu.Lock()
	p.cfg.MasterVolume = min(max(vol, 0), 1)
	p.mu.Unlock()
}

// ToggleMute flips mute and reports whether sound is now on
func (p *Player) ToggleMute() bool {
	muted := !p.muted.Load()
	p.muted.Store(muted)
	return !muted
}

func (p *Player) IsMuted() bool    { return p.muted.Load() }
func (p *Player) IsDisabled() bool { return p.disabled.Load() }
func (p *Player) Played() uint64   { return p.played.Load() }
