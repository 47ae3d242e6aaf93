package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/Garyljackson/3d-pipes/config"
)

// Cue is a sound tied to a simulation event
type Cue int

const (
	CueSpawn Cue = iota // a new pipe starts
	CueReset            // the grid filled up and was cleared
)

func (c Cue) String() string {
	switch c {
	case CueSpawn:
		return "spawn"
	case CueReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Cue timings
const (
	SpawnDuration = 90 * time.Millisecond
	SpawnAttack   = 5 * time.Millisecond
	SpawnRelease  = 70 * time.Millisecond

	ResetSweepDuration = 260 * time.Millisecond
	ResetSweepAttack   = 40 * time.Millisecond
	ResetSweepRelease  = 180 * time.Millisecond
	ResetToneDuration  = 160 * time.Millisecond
	ResetToneRelease   = 120 * time.Millisecond
)

// Relative cue levels before master volume
const (
	spawnLevel = 0.35
	resetLevel = 0.5
)

// pentatonic offsets in semitones above A4
var pentatonic = [...]float64{0, 2, 4, 7, 9, 12, 14, 16, 19, 21}

// PitchForHue maps a material hue in [0,1) onto an A major pentatonic note
// so pipes of different colors chime on different notes
func PitchForHue(hue float64) float64 {
	idx := int(math.Floor(hue * float64(len(pentatonic))))
	idx = min(max(idx, 0), len(pentatonic)-1)
	return 440 * math.Pow(2, pentatonic[idx]/12)
}

// NewCue builds the streamer for c; hue only affects the spawn chime
// Returns nil for unknown cues
func NewCue(c Cue, hue float64, cfg config.AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	switch c {
	case CueSpawn:
		return newVolume(spawnChime(PitchForHue(hue), rate), spawnLevel*cfg.MasterVolume)
	case CueReset:
		return newVolume(resetSweep(rate), resetLevel*cfg.MasterVolume)
	default:
		return nil
	}
}

// spawnChime is a short sine with a quieter octave on top
func spawnChime(freq float64, rate beep.SampleRate) beep.Streamer {
	n := rate.N(SpawnDuration)
	fund, err := generators.SineTone(rate, freq)
	if err != nil {
		// Frequency above Nyquist, fall back to the raw oscillator
		fund = NewOscillator(freq, SpawnDuration, WaveSine, rate)
	}
	over := NewOscillator(freq*2, SpawnDuration, WaveSine, rate)

	mixed := beep.Mix(
		newVolume(beep.Take(n, fund), 0.7),
		newVolume(over, 0.3),
	)
	return NewEnvelope(mixed, SpawnDuration, SpawnAttack, SpawnRelease, rate)
}

// resetSweep is a noise wash followed by a low square tone
func resetSweep(rate beep.SampleRate) beep.Streamer {
	noise := NewOscillator(0, ResetSweepDuration, WaveNoise, rate)
	wash := NewEnvelope(noise, ResetSweepDuration, ResetSweepAttack, ResetSweepRelease, rate)

	tone := NewOscillator(110, ResetToneDuration, WaveSquare, rate)
	thud := NewEnvelope(tone, ResetToneDuration, 0, ResetToneRelease, rate)

	return beep.Seq(wash, newVolume(thud, 0.4))
}
