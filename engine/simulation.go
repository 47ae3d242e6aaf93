package engine

import (
	"log"
	"slices"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/Garyljackson/3d-pipes/config"
	"github.com/Garyljackson/3d-pipes/grid"
	"github.com/Garyljackson/3d-pipes/material"
	"github.com/Garyljackson/3d-pipes/pipe"
	"github.com/Garyljackson/3d-pipes/status"
	"github.com/Garyljackson/3d-pipes/vmath"
)

// Simulation owns the grid and the walker pool and advances them once per frame
// Single-threaded: Tick, Spawn, Reset and ApplyConfig must be called from one goroutine
type Simulation struct {
	cfg  *config.Config
	rng  vmath.Source
	sink pipe.Sink
	grid *grid.Grid

	// Insertion order is the step order within a sub-step
	walkers []*pipe.Walker
	paused  bool

	// Per-epoch counters, zeroed on Reset
	totalPipes    int
	totalSegments int
	lengths       []float64

	ticks   uint64
	resets  int
	epoch   int
	epochID uuid.UUID

	onSpawn func(w *pipe.Walker)
	onReset func(prev EpochStats)

	statusReg *status.Registry
	stats     struct {
		pipes, segments, live, ticks, epoch, resets *atomic.Int64
		fill, lengthMean, lengthStdDev              *status.AtomicFloat
		epochID, style, speed                       *status.AtomicString
	}
}

// Option configures a Simulation
type Option func(*Simulation)

// WithStatus publishes counters into reg after every tick
func WithStatus(reg *status.Registry) Option {
	return func(s *Simulation) { s.statusReg = reg }
}

// OnSpawn registers a callback for every walker that starts alive
func OnSpawn(fn func(w *pipe.Walker)) Option {
	return func(s *Simulation) { s.onSpawn = fn }
}

// OnReset registers a callback run after the grid is cleared
// It receives the statistics of the epoch that just ended
func OnReset(fn func(prev EpochStats)) Option {
	return func(s *Simulation) { s.onReset = fn }
}

// NewSimulation creates an empty simulation; the first Tick spawns walkers
// cfg is shared with every walker and read at each sub-step
func NewSimulation(cfg *config.Config, rng vmath.Source, sink pipe.Sink, opts ...Option) *Simulation {
	if sink == nil {
		sink = pipe.Discard
	}
	s := &Simulation{
		cfg:     cfg,
		rng:     rng,
		sink:    sink,
		grid:    grid.New(cfg.GridSize),
		epoch:   1,
		epochID: uuid.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.statusReg != nil {
		s.cacheMetrics()
	}
	return s
}

func (s *Simulation) Config() *config.Config { return s.cfg }
func (s *Simulation) Grid() *grid.Grid       { return s.grid }
func (s *Simulation) Ticks() uint64          { return s.ticks }
func (s *Simulation) Resets() int            { return s.resets }
func (s *Simulation) Epoch() int             { return s.epoch }
func (s *Simulation) EpochID() uuid.UUID     { return s.epochID }
func (s *Simulation) Paused() bool           { return s.paused }
func (s *Simulation) SetPaused(p bool)       { s.paused = p }

// Walkers returns the pool in step order
func (s *Simulation) Walkers() []*pipe.Walker {
	return slices.Clone(s.walkers)
}

// LiveCount returns the number of walkers still growing
func (s *Simulation) LiveCount() int {
	n := 0
	for _, w := range s.walkers {
		if w.Alive() {
			n++
		}
	}
	return n
}

// Tick advances one rendered frame worth of simulation
func (s *Simulation) Tick() {
	if s.paused {
		s.publish()
		return
	}
	s.ticks++
	for i, n := 0, s.cfg.SubSteps(); i < n; i++ {
		s.subStep()
	}
	s.publish()
}

// subStep steps every live walker once, then decides on reset and spawning
// Later walkers see the cells claimed by earlier ones in the same sub-step
func (s *Simulation) subStep() {
	if s.cfg.GridSize != s.grid.Size() {
		s.rebuildGrid()
	}

	anyMoved := false
	for _, w := range s.walkers {
		if !w.Alive() {
			continue
		}
		if w.Step() {
			s.totalSegments++
			anyMoved = true
			continue
		}
		s.lengths = append(s.lengths, float64(w.Segments()))
	}
	s.walkers = slices.DeleteFunc(s.walkers, func(w *pipe.Walker) bool { return !w.Alive() })

	if !anyMoved {
		if s.grid.FillRatio() >= s.cfg.FillThreshold {
			s.Reset()
		}
		count := 1 + s.rng.IntN(3)
		for range count {
			s.Spawn()
		}
	}

	if s.LiveCount() < s.cfg.MaxPipes && s.rng.Float64() < s.cfg.ExtraSpawnChance {
		s.Spawn()
	}
}

// Spawn starts a walker at a random free cell
// Returns nil when the grid sampling finds no room; dead walkers are not pooled
func (s *Simulation) Spawn() *pipe.Walker {
	w := pipe.NewWalker(s.grid, s.walkerOptions())
	return s.adopt(w)
}

// SpawnAt starts a walker at a chosen cell and facing
func (s *Simulation) SpawnAt(start grid.Cell, facing grid.Direction) *pipe.Walker {
	w := pipe.NewWalkerAt(s.grid, start, facing, s.walkerOptions())
	return s.adopt(w)
}

func (s *Simulation) walkerOptions() pipe.Options {
	return pipe.Options{
		Config:   s.cfg,
		Rand:     s.rng,
		Sink:     s.sink,
		Material: material.Random(s.rng),
	}
}

func (s *Simulation) adopt(w *pipe.Walker) *pipe.Walker {
	if !w.Alive() {
		return nil
	}
	s.walkers = append(s.walkers, w)
	s.totalPipes++
	if s.onSpawn != nil {
		s.onSpawn(w)
	}
	return w
}

// Reset clears the grid and drops every walker, starting a new epoch
func (s *Simulation) Reset() {
	prev := s.Stats()
	log.Printf("epoch %d (%s) reset: pipes=%d segments=%d fill=%.3f mean_len=%.1f stddev=%.1f",
		prev.Epoch, prev.ID, prev.Pipes, prev.Segments, prev.Fill, prev.MeanLength, prev.StdDevLength)

	s.grid.Clear()
	s.walkers = nil
	s.totalPipes = 0
	s.totalSegments = 0
	s.lengths = nil
	s.resets++
	s.epoch++
	s.epochID = uuid.New()

	if s.onReset != nil {
		s.onReset(prev)
	}
}

// Restart resets and seeds one fresh walker
func (s *Simulation) Restart() {
	s.Reset()
	s.Spawn()
}

// ApplyConfig copies next over the shared config so live walkers see it
// A grid size change rebuilds the grid at the next sub-step
func (s *Simulation) ApplyConfig(next *config.Config) {
	*s.cfg = *next
}

func (s *Simulation) rebuildGrid() {
	log.Printf("grid size %d -> %d", s.grid.Size(), s.cfg.GridSize)
	s.Reset()
	s.grid = grid.New(s.cfg.GridSize)
}

func (s *Simulation) cacheMetrics() {
	r := s.statusReg
	s.stats.pipes = r.Ints.Get(status.KeyPipes)
	s.stats.segments = r.Ints.Get(status.KeySegments)
	s.stats.live = r.Ints.Get(status.KeyLive)
	s.stats.ticks = r.Ints.Get(status.KeyTicks)
	s.stats.epoch = r.Ints.Get(status.KeyEpoch)
	s.stats.resets = r.Ints.Get(status.KeyResets)
	s.stats.fill = r.Floats.Get(status.KeyFill)
	s.stats.lengthMean = r.Floats.Get(status.KeyLengthMean)
	s.stats.lengthStdDev = r.Floats.Get(status.KeyLengthStdDev)
	s.stats.epochID = r.Strings.Get(status.KeyEpochID)
	s.stats.style = r.Strings.Get(status.KeyStyle)
	s.stats.speed = r.Strings.Get(status.KeySpeed)
}

func (s *Simulation) publish() {
	if s.statusReg == nil {
		return
	}
	st := s.Stats()
	s.stats.pipes.Store(int64(st.Pipes))
	s.stats.segments.Store(int64(st.Segments))
	s.stats.live.Store(int64(st.Live))
	s.stats.ticks.Store(int64(s.ticks))
	s.stats.epoch.Store(int64(st.Epoch))
	s.stats.resets.Store(int64(s.resets))
	s.stats.fill.Set(st.Fill)
	s.stats.lengthMean.Set(st.MeanLength)
	s.stats.lengthStdDev.Set(st.StdDevLength)
	s.stats.epochID.Store(st.ID.String())
	s.stats.style.Store(string(s.cfg.JointStyle))
	s.stats.speed.Store(config.SpeedLabel(s.cfg.SpeedMultiplier))
}
