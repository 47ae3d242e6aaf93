package status

import (
	"fmt"
	"sync/atomic"
)

// Keys published by the simulation driver
const (
	KeyPipes        = "sim.pipes"
	KeySegments     = "sim.segments"
	KeyLive         = "sim.live"
	KeyTicks        = "sim.ticks"
	KeyEpoch        = "sim.epoch"
	KeyResets       = "sim.resets"
	KeyFill         = "sim.fill"
	KeyLengthMean   = "sim.length_mean"
	KeyLengthStdDev = "sim.length_stddev"
	KeyEpochID      = "sim.epoch_id"
	KeyStyle        = "sim.style"
	KeySpeed        = "sim.speed"
)

// Registry is the metrics facade shared by the driver and the HUD
// The driver writes from the tick loop; readers may run on any goroutine
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns the number of registered metrics
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Snapshot renders every metric as text, keyed by name
func (r *Registry) Snapshot() map[string]string {
	out := make(map[string]string, r.TotalCount())
	r.Ints.Range(func(k string, v *atomic.Int64) {
		out[k] = fmt.Sprintf("%d", v.Load())
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		out[k] = fmt.Sprintf("%.4f", v.Get())
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		out[k] = v.Load()
	})
	return out
}
