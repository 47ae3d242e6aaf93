package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/Garyljackson/3d-pipes/config"
	"github.com/Garyljackson/3d-pipes/engine"
	"github.com/Garyljackson/3d-pipes/pipe"
	"github.com/Garyljackson/3d-pipes/status"
	"github.com/Garyljackson/3d-pipes/vmath"
)

// runHeadless simulates ticks frames without a terminal and prints the
// final status registry plus directive totals, sorted by key
// With dump set the occupied cells of the final grid follow, one per line
func runHeadless(cfg *config.Config, seed uint64, ticks int, dump bool, out io.Writer) error {
	reg := status.NewRegistry()
	rec := &pipe.Recorder{}

	sim := engine.NewSimulation(cfg, vmath.NewFastRand(seed), rec,
		engine.WithStatus(reg),
		engine.OnReset(func(prev engine.EpochStats) {
			fmt.Fprintf(out, "reset epoch=%d pipes=%d segments=%d fill=%.3f\n",
				prev.Epoch, prev.Pipes, prev.Segments, prev.Fill)
		}),
	)

	for range ticks {
		sim.Tick()
	}

	cells := sim.Grid().Cells()
	snap := reg.Snapshot()
	for k := pipe.KindStraight; k <= pipe.KindSeam; k++ {
		snap["directives."+k.String()] = fmt.Sprintf("%d", rec.Count(k))
	}
	snap["grid.occupied"] = fmt.Sprintf("%d", len(cells))
	snap["seed"] = fmt.Sprintf("%d", seed)

	keys := make([]string, 0, len(snap))
	for k := range snap {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if _, err := fmt.Fprintf(out, "%-22s %s\n", k, snap[k]); err != nil {
			return fmt.Errorf("write stats: %w", err)
		}
	}

	if !dump {
		return nil
	}
	for _, c := range cells {
		if _, err := fmt.Fprintf(out, "cell %d %d %d\n", c.X, c.Y, c.Z); err != nil {
			return fmt.Errorf("write cells: %w", err)
		}
	}
	return nil
}
