package engine

import (
	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"
)

// EpochStats summarizes the structure grown since the last reset
type EpochStats struct {
	Epoch    int
	ID       uuid.UUID
	Pipes    int
	Segments int
	Live     int
	Fill     float64

	// Pipe length distribution over finished and growing pipes
	MeanLength   float64
	StdDevLength float64
}

// Stats reports the current epoch
func (s *Simulation) Stats() EpochStats {
	lengths := make([]float64, 0, len(s.lengths)+len(s.walkers))
	lengths = append(lengths, s.lengths...)
	for _, w := range s.walkers {
		if w.Alive() {
			lengths = append(lengths, float64(w.Segments()))
		}
	}
	mean, std := lengthMoments(lengths)

	return EpochStats{
		Epoch:        s.epoch,
		ID:           s.epochID,
		Pipes:        s.totalPipes,
		Segments:     s.totalSegments,
		Live:         s.LiveCount(),
		Fill:         s.grid.FillRatio(),
		MeanLength:   mean,
		StdDevLength: std,
	}
}

// lengthMoments is zero-safe: no samples gives 0,0 and one sample has no spread
func lengthMoments(xs []float64) (mean, std float64) {
	switch len(xs) {
	case 0:
		return 0, 0
	case 1:
		return xs[0], 0
	}
	return stat.MeanStdDev(xs, nil)
}
