// Package sweep runs the same collision query over a range of separations.
//
// Each sample is an independent snapshot: body1 is placed at a fixed
// distance from body2 and the pair is resolved once. Nothing is integrated
// over time.
package sweep

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/collide/internal/collision"
	"github.com/san-kum/collide/internal/dynamo"
	"github.com/san-kum/collide/internal/metrics"
	"github.com/san-kum/collide/internal/shapes"
)

const minChunk = 64

type Config struct {
	Start     float64
	End       float64
	Samples   int
	Direction float64
}

type Sample struct {
	Separation float64
	Resolution collision.Resolution
	Err        error
}

func (s Sample) Degenerate() bool {
	return s.Err != nil
}

type Result struct {
	Samples []Sample
	Metrics map[string]float64
	// Collisions and Degenerate count samples, not metrics.
	Collisions int
	Degenerate int
}

type Observer interface {
	OnSample(i int, s Sample)
}

type Sweeper struct {
	body1, body2 shapes.Circle
	metrics      []metrics.Metric
	observers    []Observer
}

func New(body1, body2 shapes.Circle) *Sweeper {
	return &Sweeper{
		body1:     body1,
		body2:     body2,
		metrics:   make([]metrics.Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Sweeper) AddMetric(m metrics.Metric) { s.metrics = append(s.metrics, m) }
func (s *Sweeper) AddObserver(o Observer)     { s.observers = append(s.observers, o) }

// Separations returns the sample distances, evenly spaced from Start to End.
func (c Config) Separations() []float64 {
	seps := make([]float64, c.Samples)
	for i := range seps {
		if c.Samples == 1 {
			seps[i] = c.Start
			continue
		}
		seps[i] = c.Start + (c.End-c.Start)*float64(i)/float64(c.Samples-1)
	}
	return seps
}

func (s *Sweeper) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	seps := cfg.Separations()
	samples := make([]Sample, len(seps))
	cx, cy := s.body2.Position()
	ux, uy := math.Cos(cfg.Direction), math.Sin(cfg.Direction)

	dynamo.ParallelFor(len(seps), minChunk, func(start, end int) {
		for i := start; i < end; i++ {
			if ctx.Err() != nil {
				return
			}
			b1 := s.body1.MovedTo(cx+ux*seps[i], cy+uy*seps[i])
			res, err := collision.New(b1, s.body2).Resolve()
			samples[i] = Sample{Separation: seps[i], Resolution: res, Err: err}
		}
	})

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{
		Samples: samples,
		Metrics: make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	for i, smp := range samples {
		if smp.Resolution.Collided {
			result.Collisions++
		}
		if smp.Degenerate() {
			result.Degenerate++
		}
		for _, m := range s.metrics {
			m.Observe(smp.Resolution)
		}
		for _, obs := range s.observers {
			obs.OnSample(i, smp)
		}
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func validateConfig(cfg Config) error {
	if cfg.Samples <= 0 {
		return fmt.Errorf("samples must be positive, got %d", cfg.Samples)
	}
	if math.IsNaN(cfg.Start) || math.IsNaN(cfg.End) || math.IsInf(cfg.Start, 0) || math.IsInf(cfg.End, 0) {
		return fmt.Errorf("sweep range must be finite, got [%f, %f]", cfg.Start, cfg.End)
	}
	if math.IsNaN(cfg.Direction) || math.IsInf(cfg.Direction, 0) {
		return fmt.Errorf("sweep direction must be finite, got %f", cfg.Direction)
	}
	return nil
}
