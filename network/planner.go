package network

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/polysched/layer"
	"github.com/katalvlaran/polysched/relation"
	"github.com/katalvlaran/polysched/schedule"
)

// Planner owns a validated copy of a relationship matrix and plans its
// schedule. It is safe for concurrent use; every call recomputes from the
// immutable matrix.
type Planner struct {
	rel   relation.Matrix
	names []string
	opts  Options
}

// New validates rel and names (nil names are allowed) and returns a Planner
// holding a copy of both.
func New(rel relation.Matrix, names []string, opts ...Option) (*Planner, error) {
	if err := relation.Validate(rel); err != nil {
		return nil, fmt.Errorf("network.New: %w", err)
	}
	if err := relation.ValidateNames(names, len(rel)); err != nil {
		return nil, fmt.Errorf("network.New: %w", err)
	}

	var o = DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var p = &Planner{rel: rel.Clone(), opts: o}
	if names != nil {
		p.names = append([]string(nil), names...)
	}

	return p, nil
}

// Relation returns the planner's matrix. Callers must not modify it.
func (p *Planner) Relation() relation.Matrix { return p.rel }

// Names returns the display names, or nil.
func (p *Planner) Names() []string { return p.names }

// MaxWeight returns the heaviest relationship weight.
func (p *Planner) MaxWeight() int { return p.rel.MaxWeight() }

// MaxDegree returns the largest relationship count of one participant.
func (p *Planner) MaxDegree() int { return p.rel.MaxDegree() }

// MinimumRun returns the lower bound on the worst strain of any schedule.
func (p *Planner) MinimumRun() int { return MinimumRun(p.rel) }

// ApproximationLimit returns MinimumRun × ⌊log₂ n³⌋.
func (p *Planner) ApproximationLimit() int { return ApproximationLimit(p.rel) }

// LayerCount returns how many halved bands precede the final band.
func (p *Planner) LayerCount() int { return LayerCount(p.rel) }

// Bands returns the weight partition, heaviest band first.
func (p *Planner) Bands() []Band { return Bands(p.MaxWeight(), p.LayerCount()) }

// Layers builds one Layer per band, up to Parallelism at a time. The result
// follows Bands order regardless of completion order. The first failing
// band cancels the rest.
func (p *Planner) Layers() ([]*layer.Layer, error) {
	var (
		bands  = p.Bands()
		layers = make([]*layer.Layer, len(bands))
	)
	g, ctx := errgroup.WithContext(p.opts.Ctx)
	g.SetLimit(p.opts.Parallelism)

	for i, b := range bands {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			l, err := layer.Build(b.Apply(p.rel))
			if err != nil {
				return fmt.Errorf("band %s: %w", b, err)
			}
			layers[i] = l

			p.opts.Log.WithFields(logrus.Fields{
				"layer":      i,
				"band":       b.String(),
				"edges":      l.EdgeCount(),
				"colors":     len(l.Colors()),
				"days":       len(l.Order()),
				"insertions": l.Insertions(),
				"maxWait":    l.MaxWait(),
			}).Debug("built layer")

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("network.Layers: %w", err)
	}

	return layers, nil
}

// OptimizedSchedule builds every layer and interleaves their days.
// An all-zero matrix yields an empty schedule.
func (p *Planner) OptimizedSchedule() (*schedule.Schedule, error) {
	layers, err := p.Layers()
	if err != nil {
		return nil, err
	}

	var days = make([][]schedule.Day, len(layers))
	for i, l := range layers {
		days[i] = l.Days()
	}
	s, err := Interleave(p.names, days)
	if err != nil {
		return nil, fmt.Errorf("network.OptimizedSchedule: %w", err)
	}

	p.opts.Log.WithFields(logrus.Fields{
		"participants": len(p.rel),
		"layers":       len(layers),
		"days":         s.Len(),
	}).Info("planned schedule")

	return s, nil
}

// ScheduleWeight returns the realized worst strain of s on this network.
func (p *Planner) ScheduleWeight(s *schedule.Schedule) int { return ScheduleWeight(p.rel, s) }

// OptimizedSchedule is shorthand for New followed by Planner.OptimizedSchedule.
func OptimizedSchedule(rel relation.Matrix, names []string, opts ...Option) (*schedule.Schedule, error) {
	p, err := New(rel, names, opts...)
	if err != nil {
		return nil, err
	}
	return p.OptimizedSchedule()
}
