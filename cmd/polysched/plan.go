package main

import (
	"errors"
	"runtime"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/polysched/coloring"
	"github.com/katalvlaran/polysched/network"
	"github.com/katalvlaran/polysched/relation"
	"github.com/katalvlaran/polysched/schedule"
)

// PlanConfig holds options for commands that plan a schedule.
type PlanConfig struct {
	Format      string `long:"format" default:"text" choice:"text" choice:"table" choice:"yaml" description:"Output format"`
	Parallelism int    `long:"parallelism" env:"POLYSCHED_PARALLELISM" default:"1" description:"Layers built concurrently (0 uses every CPU)"`
	Matrix      bool   `long:"matrix" description:"Also print the relationship matrix"`
}

// parallelism resolves 0 to GOMAXPROCS.
func (c PlanConfig) parallelism() int {
	if c.Parallelism <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return c.Parallelism
}

// plan runs the planner on rel and returns the schedule with its stats.
// A broken coloring invariant is a program bug and ends the process.
func plan(c PlanConfig, cmd string, rel relation.Matrix, names []string) (*schedule.Schedule, network.Stats, error) {
	var entry = log.WithField("cmd", cmd)

	p, err := network.New(rel, names,
		network.WithLogger(entry),
		network.WithParallelism(c.parallelism()))
	if err != nil {
		return nil, network.Stats{}, err
	}

	s, err := p.OptimizedSchedule()
	if errors.Is(err, coloring.ErrInvariant) {
		entry.WithField("err", err).Fatal("coloring invariant violated")
	} else if err != nil {
		return nil, network.Stats{}, err
	}

	return s, p.Stats(s), nil
}

// planAndWrite plans rel and writes it to stdout in c.Format.
func planAndWrite(c PlanConfig, cmd string, rel relation.Matrix, names []string) error {
	s, st, err := plan(c, cmd, rel, names)
	if err != nil {
		return err
	}
	if c.Matrix {
		if err = writeMatrix(stdout, rel, names); err != nil {
			return err
		}
	}
	return writeReport(stdout, c.Format, s, st)
}
