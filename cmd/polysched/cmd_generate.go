package main

import (
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/katalvlaran/polysched/builder"
	"github.com/katalvlaran/polysched/relation"
)

// GeneratorConfig describes a random network.
type GeneratorConfig struct {
	Density   float64 `long:"density" default:"0.05" description:"Probability that a pair is related" validate:"gte=0,lte=1"`
	MaxWeight int     `long:"max-weight" default:"1000" description:"Largest relationship weight" validate:"gte=1"`
	Seed      int64   `long:"seed" env:"POLYSCHED_SEED" description:"Random seed (0 picks one from the clock)"`
}

// source returns the generator's random source, seeding a zero Seed from the
// clock.
func (c GeneratorConfig) source() *rand.Rand {
	var seed = c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// network draws an n-participant random network from rng.
func (c GeneratorConfig) network(rng *rand.Rand, n int, names builder.IDFn) (relation.Matrix, []string, error) {
	var opts = []builder.BuilderOption{
		builder.WithRand(rng),
		builder.WithUniformWeight(1, c.MaxWeight),
		builder.WithIDScheme(names),
	}
	return builder.BuildNetwork(n, opts, builder.RandomSparse(c.Density))
}

type cmdGenerate struct {
	GeneratorConfig
	Participants int    `long:"participants" short:"n" default:"20" description:"Number of participants" validate:"gte=1"`
	Names        string `long:"names" default:"excel" choice:"decimal" choice:"excel" choice:"prefix" description:"Participant naming scheme"`
	Output       string `long:"output" short:"o" description:"Write to this file instead of stdout"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (cmd *cmdGenerate) Execute([]string) error {
	if err := validate.Struct(cmd); err != nil {
		return errors.Wrap(err, "invalid generator parameters")
	}

	rel, names, err := cmd.network(cmd.source(), cmd.Participants, idScheme(cmd.Names))
	if err != nil {
		return err
	}

	var w io.Writer = stdout
	if cmd.Output != "" {
		f, err := os.Create(cmd.Output)
		if err != nil {
			return errors.Wrapf(err, "creating %s", cmd.Output)
		}
		defer f.Close()
		w = f
	}
	return relation.WriteCSV(w, rel, names)
}

// idScheme maps a --names choice to a builder.IDFn.
func idScheme(name string) builder.IDFn {
	switch name {
	case "decimal":
		return builder.DefaultIDFn
	case "prefix":
		return builder.PrefixIDFn("P")
	default:
		return builder.ExcelColumnIDFn
	}
}
