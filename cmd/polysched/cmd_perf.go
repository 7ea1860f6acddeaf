package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/polysched/builder"
)

type cmdPerf struct {
	GeneratorConfig
	PlanConfig
	Runs       int  `long:"runs" default:"100" description:"Networks planned per size" validate:"gte=1"`
	From       int  `long:"from" default:"10" description:"Smallest network size" validate:"gte=1"`
	To         int  `long:"to" default:"250" description:"Largest network size" validate:"gtefield=From"`
	Step       int  `long:"step" default:"10" description:"Size increment" validate:"gte=1"`
	Datapoints bool `long:"datapoints" short:"d" description:"Print (size,ms) pairs instead of prose"`
}

func (cmd *cmdPerf) Execute([]string) error {
	if err := validate.Struct(cmd); err != nil {
		return errors.Wrap(err, "invalid perf parameters")
	}
	if !cmd.Datapoints {
		fmt.Fprintf(stdout, "%s runs of random networks with:\n\n", humanize.Comma(int64(cmd.Runs)))
	}

	var rng = cmd.source()
	for n := cmd.From; n <= cmd.To; n += cmd.Step {
		var start = time.Now()
		for r := 0; r < cmd.Runs; r++ {
			rel, _, err := cmd.network(rng, n, builder.DefaultIDFn)
			if err != nil {
				return err
			}
			if _, _, err = plan(cmd.PlanConfig, "perf", rel, nil); err != nil {
				return err
			}
		}
		var elapsed = time.Since(start)

		log.WithFields(log.Fields{"size": n, "runs": cmd.Runs, "elapsed": elapsed}).Debug("perf step")
		if cmd.Datapoints {
			fmt.Fprintf(stdout, "(%d,%d),\n", n, elapsed.Milliseconds())
		} else {
			fmt.Fprintf(stdout, "%s people took %s milliseconds\n",
				humanize.Comma(int64(n)), humanize.Comma(elapsed.Milliseconds()))
		}
	}
	return nil
}
