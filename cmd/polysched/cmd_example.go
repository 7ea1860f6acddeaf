package main

import "github.com/katalvlaran/polysched/builder"

type cmdExample struct {
	PlanConfig
}

func (cmd *cmdExample) Execute([]string) error {
	var rel, names = builder.Sample()
	return planAndWrite(cmd.PlanConfig, "example", rel, names)
}
