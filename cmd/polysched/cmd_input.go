package main

import (
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/polysched/relation"
)

type cmdInput struct {
	PlanConfig
	File string `long:"file" short:"f" required:"true" description:"CSV file holding the relationship matrix"`
}

func (cmd *cmdInput) Execute([]string) error {
	f, err := os.Open(cmd.File)
	if err != nil {
		return errors.Wrap(err, "unable to access file, check that it exists and is readable")
	}
	defer f.Close()

	rel, names, err := relation.ReadCSV(f)
	if err != nil {
		return errors.WithMessagef(err, "reading %s", cmd.File)
	}
	log.WithFields(log.Fields{
		"file":          cmd.File,
		"participants":  rel.Size(),
		"relationships": rel.EdgeCount(),
	}).Info("read network")

	return planAndWrite(cmd.PlanConfig, "input", rel, names)
}
