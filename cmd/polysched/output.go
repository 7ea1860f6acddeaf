package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/polysched/network"
	"github.com/katalvlaran/polysched/relation"
	"github.com/katalvlaran/polysched/schedule"
)

// writeReport writes s and st in the given format (text, table or yaml).
func writeReport(w io.Writer, format string, s *schedule.Schedule, st network.Stats) error {
	switch format {
	case "yaml":
		return writeYAML(w, s, st)
	case "table":
		writeScheduleTable(w, s)
		writeStatsTable(w, st)
		return nil
	default:
		return writeText(w, s, st)
	}
}

func writeText(w io.Writer, s *schedule.Schedule, st network.Stats) error {
	var _, err = fmt.Fprintf(w, `%s
Maximum strain endured:        %s
Optimal solution lower bound:  %s
Approximation limit:           %s
Hypothetical performance:      %d%% of lower bound
`,
		s.String(),
		humanize.Comma(int64(st.Weight)),
		humanize.Comma(int64(st.MinimumRun)),
		humanize.Comma(int64(st.ApproximationLimit)),
		st.Performance)
	return err
}

func writeScheduleTable(w io.Writer, s *schedule.Schedule) {
	var table = tablewriter.NewWriter(w)
	table.SetHeader([]string{"Day", "Meetups"})

	for i, d := range s.All() {
		var pairs = make([]string, 0, len(d))
		for _, m := range d {
			pairs = append(pairs, s.Name(m.A)+" & "+s.Name(m.B))
		}
		table.Append([]string{humanize.Ordinal(i + 1), strings.Join(pairs, ", ")})
	}
	table.Render()
}

func writeStatsTable(w io.Writer, st network.Stats) {
	var table = tablewriter.NewWriter(w)
	table.SetHeader([]string{"Statistic", "Value"})

	for _, row := range [][]string{
		{"Participants", humanize.Comma(int64(st.Participants))},
		{"Relationships", humanize.Comma(int64(st.Relationships))},
		{"Layers", strconv.Itoa(st.Layers)},
		{"Days per cycle", humanize.Comma(int64(st.Days))},
		{"Maximum strain", humanize.Comma(int64(st.Weight))},
		{"Lower bound", humanize.Comma(int64(st.MinimumRun))},
		{"Approximation limit", humanize.Comma(int64(st.ApproximationLimit))},
		{"Performance", strconv.Itoa(st.Performance) + "%"},
	} {
		table.Append(row)
	}
	table.Render()
}

// yamlReport is the YAML document written by --format=yaml.
type yamlReport struct {
	Schedule *schedule.Schedule `yaml:"schedule"`
	Stats    yamlStats          `yaml:"stats"`
}

type yamlStats struct {
	Participants       int `yaml:"participants"`
	Relationships      int `yaml:"relationships"`
	Layers             int `yaml:"layers"`
	Days               int `yaml:"days"`
	Weight             int `yaml:"weight"`
	MinimumRun         int `yaml:"minimumRun"`
	ApproximationLimit int `yaml:"approximationLimit"`
	Performance        int `yaml:"performance"`
}

func writeYAML(w io.Writer, s *schedule.Schedule, st network.Stats) error {
	var enc = yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(yamlReport{Schedule: s, Stats: yamlStats(st)}); err != nil {
		return err
	}
	return enc.Close()
}

// writeMatrix prints rel as CSV under a heading.
func writeMatrix(w io.Writer, rel relation.Matrix, names []string) error {
	if _, err := fmt.Fprintln(w, "Relationship matrix:"); err != nil {
		return err
	}
	if err := relation.WriteCSV(w, rel, names); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}
