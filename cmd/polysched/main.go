// polysched plans repeating meeting schedules for weighted relationship
// networks.
package main

import (
	"github.com/jessevdk/go-flags"
)

const iniFilename = "polysched.ini"

// Config holds options shared by every sub-command.
type Config struct {
	Log LogConfig `group:"Logging" namespace:"log" env-namespace:"POLYSCHED_LOG"`
}

var cfg Config

func main() {
	var parser = flags.NewParser(&cfg, flags.Default)

	parser.LongDescription = `polysched plans a repeating meeting schedule for a network of weighted
relationships, keeping the longest strain any pair endures close to optimal.

See --help pages of each sub-command for documentation and usage examples.
Optionally configure polysched with a '` + iniFilename + `' file in the current working
directory, or with '~/.config/polysched/` + iniFilename + `'.
`
	addCommands(parser)

	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		InitLog(cfg.Log)
		if cmd == nil {
			return nil
		}
		return cmd.Execute(args)
	}

	mustParseConfig(parser, iniFilename)
}

// addCommands registers every sub-command on parser.
func addCommands(parser *flags.Parser) {
	mustAddCmd(parser.Command, "example", "Plan the 8-participant sample network", `
Plan the built-in sample network (Alice through Holly) and print the schedule
together with its strain statistics.
`, &cmdExample{})

	mustAddCmd(parser.Command, "input", "Plan a network read from a CSV file", `
Plan a network read from a CSV file. The header row names the participants;
row r holds participant r's weights. Only entries right of the diagonal are
read and mirrored, so the lower triangle may be left blank or zero.

>    Alice,Belle,Claire
>    0,40,0
>    0,0,80
>    0,0,0
`, &cmdInput{})

	mustAddCmd(parser.Command, "perf", "Time plans of random networks of growing size", `
Plan --runs random networks for every size from --from to --to (step --step)
and report how long each size took. --datapoints prints "(size,ms)," pairs for
plotting instead of prose.
`, &cmdPerf{})

	mustAddCmd(parser.Command, "generate", "Write a random network as CSV", `
Generate a random network in the CSV format accepted by "input". Each pair is
related with probability --density and weighted uniformly in [1, --max-weight].
`, &cmdGenerate{})

	mustAddCmd(parser.Command, "print-config", "Print combined configuration and exit", `
print-config parses the combined configuration from `+iniFilename+`, flags,
and environment variables, and then writes the configuration to stdout in INI format.
`, &printConfig{parser})
}

func mustAddCmd(cmd *flags.Command, name, short, long string, data interface{}) *flags.Command {
	cmd, err := cmd.AddCommand(name, short, long, data)
	must(err, "failed to add command")
	return cmd
}
