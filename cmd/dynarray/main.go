// Command dynarray replays operation scripts against a DynamicArray and
// profiles its capacity changes.
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/maruel/subcommands"
)

func getApplication() *subcommands.DefaultApplication {
	return &subcommands.DefaultApplication{
		Name:  "dynarray",
		Title: "tool to exercise the dynarray capacity policy",
		Commands: []*subcommands.Command{
			cmdReplay(),
			cmdProfile(),
			subcommands.CmdHelp,
		},
	}
}

// commonFlags are the flags every subcommand accepts.
type commonFlags struct {
	subcommands.CommandRunBase
	verbose bool
}

func (c *commonFlags) init() {
	c.Flags.BoolVar(&c.verbose, "v", false, "log every resize")
}

// logger returns a stderr logger, at debug level with -v.
func (c *commonFlags) logger() *log.Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{Prefix: "dynarray"})
	if c.verbose {
		l.SetLevel(log.DebugLevel)
	}
	return l
}

func main() {
	os.Exit(subcommands.Run(getApplication(), nil))
}
