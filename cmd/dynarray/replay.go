package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/maruel/subcommands"

	"github.com/pavanmanishd/dynarray"
	"github.com/pavanmanishd/dynarray/internal/script"
)

func cmdReplay() *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "replay [-json] [-v] <script>",
		ShortDesc: "replays an operation script",
		LongDesc: `Applies an operation script to an empty array of ints.

One operation per line: push v, insert i v, prepend v, pop, delete i,
remove v, find v, at i. Blank lines and # comments are ignored.
Each step prints its result with the size and capacity after it.
`,
		CommandRun: func() subcommands.CommandRun {
			c := &replayRun{}
			c.init()
			return c
		},
	}
}

type replayRun struct {
	commonFlags
	jsonOut bool
	initCap int
}

func (c *replayRun) init() {
	c.commonFlags.init()
	c.Flags.BoolVar(&c.jsonOut, "json", false, "print the final contents as JSON")
	c.Flags.IntVar(&c.initCap, "initial_capacity", dynarray.InitialCapacity, "initial capacity of the array")
}

func (c *replayRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	if len(args) != 1 {
		fmt.Fprintf(a.GetErr(), "%s: replay takes exactly one script\n", a.GetName())
		return 2
	}
	logger := c.logger()
	f, err := os.Open(args[0])
	if err != nil {
		logger.Error("failed to open script", "path", args[0], "err", err)
		return 1
	}
	defer f.Close()

	arr := dynarray.NewDynamicArray[int](dynarray.WithInitialCapacity(c.initCap), dynarray.WithLogger(logger))
	defer arr.Release()
	steps, err := script.Run(f, arr)
	if err != nil {
		logger.Error("failed to parse script", "path", args[0], "err", err)
		return 1
	}
	failed := 0
	for _, st := range steps {
		fmt.Fprintln(a.GetOut(), st)
		if st.Err != nil {
			failed++
		}
	}
	logger.Info("replay done", "steps", len(steps), "errors", failed, "grows", arr.Grows(), "shrinks", arr.Shrinks())
	if c.jsonOut {
		buf, err := json.Marshal(arr)
		if err != nil {
			logger.Error("failed to encode contents", "err", err)
			return 1
		}
		fmt.Fprintln(a.GetOut(), string(buf))
	}
	return 0
}
