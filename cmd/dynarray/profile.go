package main

import (
	"fmt"

	"github.com/maruel/subcommands"

	"github.com/pavanmanishd/dynarray"
	"github.com/pavanmanishd/dynarray/internal/script"
)

func cmdProfile() *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "profile [-n N] [-v]",
		ShortDesc: "prints capacity changes for a push/pop cycle",
		LongDesc:  "Pushes N ints onto an empty array, pops them all, and prints every capacity change.",
		CommandRun: func() subcommands.CommandRun {
			c := &profileRun{}
			c.init()
			return c
		},
	}
}

type profileRun struct {
	commonFlags
	n       int
	initCap int
}

func (c *profileRun) init() {
	c.commonFlags.init()
	c.Flags.IntVar(&c.n, "n", 1000, "number of elements to push")
	c.Flags.IntVar(&c.initCap, "initial_capacity", dynarray.InitialCapacity, "initial capacity of the array")
}

func (c *profileRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	if len(args) != 0 {
		fmt.Fprintf(a.GetErr(), "%s: position arguments not expected\n", a.GetName())
		return 2
	}
	if c.n < 0 {
		fmt.Fprintf(a.GetErr(), "%s: -n must not be negative\n", a.GetName())
		return 2
	}
	logger := c.logger()
	arr := dynarray.NewDynamicArray[int](dynarray.WithInitialCapacity(c.initCap), dynarray.WithLogger(logger))
	defer arr.Release()

	resizes, err := script.Profile(arr, c.n)
	for _, r := range resizes {
		fmt.Fprintln(a.GetOut(), r)
	}
	if err != nil {
		logger.Error("profile failed", "err", err)
		return 1
	}
	m := arr.Metrics()
	fmt.Fprintf(a.GetOut(), "grows=%d shrinks=%d final_cap=%d\n", m.Grows, m.Shrinks, m.Capacity)
	return 0
}
