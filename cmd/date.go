package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
)

type todayCmd struct{ app *App }

func (*todayCmd) Name() string     { return "today" }
func (*todayCmd) Synopsis() string { return "show the current date" }
func (*todayCmd) Usage() string {
	return `sup today

  Shows the date used as today for purchases and sales: the system date, or
  -today, advanced by advancedate.
`
}
func (*todayCmd) SetFlags(f *flag.FlagSet) {}

func (c *todayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	clock, err := c.app.Clock()
	if err != nil {
		return fail(nil, err)
	}
	fmt.Printf("The current system date is: %s\n", clock.Today())
	return subcommands.ExitSuccess
}

type advanceDateCmd struct{ app *App }

func (*advanceDateCmd) Name() string     { return "advancedate" }
func (*advanceDateCmd) Synopsis() string { return "advance the date by the number of days" }
func (*advanceDateCmd) Usage() string {
	return `sup advancedate <days>

  Advances the date used as today by <days> days, negative to go back. The
  offset is kept in the data directory and applies to the following commands.

Usage Examples:
$ sup advancedate 2
`
}
func (*advanceDateCmd) SetFlags(f *flag.FlagSet) {}

func (c *advanceDateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: please provide the number of days to advance.")
		return subcommands.ExitUsageError
	}
	days, err := strconv.Atoi(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: please try again and enter a valid number.")
		return subcommands.ExitUsageError
	}
	if err := c.app.advance(days); err != nil {
		return fail(nil, err)
	}
	clock, err := c.app.Clock()
	if err != nil {
		return fail(nil, err)
	}
	fmt.Printf("The new date is now %s.\n", clock.Today())
	return subcommands.ExitSuccess
}
