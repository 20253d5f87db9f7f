package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/supply/renderer"
	"github.com/google/subcommands"
)

type checkCmd struct{ app *App }

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "compare the totals and the inventory with the records" }
func (*checkCmd) Usage() string {
	return `sup check

  Replays the purchase and sale records and compares the result with the
  running totals and both inventory files. Nothing is modified. Exits with
  a failure status if anything differs.
`
}
func (*checkCmd) SetFlags(f *flag.FlagSet) {}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, log, err := c.app.Open()
	if err != nil {
		return fail(log, err)
	}
	defer log.Sync()
	d, err := store.Check()
	if err != nil {
		return fail(log, err)
	}
	printMarkdown(renderer.DriftMarkdown(d))
	if !d.OK() {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type recomputeCmd struct{ app *App }

func (*recomputeCmd) Name() string     { return "recompute" }
func (*recomputeCmd) Synopsis() string { return "rebuild the totals and the inventory from the records" }
func (*recomputeCmd) Usage() string {
	return `sup recompute

  Rebuilds the running totals and both inventory files from the purchase and
  sale records, after they were edited by hand.
`
}
func (*recomputeCmd) SetFlags(f *flag.FlagSet) {}

func (c *recomputeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, log, err := c.app.Open()
	if err != nil {
		return fail(log, err)
	}
	defer log.Sync()
	d, err := store.Recompute()
	if err != nil {
		return fail(log, err)
	}
	if d.OK() {
		fmt.Println("Nothing to rebuild.")
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.DriftMarkdown(d))
	fmt.Println("Totals and inventory rebuilt from the records.")
	return subcommands.ExitSuccess
}
