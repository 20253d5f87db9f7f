package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/supply"
	"github.com/etnz/supply/date"
	"github.com/google/subcommands"
)

// totalCmd prints one of the running totals.
type totalCmd struct {
	app      *App
	name     string
	synopsis string
	label    string
	get      func(*supply.Store) (supply.Money, error)
}

func (c *totalCmd) Name() string     { return c.name }
func (c *totalCmd) Synopsis() string { return c.synopsis }
func (c *totalCmd) Usage() string {
	return fmt.Sprintf("sup %s\n\n  Displays the running total kept in the data directory.\n  Use check to compare it with the records.\n", c.name)
}
func (*totalCmd) SetFlags(f *flag.FlagSet) {}

func (c *totalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, log, err := c.app.Open()
	if err != nil {
		return fail(log, err)
	}
	defer log.Sync()
	total, err := c.get(store)
	if err != nil {
		return fail(log, err)
	}
	fmt.Printf("%s: $%s\n", c.label, total.Fixed())
	return subcommands.ExitSuccess
}

func newTotalCostCmd(app *App) *totalCmd {
	return &totalCmd{app: app, name: "totalcost", synopsis: "display the total cost of all items bought",
		label: "Total cost of all items bought", get: (*supply.Store).TotalCost}
}

func newTotalRevenueCmd(app *App) *totalCmd {
	return &totalCmd{app: app, name: "totalrevenue", synopsis: "display the total revenue from sales",
		label: "Total revenue from sales", get: (*supply.Store).TotalRevenue}
}

func newTotalProfitCmd(app *App) *totalCmd {
	return &totalCmd{app: app, name: "totalprofit", synopsis: "display the total profit (total revenue - total cost)",
		label: "Total profit", get: (*supply.Store).TotalProfit}
}

// dateCmd computes a metric over a day or a range of days and appends the
// result to the metric's report file.
type dateCmd struct {
	app    *App
	name   string
	metric supply.Metric
}

func (c *dateCmd) Name() string { return c.name }
func (c *dateCmd) Synopsis() string {
	return fmt.Sprintf("calculate the total %s for a date or a date range", c.metric)
}
func (c *dateCmd) Usage() string {
	return fmt.Sprintf(`sup %s <start date> [<end date>]

  Calculates the total %s on <start date>, or between <start date> and
  <end date> included. Dates are YYYY-MM-DD. The result is printed and
  appended to the %s report in the data directory.
`, c.name, c.metric, c.metric)
}
func (*dateCmd) SetFlags(f *flag.FlagSet) {}

func (c *dateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := parseRange(f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	store, log, err := c.app.Open()
	if err != nil {
		return fail(log, err)
	}
	defer log.Sync()
	_, line, err := store.Query(c.metric, r)
	if err != nil {
		return fail(log, err)
	}
	fmt.Println(line)
	return subcommands.ExitSuccess
}

// parseRange parses "start [end]" arguments. Without end, the range is the
// start day alone.
func parseRange(args []string) (date.Range, error) {
	switch len(args) {
	case 1, 2:
	default:
		return date.Range{}, fmt.Errorf("want a start date and an optional end date, got %d arguments", len(args))
	}
	start, err := date.Parse(args[0])
	if err != nil {
		return date.Range{}, fmt.Errorf("invalid start date: %w", err)
	}
	if len(args) == 1 {
		return date.On(start), nil
	}
	end, err := date.Parse(args[1])
	if err != nil {
		return date.Range{}, fmt.Errorf("invalid end date: %w", err)
	}
	if end.Before(start) {
		return date.Range{}, fmt.Errorf("end date %s is before start date %s", end, start)
	}
	return date.Between(start, end), nil
}
