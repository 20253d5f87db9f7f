package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/supply/date"
	"github.com/etnz/supply/renderer"
	"github.com/google/subcommands"
)

type inventoryCmd struct{ app *App }

func (*inventoryCmd) Name() string             { return "inventory" }
func (*inventoryCmd) Synopsis() string         { return "display the current inventory" }
func (*inventoryCmd) Usage() string            { return "sup inventory\n\n  Displays the current stock of every product ever bought.\n" }
func (*inventoryCmd) SetFlags(f *flag.FlagSet) {}

func (c *inventoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, log, err := c.app.Open()
	if err != nil {
		return fail(log, err)
	}
	defer log.Sync()
	inv, err := store.Inventory()
	if err != nil {
		return fail(log, err)
	}
	printMarkdown(renderer.InventoryMarkdown(inv))
	return subcommands.ExitSuccess
}

type salesCmd struct{ app *App }

func (*salesCmd) Name() string     { return "sales" }
func (*salesCmd) Synopsis() string { return "display the sales history" }
func (*salesCmd) Usage() string {
	return `sup sales

  Displays every sale, and exports them to sales.json in the data directory.
`
}
func (*salesCmd) SetFlags(f *flag.FlagSet) {}

func (c *salesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, log, err := c.app.Open()
	if err != nil {
		return fail(log, err)
	}
	defer log.Sync()
	sales, err := store.ExportSales()
	if err != nil {
		return fail(log, err)
	}
	printMarkdown(renderer.SalesMarkdown(sales))
	return subcommands.ExitSuccess
}

type purchasesCmd struct{ app *App }

func (*purchasesCmd) Name() string     { return "purchases" }
func (*purchasesCmd) Synopsis() string { return "display the purchase history" }
func (*purchasesCmd) Usage() string {
	return `sup purchases

  Displays every purchase, and exports them to purchases.json and
  purchases.csv in the data directory.
`
}
func (*purchasesCmd) SetFlags(f *flag.FlagSet) {}

func (c *purchasesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, log, err := c.app.Open()
	if err != nil {
		return fail(log, err)
	}
	defer log.Sync()
	purchases, err := store.ExportPurchases()
	if err != nil {
		return fail(log, err)
	}
	printMarkdown(renderer.PurchasesMarkdown(purchases))
	return subcommands.ExitSuccess
}

type expiredCmd struct {
	app *App
	on  string
}

func (*expiredCmd) Name() string     { return "expired" }
func (*expiredCmd) Synopsis() string { return "display the expired products still in stock" }
func (*expiredCmd) Usage() string {
	return `sup expired [-d <date>]

  Displays the purchases expired on <date> (today by default) whose product
  is still in stock.
`
}

func (c *expiredCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.on, "d", "", "date to check expiration on (defaults to today)")
}

func (c *expiredCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, log, err := c.app.Open()
	if err != nil {
		return fail(log, err)
	}
	defer log.Sync()
	on := store.Today()
	if c.on != "" {
		if on, err = date.Parse(c.on); err != nil {
			fmt.Fprintf(os.Stderr, "Error: -d: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	expired, err := store.Expired(on)
	if err != nil {
		return fail(log, err)
	}
	printMarkdown(renderer.ExpiredMarkdown(on, expired))
	return subcommands.ExitSuccess
}
