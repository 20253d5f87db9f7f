package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/supply"
	"github.com/google/subcommands"
)

type buyCmd struct {
	app        *App
	product    string
	amount     int
	price      string
	expiration int
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "register a purchase of a product" }
func (*buyCmd) Usage() string {
	return `sup buy -product <name> -amount <n> -price <unit price> -expiration <days>

  Records the purchase of <n> units of a product bought today, expiring
  <days> days from today. The inventory and the total cost are updated.

Usage Examples:
$ sup buy -product Apples -amount 5 -price 1.25 -expiration 10
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.product, "product", "", "name of the product")
	f.IntVar(&c.amount, "amount", 0, "number of units bought")
	f.StringVar(&c.price, "price", "", "price paid per unit")
	f.IntVar(&c.expiration, "expiration", 0, "number of days before the product expires")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	price, err := supply.ParseMoney(c.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: -price: %v\n", err)
		return subcommands.ExitUsageError
	}
	store, log, err := c.app.Open()
	if err != nil {
		return fail(log, err)
	}
	defer log.Sync()

	p, err := store.Buy(c.product, c.amount, price, c.expiration)
	if errors.Is(err, supply.ErrInvalid) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err != nil {
		return fail(log, err)
	}
	fmt.Printf("Bought %d %s for %s, expiring on %s (purchase #%d).\n", p.Amount, p.Product, p.TotalCost, p.Expiration, p.ID)
	return subcommands.ExitSuccess
}

type sellCmd struct {
	app     *App
	product string
	amount  int
	price   string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "register a sale of a product" }
func (*sellCmd) Usage() string {
	return `sup sell -product <name> -amount <n> -price <unit price>

  Records the sale of <n> units of a product, today. The sale is refused if
  the product was never bought or if the stock is not enough, and nothing is
  written.

Usage Examples:
$ sup sell -product Apples -amount 3 -price 2
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.product, "product", "", "name of the product")
	f.IntVar(&c.amount, "amount", 0, "number of units sold")
	f.StringVar(&c.price, "price", "", "price earned per unit")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	price, err := supply.ParseMoney(c.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: -price: %v\n", err)
		return subcommands.ExitUsageError
	}
	store, log, err := c.app.Open()
	if err != nil {
		return fail(log, err)
	}
	defer log.Sync()

	s, err := store.Sell(c.product, c.amount, price)
	switch {
	case errors.Is(err, supply.ErrInvalid):
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	case errors.Is(err, supply.ErrProductNotFound), errors.Is(err, supply.ErrInsufficientStock):
		fmt.Fprintf(os.Stderr, "Sale refused: %v\n", err)
		return subcommands.ExitFailure
	case err != nil:
		return fail(log, err)
	}
	fmt.Printf("Sold %d %s for %s (sale #%d).\n", s.Amount, s.Product, s.TotalEarnings, s.ID)
	return subcommands.ExitSuccess
}
