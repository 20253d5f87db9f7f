package cmd

import (
	"flag"

	"github.com/etnz/supply"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Group is the group of the commands, used to register and complete them.
type Group struct {
	Name     string
	Commands []subcommands.Command
}

// Commands returns the commands of the sup tool, by group.
func Commands(app *App) []Group {
	return []Group{
		{"transactions", []subcommands.Command{
			&buyCmd{app: app},
			&sellCmd{app: app},
		}},
		{"records", []subcommands.Command{
			&inventoryCmd{app: app},
			&salesCmd{app: app},
			&purchasesCmd{app: app},
			&expiredCmd{app: app},
		}},
		{"totals", []subcommands.Command{
			newTotalCostCmd(app),
			newTotalRevenueCmd(app),
			newTotalProfitCmd(app),
			&dateCmd{app: app, name: "datecost", metric: supply.MetricCost},
			&dateCmd{app: app, name: "daterevenue", metric: supply.MetricRevenue},
			&dateCmd{app: app, name: "dateprofit", metric: supply.MetricProfit},
		}},
		{"date", []subcommands.Command{
			&todayCmd{app: app},
			&advanceDateCmd{app: app},
		}},
		{"maintenance", []subcommands.Command{
			&checkCmd{app: app},
			&recomputeCmd{app: app},
		}},
	}
}

// Register registers every command on c.
func Register(c *subcommands.Commander, groups []Group) {
	for _, g := range groups {
		for _, cmd := range g.Commands {
			c.Register(cmd, g.Name)
		}
	}
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")
}

// Completion returns the shell completion tree of the commands, with global
// flags declared on global.
func Completion(global *flag.FlagSet, groups []Group) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(global),
	}
	for _, g := range groups {
		for _, cmd := range g.Commands {
			f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
			cmd.SetFlags(f)
			root.Sub[cmd.Name()] = &complete.Command{
				Flags: flagPredictors(f),
				Args:  predict.Nothing,
			}
		}
	}
	for _, name := range []string{"datecost", "daterevenue", "dateprofit", "advancedate"} {
		root.Sub[name].Args = predict.Something
	}
	root.Sub["help"] = &complete.Command{Args: predict.Set(names(groups))}
	return root
}

func flagPredictors(f *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	f.VisitAll(func(fl *flag.Flag) {
		if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[fl.Name] = predict.Nothing
			return
		}
		switch fl.Name {
		case "dir":
			flags[fl.Name] = predict.Dirs("*")
		default:
			flags[fl.Name] = predict.Something
		}
	})
	return flags
}

func names(groups []Group) []string {
	var all []string
	for _, g := range groups {
		for _, cmd := range g.Commands {
			all = append(all, cmd.Name())
		}
	}
	return all
}
