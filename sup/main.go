// Command sup records the purchases and sales of a shop and reports its
// inventory, costs and revenue.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/supply/cmd"
	"github.com/google/subcommands"
)

func main() {
	app := cmd.NewApp()
	app.SetFlags(flag.CommandLine)
	groups := cmd.Commands(app)

	// Exits when run by the shell to complete a command line.
	cmd.Completion(flag.CommandLine, groups).Complete("sup")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander, groups)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
