package main

import (
	"os"

	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/modhaven/minemod/comm"
	"github.com/modhaven/minemod/session"
)

var (
	version = "head" // set by command-line on CI release builds
	app     = kingpin.New("minemod", "UnderMine support for the ModHaven mod manager")
)

var appArgs = struct {
	quiet   *bool
	verbose *bool
}{
	app.Flag("quiet", "Hide extra info").Short('q').Bool(),
	app.Flag("verbose", "Display as much extra info as possible").Short('v').Bool(),
}

func main() {
	app.HelpFlag.Short('h')
	app.Version(version)
	app.VersionFlag.Short('V')

	ctx := session.NewContext(app)
	registerCommands(ctx)

	cmd, err := app.Parse(os.Args[1:])
	if err != nil {
		app.FatalUsage("%s\n", err)
	}

	ctx.Quiet = *appArgs.quiet
	ctx.Verbose = *appArgs.verbose
	comm.Configure(ctx.Quiet, ctx.Verbose)

	cfg, err := session.LoadConfig()
	ctx.Must(err)
	ctx.Config = cfg

	do, ok := ctx.Commands[cmd]
	if !ok {
		comm.Dief("unknown command %s", cmd)
	}
	do(ctx)
}
