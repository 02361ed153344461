// Package session carries the minemod CLI's shared state: the kingpin
// application, the command registry, flags and the loaded config.
// Commands live in cmd/<verb> packages and register themselves here.
package session

import (
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/modhaven/minemod/comm"
)

type DoCommand func(ctx *Context)

type Context struct {
	App      *kingpin.Application
	Commands map[string]DoCommand

	// Quiet silences all output
	Quiet bool

	// Verbose enables chatty output
	Verbose bool

	Config *Config
}

func NewContext(app *kingpin.Application) *Context {
	return &Context{
		App:      app,
		Commands: make(map[string]DoCommand),
		Config:   &Config{},
	}
}

func (ctx *Context) Register(clause *kingpin.CmdClause, do DoCommand) {
	ctx.Commands[clause.FullCommand()] = do
}

func (ctx *Context) Must(err error) {
	if err != nil {
		if ctx.Verbose {
			comm.Dief("%+v", err)
		} else {
			comm.Dief("%s", err)
		}
	}
}
