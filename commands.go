package main

import (
	"github.com/modhaven/minemod/cmd/apply"
	"github.com/modhaven/minemod/cmd/plan"
	"github.com/modhaven/minemod/cmd/probe"
	"github.com/modhaven/minemod/cmd/setup"
	"github.com/modhaven/minemod/cmd/which"
	"github.com/modhaven/minemod/session"
)

// Each of these specify their own arguments and flags in
// their own package.
func registerCommands(ctx *session.Context) {
	probe.Register(ctx)
	plan.Register(ctx)
	apply.Register(ctx)

	which.Register(ctx)
	setup.Register(ctx)
}
