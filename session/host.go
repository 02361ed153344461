package session

import (
	"github.com/modhaven/minemod/comm"
	"github.com/modhaven/minemod/host"
	"github.com/modhaven/minemod/patcher"
	"github.com/modhaven/minemod/plugin"
	"github.com/modhaven/minemod/undermine"
)

// NewHost builds a host for CLI use: terminal dialogs, store discovery
// (or the configured game path), and the UnderMine plugin registered.
func (ctx *Context) NewHost() (*host.Host, *undermine.Adapter) {
	var store host.Store = host.DefaultSteamStore()
	if ctx.Config.GamePath != "" {
		store = host.StaticStore{undermine.SteamAppID: ctx.Config.GamePath}
	}

	h := host.New(store, comm.NewTermDialogs())
	adapter := plugin.Register(h, comm.NewStateConsumer(), &patcher.Patcher{
		Command: ctx.Config.PatcherCommand,
	})
	return h, adapter
}
