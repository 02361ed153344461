// Package plugin wires UnderMine support into a host: the game
// adapter, both installers (manifest convention probed first), and the
// root deployment mod type.
package plugin

import (
	"github.com/itchio/headway/state"

	"github.com/modhaven/minemod/host"
	"github.com/modhaven/minemod/installer/manifestmod"
	"github.com/modhaven/minemod/installer/rootfolder"
	"github.com/modhaven/minemod/modtype"
	"github.com/modhaven/minemod/patcher"
	"github.com/modhaven/minemod/undermine"
)

// Priority shared by both installers and the mod type. The host probes
// equal-priority installers in registration order, so the manifest
// installer registering first is what gives it the first try.
const Priority = 25

func Register(h *host.Host, consumer *state.Consumer, p *patcher.Patcher) *undermine.Adapter {
	if p == nil {
		p = &patcher.Patcher{}
	}
	adapter := undermine.NewAdapter(h.Store, h.Dialogs, consumer, p)
	h.RegisterGame(adapter)

	h.RegisterInstaller("undermine-manifest", Priority, manifestmod.New())
	h.RegisterInstaller("undermine-root", Priority, rootfolder.New())

	h.RegisterModType("undermine-root", Priority, modtype.New())

	return adapter
}
