// Package host models the mod-management host application's side of
// the plugin contract: registries for games, installers and mod types,
// plus the collaborators (store lookup, dialogs) the host provides.
// Everything is carried by an explicit Host value; there is no ambient
// global state.
package host

import (
	"context"

	"github.com/modhaven/minemod/installer"
)

// A Game adapter teaches the host about one game: where it's installed,
// what to run, where mods go, and a setup hook that runs on every
// activation of the game.
type Game interface {
	ID() string
	QueryPath(ctx context.Context) (string, error)
	Executable() string
	QueryModPath() string
	Setup(ctx context.Context, d Discovery) error
}

// Discovery is the result of install-path discovery, handed to Setup.
type Discovery struct {
	GameID string

	// Path is the game's install folder.
	Path string
}

// A ModType decides, once instructions exist, whether they require a
// special deployment target instead of the generic mod-staging folder.
type ModType interface {
	IsApplicable(gameID string) bool
	RootPath(d Discovery) string
	ClassifyDeployment(instructions []installer.Instruction) bool
}

type registeredModType struct {
	ID       string
	Priority int
	Type     ModType
}

// Host carries everything a plugin registers and everything the host
// application provides to plugins.
type Host struct {
	Store   Store
	Dialogs Dialogs

	games      []Game
	installers *installer.Registry
	modTypes   []registeredModType
}

func New(store Store, dialogs Dialogs) *Host {
	return &Host{
		Store:      store,
		Dialogs:    dialogs,
		installers: installer.NewRegistry(),
	}
}

func (h *Host) RegisterGame(g Game) {
	h.games = append(h.games, g)
}

func (h *Host) RegisterInstaller(id string, priority int, m installer.Manager) {
	h.installers.Register(id, priority, m)
}

func (h *Host) RegisterModType(id string, priority int, t ModType) {
	h.modTypes = append(h.modTypes, registeredModType{ID: id, Priority: priority, Type: t})
}

func (h *Host) Games() []Game {
	return h.games
}

func (h *Host) Installers() *installer.Registry {
	return h.installers
}

// ModTypeFor returns the first applicable mod type for a game, or nil.
func (h *Host) ModTypeFor(gameID string) ModType {
	for _, mt := range h.modTypes {
		if mt.Type.IsApplicable(gameID) {
			return mt.Type
		}
	}
	return nil
}
