// Package setup implements `minemod setup`: discover the game and run
// the one-time patch and mod loader consent flow, the same flow the
// host runs when the game is activated.
package setup

import (
	"context"

	"github.com/modhaven/minemod/comm"
	"github.com/modhaven/minemod/host"
	"github.com/modhaven/minemod/session"
	"github.com/modhaven/minemod/undermine"
)

var args = struct {
	gameDir *string
}{}

func Register(ctx *session.Context) {
	cmd := ctx.App.Command("setup", "Patch the game for mod loading (asks first)")
	args.gameDir = cmd.Flag("game-dir", "Game install folder (defaults to store discovery)").String()
	ctx.Register(cmd, do)
}

func do(ctx *session.Context) {
	ctx.Must(Do(ctx, *args.gameDir))
}

func Do(ctx *session.Context, gameDir string) error {
	_, adapter := ctx.NewHost()

	if gameDir == "" {
		var err error
		gameDir, err = adapter.QueryPath(context.Background())
		if err != nil {
			return err
		}
	}
	comm.Opf("Setting up %s in %s", undermine.GameID, gameDir)

	err := adapter.Setup(context.Background(), host.Discovery{
		GameID: undermine.GameID,
		Path:   gameDir,
	})
	if err != nil {
		if host.IsUserCanceled(err) {
			comm.Warnf("setup canceled")
			return nil
		}
		return err
	}

	comm.Statf("setup complete")
	return nil
}
