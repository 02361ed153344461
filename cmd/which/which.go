// Package which implements `minemod which`: print the game's
// discovered install folder.
package which

import (
	"context"

	"github.com/modhaven/minemod/comm"
	"github.com/modhaven/minemod/session"
)

func Register(ctx *session.Context) {
	cmd := ctx.App.Command("which", "Print where the game is installed")
	ctx.Register(cmd, do)
}

func do(ctx *session.Context) {
	ctx.Must(Do(ctx))
}

func Do(ctx *session.Context) error {
	_, adapter := ctx.NewHost()

	p, err := adapter.QueryPath(context.Background())
	if err != nil {
		return err
	}

	comm.Logf("%s", p)
	return nil
}
