// Package apply implements `minemod apply`: act as a miniature host,
// executing an extracted archive's instructions into a staging folder
// and recording a receipt.
package apply

import (
	"os"

	"github.com/pkg/errors"

	"github.com/modhaven/minemod/cmd/plan"
	"github.com/modhaven/minemod/comm"
	"github.com/modhaven/minemod/session"
	"github.com/modhaven/minemod/staging"
	"github.com/modhaven/minemod/undermine"
)

var args = struct {
	dir  *string
	dest *string
}{}

func Register(ctx *session.Context) {
	cmd := ctx.App.Command("apply", "Install an extracted archive into a staging folder")
	args.dir = cmd.Arg("dir", "Folder the archive was extracted to").Required().ExistingDir()
	args.dest = cmd.Flag("dest", "Staging folder to install into (defaults to the configured staging_dir)").String()
	ctx.Register(cmd, do)
}

func do(ctx *session.Context) {
	ctx.Must(Do(ctx, *args.dir, *args.dest))
}

func Do(ctx *session.Context, dir string, dest string) error {
	if dest == "" {
		dest = ctx.Config.StagingDir
	}
	if dest == "" {
		return errors.New("no destination: pass --dest or set staging_dir in the config")
	}

	result, mgr, _, err := plan.Compute(ctx, dir)
	if err != nil {
		return err
	}
	if mgr == nil {
		return errors.Errorf("no installer supports %s", dir)
	}

	comm.Opf("Applying %d instructions to %s", len(result.Instructions), dest)
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return errors.WithStack(err)
	}

	applied, err := staging.Apply(staging.ApplyParams{
		Instructions: result.Instructions,
		SourceDir:    dir,
		DestDir:      dest,
		GameID:       undermine.GameID,
		Installer:    mgr.Name(),
		Consumer:     comm.NewStateConsumer(),
	})
	if err != nil {
		return err
	}

	comm.Statf("installed %d files", len(applied.Files))
	return nil
}
