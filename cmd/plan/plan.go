// Package plan implements `minemod plan`: compute the copy
// instructions an archive would produce, without touching the disk.
package plan

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"

	"github.com/modhaven/minemod/comm"
	"github.com/modhaven/minemod/host"
	"github.com/modhaven/minemod/installer"
	"github.com/modhaven/minemod/listing"
	"github.com/modhaven/minemod/session"
	"github.com/modhaven/minemod/undermine"
)

var args = struct {
	target *string
}{}

func Register(ctx *session.Context) {
	cmd := ctx.App.Command("plan", "Show the copy instructions an archive would produce")
	args.target = cmd.Arg("target", "Path of a .zip archive or an extracted folder").Required().String()
	ctx.Register(cmd, do)
}

func do(ctx *session.Context) {
	ctx.Must(Do(ctx, *args.target))
}

func Do(ctx *session.Context, target string) error {
	result, mgr, h, err := Compute(ctx, target)
	if err != nil {
		return err
	}
	if mgr == nil {
		comm.Warnf("no installer supports %s", target)
		return nil
	}

	comm.Opf("Planned with the '%s' installer:", mgr.Name())

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Source", "Destination"})
	for _, in := range result.Instructions {
		table.Append([]string{in.Source, in.Destination})
	}
	table.Render()

	if mt := h.ModTypeFor(undermine.GameID); mt != nil {
		if mt.ClassifyDeployment(result.Instructions) {
			comm.Statf("deploys to the game folder (root deployment)")
		} else {
			comm.Statf("deploys to the mod-staging folder")
		}
	}
	return nil
}

// Compute lists the target, probes for an installer and builds
// instructions. Shared with `minemod apply`. A nil manager means no
// convention matched.
func Compute(ctx *session.Context, target string) (*installer.InstallResult, installer.Manager, *host.Host, error) {
	entries, err := listing.List(target)
	if err != nil {
		return nil, nil, nil, errors.WithMessage(err, "listing target")
	}

	h, _ := ctx.NewHost()
	files := listing.Paths(entries)

	mgr, err := h.Installers().Probe(installer.TestParams{
		Files:  files,
		GameID: undermine.GameID,
	})
	if err != nil || mgr == nil {
		return nil, nil, h, err
	}

	result, err := mgr.Install(installer.InstallParams{
		Files:    files,
		GameID:   undermine.GameID,
		DestPath: destPathFor(target),
		Consumer: comm.NewStateConsumer(),
		Context:  context.Background(),
	})
	if err != nil {
		return nil, nil, nil, errors.WithMessagef(err, "building instructions with '%s'", mgr.Name())
	}
	return result, mgr, h, nil
}

// destPathFor picks the folder manifests are read from: the folder
// itself for extracted targets, the archive's base name otherwise (in
// which case manifest reads fail and naming falls back, same as a host
// would see mid-download).
func destPathFor(target string) string {
	if stat, err := os.Stat(target); err == nil && stat.IsDir() {
		return target
	}
	return strings.TrimSuffix(target, filepath.Ext(target))
}
