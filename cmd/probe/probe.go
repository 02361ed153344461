// Package probe implements `minemod probe`: list an archive or folder
// and report which packaging convention, if any, claims it.
package probe

import (
	"os"

	humanize "github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"

	"github.com/modhaven/minemod/comm"
	"github.com/modhaven/minemod/installer"
	"github.com/modhaven/minemod/listing"
	"github.com/modhaven/minemod/session"
	"github.com/modhaven/minemod/undermine"
)

var args = struct {
	target *string
	files  *bool
}{}

func Register(ctx *session.Context) {
	cmd := ctx.App.Command("probe", "Show which packaging convention an archive follows")
	args.target = cmd.Arg("target", "Path of a .zip archive or an extracted folder").Required().String()
	args.files = cmd.Flag("files", "Also list the archive's entries").Bool()
	ctx.Register(cmd, do)
}

func do(ctx *session.Context) {
	ctx.Must(Do(ctx, *args.target))
}

func Do(ctx *session.Context, target string) error {
	entries, err := listing.List(target)
	if err != nil {
		return errors.WithMessage(err, "listing target")
	}

	comm.Opf("Probing %s: %s in %s",
		target,
		humanize.IBytes(uint64(listing.TotalSize(entries))),
		english(len(entries)))

	if *args.files {
		for _, e := range entries {
			comm.Logf("%10s  %s", humanize.IBytes(uint64(e.Size)), e.Path)
		}
	}

	h, _ := ctx.NewHost()
	params := installer.TestParams{
		Files:  listing.Paths(entries),
		GameID: undermine.GameID,
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Installer", "Supported"})
	for _, m := range h.Installers().Sorted() {
		res, err := m.TestSupported(params)
		if err != nil {
			return err
		}
		table.Append([]string{m.Name(), boolStr(res.Supported)})
	}
	table.Render()

	claimed, err := h.Installers().Probe(params)
	if err != nil {
		return err
	}
	if claimed == nil {
		comm.Warnf("no installer supports this archive")
		return nil
	}
	comm.Statf("the '%s' installer claims this archive", claimed.Name())
	return nil
}

func boolStr(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func english(n int) string {
	if n == 1 {
		return "1 entry"
	}
	return humanize.Comma(int64(n)) + " entries"
}
