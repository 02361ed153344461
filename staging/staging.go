// Package staging is a miniature host: it executes copy instructions
// from an extracted archive into a destination folder and keeps a
// receipt of what landed there. The real host application does this
// itself; the minemod CLI uses this package for standalone installs.
package staging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/itchio/headway/state"
	"github.com/pkg/errors"

	"github.com/modhaven/minemod/installer"
)

type ApplyParams struct {
	Instructions []installer.Instruction

	// SourceDir is the folder the archive was extracted to.
	SourceDir string

	// DestDir is where instructions are materialized.
	DestDir string

	GameID    string
	Installer string

	Consumer *state.Consumer
}

type ApplyResult struct {
	// Files that were written, relative to DestDir, slash-separated.
	Files []string
}

// Apply copies every instruction's source file into place, then writes
// a receipt. Progress is reported per instruction.
func Apply(params ApplyParams) (*ApplyResult, error) {
	consumer := params.Consumer

	prior, err := ReadReceipt(params.DestDir)
	if err != nil {
		return nil, err
	}

	var files []string
	for i, in := range params.Instructions {
		if in.Type != installer.TypeCopy {
			consumer.Debugf("skipping %s instruction for %s", in.Type, in.Source)
			continue
		}

		src := filepath.Join(params.SourceDir, filepath.FromSlash(in.Source))
		dst := filepath.Join(params.DestDir, filepath.FromSlash(in.Destination))
		if err := copyFile(src, dst); err != nil {
			return nil, errors.WithMessagef(err, "copying %s", in.Source)
		}

		files = append(files, in.Destination)
		consumer.Progress(float64(i+1) / float64(len(params.Instructions)))
	}

	if prior.HasFiles() {
		for _, stale := range difference(files, prior.Files) {
			consumer.Warnf("%s: left over from a previous install", stale)
		}
	}

	receipt := &Receipt{
		GameID:    params.GameID,
		Installer: params.Installer,
		Files:     files,
	}
	if err := receipt.WriteReceipt(params.DestDir); err != nil {
		return nil, err
	}

	return &ApplyResult{Files: files}, nil
}

func copyFile(src string, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return errors.WithStack(err)
	}

	in, err := os.Open(src)
	if err != nil {
		return errors.WithStack(err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return errors.WithStack(err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return errors.WithStack(err)
	}
	return errors.WithStack(out.Close())
}

// difference returns elements of b that aren't in a.
func difference(a []string, b []string) []string {
	aSet := make(map[string]struct{}, len(a))
	for _, el := range a {
		aSet[el] = struct{}{}
	}

	var res []string
	for _, el := range b {
		if _, ok := aSet[el]; !ok {
			res = append(res, el)
		}
	}
	return res
}
