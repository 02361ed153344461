// Package rootfolder installs archives that ship a replacement of the
// game's own folder layout: the UnderMine_Data folder, optionally with
// a sibling Mods folder, possibly inside one wrapping folder added by
// the archive author. Files are re-rooted at the data folder's parent
// so the layout lands in the game folder exactly as intended.
package rootfolder

import (
	"path"
	"strings"

	"github.com/pkg/errors"

	"github.com/modhaven/minemod/installer"
	"github.com/modhaven/minemod/undermine"
)

type Manager struct{}

var _ installer.Manager = (*Manager)(nil)

func New() *Manager {
	return &Manager{}
}

func (m *Manager) Name() string {
	return "rootfolder"
}

func (m *Manager) TestSupported(params installer.TestParams) (*installer.TestResult, error) {
	return &installer.TestResult{
		Supported: undermine.IsRootPackage(params.Files, params.GameID),
	}, nil
}

func (m *Manager) Install(params installer.InstallParams) (*installer.InstallResult, error) {
	consumer := params.Consumer

	marker, ok := undermine.FindDataDir(params.Files)
	if !ok {
		return nil, errors.Errorf("no %s folder in archive", undermine.DataFolderName)
	}
	marker = undermine.Normalize(marker)

	// idx is where the deployed layout starts inside each entry:
	// just past the marker's leading separator, everything above it is
	// wrapping the archive author added.
	idx := undermine.Unnest(strings.Index(undermine.Nested(marker), "/"+undermine.DataFolderName+"/") + 1)

	// The folder wrapping the marker, empty when the data folder sits
	// at the archive top level. Entries are matched against it with a
	// plain substring test; stricter prefix matching could exclude
	// legitimately nested files.
	rootDir := ""
	if idx > 0 {
		rootDir = path.Base(marker[:idx-1])
	}
	consumer.Infof("%s: deploying from offset %d (wrapper '%s')", marker, idx, rootDir)

	var instructions []installer.Instruction
	for _, f := range params.Files {
		f = undermine.Normalize(f)
		if path.Ext(f) == "" {
			continue
		}
		if strings.EqualFold(path.Ext(f), ".txt") {
			// readmes and such don't get deployed
			continue
		}
		if !strings.Contains(f, rootDir) {
			continue
		}
		if len(f) <= idx {
			continue
		}
		instructions = append(instructions, installer.Copy(f, f[idx:]))
	}

	return &installer.InstallResult{Instructions: instructions}, nil
}
