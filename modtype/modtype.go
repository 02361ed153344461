// Package modtype decides, after instructions exist, whether an install
// qualifies for root deployment: copying straight into the game folder
// instead of the generic mod-staging folder.
package modtype

import (
	"strings"

	"github.com/modhaven/minemod/host"
	"github.com/modhaven/minemod/installer"
	"github.com/modhaven/minemod/undermine"
)

type RootModType struct{}

var _ host.ModType = (*RootModType)(nil)

func New() *RootModType {
	return &RootModType{}
}

func (t *RootModType) IsApplicable(gameID string) bool {
	return gameID == undermine.GameID
}

func (t *RootModType) RootPath(d host.Discovery) string {
	return d.Path
}

// ClassifyDeployment recognizes three shapes, over copy instructions
// only:
//   - a pure data-folder replacement (no manifests): root deployment.
//   - a bundle of data-folder replacement plus manifest-based mods:
//     root deployment only when both the data folder and the Mods
//     folder are present at the top level.
//   - anything else stays in the generic staging folder.
func (t *RootModType) ClassifyDeployment(instructions []installer.Instruction) bool {
	hasData := false
	hasMods := false
	hasManifest := false

	for _, in := range instructions {
		if in.Type != installer.TypeCopy {
			continue
		}
		if undermine.IsManifest(in.Source) {
			hasManifest = true
		}
		switch topLevelDir(in.Destination) {
		case undermine.DataFolderName:
			hasData = true
		case undermine.ModsFolderName:
			hasMods = true
		}
	}

	if !hasManifest {
		return hasData
	}
	return hasData && hasMods
}

func topLevelDir(dest string) string {
	dest = undermine.Normalize(dest)
	if i := strings.Index(dest, "/"); i >= 0 {
		return dest[:i]
	}
	return ""
}
