// Package manifestmod installs archives that follow the manifest
// packaging convention: one mod.json per logical mod, content rooted at
// the manifest's folder. A single archive may bundle several mods; each
// lands in its own staging subfolder named after the mod.
package manifestmod

import (
	"path"
	"strings"

	"github.com/modhaven/minemod/installer"
	"github.com/modhaven/minemod/modmeta"
	"github.com/modhaven/minemod/undermine"
)

type Manager struct{}

var _ installer.Manager = (*Manager)(nil)

func New() *Manager {
	return &Manager{}
}

func (m *Manager) Name() string {
	return "manifest"
}

func (m *Manager) TestSupported(params installer.TestParams) (*installer.TestResult, error) {
	return &installer.TestResult{
		Supported: undermine.IsManifestPackage(params.Files, params.GameID),
	}, nil
}

func (m *Manager) Install(params installer.InstallParams) (*installer.InstallResult, error) {
	consumer := params.Consumer

	var manifests []string
	for _, f := range params.Files {
		if undermine.IsManifest(f) {
			manifests = append(manifests, undermine.Normalize(f))
		}
	}

	var instructions []installer.Instruction
	for _, manifest := range manifests {
		rootFolder := path.Dir(manifest)
		modName := resolveModName(params, manifest, rootFolder)
		consumer.Infof("%s: installing as '%s'", manifest, modName)

		for _, f := range params.Files {
			f = undermine.Normalize(f)
			if undermine.IsManifest(f) {
				continue
			}
			if path.Ext(f) == "" {
				// no extension, assume directory entry
				continue
			}
			if !strings.Contains(f, rootFolder) {
				continue
			}

			// Re-root the file at the manifest's position, so mods
			// bundled in one archive land in sibling folders even
			// though their source paths overlapped.
			idx := 0
			if rootFolder != "." {
				idx = strings.Index(f, rootFolder) + len(rootFolder) + 1
			}
			if idx >= len(f) {
				continue
			}
			instructions = append(instructions, installer.Copy(f, path.Join(modName, f[idx:])))
		}
	}

	return &installer.InstallResult{Instructions: instructions}, nil
}

// resolveModName picks a folder name for one logical mod. A mod that
// lives in its own folder is named after that folder; a mod sitting at
// the archive root gets its name from the manifest, or from the staging
// folder when the manifest can't be used. Malformed manifests must not
// fail the install.
func resolveModName(params installer.InstallParams, manifest string, rootFolder string) string {
	if rootFolder != "." {
		return path.Base(rootFolder)
	}

	name, err := modmeta.ReadModName(params.DestPath, manifest)
	if err != nil {
		fallback := undermine.FallbackModName(params.DestPath)
		params.Consumer.Warnf("%s: can't read mod name (%v), falling back to '%s'", manifest, err, fallback)
		return fallback
	}
	return name
}
