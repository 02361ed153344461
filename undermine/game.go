package undermine

import (
	"path"
	"strings"
)

// UnderMine ships as a Unity game: its own code and assets live in a
// data folder next to the executable, and loader-based mods live in a
// sibling Mods folder, one subfolder per mod with a mod.json manifest.
const (
	// GameID is the identifier the mod-management host knows this game by.
	GameID = "undermine"

	// SteamAppID is UnderMine's app id on Steam.
	SteamAppID = "656350"

	// ExecutableName is the game's main binary.
	ExecutableName = "UnderMine.exe"

	// DataFolderName is the Unity data folder that sits next to the
	// executable. Archives that contain it replace game files directly.
	DataFolderName = "UnderMine_Data"

	// ModsFolderName is where loader-based mods are deployed.
	ModsFolderName = "Mods"

	// ManifestFileName marks one logical mod inside an archive.
	ManifestFileName = "mod.json"

	// InstallingSuffix is appended by the host to staging folders of
	// installs that are still in progress.
	InstallingSuffix = ".installing"
)

// nestPrefix is a synthetic parent folder used to normalize archive
// entries before marker detection. Nesting every entry one level deeper
// means the data-folder check behaves identically whether the payload
// sits at the archive root or inside a single wrapping folder.
const nestPrefix = "wrap/"

var dataDirSuffix = "/" + DataFolderName + "/"

// Normalize rewrites an archive entry to forward slashes.
func Normalize(entry string) string {
	return strings.ReplaceAll(entry, "\\", "/")
}

// Nested returns the entry as it would appear one wrapping folder
// deeper. See nestPrefix.
func Nested(entry string) string {
	return nestPrefix + Normalize(entry)
}

// Unnest translates an index into a nested entry back into an index
// into the original entry.
func Unnest(idx int) int {
	return idx - len(nestPrefix)
}

// IsManifest reports whether an archive entry is a mod manifest.
func IsManifest(entry string) bool {
	return strings.EqualFold(path.Base(Normalize(entry)), ManifestFileName)
}

// FindDataDir returns the first directory entry that, once nested, ends
// with the game's data folder.
func FindDataDir(files []string) (string, bool) {
	for _, f := range files {
		if strings.HasSuffix(Nested(f), dataDirSuffix) {
			return f, true
		}
	}
	return "", false
}

// IsManifestPackage reports whether an archive follows the
// manifest-based packaging convention: at least one mod.json entry and
// no data-folder replacement. Archives that carry the data folder are
// left to the root-folder installer even if they also contain
// manifests, so the two conventions stay mutually exclusive.
func IsManifestPackage(files []string, gameID string) bool {
	if gameID != GameID {
		return false
	}
	hasManifest := false
	for _, f := range files {
		if IsManifest(f) {
			hasManifest = true
			break
		}
	}
	if !hasManifest {
		return false
	}
	if _, ok := FindDataDir(files); ok {
		return false
	}
	return true
}

// IsRootPackage reports whether an archive follows the root-folder
// packaging convention: it ships the game's data folder (and optionally
// a sibling Mods folder), possibly inside one wrapping folder.
func IsRootPackage(files []string, gameID string) bool {
	if gameID != GameID {
		return false
	}
	_, ok := FindDataDir(files)
	return ok
}

// FallbackModName derives a mod name from a staging folder when the
// archive's own manifest can't provide one.
func FallbackModName(destPath string) string {
	return strings.TrimSuffix(path.Base(Normalize(destPath)), InstallingSuffix)
}
