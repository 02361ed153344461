package undermine

import (
	"os"
	"path/filepath"

	"github.com/dchest/safefile"
	"github.com/pkg/errors"
)

// optOutFileName marks that the user declined the mod loader offer and
// doesn't want to be asked again. Existence-only, content is never
// machine-read.
const optOutFileName = ".undermod-declined"

// loaderMarkerPath is the file whose presence means the companion mod
// loader is installed.
func loaderMarkerPath(gameDir string) string {
	return filepath.Join(gameDir, ModsFolderName, "UnderModLoader", "UnderModLoader.dll")
}

func HasModLoader(gameDir string) bool {
	return exists(loaderMarkerPath(gameDir))
}

func OptOutPath(gameDir string) string {
	return filepath.Join(gameDir, ModsFolderName, optOutFileName)
}

func HasOptOut(gameDir string) bool {
	return exists(OptOutPath(gameDir))
}

// WriteOptOut persists the user's "don't ask again" choice. Written
// atomically so a torn write can't leave a half marker behind.
func WriteOptOut(gameDir string) error {
	p := OptOutPath(gameDir)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return errors.WithStack(err)
	}

	err := safefile.WriteFile(p, []byte("the user declined the UnderModLoader offer\n"), 0o644)
	if err != nil {
		return errors.WithStack(err)
	}
	return nil
}

func exists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
