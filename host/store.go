package host

import (
	"bufio"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

// A Store locates installed games by their platform app id.
type Store interface {
	FindGame(appID string) (string, error)
}

var ErrGameNotFound = errors.New("game is not installed")

// StaticStore maps app ids to install paths directly. Used in tests and
// for user-configured path overrides.
type StaticStore map[string]string

var _ Store = (StaticStore)(nil)

func (s StaticStore) FindGame(appID string) (string, error) {
	p, ok := s[appID]
	if !ok {
		return "", errors.WithStack(ErrGameNotFound)
	}
	return p, nil
}

// SteamStore locates games by probing Steam library folders for the
// game's app manifest.
type SteamStore struct {
	// LibraryRoots are Steam library folders, each containing a
	// steamapps directory.
	LibraryRoots []string
}

var _ Store = (*SteamStore)(nil)

// DefaultSteamStore probes the well-known Steam locations for the
// current platform.
func DefaultSteamStore() *SteamStore {
	var roots []string
	home, _ := os.UserHomeDir()

	switch runtime.GOOS {
	case "windows":
		roots = append(roots,
			`C:\Program Files (x86)\Steam`,
			`C:\Program Files\Steam`,
		)
	case "darwin":
		if home != "" {
			roots = append(roots, filepath.Join(home, "Library", "Application Support", "Steam"))
		}
	default:
		if home != "" {
			roots = append(roots,
				filepath.Join(home, ".steam", "steam"),
				filepath.Join(home, ".local", "share", "Steam"),
			)
		}
	}

	return &SteamStore{LibraryRoots: roots}
}

func (s *SteamStore) FindGame(appID string) (string, error) {
	for _, root := range s.LibraryRoots {
		steamapps := filepath.Join(root, "steamapps")
		acf := filepath.Join(steamapps, "appmanifest_"+appID+".acf")
		installDir, err := readInstallDir(acf)
		if err != nil {
			continue
		}

		gameDir := filepath.Join(steamapps, "common", installDir)
		if _, err := os.Stat(gameDir); err == nil {
			return gameDir, nil
		}
	}
	return "", errors.WithStack(ErrGameNotFound)
}

// readInstallDir pulls the installdir value out of a Steam app
// manifest. The manifest is Valve's KeyValues text format; we only need
// one flat key, so a line scan is enough.
func readInstallDir(acfPath string) (string, error) {
	f, err := os.Open(acfPath)
	if err != nil {
		return "", errors.WithStack(err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.SplitN(strings.TrimSpace(scanner.Text()), "\t", 2)
		if len(fields) != 2 {
			continue
		}
		key := strings.Trim(fields[0], `"`)
		if strings.EqualFold(key, "installdir") {
			return strings.Trim(strings.TrimSpace(fields[1]), `"`), nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", errors.WithStack(err)
	}
	return "", errors.Errorf("no installdir entry in %s", acfPath)
}
