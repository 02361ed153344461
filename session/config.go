package session

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config is the CLI's optional configuration file. Everything in it has
// a working default; a missing file is not an error.
type Config struct {
	// StagingDir is where `minemod apply` installs mods by default.
	StagingDir string `toml:"staging_dir"`

	// GamePath overrides store discovery of the game's install folder.
	GamePath string `toml:"game_path"`

	// PatcherCommand overrides the patcher command line, shell-quoted.
	PatcherCommand string `toml:"patcher_command"`
}

func ConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.WithStack(err)
	}
	return filepath.Join(dir, "minemod", "config.toml"), nil
}

func LoadConfig() (*Config, error) {
	p, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if _, err := toml.DecodeFile(p, cfg); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.WithMessagef(err, "loading config from %s", p)
	}
	return cfg, nil
}
