// Package patcher runs the external binary patcher that makes the game
// load third-party code. Patching is a one-time, irreversible step; the
// patcher leaves a backup of the original assembly behind, and that
// backup's existence is how we know the game is already patched.
package patcher

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/itchio/headway/state"
	"github.com/kballard/go-shellquote"
	"github.com/pkg/errors"

	"github.com/modhaven/minemod/undermine"
)

const (
	// PatcherExecutable ships alongside the mod loader, in the game's
	// install folder.
	PatcherExecutable = "UnderModPatcher.exe"

	// backupFileName is what the patcher renames the original game
	// assembly to before rewriting it.
	backupFileName = "Assembly-CSharp.dll.orig"
)

type Patcher struct {
	// Command overrides the patcher command line. Parsed with shell
	// quoting rules; the game folder is appended as the last argument.
	// Empty means the patcher executable from the game folder.
	Command string
}

// BackupSentinelPath is where a successful patch leaves the original
// assembly.
func BackupSentinelPath(gameDir string) string {
	return filepath.Join(gameDir, undermine.DataFolderName, "Managed", backupFileName)
}

// IsPatched reports whether the game was already patched, by backup
// sentinel existence only. Content is never read.
func (p *Patcher) IsPatched(gameDir string) bool {
	_, err := os.Stat(BackupSentinelPath(gameDir))
	return err == nil
}

// Patch runs the external patcher against the game folder and verifies
// it produced the backup sentinel.
func (p *Patcher) Patch(ctx context.Context, consumer *state.Consumer, gameDir string) error {
	tokens, err := p.commandTokens(gameDir)
	if err != nil {
		return err
	}

	exitCode, err := runCommand(ctx, consumer, tokens)
	if err = checkExitCode(exitCode, err); err != nil {
		return errors.WithMessage(err, "running patcher")
	}

	if !p.IsPatched(gameDir) {
		return errors.Errorf("patcher exited cleanly but %s is missing", BackupSentinelPath(gameDir))
	}

	consumer.Statf("patched %s", gameDir)
	return nil
}

func (p *Patcher) commandTokens(gameDir string) ([]string, error) {
	if p.Command != "" {
		tokens, err := shellquote.Split(p.Command)
		if err != nil {
			return nil, errors.WithMessage(err, "parsing patcher command")
		}
		return append(tokens, gameDir), nil
	}
	return []string{filepath.Join(gameDir, PatcherExecutable), gameDir}, nil
}

// runCommand starts and waits for the patcher, teeing its output into
// the consumer, and digs the actual exit code out of the error.
func runCommand(ctx context.Context, consumer *state.Consumer, tokens []string) (int, error) {
	consumer.Infof("→ Running patcher:")
	consumer.Infof("  %s", shellquote.Join(tokens...))

	cmd := exec.CommandContext(ctx, tokens[0], tokens[1:]...)
	cmd.Stdout = newLogWriter(consumer, "out")
	cmd.Stderr = newLogWriter(consumer, "err")

	err := cmd.Run()
	if err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			return exitError.ExitCode(), nil
		}
		return 127, err
	}

	return 0, nil
}

func checkExitCode(exitCode int, err error) error {
	if err != nil {
		return errors.WithStack(err)
	}
	if exitCode != 0 {
		return errors.Errorf("non-zero exit code %d (%x)", exitCode, exitCode)
	}
	return nil
}
