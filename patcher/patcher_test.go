package patcher

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_IsPatched(t *testing.T) {
	gameDir := t.TempDir()
	p := &Patcher{}

	assert.False(t, p.IsPatched(gameDir))

	sentinel := BackupSentinelPath(gameDir)
	assert.NoError(t, os.MkdirAll(filepath.Dir(sentinel), 0o755))
	assert.NoError(t, os.WriteFile(sentinel, []byte("original assembly"), 0o644))

	assert.True(t, p.IsPatched(gameDir))
}

func Test_CommandTokens(t *testing.T) {
	{
		t.Logf("Default: the patcher next to the game, game dir as argument")
		p := &Patcher{}
		tokens, err := p.commandTokens("/games/UnderMine")
		assert.NoError(t, err)
		assert.EqualValues(t, []string{
			filepath.Join("/games/UnderMine", PatcherExecutable),
			"/games/UnderMine",
		}, tokens)
	}

	{
		t.Logf("Custom command, shell-quoted")
		p := &Patcher{Command: `mono "/opt/my patcher/patch.exe" --force`}
		tokens, err := p.commandTokens("/games/UnderMine")
		assert.NoError(t, err)
		assert.EqualValues(t, []string{
			"mono", "/opt/my patcher/patch.exe", "--force", "/games/UnderMine",
		}, tokens)
	}

	{
		t.Logf("Unbalanced quotes are an error")
		p := &Patcher{Command: `mono "oops`}
		_, err := p.commandTokens("/games/UnderMine")
		assert.Error(t, err)
	}
}

func Test_CheckExitCode(t *testing.T) {
	assert.NoError(t, checkExitCode(0, nil))
	assert.Error(t, checkExitCode(1, nil))
	assert.Error(t, checkExitCode(0, assert.AnError))
}
