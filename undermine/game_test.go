package undermine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_IsManifestPackage(t *testing.T) {
	{
		t.Logf("Mod folder with a manifest")
		files := []string{"ModX/", "ModX/mod.json", "ModX/data.bin"}
		assert.True(t, IsManifestPackage(files, GameID))
		assert.False(t, IsRootPackage(files, GameID))
	}

	{
		t.Logf("Manifest at the archive top level")
		files := []string{"mod.json", "data.bin"}
		assert.True(t, IsManifestPackage(files, GameID))
	}

	{
		t.Logf("Manifest base name matching is case-insensitive")
		files := []string{"ModX/Mod.JSON", "ModX/data.bin"}
		assert.True(t, IsManifestPackage(files, GameID))
	}

	{
		t.Logf("A data folder disqualifies the manifest convention, even with a manifest present")
		files := []string{"UnderMine_Data/", "UnderMine_Data/x.dll", "Mods/ModX/mod.json"}
		assert.False(t, IsManifestPackage(files, GameID))
		assert.True(t, IsRootPackage(files, GameID))
	}

	{
		t.Logf("Wrong game")
		files := []string{"ModX/mod.json"}
		assert.False(t, IsManifestPackage(files, "othergame"))
	}

	{
		t.Logf("Neither convention")
		files := []string{"readme.txt", "stuff/whatever.dll"}
		assert.False(t, IsManifestPackage(files, GameID))
		assert.False(t, IsRootPackage(files, GameID))
	}
}

func Test_IsRootPackage(t *testing.T) {
	{
		t.Logf("Data folder at the archive top level")
		files := []string{"UnderMine_Data/", "UnderMine_Data/x.dll"}
		assert.True(t, IsRootPackage(files, GameID))
	}

	{
		t.Logf("Data folder inside one wrapping folder")
		files := []string{"SomeMod/", "SomeMod/UnderMine_Data/", "SomeMod/UnderMine_Data/x.dll"}
		assert.True(t, IsRootPackage(files, GameID))
	}

	{
		t.Logf("Only file entries under the data folder, no directory entry")
		files := []string{"SomeMod/UnderMine_Data/x.dll"}
		assert.False(t, IsRootPackage(files, GameID))
	}

	{
		t.Logf("Wrong game")
		files := []string{"UnderMine_Data/"}
		assert.False(t, IsRootPackage(files, "othergame"))
	}
}

func Test_FindDataDir(t *testing.T) {
	entry, ok := FindDataDir([]string{"a.txt", "Wrap/UnderMine_Data/", "Wrap/UnderMine_Data/x.dll"})
	assert.True(t, ok)
	assert.EqualValues(t, "Wrap/UnderMine_Data/", entry)

	_, ok = FindDataDir([]string{"a.txt"})
	assert.False(t, ok)
}

func Test_FallbackModName(t *testing.T) {
	assert.EqualValues(t, "CoolMod", FallbackModName("/staging/CoolMod.installing"))
	assert.EqualValues(t, "CoolMod", FallbackModName("/staging/CoolMod"))
	assert.EqualValues(t, "CoolMod", FallbackModName(`C:\staging\CoolMod.installing`))
}
