package modtype

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/modhaven/minemod/host"
	"github.com/modhaven/minemod/installer"
)

func Test_IsApplicable(t *testing.T) {
	mt := New()
	assert.True(t, mt.IsApplicable("undermine"))
	assert.False(t, mt.IsApplicable("othergame"))
}

func Test_RootPath(t *testing.T) {
	mt := New()
	d := host.Discovery{GameID: "undermine", Path: "/games/UnderMine"}
	assert.EqualValues(t, "/games/UnderMine", mt.RootPath(d))
}

func Test_ClassifyDeployment(t *testing.T) {
	mt := New()

	{
		t.Logf("Pure data-folder replacement is root deployment")
		assert.True(t, mt.ClassifyDeployment([]installer.Instruction{
			installer.Copy("SomeMod/UnderMine_Data/x.dll", "UnderMine_Data/x.dll"),
		}))
	}

	{
		t.Logf("Data folder plus Mods folder plus a manifest is a bundle, still root deployment")
		assert.True(t, mt.ClassifyDeployment([]installer.Instruction{
			installer.Copy("UnderMine_Data/x.dll", "UnderMine_Data/x.dll"),
			installer.Copy("Mods/SomeMod/mod.json", "Mods/SomeMod/mod.json"),
			installer.Copy("Mods/SomeMod/y.dll", "Mods/SomeMod/y.dll"),
		}))
	}

	{
		t.Logf("A manifest without the data folder stays in the staging folder")
		assert.False(t, mt.ClassifyDeployment([]installer.Instruction{
			installer.Copy("Mods/SomeMod/mod.json", "Mods/SomeMod/mod.json"),
			installer.Copy("Mods/SomeMod/y.dll", "Mods/SomeMod/y.dll"),
		}))
	}

	{
		t.Logf("Mods destinations alone, no manifest, no data folder")
		assert.False(t, mt.ClassifyDeployment([]installer.Instruction{
			installer.Copy("Mods/y.dll", "Mods/y.dll"),
		}))
	}

	{
		t.Logf("Ordinary staged mod")
		assert.False(t, mt.ClassifyDeployment([]installer.Instruction{
			installer.Copy("ModX/data.bin", "ModX/data.bin"),
		}))
	}

	{
		t.Logf("Non-copy instructions are ignored")
		assert.False(t, mt.ClassifyDeployment([]installer.Instruction{
			{Type: "mkdir", Destination: "UnderMine_Data"},
		}))
	}
}
