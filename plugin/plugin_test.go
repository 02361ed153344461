package plugin

import (
	"context"
	"testing"

	"github.com/itchio/headway/state"
	"github.com/stretchr/testify/assert"

	"github.com/modhaven/minemod/host"
	"github.com/modhaven/minemod/installer"
	"github.com/modhaven/minemod/undermine"
)

func testHost(t *testing.T) *host.Host {
	h := host.New(host.StaticStore{}, &host.StaticDialogs{})
	Register(h, &state.Consumer{
		OnMessage: func(lvl string, msg string) {
			t.Logf("[%s] %s", lvl, msg)
		},
	}, nil)
	return h
}

func Test_RegisterWiring(t *testing.T) {
	h := testHost(t)

	assert.Len(t, h.Games(), 1)
	assert.EqualValues(t, "undermine", h.Games()[0].ID())
	assert.NotNil(t, h.ModTypeFor("undermine"))
	assert.Nil(t, h.ModTypeFor("othergame"))
}

func Test_ProbeEndToEnd(t *testing.T) {
	h := testHost(t)

	probe := func(files []string) installer.Manager {
		m, err := h.Installers().Probe(installer.TestParams{
			Files:  files,
			GameID: undermine.GameID,
		})
		assert.NoError(t, err)
		return m
	}

	{
		t.Logf("Manifest archives go to the manifest installer")
		m := probe([]string{"ModX/mod.json", "ModX/data.bin"})
		if assert.NotNil(t, m) {
			assert.EqualValues(t, "manifest", m.Name())
		}
	}

	{
		t.Logf("Data-folder archives go to the root-folder installer, even with manifests inside")
		m := probe([]string{"UnderMine_Data/", "UnderMine_Data/x.dll", "Mods/SomeMod/mod.json"})
		if assert.NotNil(t, m) {
			assert.EqualValues(t, "rootfolder", m.Name())
		}
	}

	{
		t.Logf("Unrelated archives are claimed by nobody")
		assert.Nil(t, probe([]string{"whatever.dat"}))
	}
}

func Test_BundleClassifiesAsRootDeployment(t *testing.T) {
	h := testHost(t)

	files := []string{
		"SomeMod/",
		"SomeMod/UnderMine_Data/",
		"SomeMod/UnderMine_Data/x.dll",
		"SomeMod/Mods/",
		"SomeMod/Mods/LoaderMod/mod.json",
		"SomeMod/Mods/LoaderMod/y.dll",
		"SomeMod/Readme.txt",
	}

	m, err := h.Installers().Probe(installer.TestParams{Files: files, GameID: undermine.GameID})
	assert.NoError(t, err)
	if !assert.NotNil(t, m) {
		return
	}

	res, err := m.Install(installer.InstallParams{
		Files:  files,
		GameID: undermine.GameID,
		Consumer: &state.Consumer{
			OnMessage: func(lvl string, msg string) { t.Logf("[%s] %s", lvl, msg) },
		},
		Context: context.Background(),
	})
	assert.NoError(t, err)

	mt := h.ModTypeFor(undermine.GameID)
	assert.True(t, mt.ClassifyDeployment(res.Instructions))
}
