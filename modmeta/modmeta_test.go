package modmeta

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/modhaven/minemod/host"
)

func Test_Parse(t *testing.T) {
	{
		t.Logf("Plain JSON")
		m, err := Parse([]byte(`{"Name": "Cool Mod!"}`))
		assert.NoError(t, err)
		assert.EqualValues(t, "Cool Mod!", m.Name)
	}

	{
		t.Logf("Comments, trailing commas and a BOM are tolerated")
		data := append([]byte{0xef, 0xbb, 0xbf}, []byte(`{
			// written by hand, obviously
			"Name": "Cool Mod!",
		}`)...)
		m, err := Parse(data)
		assert.NoError(t, err)
		assert.EqualValues(t, "Cool Mod!", m.Name)
	}

	{
		t.Logf("Malformed content is a parse failure")
		_, err := Parse([]byte(`{{{nope`))
		assert.Error(t, err)
		assert.False(t, host.IsDataInvalid(err))
	}

	{
		t.Logf("A missing Name is a validation failure, not a parse failure")
		_, err := Parse([]byte(`{"Author": "someone"}`))
		assert.Error(t, err)
		assert.True(t, host.IsDataInvalid(err))
	}
}

func Test_SanitizeName(t *testing.T) {
	assert.EqualValues(t, "CoolMod", SanitizeName("Cool Mod!"))
	assert.EqualValues(t, "Mod2electricboogaloo", SanitizeName("Mod 2: electric boogaloo"))
	assert.EqualValues(t, "", SanitizeName("!!!"))

	t.Logf("Sanitizing is idempotent")
	once := SanitizeName("Cool Mod!")
	assert.EqualValues(t, once, SanitizeName(once))
}

func Test_ReadModName(t *testing.T) {
	dir := t.TempDir()

	err := os.WriteFile(filepath.Join(dir, "mod.json"), []byte(`{"Name": "Cool Mod!"}`), 0o644)
	assert.NoError(t, err)

	name, err := ReadModName(dir, "mod.json")
	assert.NoError(t, err)
	assert.EqualValues(t, "CoolMod", name)

	t.Logf("A name that sanitizes to nothing is invalid data")
	err = os.WriteFile(filepath.Join(dir, "mod.json"), []byte(`{"Name": "!!!"}`), 0o644)
	assert.NoError(t, err)
	_, err = ReadModName(dir, "mod.json")
	assert.True(t, host.IsDataInvalid(err))

	t.Logf("A missing file is a read failure")
	_, err = ReadModName(dir, "nope/mod.json")
	assert.Error(t, err)
}
