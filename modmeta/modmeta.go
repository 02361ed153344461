// Package modmeta reads the per-mod metadata file (mod.json) that the
// manifest packaging convention relies on. Mod authors hand-write these
// files, so the decoder tolerates comments, trailing commas and a UTF-8
// BOM, and callers are expected to survive anything else.
package modmeta

import (
	"bytes"
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/hjson/hjson-go/v4"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"

	"github.com/modhaven/minemod/host"
)

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

type Manifest struct {
	Name string
}

// Read parses a manifest file. A returned error is either a parse
// failure (unreadable or malformed content) or, wrapped around
// host.ErrDataInvalid, a validation failure.
func Read(manifestPath string) (*Manifest, error) {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, errors.WithMessage(err, "reading mod manifest")
	}

	return Parse(data)
}

// Parse decodes manifest bytes. Split from Read for tests.
func Parse(data []byte) (*Manifest, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	var raw map[string]interface{}
	if err := hjson.Unmarshal(data, &raw); err != nil {
		return nil, errors.WithMessage(err, "parsing mod manifest")
	}

	var m Manifest
	if err := mapstructure.Decode(raw, &m); err != nil {
		return nil, errors.WithMessage(err, "decoding mod manifest")
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) Validate() error {
	err := validation.ValidateStruct(m,
		validation.Field(&m.Name, validation.Required),
	)
	if err != nil {
		return errors.WithMessagef(host.ErrDataInvalid, "mod manifest: %s", err)
	}
	return nil
}

// SanitizeName strips everything but ASCII letters and digits from a
// mod name, so it can be used as a folder name. Idempotent.
func SanitizeName(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out = append(out, r)
		}
	}
	return string(out)
}

// ReadModName reads the manifest at manifestFile (relative to the
// staging folder) and returns its sanitized Name.
func ReadModName(destPath string, manifestFile string) (string, error) {
	m, err := Read(filepath.Join(destPath, filepath.FromSlash(manifestFile)))
	if err != nil {
		return "", err
	}

	name := SanitizeName(m.Name)
	if name == "" {
		return "", errors.WithMessagef(host.ErrDataInvalid, "mod manifest: Name %q sanitizes to nothing", m.Name)
	}
	return name, nil
}
