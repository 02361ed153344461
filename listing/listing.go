// Package listing produces the flat, archive-relative file lists the
// installers classify. Lists come from a zip archive or from walking an
// extracted folder; either way, directory entries carry a trailing
// separator and order is preserved as encountered.
package listing

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/itchio/arkive/zip"
	"github.com/pkg/errors"
)

type Entry struct {
	// Path is relative to the archive root, slash-separated.
	// Directories end with a slash.
	Path string
	Size int64
}

// List reads target as a zip archive if it's a file, or walks it if
// it's a directory.
func List(target string) ([]Entry, error) {
	stat, err := os.Stat(target)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if stat.IsDir() {
		return ListDir(target)
	}
	return ListZip(target)
}

func ListZip(file string) ([]Entry, error) {
	r, err := zip.OpenReader(file)
	if err != nil {
		return nil, errors.WithMessagef(err, "opening %s as zip", file)
	}
	defer r.Close()

	var entries []Entry
	for _, f := range r.File {
		name := strings.ReplaceAll(f.Name, "\\", "/")
		if !keepName(name) {
			continue
		}
		entries = append(entries, Entry{
			Path: name,
			Size: int64(f.UncompressedSize64),
		})
	}
	return entries, nil
}

func ListDir(dir string) ([]Entry, error) {
	var entries []Entry
	err := filepath.Walk(dir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}

		rel = filepath.ToSlash(rel)
		if !keepName(rel) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if info.IsDir() {
			entries = append(entries, Entry{Path: rel + "/"})
		} else {
			entries = append(entries, Entry{Path: rel, Size: info.Size()})
		}
		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return entries, nil
}

// Paths strips entries down to the path list the classifiers take.
func Paths(entries []Entry) []string {
	res := make([]string, 0, len(entries))
	for _, e := range entries {
		res = append(res, e.Path)
	}
	return res
}

func TotalSize(entries []Entry) int64 {
	var total int64
	for _, e := range entries {
		total += e.Size
	}
	return total
}

// ignoredNames are junk folders/files that should never influence
// classification or installs.
var ignoredNames = []string{
	".git",
	".hg",
	".svn",
	".DS_Store",
	"__MACOSX",
	"._*",
	"Thumbs.db",
}

func keepName(rel string) bool {
	base := filepath.Base(strings.TrimSuffix(rel, "/"))
	for _, pattern := range ignoredNames {
		match, _ := filepath.Match(pattern, base)
		if match {
			return false
		}
	}
	return true
}
