// Package archive builds Walk abstraction on top of "archive/zip".
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"path"
	"slices"
	"strings"
)

// WalkFunc is the type of the function called for each file in archive
// visited by Walk. The archive argument contains path to archive passed to
// Walk, file is the matching entry. If an error is returned, processing stops.
type WalkFunc func(archive string, file *zip.File) error

// Filter selects archive entries to visit.
type Filter struct {
	Prefix     string   // Path inside archive, entries outside of it are skipped
	Extensions []string // Accepted file name extensions (case insensitive), any when empty
}

// Match reports whether entry name is selected by the filter.
func (f Filter) Match(name string) bool {
	if !strings.HasPrefix(name, f.Prefix) {
		return false
	}
	if len(f.Extensions) == 0 {
		return true
	}
	ext := path.Ext(name)
	return slices.ContainsFunc(f.Extensions, func(e string) bool {
		return strings.EqualFold(e, ext)
	})
}

// Walk walks all regular files in the archive selected by filter, calling
// walkFn for each of them. Archives with entries using absolute paths or path
// traversal ("..") are rejected before any entry is visited.
func Walk(archive string, filter Filter, walkFn WalkFunc) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		if !isSafePath(f.Name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", f.Name)
		}
	}
	for _, f := range r.File {
		if f.FileInfo().IsDir() || !filter.Match(f.Name) {
			continue
		}
		if err := walkFn(archive, f); err != nil {
			return err
		}
	}
	return nil
}

// ReadFile returns content of archive entry.
func ReadFile(file *zip.File) ([]byte, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func isSafePath(name string) bool {
	name = strings.ReplaceAll(name, `\`, "/")
	if path.IsAbs(name) || (len(name) > 1 && name[1] == ':') {
		return false
	}
	return !slices.Contains(strings.Split(name, "/"), "..")
}
