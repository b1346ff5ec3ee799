package lint

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/h2non/filetype"
)

// isArchiveFile checks if file is a zip archive, by extension and content.
func isArchiveFile(path string) (bool, error) {
	if !strings.EqualFold(filepath.Ext(path), ".zip") {
		return false, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	// filetype needs at most 262 bytes of header to make a decision
	head := make([]byte, 262)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return false, err
	}
	return filetype.Is(head[:n], "zip"), nil
}

// isMarkupFile checks if file name has one of the configured markup
// extensions.
func isMarkupFile(path string, exts []string) bool {
	ext := filepath.Ext(path)
	return slices.ContainsFunc(exts, func(e string) bool {
		return strings.EqualFold(e, ext)
	})
}
