//go:build !windows

package fileattr

import (
	"path/filepath"
	"strings"

	"github.com/Hrothnar/linkzip/pkg/types"
)

// Stat returns the attributes of path, following symlinks.
func Stat(fsys types.FS, path string) (Attrs, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		return Attrs{}, err
	}
	return Attrs{
		Hidden: strings.HasPrefix(filepath.Base(path), "."),
		System: false,
		Dir:    info.IsDir(),
	}, nil
}
