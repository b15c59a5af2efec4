//go:build windows

package fileattr

import (
	"golang.org/x/sys/windows"

	"github.com/Hrothnar/linkzip/pkg/types"
)

// Stat returns the attributes of path as reported by the Windows API.
// The fsys seam is unused here; attribute bits are not part of fs.FileInfo.
func Stat(fsys types.FS, path string) (Attrs, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return Attrs{}, err
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return Attrs{}, err
	}
	return Attrs{
		Hidden: attrs&windows.FILE_ATTRIBUTE_HIDDEN != 0,
		System: attrs&windows.FILE_ATTRIBUTE_SYSTEM != 0,
		Dir:    attrs&windows.FILE_ATTRIBUTE_DIRECTORY != 0,
	}, nil
}
