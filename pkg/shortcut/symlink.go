package shortcut

import (
	"io/fs"
	"path/filepath"

	"github.com/Hrothnar/linkzip/pkg/errors"
	"github.com/Hrothnar/linkzip/pkg/types"
)

// SymlinkResolver treats symlinks (and files named with a shortcut
// extension) as shortcuts and resolves them with the platform's symlink
// machinery.
type SymlinkResolver struct {
	extensions    []string
	stripSuffixes []string
	fs            types.FS
}

// NewSymlinkResolver creates the default resolver. extensions lists the
// filename extensions that identify shortcut files in addition to
// actual symlinks; stripSuffixes feeds display-name derivation.
func NewSymlinkResolver(fsys types.FS, extensions, stripSuffixes []string) *SymlinkResolver {
	return &SymlinkResolver{
		extensions:    extensions,
		stripSuffixes: stripSuffixes,
		fs:            fsys,
	}
}

func (r *SymlinkResolver) Matches(name string, mode fs.FileMode) bool {
	if mode&fs.ModeSymlink != 0 {
		return true
	}
	return hasExtension(name, r.extensions)
}

// Resolve follows the link and verifies the target is a directory.
func (r *SymlinkResolver) Resolve(linkPath string) (types.ShortcutTarget, error) {
	target, err := filepath.EvalSymlinks(linkPath)
	if err != nil {
		return types.ShortcutTarget{}, errors.Wrapf(err, errors.ErrLinkResolve,
			"failed to resolve shortcut %s", linkPath)
	}

	info, err := r.fs.Stat(target)
	if err != nil {
		return types.ShortcutTarget{}, errors.Wrapf(err, errors.ErrLinkResolve,
			"shortcut target %s is not accessible", target)
	}
	if !info.IsDir() {
		return types.ShortcutTarget{}, errors.Newf(errors.ErrLinkResolve,
			"shortcut target %s is not a directory", target)
	}

	return types.ShortcutTarget{
		DisplayName: DisplayName(filepath.Base(linkPath), r.stripSuffixes),
		TargetDir:   target,
	}, nil
}
