package shortcut

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"

	"github.com/Hrothnar/linkzip/pkg/errors"
	"github.com/Hrothnar/linkzip/pkg/types"
)

// LibraryResolver resolves Windows .library-ms descriptors. A library
// file is an XML document whose simpleLocation url elements point at
// the member directories; the first resolvable location wins.
type LibraryResolver struct {
	stripSuffixes []string
	fs            types.FS
}

// NewLibraryResolver creates a resolver for .library-ms files.
func NewLibraryResolver(fsys types.FS, stripSuffixes []string) *LibraryResolver {
	return &LibraryResolver{stripSuffixes: stripSuffixes, fs: fsys}
}

func (r *LibraryResolver) Matches(name string, _ fs.FileMode) bool {
	return strings.EqualFold(filepath.Ext(name), ".library-ms")
}

// Resolve parses the library descriptor and returns its first location
// that exists and is a directory.
func (r *LibraryResolver) Resolve(linkPath string) (types.ShortcutTarget, error) {
	data, err := r.fs.ReadFile(linkPath)
	if err != nil {
		return types.ShortcutTarget{}, errors.Wrapf(err, errors.ErrLinkResolve,
			"failed to read library descriptor %s", linkPath)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return types.ShortcutTarget{}, errors.Wrapf(err, errors.ErrLinkResolve,
			"malformed library descriptor %s", linkPath)
	}

	for _, url := range doc.FindElements("//simpleLocation/url") {
		target := strings.TrimSpace(url.Text())
		if target == "" {
			continue
		}
		info, err := r.fs.Stat(target)
		if err != nil || !info.IsDir() {
			continue
		}
		return types.ShortcutTarget{
			DisplayName: DisplayName(filepath.Base(linkPath), r.stripSuffixes),
			TargetDir:   target,
		}, nil
	}

	return types.ShortcutTarget{}, errors.Newf(errors.ErrLinkResolve,
		"library descriptor %s has no resolvable location", linkPath)
}
