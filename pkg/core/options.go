// Package core orchestrates a backup run: shortcut discovery and
// resolution, tree collection, and archive writing, in either
// single-archive or split mode.
package core

import (
	"io/fs"
	"path/filepath"

	"github.com/Hrothnar/linkzip/pkg/archive"
	"github.com/Hrothnar/linkzip/pkg/errors"
	"github.com/Hrothnar/linkzip/pkg/filesystem"
	"github.com/Hrothnar/linkzip/pkg/filter"
	"github.com/Hrothnar/linkzip/pkg/logging"
	"github.com/Hrothnar/linkzip/pkg/shortcut"
	"github.com/Hrothnar/linkzip/pkg/types"
	"github.com/Hrothnar/linkzip/pkg/upload"
)

// Options configures a run. Zero-value fields are filled with working
// defaults, so tests and embedders only set what they care about.
type Options struct {
	// SourceDir is the folder whose shortcut files are backed up.
	SourceDir string

	// Output is the archive file path (single mode) or the output
	// directory (split mode).
	Output string

	// Jobs is the split-mode worker count; 1 runs sequentially.
	Jobs int

	FS        types.FS
	Filter    *filter.Filter
	Resolvers []shortcut.Resolver
	Backend   archive.Backend

	// Progress builds one progress stream per archive job.
	Progress func() archive.Progress

	// Uploader, when set, receives every finished archive.
	Uploader upload.Uploader
}

func (o *Options) setDefaults() {
	if o.FS == nil {
		o.FS = filesystem.NewOS()
	}
	if o.Filter == nil {
		o.Filter = filter.NewDefault()
	}
	if len(o.Resolvers) == 0 {
		o.Resolvers = []shortcut.Resolver{
			shortcut.NewSymlinkResolver(o.FS, []string{".lnk"}, nil),
		}
	}
	if o.Backend == nil {
		o.Backend = archive.NewZipBackend(archive.CompressionDeflate)
	}
	if o.Progress == nil {
		o.Progress = func() archive.Progress { return archive.Discard{} }
	}
	if o.Jobs < 1 {
		o.Jobs = 1
	}
}

// ArchiveResult describes one archive produced by a run.
type ArchiveResult struct {
	DisplayName string
	OutputPath  string
	Items       int
}

// Result is the outcome of a run.
type Result struct {
	Archives []ArchiveResult
}

// findShortcuts lists the shortcut files directly inside the source
// folder. A listing failure is treated as zero shortcuts: the caller
// reports the empty result, matching the reference behavior.
func (o *Options) findShortcuts() []string {
	logger := logging.GetLogger("core")

	children, err := o.FS.ReadDir(o.SourceDir)
	if err != nil {
		logger.Warn().Err(err).Str("dir", o.SourceDir).Msg("Cannot list source folder")
		return nil
	}

	var links []string
	for _, child := range children {
		if child.IsDir() {
			continue
		}
		for _, r := range o.Resolvers {
			if r.Matches(child.Name(), child.Type()) {
				links = append(links, filepath.Join(o.SourceDir, child.Name()))
				break
			}
		}
	}
	return links
}

// resolve runs the first matching resolver against linkPath.
func (o *Options) resolve(linkPath string, mode fs.FileMode) (types.ShortcutTarget, error) {
	name := filepath.Base(linkPath)
	for _, r := range o.Resolvers {
		if r.Matches(name, mode) {
			return r.Resolve(linkPath)
		}
	}
	return types.ShortcutTarget{}, errors.Newf(errors.ErrLinkResolve,
		"no resolver for shortcut %s", linkPath)
}

// resolveLink is resolve with the mode re-read from disk, for callers
// holding only a path.
func (o *Options) resolveLink(linkPath string) (types.ShortcutTarget, error) {
	info, err := o.FS.Lstat(linkPath)
	if err != nil {
		return types.ShortcutTarget{}, errors.Wrapf(err, errors.ErrLinkResolve,
			"shortcut %s is not accessible", linkPath)
	}
	return o.resolve(linkPath, info.Mode())
}
