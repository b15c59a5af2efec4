// Package collector walks a resolved target directory and produces the
// flat list of entries to archive.
package collector

import (
	"path/filepath"
	"strings"

	"github.com/Hrothnar/linkzip/pkg/fileattr"
	"github.com/Hrothnar/linkzip/pkg/filter"
	"github.com/Hrothnar/linkzip/pkg/logging"
	"github.com/Hrothnar/linkzip/pkg/types"
)

// Collector recursively enumerates files under a base directory,
// applying the exclusion filter and computing in-archive relative paths.
type Collector struct {
	fs     types.FS
	filter *filter.Filter
}

// New creates a Collector over the given filesystem and filter.
func New(fsys types.FS, f *filter.Filter) *Collector {
	return &Collector{fs: fsys, filter: f}
}

// Collect walks currentDir depth-first and returns one Entry per
// included regular file, with archive paths relative to baseDir.
// Directories are descended into but never emitted themselves.
//
// A subtree whose listing fails yields zero entries and the walk
// continues: a backup is best-effort by design, one unreadable
// directory must not lose the rest.
func (c *Collector) Collect(baseDir, currentDir string) []types.Entry {
	logger := logging.GetLogger("collector")

	children, err := c.fs.ReadDir(currentDir)
	if err != nil {
		logger.Warn().Err(err).Str("dir", currentDir).Msg("Skipping unreadable directory")
		return nil
	}

	var entries []types.Entry
	for _, child := range children {
		full := filepath.Join(currentDir, child.Name())

		attrs, err := fileattr.Stat(c.fs, full)
		if err != nil {
			// Vanished or unreadable between listing and stat.
			logger.Debug().Err(err).Str("path", full).Msg("Skipping unreadable entry")
			continue
		}

		rel := relativeTo(baseDir, full)
		if !c.filter.Include(rel, attrs) {
			continue
		}

		if attrs.Dir {
			entries = append(entries, c.Collect(baseDir, full)...)
			continue
		}

		entries = append(entries, types.Entry{
			SourcePath:  full,
			ArchivePath: rel,
		})
	}

	return entries
}

// relativeTo strips the baseDir prefix (plus separator) from full and
// normalizes to forward slashes. If full is somehow not under baseDir,
// the bare filename is used instead.
func relativeTo(baseDir, full string) string {
	prefix := baseDir
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	if strings.HasPrefix(full, prefix) {
		return filepath.ToSlash(full[len(prefix):])
	}
	return filepath.Base(full)
}
