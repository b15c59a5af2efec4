// Package types holds the value types shared across linkzip: archive
// entries, resolved shortcut targets, and archive jobs, plus the
// filesystem abstraction the collectors and writers operate on.
package types

import "path"

// Entry is one file slated for archival: where it lives on disk and the
// relative path it gets inside the archive. ArchivePath always uses
// forward slashes and never starts with a separator or drive letter.
type Entry struct {
	SourcePath  string
	ArchivePath string
}

// Prefixed returns a copy of the entry with displayName prepended to its
// archive path. Used in single-archive mode so every shortcut's files
// land under their own top-level folder.
func (e Entry) Prefixed(displayName string) Entry {
	return Entry{
		SourcePath:  e.SourcePath,
		ArchivePath: path.Join(displayName, e.ArchivePath),
	}
}

// ShortcutTarget is the result of resolving one shortcut file.
type ShortcutTarget struct {
	// DisplayName is the shortcut's filename with its extension and any
	// recognized localized suffix stripped. It names the per-shortcut
	// archive in split mode and prefixes archive paths in single mode.
	DisplayName string

	// TargetDir is the absolute directory the shortcut points at.
	TargetDir string
}

// ArchiveJob is one complete unit of work for the archive backend: an
// output path plus the ordered entries to write into it.
type ArchiveJob struct {
	OutputPath string
	Entries    []Entry
}
