// Package filter implements the exclusion policy. Rules are checked in
// a fixed order and the first match wins: dot entries, hidden/system
// attributes, excluded basenames, then user glob patterns. The filter
// is pure; it is applied while walking and again at archive-write time
// so entries that slipped in through any other path are still dropped
// before bytes are written.
package filter

import (
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/Hrothnar/linkzip/pkg/fileattr"
)

// Options configures a Filter. The zero value excludes nothing except
// the dot entries.
type Options struct {
	// Hidden excludes entries with the hidden attribute set.
	Hidden bool
	// System excludes entries with the system attribute set.
	System bool
	// Names are basenames excluded everywhere, case-insensitive.
	Names []string
	// Patterns are doublestar globs matched against the forward-slash
	// relative path; a pattern without a separator also matches bare
	// basenames anywhere in the tree.
	Patterns []string
}

// Filter decides whether a filesystem entry is eligible for inclusion.
type Filter struct {
	opts  Options
	names map[string]struct{}
}

// New creates a Filter from the given options.
func New(opts Options) *Filter {
	names := make(map[string]struct{}, len(opts.Names))
	for _, n := range opts.Names {
		names[strings.ToLower(n)] = struct{}{}
	}
	return &Filter{opts: opts, names: names}
}

// NewDefault creates a Filter with the fixed reference rules: hidden and
// system entries and desktop.ini are excluded.
func NewDefault() *Filter {
	return New(Options{
		Hidden: true,
		System: true,
		Names:  []string{"desktop.ini"},
	})
}

// Include reports whether the entry at relPath (forward-slash relative
// path) with the given attributes should be included.
func (f *Filter) Include(relPath string, attrs fileattr.Attrs) bool {
	base := path.Base(relPath)

	if base == "." || base == ".." {
		return false
	}
	if f.opts.Hidden && attrs.Hidden {
		return false
	}
	if f.opts.System && attrs.System {
		return false
	}
	if _, excluded := f.names[strings.ToLower(base)]; excluded {
		return false
	}
	for _, pattern := range f.opts.Patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" || strings.HasPrefix(pattern, "#") {
			continue
		}
		if matched, _ := doublestar.Match(pattern, relPath); matched {
			return false
		}
		if !strings.Contains(pattern, "/") {
			if matched, _ := doublestar.Match(pattern, base); matched {
				return false
			}
		}
	}
	return true
}
