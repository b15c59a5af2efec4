// Package shortcut resolves shortcut files to their target directories
// and derives display names from shortcut filenames.
//
// The actual resolution mechanism is pluggable: the default resolver
// follows symlinks, and a second resolver understands Windows
// .library-ms descriptors. A resolver failure is never fatal to a run;
// the orchestrator skips the shortcut and continues.
package shortcut

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/Hrothnar/linkzip/pkg/types"
)

// Resolver resolves one kind of shortcut file.
type Resolver interface {
	// Matches reports whether the named directory entry looks like a
	// shortcut this resolver can handle.
	Matches(name string, mode fs.FileMode) bool

	// Resolve returns the shortcut's target directory and display name.
	Resolve(linkPath string) (types.ShortcutTarget, error)
}

// DisplayName derives the sanitized name for a shortcut file: the final
// extension is stripped, then a recognized localized suffix (such as
// " - Shortcut") is removed if the remaining name ends with one.
func DisplayName(linkName string, stripSuffixes []string) string {
	name := strings.TrimSuffix(linkName, filepath.Ext(linkName))
	for _, suffix := range stripSuffixes {
		// Only strip when something is left over, mirroring the
		// reference behavior for names that are exactly the suffix.
		if len(name) > len(suffix) && strings.HasSuffix(name, suffix) {
			return strings.TrimSuffix(name, suffix)
		}
	}
	return name
}

// hasExtension reports whether name carries one of the configured
// shortcut extensions, compared case-insensitively.
func hasExtension(name string, extensions []string) bool {
	ext := filepath.Ext(name)
	for _, e := range extensions {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}
