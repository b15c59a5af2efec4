// Package archive owns archive creation: a pluggable backend for the
// container format and a writer that streams entries into it with
// defensive filtering and progress reporting.
package archive

// Backend opens archives for writing. Implementations own the container
// format and its compression.
type Backend interface {
	// Create opens (truncating) the archive at path.
	Create(path string) (Handle, error)
}

// Handle is one open archive.
type Handle interface {
	// Add streams the file at sourcePath into the archive under
	// archivePath (a forward-slash relative path).
	Add(sourcePath, archivePath string) error

	// Close finalizes the archive so it is valid without further action.
	Close() error

	// Abort discards the archive without finalizing it and removes the
	// output file. A failed job must not leave a readable partial
	// archive behind.
	Abort() error
}
