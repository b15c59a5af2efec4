// Package fileattr probes the platform file attributes the exclusion
// rules care about: the hidden and system bits. On Windows these come
// from the real file attributes; elsewhere a leading dot marks a file
// hidden and nothing is ever system.
package fileattr

// Attrs describes one filesystem entry as seen by the exclusion rules.
type Attrs struct {
	Hidden bool
	System bool
	Dir    bool
}
