package shortcut

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hrothnar/linkzip/pkg/errors"
	"github.com/Hrothnar/linkzip/pkg/filesystem"
	"github.com/Hrothnar/linkzip/pkg/testutil"
)

var suffixes = []string{" - Shortcut", " - Ярлык"}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		linkName string
		want     string
	}{
		{"plain lnk", "Photos.lnk", "Photos"},
		{"english suffix", "Photos - Shortcut.lnk", "Photos"},
		{"russian suffix", "Музыка - Ярлык.lnk", "Музыка"},
		{"library descriptor", "Documents.library-ms", "Documents"},
		{"no extension", "Photos", "Photos"},
		{"multiple dots", "archive.tar.gz", "archive.tar"},
		{"suffix without extension", "Videos - Shortcut", "Videos"},
		// A name that is nothing but the suffix keeps it.
		{"name equals suffix", " - Shortcut.lnk", " - Shortcut"},
		{"suffix in the middle stays", "My - Shortcut - Files.lnk", "My - Shortcut - Files"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayName(tt.linkName, suffixes))
		})
	}
}

func TestDisplayNameWithoutSuffixes(t *testing.T) {
	assert.Equal(t, "Photos - Shortcut", DisplayName("Photos - Shortcut.lnk", nil))
}

func TestSymlinkResolverMatches(t *testing.T) {
	r := NewSymlinkResolver(filesystem.NewOS(), []string{".lnk"}, suffixes)

	assert.True(t, r.Matches("anything", fs.ModeSymlink))
	assert.True(t, r.Matches("Photos.lnk", 0))
	assert.True(t, r.Matches("Photos.LNK", 0))
	assert.False(t, r.Matches("Photos.txt", 0))
	assert.False(t, r.Matches("Photos", 0))
}

func TestSymlinkResolverResolve(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "real")
	testutil.MakeTree(t, root, map[string]string{"real/file.txt": "x"})

	link := filepath.Join(root, "Photos - Shortcut")
	testutil.Symlink(t, target, link)

	r := NewSymlinkResolver(filesystem.NewOS(), []string{".lnk"}, suffixes)
	got, err := r.Resolve(link)
	require.NoError(t, err)

	assert.Equal(t, "Photos", got.DisplayName)
	// EvalSymlinks may canonicalize the path (macOS /private). The
	// resolved dir must at least contain the target's content.
	_, err = os.Stat(filepath.Join(got.TargetDir, "file.txt"))
	assert.NoError(t, err)
}

func TestSymlinkResolverDanglingLink(t *testing.T) {
	root := t.TempDir()
	link := filepath.Join(root, "gone.lnk")
	testutil.Symlink(t, filepath.Join(root, "missing"), link)

	r := NewSymlinkResolver(filesystem.NewOS(), []string{".lnk"}, suffixes)
	_, err := r.Resolve(link)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrLinkResolve))
}

func TestSymlinkResolverTargetIsFile(t *testing.T) {
	root := t.TempDir()
	testutil.MakeTree(t, root, map[string]string{"plain.txt": "x"})

	link := filepath.Join(root, "bad.lnk")
	testutil.Symlink(t, filepath.Join(root, "plain.txt"), link)

	r := NewSymlinkResolver(filesystem.NewOS(), []string{".lnk"}, suffixes)
	_, err := r.Resolve(link)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrLinkResolve))
}

func TestLibraryResolverMatches(t *testing.T) {
	r := NewLibraryResolver(filesystem.NewOS(), suffixes)

	assert.True(t, r.Matches("Documents.library-ms", 0))
	assert.True(t, r.Matches("Documents.LIBRARY-MS", 0))
	assert.False(t, r.Matches("Documents.lnk", 0))
}

func writeLibrary(t *testing.T, path string, urls ...string) {
	t.Helper()
	body := `<?xml version="1.0" encoding="UTF-8"?>
<libraryDescription>
  <searchConnectorDescriptionList>
`
	for _, u := range urls {
		body += "    <searchConnectorDescription>\n      <simpleLocation>\n        <url>" +
			u + "</url>\n      </simpleLocation>\n    </searchConnectorDescription>\n"
	}
	body += `  </searchConnectorDescriptionList>
</libraryDescription>
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
}

func TestLibraryResolverFirstResolvableLocationWins(t *testing.T) {
	root := t.TempDir()
	testutil.MakeTree(t, root, map[string]string{"real/file.txt": "x"})
	realDir := filepath.Join(root, "real")

	lib := filepath.Join(root, "Documents.library-ms")
	writeLibrary(t, lib, filepath.Join(root, "missing"), realDir)

	r := NewLibraryResolver(filesystem.NewOS(), suffixes)
	got, err := r.Resolve(lib)
	require.NoError(t, err)

	assert.Equal(t, "Documents", got.DisplayName)
	assert.Equal(t, realDir, got.TargetDir)
}

func TestLibraryResolverNoResolvableLocation(t *testing.T) {
	root := t.TempDir()
	lib := filepath.Join(root, "Empty.library-ms")
	writeLibrary(t, lib, filepath.Join(root, "missing"))

	r := NewLibraryResolver(filesystem.NewOS(), suffixes)
	_, err := r.Resolve(lib)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrLinkResolve))
}

func TestLibraryResolverMalformedXML(t *testing.T) {
	root := t.TempDir()
	lib := filepath.Join(root, "Broken.library-ms")
	require.NoError(t, os.WriteFile(lib, []byte("<libraryDescription><unclosed"), 0644))

	r := NewLibraryResolver(filesystem.NewOS(), suffixes)
	_, err := r.Resolve(lib)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrLinkResolve))
}

func TestLibraryResolverMissingFile(t *testing.T) {
	r := NewLibraryResolver(filesystem.NewOS(), suffixes)
	_, err := r.Resolve(filepath.Join(t.TempDir(), "nope.library-ms"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrLinkResolve))
}
