//go:build !windows

package fileattr

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hrothnar/linkzip/pkg/filesystem"
	"github.com/Hrothnar/linkzip/pkg/testutil"
)

func TestStatDotfilesAreHidden(t *testing.T) {
	root := t.TempDir()
	testutil.MakeTree(t, root, map[string]string{
		"visible.txt": "x",
		".hidden":     "x",
		".hiddendir/": "",
		"plaindir/":   "",
	})

	fsys := filesystem.NewOS()

	tests := []struct {
		name string
		rel  string
		want Attrs
	}{
		{"regular file", "visible.txt", Attrs{}},
		{"dotfile", ".hidden", Attrs{Hidden: true}},
		{"dot directory", ".hiddendir", Attrs{Hidden: true, Dir: true}},
		{"regular directory", "plaindir", Attrs{Dir: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs, err := Stat(fsys, filepath.Join(root, tt.rel))
			require.NoError(t, err)
			assert.Equal(t, tt.want, attrs)
		})
	}
}

func TestStatFollowsSymlinks(t *testing.T) {
	root := t.TempDir()
	testutil.MakeTree(t, root, map[string]string{"target/": ""})
	testutil.Symlink(t, filepath.Join(root, "target"), filepath.Join(root, "link"))

	attrs, err := Stat(filesystem.NewOS(), filepath.Join(root, "link"))
	require.NoError(t, err)
	assert.True(t, attrs.Dir, "a symlink to a directory reports the target's attributes")
}

func TestStatMissingPath(t *testing.T) {
	_, err := Stat(filesystem.NewOS(), filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestStatNothingIsSystem(t *testing.T) {
	root := t.TempDir()
	testutil.MakeTree(t, root, map[string]string{"pagefile.sys": "x"})

	attrs, err := Stat(filesystem.NewOS(), filepath.Join(root, "pagefile.sys"))
	require.NoError(t, err)
	assert.False(t, attrs.System)
}
