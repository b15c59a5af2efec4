package archive

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCompression(t *testing.T) {
	tests := []struct {
		in   string
		want Compression
	}{
		{"deflate", CompressionDeflate},
		{"zstd", CompressionZstd},
		{"store", CompressionStore},
		{"", CompressionDeflate},
		{"lzma", CompressionDeflate},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseCompression(tt.in), "input %q", tt.in)
	}
}

// readZip opens a zip and returns its entries' contents keyed by name.
// Zstandard entries are decoded with the method ID linkzip writes.
func readZip(t *testing.T, path string) map[string]string {
	t.Helper()

	rc, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer func() { _ = rc.Close() }()

	rc.RegisterDecompressor(zstdMethod, func(r io.Reader) io.ReadCloser {
		zr, err := zstd.NewReader(r)
		require.NoError(t, err)
		return zr.IOReadCloser()
	})

	out := make(map[string]string, len(rc.File))
	for _, f := range rc.File {
		r, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(r)
		require.NoError(t, err)
		require.NoError(t, r.Close())
		out[f.Name] = string(data)
	}
	return out
}

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestZipBackendRoundTrip(t *testing.T) {
	for _, compression := range []Compression{CompressionDeflate, CompressionZstd, CompressionStore} {
		t.Run(string(compression), func(t *testing.T) {
			dir := t.TempDir()
			srcA := writeSource(t, dir, "a.txt", "alpha contents")
			srcB := writeSource(t, dir, "b.txt", "beta contents")
			out := filepath.Join(dir, "out.zip")

			backend := NewZipBackend(compression)
			handle, err := backend.Create(out)
			require.NoError(t, err)
			require.NoError(t, handle.Add(srcA, "Photos/a.txt"))
			require.NoError(t, handle.Add(srcB, "Музыка/b.txt"))
			require.NoError(t, handle.Close())

			got := readZip(t, out)
			assert.Equal(t, map[string]string{
				"Photos/a.txt": "alpha contents",
				"Музыка/b.txt": "beta contents",
			}, got)
		})
	}
}

func TestZipBackendEmptyArchiveIsValid(t *testing.T) {
	out := filepath.Join(t.TempDir(), "empty.zip")

	backend := NewZipBackend(CompressionDeflate)
	handle, err := backend.Create(out)
	require.NoError(t, err)
	require.NoError(t, handle.Close())

	assert.Empty(t, readZip(t, out))
}

func TestZipBackendMissingSourceFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.zip")

	backend := NewZipBackend(CompressionDeflate)
	handle, err := backend.Create(out)
	require.NoError(t, err)
	defer func() { _ = handle.Close() }()

	err = handle.Add(filepath.Join(dir, "missing.txt"), "missing.txt")
	require.Error(t, err)
}

func TestZipBackendAbortRemovesTheFile(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "a.txt", "alpha")
	out := filepath.Join(dir, "out.zip")

	backend := NewZipBackend(CompressionDeflate)
	handle, err := backend.Create(out)
	require.NoError(t, err)
	require.NoError(t, handle.Add(src, "a.txt"))
	require.NoError(t, handle.Abort())

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestZipBackendCreateFailsInMissingDirectory(t *testing.T) {
	backend := NewZipBackend(CompressionDeflate)
	_, err := backend.Create(filepath.Join(t.TempDir(), "no", "such", "dir", "out.zip"))
	require.Error(t, err)
}

func TestZipBackendPreservesModTime(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "a.txt", "x")
	out := filepath.Join(dir, "out.zip")

	info, err := os.Stat(src)
	require.NoError(t, err)

	backend := NewZipBackend(CompressionDeflate)
	handle, err := backend.Create(out)
	require.NoError(t, err)
	require.NoError(t, handle.Add(src, "a.txt"))
	require.NoError(t, handle.Close())

	rc, err := zip.OpenReader(out)
	require.NoError(t, err)
	defer func() { _ = rc.Close() }()

	require.Len(t, rc.File, 1)
	// Zip timestamps have two-second resolution.
	assert.WithinDuration(t, info.ModTime(), rc.File[0].Modified, 2*time.Second)
}
