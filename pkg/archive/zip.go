package archive

import (
	"io"
	"os"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"

	"github.com/Hrothnar/linkzip/pkg/errors"
)

// Compression selects the zip entry compression method.
type Compression string

const (
	CompressionDeflate Compression = "deflate"
	CompressionZstd    Compression = "zstd"
	CompressionStore   Compression = "store"
)

// zstdMethod is the zip method ID assigned to Zstandard (APPNOTE 4.5.x).
const zstdMethod = 93

// ParseCompression maps a config string to a Compression, defaulting to
// deflate for anything unrecognized.
func ParseCompression(s string) Compression {
	switch Compression(s) {
	case CompressionZstd:
		return CompressionZstd
	case CompressionStore:
		return CompressionStore
	default:
		return CompressionDeflate
	}
}

// ZipBackend writes zip archives. Entry names are stored as UTF-8, so
// arbitrary Unicode paths survive the round trip.
type ZipBackend struct {
	compression Compression
}

// NewZipBackend creates a zip backend using the given compression.
func NewZipBackend(compression Compression) *ZipBackend {
	return &ZipBackend{compression: compression}
}

func (b *ZipBackend) Create(path string) (Handle, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	zw := zip.NewWriter(f)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.DefaultCompression)
	})
	zw.RegisterCompressor(zstdMethod, func(out io.Writer) (io.WriteCloser, error) {
		return zstd.NewWriter(out)
	})

	return &zipHandle{
		file:   f,
		writer: zw,
		method: b.method(),
	}, nil
}

func (b *ZipBackend) method() uint16 {
	switch b.compression {
	case CompressionZstd:
		return zstdMethod
	case CompressionStore:
		return zip.Store
	default:
		return zip.Deflate
	}
}

type zipHandle struct {
	file   *os.File
	writer *zip.Writer
	method uint16
}

func (h *zipHandle) Add(sourcePath, archivePath string) error {
	src, err := os.Open(sourcePath)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to open %s", sourcePath)
	}
	defer func() { _ = src.Close() }()

	info, err := src.Stat()
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", sourcePath)
	}

	header := &zip.FileHeader{
		Name:     archivePath,
		Method:   h.method,
		Modified: info.ModTime(),
	}
	header.SetMode(info.Mode())

	w, err := h.writer.CreateHeader(header)
	if err != nil {
		return errors.Wrapf(err, errors.ErrArchiveWrite, "failed to add entry %s", archivePath)
	}
	if _, err := io.Copy(w, src); err != nil {
		return errors.Wrapf(err, errors.ErrArchiveWrite, "failed to write entry %s", archivePath)
	}
	return nil
}

func (h *zipHandle) Close() error {
	if err := h.writer.Close(); err != nil {
		_ = h.file.Close()
		return err
	}
	return h.file.Close()
}

func (h *zipHandle) Abort() error {
	// The central directory is never written, so nothing can mistake
	// the leftover bytes for a valid archive once the file is gone.
	_ = h.file.Close()
	return os.Remove(h.file.Name())
}
