package archive

import (
	"github.com/Hrothnar/linkzip/pkg/errors"
	"github.com/Hrothnar/linkzip/pkg/fileattr"
	"github.com/Hrothnar/linkzip/pkg/filter"
	"github.com/Hrothnar/linkzip/pkg/logging"
	"github.com/Hrothnar/linkzip/pkg/types"
)

// Writer streams the entries of one ArchiveJob into a backend archive.
//
// The exclusion filter is applied a second time here, against each
// entry's current on-disk attributes: an entry collected moments
// earlier can have become hidden or system in the meantime, and entries
// built by any other path must still be filtered before bytes are
// written.
type Writer struct {
	backend  Backend
	fs       types.FS
	filter   *filter.Filter
	progress Progress
}

// NewWriter creates a Writer. progress may be Discard{}.
func NewWriter(backend Backend, fsys types.FS, f *filter.Filter, progress Progress) *Writer {
	if progress == nil {
		progress = Discard{}
	}
	return &Writer{backend: backend, fs: fsys, filter: f, progress: progress}
}

// Write creates the archive at job.OutputPath and adds every entry that
// still passes the filter. It returns the number of items written.
//
// An empty job still produces a valid, empty archive. A failure to
// create the archive reports ARCHIVE_CREATE and produces no file; a
// failure mid-write or at finalization aborts the handle and removes
// the output, so a failed job never leaves a partial archive behind.
func (w *Writer) Write(job types.ArchiveJob) (int, error) {
	logger := logging.GetLogger("archive")

	handle, err := w.backend.Create(job.OutputPath)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrArchiveCreate, "cannot open %s", job.OutputPath)
	}

	total := len(job.Entries)
	if total > 0 {
		w.progress.Start(total)
	}

	written := 0
	for i, entry := range job.Entries {
		// One step per entry, skipped or not, so progress renderers
		// that count toward the announced total reach it.
		w.progress.Step(i, entry.ArchivePath)

		attrs, err := fileattr.Stat(w.fs, entry.SourcePath)
		if err != nil {
			logger.Warn().Err(err).Str("path", entry.SourcePath).Msg("Skipping unreadable entry")
			continue
		}
		if !w.filter.Include(entry.ArchivePath, attrs) {
			continue
		}

		// Archives are flat file lists; directories are never stored.
		if attrs.Dir {
			continue
		}

		if err := handle.Add(entry.SourcePath, entry.ArchivePath); err != nil {
			_ = handle.Abort()
			return written, errors.Wrapf(err, errors.ErrArchiveWrite,
				"failed writing %s to %s", entry.ArchivePath, job.OutputPath)
		}
		written++
	}

	if err := handle.Close(); err != nil {
		_ = handle.Abort()
		return written, errors.Wrapf(err, errors.ErrArchiveClose, "failed to finalize %s", job.OutputPath)
	}

	w.progress.Finish(written, job.OutputPath)

	logger.Debug().
		Int("items", written).
		Str("output", job.OutputPath).
		Msg("Archive written")

	return written, nil
}
