package core

import (
	"context"
	"path/filepath"

	"github.com/Hrothnar/linkzip/pkg/archive"
	"github.com/Hrothnar/linkzip/pkg/collector"
	"github.com/Hrothnar/linkzip/pkg/errors"
	"github.com/Hrothnar/linkzip/pkg/logging"
	"github.com/Hrothnar/linkzip/pkg/types"
)

// RunSingle performs single-archive mode: every shortcut target found
// in the source folder is collected and merged into one archive, each
// shortcut's files prefixed with its display name.
//
// Unresolvable shortcuts are skipped. An empty merged list is an error:
// there is nothing to archive and no output file is produced.
func RunSingle(ctx context.Context, opts Options) (*Result, error) {
	opts.setDefaults()
	logger := logging.GetLogger("core")
	defer logging.LogOperationStart(logger, "single-archive")()

	coll := collector.New(opts.FS, opts.Filter)

	var merged []types.Entry
	for _, link := range opts.findShortcuts() {
		target, err := opts.resolveLink(link)
		if err != nil {
			logger.Warn().Err(err).Str("link", link).Msg("Skipping unresolvable shortcut")
			continue
		}

		for _, entry := range coll.Collect(target.TargetDir, target.TargetDir) {
			merged = append(merged, entry.Prefixed(target.DisplayName))
		}
	}

	if len(merged) == 0 {
		return nil, errors.New(errors.ErrNoFiles, "no files to archive")
	}

	writer := archive.NewWriter(opts.Backend, opts.FS, opts.Filter, opts.Progress())
	items, err := writer.Write(types.ArchiveJob{
		OutputPath: opts.Output,
		Entries:    merged,
	})
	if err != nil {
		// Single mode has exactly one job; its failure fails the run.
		return nil, err
	}

	if opts.Uploader != nil {
		if err := opts.Uploader.Upload(ctx, opts.Output, filepath.Base(opts.Output)); err != nil {
			return nil, err
		}
	}

	return &Result{Archives: []ArchiveResult{{
		OutputPath: opts.Output,
		Items:      items,
	}}}, nil
}
