package core

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/Hrothnar/linkzip/pkg/archive"
	"github.com/Hrothnar/linkzip/pkg/collector"
	"github.com/Hrothnar/linkzip/pkg/errors"
	"github.com/Hrothnar/linkzip/pkg/logging"
	"github.com/Hrothnar/linkzip/pkg/types"
)

// RunSplit performs split mode: one archive per resolvable shortcut,
// written into the output directory as <DisplayName>.zip, entries not
// prefixed.
//
// Jobs are independent (disjoint source subtrees, distinct output
// files), so with Jobs > 1 they run on a bounded worker group. A failed
// job abandons only its own archive; the remaining shortcuts are still
// processed.
func RunSplit(ctx context.Context, opts Options) (*Result, error) {
	opts.setDefaults()
	logger := logging.GetLogger("core")
	defer logging.LogOperationStart(logger, "split-archives")()

	if err := opts.FS.MkdirAll(opts.Output, 0o755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirCreate,
			"cannot create or access output dir %s", opts.Output)
	}

	links := opts.findShortcuts()
	if len(links) == 0 {
		return nil, errors.Newf(errors.ErrNoShortcuts,
			"no shortcut files found in %s", opts.SourceDir)
	}

	// Resolve up front so duplicate display names can be disambiguated
	// before any job runs; two jobs must never share an output file.
	var targets []types.ShortcutTarget
	used := make(map[string]struct{})
	for _, link := range links {
		target, err := opts.resolveLink(link)
		if err != nil {
			logger.Warn().Err(err).Str("link", link).Msg("Skipping unresolvable shortcut")
			continue
		}
		name := target.DisplayName
		for i := 2; ; i++ {
			if _, taken := used[name]; !taken {
				break
			}
			name = fmt.Sprintf("%s (%d)", target.DisplayName, i)
		}
		used[name] = struct{}{}
		target.DisplayName = name
		targets = append(targets, target)
	}

	coll := collector.New(opts.FS, opts.Filter)

	var (
		mu      sync.Mutex
		results []ArchiveResult
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Jobs)

	for _, target := range targets {
		g.Go(func() error {
			entries := coll.Collect(target.TargetDir, target.TargetDir)
			outputPath := filepath.Join(opts.Output, target.DisplayName+".zip")

			writer := archive.NewWriter(opts.Backend, opts.FS, opts.Filter, opts.Progress())
			items, err := writer.Write(types.ArchiveJob{
				OutputPath: outputPath,
				Entries:    entries,
			})
			if err != nil {
				// Abandon this job only; the other shortcuts proceed.
				logger.Error().Err(err).Str("output", outputPath).Msg("Archive job failed")
				return nil
			}

			if opts.Uploader != nil {
				if err := opts.Uploader.Upload(ctx, outputPath, filepath.Base(outputPath)); err != nil {
					// The local archive is complete; report and move on.
					logger.Error().Err(err).Str("output", outputPath).Msg("Upload failed")
				}
			}

			mu.Lock()
			results = append(results, ArchiveResult{
				DisplayName: target.DisplayName,
				OutputPath:  outputPath,
				Items:       items,
			})
			mu.Unlock()
			return nil
		})
	}

	// Workers never return errors; they log and skip instead.
	_ = g.Wait()

	return &Result{Archives: results}, nil
}
