package scanner

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/mcncl/jsonscout/internal/errors"
	"github.com/mcncl/jsonscout/internal/models"
	"github.com/mcncl/jsonscout/internal/parser"
	"github.com/mcncl/jsonscout/internal/searcher"
)

// Scanner holds the configuration for one scan invocation.
type Scanner struct {
	// Root is the file or directory to scan.
	Root string
	// Terms is the normalized, deduplicated term list.
	Terms []string
	// Options controls matching scope and case sensitivity.
	Options searcher.Options
	// Extensions filters directory entries; ignored for a single file.
	Extensions []string
	// Workers bounds concurrent file processing. Values below 1 mean
	// sequential scanning.
	Workers int
}

// Scan processes every candidate file under Root and returns the
// assembled result. Files that cannot be read or parsed as JSON are
// silently skipped; the only errors returned are configuration
// errors, which are detected before any file is touched.
func (s *Scanner) Scan(ctx context.Context) (models.ScanResult, error) {
	if len(s.Terms) == 0 {
		return models.ScanResult{}, errors.NewConfigError("no search terms provided", errors.ErrNoTerms)
	}
	if s.Options.KeysOnly && s.Options.ValuesOnly {
		return models.ScanResult{}, errors.NewConfigError("keys-only and values-only cannot be combined", errors.ErrConflictingMode)
	}

	files, err := Files(s.Root, s.Extensions)
	if err != nil {
		return models.ScanResult{}, err
	}

	agg := NewAggregator()

	workers := s.Workers
	if workers < 1 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, file := range files {
		if ctx.Err() != nil {
			break
		}
		file := file
		g.Go(func() error {
			value, err := parser.ParseFile(file)
			if err != nil {
				// Unreadable or malformed files are excluded from the
				// results without diagnostics.
				return nil
			}
			agg.Add(file, searcher.Search(value, s.Terms, s.Options, ""))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return models.ScanResult{}, errors.NewScanError("scan aborted", err)
	}

	return models.ScanResult{
		SearchedRoot:  s.Root,
		Keys:          s.Terms,
		CaseSensitive: s.Options.CaseSensitive,
		KeysOnly:      s.Options.KeysOnly,
		ValuesOnly:    s.Options.ValuesOnly,
		Results:       agg.Results(),
		MissingKeys:   agg.Missing(s.Terms),
	}, nil
}
