package match

import (
	"context"
	"runtime"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"strdist/metric"
	"strdist/options"
	"strdist/utils"
)

// Default thresholds of the scans.
const (
	DefaultNearestMinScore = 0.0
	DefaultAllMinScore     = 0.8
)

const (
	// chunksPerWorker splits the work finer than the worker count so that
	// slow chunks do not hold the scan back.
	chunksPerWorker = 4
	// cancelCheckEvery is how many candidates are compared between context checks.
	cancelCheckEvery = 64
)

// Option configures a scan.
type Option func(*scanConfig)

type scanConfig struct {
	minScore float64
	workers  int
	fold     options.FoldEnum
	logger   *zap.Logger
}

// WithMinScore sets the lowest similarity a candidate needs to match.
func WithMinScore(score float64) Option {
	return func(c *scanConfig) { c.minScore = score }
}

// WithWorkers sets how many goroutines compare candidates.
// Values below 1 mean GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *scanConfig) { c.workers = n }
}

// WithFold folds the query and every candidate before comparing them.
func WithFold(flags options.FoldEnum) Option {
	return func(c *scanConfig) { c.fold = flags }
}

// WithLogger logs scan progress at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(c *scanConfig) { c.logger = logger }
}

func newScanConfig(minScore float64, opts []Option) scanConfig {
	cfg := scanConfig{
		minScore: minScore,
		logger:   zap.NewNop(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.workers < 1 {
		cfg.workers = runtime.GOMAXPROCS(0)
	}

	cfg.minScore = utils.Clamp(0, cfg.minScore, 1)

	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}

	return cfg
}

// Report summarizes a scan.
type Report struct {
	// Scanned is the number of candidates compared.
	Scanned int
	// Missing lists the indexes of nil candidates, in ascending order.
	Missing []int
}

type span struct {
	lo, hi int
}

// partition splits n items into at most parts contiguous spans.
func partition(n, parts int) []span {
	if n == 0 {
		return nil
	}

	parts = min(parts, n)
	size := (n + parts - 1) / parts

	spans := make([]span, 0, parts)
	for lo := 0; lo < n; lo += size {
		spans = append(spans, span{lo: lo, hi: min(lo+size, n)})
	}

	return spans
}

type chunkResult struct {
	found   CandidateList
	missing []int
	scanned int
}

// scan runs visit over every candidate, one goroutine per chunk, at most
// cfg.workers at a time. visit sees folded, non-nil candidates only.
func scan(
	ctx context.Context,
	candidates []*string,
	cfg scanConfig,
	visit func(res *chunkResult, idx int, folded string),
) ([]chunkResult, error) {
	spans := partition(len(candidates), cfg.workers*chunksPerWorker)
	results := make([]chunkResult, len(spans))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)

	for i, sp := range spans {
		g.Go(func() error {
			res := &results[i]

			for idx := sp.lo; idx < sp.hi; idx++ {
				if (idx-sp.lo)%cancelCheckEvery == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}

				s := candidates[idx]
				if s == nil {
					res.missing = append(res.missing, idx)

					continue
				}

				res.scanned++
				visit(res, idx, Fold(*s, cfg.fold))
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// FindAll returns every candidate whose similarity to query under m is at
// least the minimum score (DefaultAllMinScore unless set), best first.
func FindAll(
	ctx context.Context,
	query string,
	candidates []*string,
	m metric.Metric,
	opts ...Option,
) (CandidateList, Report, error) {
	cfg := newScanConfig(DefaultAllMinScore, opts)
	query = Fold(query, cfg.fold)
	start := time.Now()

	results, err := scan(ctx, candidates, cfg, func(res *chunkResult, idx int, folded string) {
		score := metric.CompareWithin(query, folded, m, cfg.minScore)
		if score >= cfg.minScore {
			res.found = append(res.found, Candidate{Index: idx, Text: *candidates[idx], Score: score})
		}
	})
	if err != nil {
		return nil, Report{}, errors.Wrap(err, "find all")
	}

	var (
		found  CandidateList
		report Report
	)

	for _, res := range results {
		found = append(found, res.found...)
		report.Missing = append(report.Missing, res.missing...)
		report.Scanned += res.scanned
	}

	found.Rank()

	cfg.logger.Debug("find all finished",
		zap.String("metric", metric.Describe(m)),
		zap.Int("candidates", len(candidates)),
		zap.Int("matches", len(found)),
		zap.Int("missing", len(report.Missing)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return found, report, nil
}

// FindNearest returns the candidate most similar to query under m. ok is
// false when no candidate reaches the minimum score (DefaultNearestMinScore
// unless set). Ties go to the lowest index.
func FindNearest(
	ctx context.Context,
	query string,
	candidates []*string,
	m metric.Metric,
	opts ...Option,
) (best Candidate, ok bool, err error) {
	cfg := newScanConfig(DefaultNearestMinScore, opts)
	query = Fold(query, cfg.fold)
	start := time.Now()

	results, err := scan(ctx, candidates, cfg, func(res *chunkResult, idx int, folded string) {
		// Each chunk raises its own threshold as it finds better candidates
		threshold := cfg.minScore
		if len(res.found) > 0 {
			threshold = res.found[0].Score
		}

		score := metric.CompareWithin(query, folded, m, threshold)
		if score < threshold || (len(res.found) > 0 && score <= res.found[0].Score) {
			return
		}

		res.found = append(res.found[:0], Candidate{Index: idx, Text: *candidates[idx], Score: score})
	})
	if err != nil {
		return Candidate{}, false, errors.Wrap(err, "find nearest")
	}

	var found CandidateList
	for _, res := range results {
		found = append(found, res.found...)
	}

	cfg.logger.Debug("find nearest finished",
		zap.String("metric", metric.Describe(m)),
		zap.Int("candidates", len(candidates)),
		zap.Duration("elapsed", time.Since(start)),
	)

	if b := found.Rank().Best(); b != nil {
		return *b, true, nil
	}

	return Candidate{}, false, nil
}
