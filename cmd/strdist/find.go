package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"strdist/internal/config"
	"strdist/internal/diagnostic"
	"strdist/match"
	"strdist/metric"
)

var errNoMatch = errors.New("no candidate reached the minimum score")

func (a *app) newFindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <query> [candidates...]",
		Short: "Find the candidates closest to a query",
		Long: `Find the candidate most similar to the query, or with --all every candidate
scoring at least --min-score (default 0.8 with --all, 0 otherwise).

Candidates come from the arguments or from --file, one per line ("-" reads
standard input). Blank lines are missing candidates: they are skipped and
reported at info level.

Matches are printed as index, score and text separated by tabs.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := cmd.Flags().GetBool("all")
			if err != nil {
				return err
			}

			top, err := cmd.Flags().GetInt("top")
			if err != nil {
				return err
			}

			file, err := cmd.Flags().GetString("file")
			if err != nil {
				return err
			}

			candidates, err := readCandidates(cmd.InOrStdin(), file, args[1:])
			if err != nil {
				return err
			}

			s, err := a.settings()
			if err != nil {
				return err
			}

			m, err := a.buildMetric(s)
			if err != nil {
				return err
			}

			defaultMinScore := match.DefaultNearestMinScore
			if all {
				defaultMinScore = match.DefaultAllMinScore
			}

			opts, err := s.ScanOptions(a.logger, defaultMinScore)
			if err != nil {
				return err
			}

			if all {
				return a.findAll(cmd, args[0], candidates, m, top, opts)
			}

			return a.findNearest(cmd, args[0], candidates, m, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringP("file", "f", "", `Read candidates from a file, one per line ("-" for stdin)`)
	flags.BoolP("all", "a", false, "Print every match instead of the nearest")
	flags.IntP("top", "n", 0, "With --all, print at most n matches (0 for all)")
	flags.Float64("min-score", 0, "Lowest similarity that matches (env STRDIST_MIN_SCORE)")
	flags.IntP("workers", "w", 0, "Comparison goroutines, 0 for one per CPU (env STRDIST_WORKERS)")

	bindFlags(a.v, flags.Lookup, config.KeyMinScore, config.KeyWorkers)

	return cmd
}

func (a *app) findAll(
	cmd *cobra.Command,
	query string,
	candidates []*string,
	m metric.Metric,
	top int,
	opts []match.Option,
) error {
	found, report, err := match.FindAll(cmd.Context(), query, candidates, m, opts...)
	if err != nil {
		return err
	}

	var diags diagnostic.Diagnostics
	diags.AddMissing("candidates", report.Missing)
	a.logDiagnostics(&diags)

	if top > 0 {
		found = found.Top(top)
	}

	if found.IsAmbiguous(match.DefaultAmbiguityThreshold) {
		a.logger.Info("top matches are close", zap.Float64("best", found[0].Score), zap.Float64("second", found[1].Score))
	}

	for _, c := range found {
		printCandidate(cmd.OutOrStdout(), c)
	}

	if len(found) == 0 {
		return errNoMatch
	}

	return nil
}

func (a *app) findNearest(
	cmd *cobra.Command,
	query string,
	candidates []*string,
	m metric.Metric,
	opts []match.Option,
) error {
	var diags diagnostic.Diagnostics
	diags.AddMissing("candidates", missingIndexes(candidates))
	a.logDiagnostics(&diags)

	best, ok, err := match.FindNearest(cmd.Context(), query, candidates, m, opts...)
	if err != nil {
		return err
	}

	if !ok {
		return errNoMatch
	}

	printCandidate(cmd.OutOrStdout(), best)

	return nil
}

func printCandidate(w io.Writer, c match.Candidate) {
	fmt.Fprintf(w, "%d\t%.4f\t%s\n", c.Index, c.Score, c.Text)
}

// readCandidates returns args, or the lines of file when set. Blank lines
// become missing candidates.
func readCandidates(stdin io.Reader, file string, args []string) ([]*string, error) {
	if file == "" {
		candidates := make([]*string, len(args))
		for i := range args {
			candidates[i] = &args[i]
		}

		return candidates, nil
	}

	if len(args) > 0 {
		return nil, errors.WithHint(
			errors.New("candidates given both as arguments and with --file"),
			"pass either candidate arguments or --file",
		)
	}

	r := stdin
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open candidates file %s", file)
		}
		defer f.Close()

		r = f
	}

	var candidates []*string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			candidates = append(candidates, nil)

			continue
		}

		candidates = append(candidates, &line)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read candidates from %s", file)
	}

	return candidates, nil
}

func missingIndexes(candidates []*string) []int {
	var missing []int

	for i, c := range candidates {
		if c == nil {
			missing = append(missing, i)
		}
	}

	return missing
}
