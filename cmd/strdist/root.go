package main

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"strdist/internal/config"
	"strdist/internal/diagnostic"
	"strdist/internal/logging"
	"strdist/metric"
)

// app carries what every command shares.
type app struct {
	v      *viper.Viper
	logger *zap.Logger
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	a := &app{v: v, logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "strdist",
		Short: "Compare strings with composable distance metrics",
		Long: `strdist compares strings with edit, q-gram and token based distance metrics.

Metrics compose: modifiers such as partial, tokensort, tokenset and tokenmax
wrap another metric, written in the short form name(inner).

Examples:
  strdist compare "New York Mets" "NY Mets" --metric "tokenmax(levenshtein)"
  strdist find yankees --file teams.txt --all --min-score 0.7
  strdist metrics`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			verbosity, err := cmd.Flags().GetCount("verbose")
			if err != nil {
				return err
			}

			jsonLog, err := cmd.Flags().GetBool("json-log")
			if err != nil {
				return err
			}

			a.logger = logging.New(cmd.ErrOrStderr(), verbosity, jsonLog)

			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.CountP("verbose", "v", "Increase output verbosity (-v for debug)")
	flags.Bool("json-log", false, "Write logs as JSON")
	flags.StringP("metric", "m", "", "Metric in short form, e.g. tokenmax(levenshtein) (env STRDIST_METRIC)")
	flags.StringP("config", "c", "", "YAML metric descriptor file, overrides --metric (env STRDIST_CONFIG)")
	flags.String("fold", "", "Comma separated folds: nfc, case, separators, camelcase, spaces, all, none (env STRDIST_FOLD)")

	bindFlags(v, flags.Lookup, config.KeyMetric, config.KeyConfig, config.KeyFold)

	root.AddCommand(a.newCompareCmd(), a.newFindCmd(), newMetricsCmd())

	return root
}

// bindFlags binds each key to the flag of the same name, with '_' spelled '-'.
func bindFlags(v *viper.Viper, lookup func(string) *pflag.Flag, keys ...string) {
	for _, key := range keys {
		if err := v.BindPFlag(key, lookup(strings.ReplaceAll(key, "_", "-"))); err != nil {
			panic(err)
		}
	}
}

func (a *app) settings() (config.Settings, error) {
	s, err := config.LoadSettings(a.v)
	if err != nil {
		return config.Settings{}, errors.Wrap(err, "invalid settings")
	}

	return s, nil
}

func (a *app) buildMetric(s config.Settings) (metric.Metric, error) {
	m, diags, err := s.BuildMetric()
	if diags != nil {
		a.logDiagnostics(diags)
	}

	if err != nil {
		return nil, err
	}

	a.logger.Debug("metric built", zap.String("metric", metric.Describe(m)))

	return m, nil
}

func (a *app) logDiagnostics(d *diagnostic.Diagnostics) {
	for _, w := range d.Warnings {
		a.logger.Warn(w.Message, zap.String("code", w.Code), zap.String("path", w.Path))
	}

	for _, i := range d.Infos {
		a.logger.Info(i.Message, zap.String("code", i.Code), zap.String("path", i.Path))
	}
}
