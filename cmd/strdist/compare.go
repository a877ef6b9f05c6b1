package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"strdist/match"
	"strdist/metric"
	"strdist/options"
	"strdist/utils"
)

func (a *app) newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <s1> <s2>",
		Short: "Print the similarity of two strings",
		Long: `Print the similarity of two strings, from 0 (unrelated) to 1 (identical).

With --distance the raw distance of the metric is printed instead: an edit
count for the edit family, a value in [0, 1] for normalized metrics.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			distance, err := cmd.Flags().GetBool("distance")
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

			fold, err := options.ParseFold(s.Fold)
			if err != nil {
				return err
			}

			s1, s2 := utils.Unpack2(args)
			s1, s2 = match.Fold(s1, fold), match.Fold(s2, fold)

			a.logger.Debug("comparing", zap.String("s1", s1), zap.String("s2", s2))

			if distance {
				fmt.Fprintf(cmd.OutOrStdout(), "%g\n", metric.Evaluate(m, s1, s2))

				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%.4f\n", metric.Compare(s1, s2, m))

			return nil
		},
	}

	cmd.Flags().BoolP("distance", "d", false, "Print the distance instead of the similarity")

	return cmd
}
