package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"strdist/internal/config"
)

func newMetricsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "List the metric names accepted by --metric",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range config.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
