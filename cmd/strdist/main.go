// Package main provides the CLI entrypoint for strdist.
//
// strdist compares strings with composable distance metrics:
//   - compare scores a pair of strings
//   - find scans a list of candidates for the nearest or every close match
//   - metrics lists the metric names accepted by --metric
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/cockroachdb/errors"

	"strdist/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := newRootCmd(config.NewViper()).ExecuteContext(ctx)

	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)

		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintln(os.Stderr, "Hint:", hint)
		}

		os.Exit(1)
	}
}
